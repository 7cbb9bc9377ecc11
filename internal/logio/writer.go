package logio

import (
	"bytes"
	"sync"
)

// Writer turns written bytes into one Logf call per line, so that a stream
// like a Context's diagnostics can be routed into a Logger level.
type Writer struct {
	Logf func(mess string, args ...interface{})

	mu      sync.Mutex
	partial []byte
}

// Write logs every line completed by p, holding back any trailing partial
// line until a later Write or Flush.
func (lw *Writer) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	n := len(p)
	for len(p) > 0 {
		i := bytes.IndexByte(p, '\n')
		if i < 0 {
			lw.partial = append(lw.partial, p...)
			break
		}
		lw.emit(p[:i])
		p = p[i+1:]
	}
	return n, nil
}

// Flush logs any pending partial line.
func (lw *Writer) Flush() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	if len(lw.partial) > 0 {
		lw.emit(nil)
	}
	return nil
}

func (lw *Writer) emit(line []byte) {
	if len(lw.partial) > 0 {
		line = append(lw.partial, line...)
		lw.partial = lw.partial[:0]
	}
	lw.Logf("%s", line)
}
