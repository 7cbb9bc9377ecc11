// Package flushio provides the flushable output streams that builtins print
// to.
package flushio

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// WriteFlusher is a flush-able io.Writer.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

// Discard accepts and drops all output.
var Discard WriteFlusher = discard{}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
func (discard) Flush() error                { return nil }

// NewWriteFlusher adapts w for output: nil and io.Discard become Discard,
// in-memory buffers are written directly, a WriteFlusher is used as is, and
// anything else gets a bufio.Writer.
func NewWriteFlusher(w io.Writer) WriteFlusher {
	if w == nil || w == io.Discard {
		return Discard
	}
	switch impl := w.(type) {
	case WriteFlusher:
		return impl
	case *bytes.Buffer, *strings.Builder:
		return direct{w}
	}
	return bufio.NewWriter(w)
}

type direct struct{ io.Writer }

func (direct) Flush() error { return nil }

// NewTee returns a WriteFlusher feeding every stream in wfs. Nested tees are
// flattened; nil and Discard streams are dropped.
func NewTee(wfs ...WriteFlusher) WriteFlusher {
	var tee Tee
	for _, wf := range wfs {
		switch impl := wf.(type) {
		case nil, discard:
		case Tee:
			tee = append(tee, impl...)
		default:
			tee = append(tee, impl)
		}
	}
	switch len(tee) {
	case 0:
		return Discard
	case 1:
		return tee[0]
	default:
		return tee
	}
}

// Tee writes to and flushes each of its streams in turn. A failing stream
// does not keep the rest from being written; the first error is returned.
type Tee []WriteFlusher

func (tee Tee) Write(p []byte) (int, error) {
	var first error
	for _, wf := range tee {
		n, err := wf.Write(p)
		if err == nil && n < len(p) {
			err = io.ErrShortWrite
		}
		if first == nil {
			first = err
		}
	}
	if first != nil {
		return 0, first
	}
	return len(p), nil
}

func (tee Tee) Flush() error {
	var first error
	for _, wf := range tee {
		if err := wf.Flush(); first == nil {
			first = err
		}
	}
	return first
}
