// Package fileinput loads program text from a queue of named input streams.
package fileinput

import (
	"fmt"
	"io"
	"os"
)

// Source is the complete text of one input stream.
type Source struct {
	Name string
	Text string
}

// Input reads each queued stream in order. Streams that implement
// io.Closer are closed once read.
type Input struct {
	Queue []io.Reader
}

// Open queues the named files; "-" names standard input. Files already
// opened are closed if a later one fails to open.
func Open(names ...string) (*Input, error) {
	var in Input
	for _, name := range names {
		if name == "-" {
			in.Queue = append(in.Queue, NamedReader("<stdin>", os.Stdin))
			continue
		}
		f, err := os.Open(name)
		if err != nil {
			in.Close()
			return nil, err
		}
		in.Queue = append(in.Queue, f)
	}
	return &in, nil
}

// Next reads the next queued stream in full, returning io.EOF once the queue
// is empty.
func (in *Input) Next() (Source, error) {
	if len(in.Queue) == 0 {
		return Source{}, io.EOF
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]

	src := Source{Name: nameOf(r)}
	b, err := io.ReadAll(r)
	if cl, ok := r.(io.Closer); ok {
		if cerr := cl.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		return src, fmt.Errorf("reading %v: %w", src.Name, err)
	}
	src.Text = string(b)
	return src, nil
}

// Close closes any streams left in the queue.
func (in *Input) Close() (err error) {
	for _, r := range in.Queue {
		if cl, ok := r.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	in.Queue = nil
	return err
}

// NamedReader attaches a name to r, as reported by Source.Name.
func NamedReader(name string, r io.Reader) io.Reader {
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
