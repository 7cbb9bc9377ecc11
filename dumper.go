package main

import (
	"fmt"
	"io"
	"strconv"
)

type ctxDumper struct {
	c   *Context
	out io.Writer

	indexWidth int
	err        error
}

func (dump ctxDumper) dump() error {
	dump.printf("# Context Dump\n")
	dump.printf("  depth: %v\n", dump.c.depth)
	dump.printf("  policy: %v\n", dump.c.policy)
	if faults := dump.c.faults; len(faults) > 0 {
		dump.printf("  faults: %v\n", len(faults))
	}
	dump.printf("  ")
	dump.stack("  ")
	dump.printf("  ")
	dump.env("  ")
	return dump.err
}

func (dump ctxDumper) dumpTop() error {
	if val, ok := dump.c.Stack.Peek(); ok {
		dump.printf("top: %v\n", val)
	} else {
		dump.printf("top: none\n")
	}
	return dump.err
}

func (dump ctxDumper) dumpStack() error {
	dump.stack("")
	return dump.err
}

func (dump ctxDumper) dumpEnv() error {
	dump.env("")
	return dump.err
}

// stack lists values top first, each labeled with its distance from the top.
func (dump *ctxDumper) stack(indent string) {
	vals := dump.c.Stack.Values()
	dump.printf("stack:\n")
	if dump.indexWidth == 0 {
		dump.indexWidth = len(strconv.Itoa(len(vals)))
	}
	for i := len(vals) - 1; i >= 0; i-- {
		dump.printf("%v %*v: %v\n", indent, dump.indexWidth, len(vals)-i-1, vals[i])
	}
}

func (dump *ctxDumper) env(indent string) {
	dump.printf("env:\n")
	for _, name := range dump.c.Env.Names() {
		val, _ := dump.c.Env.Get(name)
		if _, isQuot := val.(Quotation); isQuot {
			dump.printf("%v %v: quotation\n", indent, name)
		} else {
			dump.printf("%v %v: %v\n", indent, name, val)
		}
	}
}

func (dump *ctxDumper) printf(mess string, args ...interface{}) {
	if dump.err == nil {
		_, dump.err = fmt.Fprintf(dump.out, mess, args...)
	}
}
