// Package panicerr converts panics raised during evaluation into errors.
package panicerr

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// Recover calls f, returning its error, or a *PanicError if f panicked.
func Recover(name string, f func() error) (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = &PanicError{Name: name, Value: e, Stack: debug.Stack()}
		}
	}()
	return f()
}

// PanicError records a recovered panic value and the stack that raised it.
type PanicError struct {
	Name  string
	Value interface{}
	Stack []byte
}

func (pe *PanicError) Error() string {
	if pe.Name == "" {
		return fmt.Sprintf("panicked: %v", pe.Value)
	}
	return fmt.Sprintf("%v panicked: %v", pe.Name, pe.Value)
}

// Format appends the panic stack under the %+v verb.
func (pe *PanicError) Format(f fmt.State, c rune) {
	fmt.Fprint(f, pe.Error())
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\npanic stack: %s", pe.Stack)
	}
}

// Unwrap returns the panic value when it was itself an error.
func (pe *PanicError) Unwrap() error {
	err, _ := pe.Value.(error)
	return err
}

// IsPanic returns true if err records a recovered panic.
func IsPanic(err error) bool {
	var pe *PanicError
	return errors.As(err, &pe)
}
