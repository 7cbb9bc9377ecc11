package main

import (
	"errors"
	"fmt"
)

// Evaluation faults.
var (
	ErrStackUnderflow  = errors.New("stack underflow")
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrUnresolvedWord  = errors.New("not found")
	ErrIndexRange      = errors.New("index out of range")
	ErrUnbalancedQuote = errors.New("unbalanced quotation")
	ErrDepthExceeded   = errors.New("quotation depth exceeded")
)

// UnderflowError reports an operation that needed more stack values than
// were available.
type UnderflowError struct {
	Op   string
	Need int
	Have int
}

func (err UnderflowError) Error() string {
	return fmt.Sprintf("%v: %v: need %v, have %v", err.Op, ErrStackUnderflow, err.Need, err.Have)
}
func (err UnderflowError) Unwrap() error { return ErrStackUnderflow }

// TypeError reports an operand of the wrong kind.
type TypeError struct {
	Op   string
	Want Kind
	Got  Value
}

func (err TypeError) Error() string {
	return fmt.Sprintf("%v: %v: want %v, got %v %v", err.Op, ErrTypeMismatch, err.Want, err.Got.Kind(), err.Got)
}
func (err TypeError) Unwrap() error { return ErrTypeMismatch }

// WordError reports a word with no environment binding.
type WordError string

func (err WordError) Error() string { return fmt.Sprintf("%v %v", string(err), ErrUnresolvedWord) }
func (err WordError) Unwrap() error { return ErrUnresolvedWord }

// IndexError reports a vector access outside its bounds.
type IndexError struct {
	Op    string
	Index Int
	Len   int
}

func (err IndexError) Error() string {
	return fmt.Sprintf("%v: %v: %v not in [0, %v)", err.Op, ErrIndexRange, err.Index, err.Len)
}
func (err IndexError) Unwrap() error { return ErrIndexRange }

type quoteError string

func (marker quoteError) Error() string {
	return fmt.Sprintf("%v: unmatched %v", ErrUnbalancedQuote, string(marker))
}
func (marker quoteError) Unwrap() error { return ErrUnbalancedQuote }

// FaultPolicy decides whether soft faults abort evaluation.
type FaultPolicy int

// Fault policies.
const (
	// Forgiving reports soft faults and continues with the next value.
	Forgiving FaultPolicy = iota
	// Strict aborts evaluation on any fault.
	Strict
)

func (pol FaultPolicy) String() string {
	switch pol {
	case Forgiving:
		return "forgiving"
	case Strict:
		return "strict"
	default:
		return fmt.Sprintf("FaultPolicy(%d)", int(pol))
	}
}

// isSoft reports whether err may be skipped under the Forgiving policy.
// Underflow, depth exhaustion, cancellation and unknown errors are always
// fatal.
func isSoft(err error) bool {
	return errors.Is(err, ErrUnresolvedWord) ||
		errors.Is(err, ErrTypeMismatch) ||
		errors.Is(err, ErrIndexRange) ||
		errors.Is(err, ErrUnbalancedQuote)
}
