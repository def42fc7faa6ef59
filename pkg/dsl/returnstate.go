package dsl

import "tabverb/pkg/value"

// ReturnState captures early-return from a UDF or subroutine body. The
// invariant holds: when Returned is false, Value is value.Absent().
type ReturnState struct {
	Returned bool
	Value    value.Value
}

// NewReturnState returns a ReturnState at rest.
func NewReturnState() *ReturnState {
	return &ReturnState{Value: value.Absent()}
}

// Set marks a return in flight carrying v (value.Absent() for a value-less
// return from a subroutine).
func (r *ReturnState) Set(v value.Value) {
	r.Returned = true
	r.Value = v
}

// Reset restores the at-rest invariant, called once a UDF/subroutine
// invocation has captured the returned value.
func (r *ReturnState) Reset() {
	r.Returned = false
	r.Value = value.Absent()
}
