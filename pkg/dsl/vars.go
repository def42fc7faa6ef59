package dsl

import (
	"tabverb/pkg/record"
	"tabverb/pkg/value"
)

// Vars bundles the per-evaluation control-flow scratchpad threaded through
// statement execution: the bind stack, the loop stack, and the return
// state. One Vars is created per top-level DSL evaluation (e.g. per
// record); recursive UDF/subroutine calls push and pop frames on its single
// BindStack rather than allocating a new Vars.
type Vars struct {
	Binds   *BindStack
	Loops   *LoopStack
	Returns *ReturnState
	// Record is the record the current evaluation is bound to, or nil for
	// a UDF/subroutine invocation with no enclosing per-record context
	// (e.g. a standalone function-call test).
	Record *record.Record
}

// NewVars returns a fresh Vars with empty stacks, ready for top-level
// statement execution.
func NewVars() *Vars {
	return &Vars{
		Binds:   NewBindStack(),
		Loops:   NewLoopStack(),
		Returns: NewReturnState(),
	}
}

// Outputs is the side-channel a subroutine body writes emitted values to
// via an EmitNode. UDF bodies never receive a non-nil Outputs: functions
// only produce a value through return.
type Outputs struct {
	Emitted []value.Value
}
