package dsl

import "tabverb/pkg/value"

// UnusedIndex is the sentinel for an AST annotation that has not yet been
// assigned by the (out-of-scope) AST-side pass. alloc_udf/alloc_subroutine
// treat it as an internal-coding error if still present at compile time.
const UnusedIndex = -1

// DefNode is the minimal shape of a `def` AST node this interpreter
// compiles: enough to drive UDF compilation and invocation (§4.7) without
// committing to a full grammar or parser. Nodes are built directly in Go,
// not parsed from DSL source text.
type DefNode struct {
	Name          string
	Params        []string
	Body          []StmtNode
	MaxVarDepth   int
	FrameVarCount int
}

// SubrNode is the subroutine counterpart of DefNode (§4.8): identical
// shape, different compile-time contract on `return`.
type SubrNode struct {
	Name          string
	Params        []string
	Body          []StmtNode
	MaxVarDepth   int
	FrameVarCount int
}

// StmtNode is the sum type of statement-level AST nodes this interpreter
// supports.
type StmtNode interface {
	isStmtNode()
}

// ReturnNode is `return <expr>;` (Value non-nil) or value-less `return;`
// (Value nil).
type ReturnNode struct {
	Value ExprNode
}

func (ReturnNode) isStmtNode() {}

// LocalAssignNode is `var name = expr;` binding into the current frame.
type LocalAssignNode struct {
	Name  string
	Value ExprNode
}

func (LocalAssignNode) isStmtNode() {}

// FieldAssignNode is `$field = expr;`, writing through to the record the
// current evaluation is bound to (vars.Record). It is a no-op if no record
// is bound, which is the case for UDF/subroutine bodies invoked outside a
// per-record verb context.
type FieldAssignNode struct {
	Field string
	Value ExprNode
}

func (FieldAssignNode) isStmtNode() {}

// EmitNode is a subroutine-only statement appending a value to Outputs.
type EmitNode struct {
	Value ExprNode
}

func (EmitNode) isStmtNode() {}

// CallStmtNode invokes a subroutine for its side effect, discarding any
// emitted outputs' relevance to the caller's own statement result.
type CallStmtNode struct {
	Name string
	Args []ExprNode
}

func (CallStmtNode) isStmtNode() {}

// ExprNode is the sum type of expression-level AST nodes.
type ExprNode interface {
	isExprNode()
}

// LitNode is a literal mv value.
type LitNode struct {
	Value value.Value
}

func (LitNode) isExprNode() {}

// ParamNode references a bound parameter or local variable by name. The
// interpreter does not distinguish parameters from `var`-declared locals at
// lookup time — both resolve through the same bind stack frame.
type ParamNode struct {
	Name string
}

func (ParamNode) isExprNode() {}

// BinOpNode is a binary operator application. Op is '+' or '*', the two
// operators the spec's illustrated UDF example exercises.
type BinOpNode struct {
	Op byte
	L  ExprNode
	R  ExprNode
}

func (BinOpNode) isExprNode() {}

// CallExprNode invokes a UDF for its return value.
type CallExprNode struct {
	Name string
	Args []ExprNode
}

func (CallExprNode) isExprNode() {}
