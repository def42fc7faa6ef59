package dsl

import (
	"testing"

	"tabverb/pkg/value"
)

// def f(x,y) { return x + y*2; }
func buildAddMulDef() *DefNode {
	return &DefNode{
		Name:   "f",
		Params: []string{"x", "y"},
		Body: []StmtNode{
			ReturnNode{Value: BinOpNode{
				Op: '+',
				L:  ParamNode{Name: "x"},
				R:  BinOpNode{Op: '*', L: ParamNode{Name: "y"}, R: LitNode{Value: value.Int(2)}},
			}},
		},
		MaxVarDepth:   1,
		FrameVarCount: 2,
	}
}

func TestUDFInvocationReturnsExpectedValue(t *testing.T) {
	reg := NewRegistry()
	def, err := AllocUDF(buildAddMulDef(), reg)
	if err != nil {
		t.Fatalf("AllocUDF: %v", err)
	}
	reg.RegisterUDF(def)

	got := def.Invoke([]value.Value{value.Int(3), value.Int(4)}, reg)
	f, ok := got.AsFloat()
	if !ok || f != 11 {
		t.Fatalf("got %v, want 11", got)
	}
}

func TestUDFInvocationResetsReturnState(t *testing.T) {
	reg := NewRegistry()
	def, err := AllocUDF(buildAddMulDef(), reg)
	if err != nil {
		t.Fatalf("AllocUDF: %v", err)
	}
	reg.RegisterUDF(def)

	vars := NewVars()
	def.CallFrom(vars, []value.Value{value.Int(1), value.Int(1)}, reg)

	if vars.Returns.Returned {
		t.Fatal("expected Returned to be false after invocation")
	}
	if !vars.Returns.Value.IsAbsent() {
		t.Fatalf("expected Value to be absent after invocation, got %v", vars.Returns.Value)
	}
}

func TestUDFInvocationPreservesBindStackDepth(t *testing.T) {
	reg := NewRegistry()
	def, err := AllocUDF(buildAddMulDef(), reg)
	if err != nil {
		t.Fatalf("AllocUDF: %v", err)
	}
	reg.RegisterUDF(def)

	vars := NewVars()
	before := vars.Binds.Depth()
	def.CallFrom(vars, []value.Value{value.Int(1), value.Int(1)}, reg)

	if vars.Binds.Depth() != before {
		t.Fatalf("got depth %d, want %d", vars.Binds.Depth(), before)
	}
}

func TestUDFFallsOffEndReturnsAbsent(t *testing.T) {
	node := &DefNode{
		Name:          "noop",
		Params:        nil,
		Body:          []StmtNode{LocalAssignNode{Name: "a", Value: LitNode{Value: value.Int(1)}}},
		MaxVarDepth:   1,
		FrameVarCount: 1,
	}
	reg := NewRegistry()
	def, err := AllocUDF(node, reg)
	if err != nil {
		t.Fatalf("AllocUDF: %v", err)
	}

	got := def.Invoke(nil, reg)
	if !got.IsAbsent() {
		t.Fatalf("got %v, want absent", got)
	}
}

func TestUDFZeroParametersIsLegal(t *testing.T) {
	node := &DefNode{
		Name:          "zero",
		Body:          []StmtNode{ReturnNode{Value: LitNode{Value: value.Int(42)}}},
		MaxVarDepth:   0,
		FrameVarCount: 0,
	}
	reg := NewRegistry()
	def, err := AllocUDF(node, reg)
	if err != nil {
		t.Fatalf("AllocUDF: %v", err)
	}
	got := def.Invoke(nil, reg)
	if f, _ := got.AsFloat(); f != 42 {
		t.Fatalf("got %v, want 42", got)
	}
}

// def g(x,x) { return x; } must fail compilation with a duplicate
// parameter diagnostic.
func TestDuplicateParameterNameFailsCompilation(t *testing.T) {
	node := &DefNode{
		Name:          "g",
		Params:        []string{"x", "x"},
		Body:          []StmtNode{ReturnNode{Value: ParamNode{Name: "x"}}},
		MaxVarDepth:   1,
		FrameVarCount: 1,
	}
	reg := NewRegistry()
	_, err := AllocUDF(node, reg)
	if err == nil {
		t.Fatal("expected duplicate parameter name to fail compilation")
	}
}

func TestBareReturnInUDFFailsCompilation(t *testing.T) {
	node := &DefNode{
		Name:          "h",
		Params:        nil,
		Body:          []StmtNode{ReturnNode{Value: nil}},
		MaxVarDepth:   0,
		FrameVarCount: 0,
	}
	reg := NewRegistry()
	_, err := AllocUDF(node, reg)
	if err == nil {
		t.Fatal("expected value-less return in a UDF body to fail compilation")
	}
}

func TestUnassignedAnnotationIsInternalCodingError(t *testing.T) {
	node := &DefNode{
		Name:          "bad",
		MaxVarDepth:   UnusedIndex,
		FrameVarCount: UnusedIndex,
	}
	reg := NewRegistry()
	_, err := AllocUDF(node, reg)
	if err == nil {
		t.Fatal("expected unassigned MaxVarDepth/FrameVarCount to fail compilation")
	}
}

func TestNestedUDFCallUnwindsBindStack(t *testing.T) {
	// def fact(n) { if ... } is beyond our minimal AST (no conditionals),
	// and def countdown(n) { return n + countdown(n); } would recurse
	// forever, so a terminating self-call cannot be built here. Instead
	// this has one UDF call another from inside its body and verifies that
	// the nested call resolves and that the bind stack unwinds correctly
	// through both invocations.
	reg := NewRegistry()
	node := &DefNode{
		Name:   "identity",
		Params: []string{"n"},
		Body: []StmtNode{
			ReturnNode{Value: ParamNode{Name: "n"}},
		},
		MaxVarDepth:   1,
		FrameVarCount: 1,
	}
	def, err := AllocUDF(node, reg)
	if err != nil {
		t.Fatalf("AllocUDF: %v", err)
	}
	reg.RegisterUDF(def)

	caller := &DefNode{
		Name:   "caller",
		Params: []string{"n"},
		Body: []StmtNode{
			ReturnNode{Value: CallExprNode{Name: "identity", Args: []ExprNode{ParamNode{Name: "n"}}}},
		},
		MaxVarDepth:   1,
		FrameVarCount: 1,
	}
	callerDef, err := AllocUDF(caller, reg)
	if err != nil {
		t.Fatalf("AllocUDF: %v", err)
	}
	reg.RegisterUDF(callerDef)

	vars := NewVars()
	before := vars.Binds.Depth()
	got := callerDef.CallFrom(vars, []value.Value{value.Int(7)}, reg)
	if f, _ := got.AsFloat(); f != 7 {
		t.Fatalf("got %v, want 7", got)
	}
	if vars.Binds.Depth() != before {
		t.Fatalf("got depth %d, want %d after nested call", vars.Binds.Depth(), before)
	}
}
