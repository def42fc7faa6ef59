package dsl

import (
	"testing"

	"tabverb/pkg/value"
)

func TestValueReturningReturnInSubroutineFailsCompilation(t *testing.T) {
	node := &SubrNode{
		Name:          "s",
		Params:        []string{"x"},
		Body:          []StmtNode{ReturnNode{Value: ParamNode{Name: "x"}}},
		MaxVarDepth:   1,
		FrameVarCount: 1,
	}
	reg := NewRegistry()
	_, err := AllocSubroutine(node, reg)
	if err == nil {
		t.Fatal("expected value-returning return in a subroutine body to fail compilation")
	}
}

func TestBareReturnInSubroutineCompiles(t *testing.T) {
	node := &SubrNode{
		Name:          "s",
		Params:        nil,
		Body:          []StmtNode{ReturnNode{Value: nil}},
		MaxVarDepth:   0,
		FrameVarCount: 0,
	}
	reg := NewRegistry()
	_, err := AllocSubroutine(node, reg)
	if err != nil {
		t.Fatalf("AllocSubroutine: %v", err)
	}
}

func TestSubroutineEmitsToOutputs(t *testing.T) {
	node := &SubrNode{
		Name:   "emitter",
		Params: []string{"x"},
		Body: []StmtNode{
			EmitNode{Value: ParamNode{Name: "x"}},
		},
		MaxVarDepth:   1,
		FrameVarCount: 1,
	}
	reg := NewRegistry()
	def, err := AllocSubroutine(node, reg)
	if err != nil {
		t.Fatalf("AllocSubroutine: %v", err)
	}
	reg.RegisterSubr(def)

	vars := NewVars()
	outputs := &Outputs{}
	def.Execute([]value.Value{value.Int(5)}, vars, outputs, reg)

	if len(outputs.Emitted) != 1 {
		t.Fatalf("got %d emitted values, want 1", len(outputs.Emitted))
	}
	if f, _ := outputs.Emitted[0].AsFloat(); f != 5 {
		t.Fatalf("got %v, want 5", outputs.Emitted[0])
	}
}

func TestSubroutineExecuteResetsReturnStateWithoutCapturingValue(t *testing.T) {
	node := &SubrNode{
		Name:          "early",
		Params:        nil,
		Body:          []StmtNode{ReturnNode{Value: nil}, EmitNode{Value: LitNode{Value: value.Int(1)}}},
		MaxVarDepth:   0,
		FrameVarCount: 0,
	}
	reg := NewRegistry()
	def, err := AllocSubroutine(node, reg)
	if err != nil {
		t.Fatalf("AllocSubroutine: %v", err)
	}

	vars := NewVars()
	outputs := &Outputs{}
	def.Execute(nil, vars, outputs, reg)

	if vars.Returns.Returned {
		t.Fatal("expected Returned to be false after Execute")
	}
	if !vars.Returns.Value.IsAbsent() {
		t.Fatalf("expected no value captured from a bare return, got %v", vars.Returns.Value)
	}
	// The early return must have short-circuited the block: the emit
	// statement after it never ran.
	if len(outputs.Emitted) != 0 {
		t.Fatalf("got %d emitted values, want 0 (early return should short-circuit)", len(outputs.Emitted))
	}
}

func TestSubroutineExecutePreservesBindStackDepth(t *testing.T) {
	node := &SubrNode{
		Name:          "s",
		Params:        []string{"x"},
		Body:          []StmtNode{EmitNode{Value: ParamNode{Name: "x"}}},
		MaxVarDepth:   1,
		FrameVarCount: 1,
	}
	reg := NewRegistry()
	def, err := AllocSubroutine(node, reg)
	if err != nil {
		t.Fatalf("AllocSubroutine: %v", err)
	}

	vars := NewVars()
	before := vars.Binds.Depth()
	def.Execute([]value.Value{value.Int(1)}, vars, &Outputs{}, reg)

	if vars.Binds.Depth() != before {
		t.Fatalf("got depth %d, want %d", vars.Binds.Depth(), before)
	}
}

func TestDuplicateParameterNameFailsSubroutineCompilation(t *testing.T) {
	node := &SubrNode{
		Name:          "s",
		Params:        []string{"x", "x"},
		Body:          nil,
		MaxVarDepth:   1,
		FrameVarCount: 1,
	}
	reg := NewRegistry()
	_, err := AllocSubroutine(node, reg)
	if err == nil {
		t.Fatal("expected duplicate parameter name to fail subroutine compilation")
	}
}
