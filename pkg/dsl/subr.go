package dsl

import (
	"tabverb/pkg/dslerr"
	"tabverb/pkg/value"
)

// SubrDef is a subroutine definition site (§3, §4.8): identical shape to
// UDFDef, but produces no value and may write to Outputs.
type SubrDef struct {
	Name          string
	Arity         int
	ParamNames    []string
	frameIsFenced bool
	Body          *Block
}

// AllocSubroutine compiles a SubrNode into a SubrDef. It mirrors AllocUDF
// except the rejected shape is the opposite: a value-returning return
// inside a subroutine body is the compile-time error (§4.8).
func AllocSubroutine(node *SubrNode, reg *Registry) (*SubrDef, error) {
	if node.MaxVarDepth == UnusedIndex || node.FrameVarCount == UnusedIndex {
		return nil, dslerr.UnassignedAnnotation(node.Name)
	}

	seen := make(map[string]struct{}, len(node.Params))
	for _, p := range node.Params {
		if _, dup := seen[p]; dup {
			return nil, dslerr.DuplicateParameter(node.Name, p)
		}
		seen[p] = struct{}{}
	}

	for _, child := range node.Body {
		if ret, ok := child.(ReturnNode); ok && ret.Value != nil {
			return nil, dslerr.ValueReturnInSubr(node.Name)
		}
	}

	def := &SubrDef{
		Name:          node.Name,
		Arity:         len(node.Params),
		ParamNames:    append([]string(nil), node.Params...),
		frameIsFenced: true,
		Body:          compileBlock(node.Body, node.MaxVarDepth, node.FrameVarCount, reg),
	}
	return def, nil
}

// Execute is §4.8's subroutine invocation: push a fenced frame, bind
// parameters, run the body (writing any emissions to outputs), reset
// return_state on early exit with no value captured, pop the frame.
func (d *SubrDef) Execute(args []value.Value, vars *Vars, outputs *Outputs, reg *Registry) {
	vars.Binds.Push(d.frameIsFenced)
	for i := 0; i < d.Arity && i < len(args); i++ {
		vars.Binds.Set(d.ParamNames[i], args[i])
	}

	d.Body.Execute(vars, outputs)
	if vars.Returns.Returned {
		vars.Returns.Reset()
	}

	vars.Binds.Pop()
}
