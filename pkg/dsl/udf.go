package dsl

import (
	"tabverb/pkg/dslerr"
	"tabverb/pkg/value"
)

// UDFDef is a user-defined-function definition site (§3, §4.7): name,
// arity, parameter names, a fenced frame template, and a compiled
// top-level statement block.
type UDFDef struct {
	Name          string
	Arity         int
	ParamNames    []string
	frameIsFenced bool // the frame template: always fenced for a UDF call
	Body          *Block
}

// AllocUDF compiles a DefNode into a UDFDef, per §4.7:
//  1. extract parameters and body from the node (already split in DefNode);
//  2. allocate arity and the parameter-name array;
//  3. validate pairwise-distinct parameter names;
//  4. allocate the fenced frame template;
//  5. allocate the top-level block from the node's captured
//     MaxVarDepth/FrameVarCount (asserting they were previously assigned);
//  6. compile each body child, rejecting a value-less return.
//
// Step 3's and step 6's failures are reported as a *dslerr.DSLError rather
// than this package calling os.Exit directly — the caller (the DSL
// compilation driver) is responsible for treating a non-nil error as fatal
// per §7 item 2, printing the diagnostic and exiting nonzero.
func AllocUDF(node *DefNode, reg *Registry) (*UDFDef, error) {
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
		if ret, ok := child.(ReturnNode); ok && ret.Value == nil {
			return nil, dslerr.BareReturnInFunc(node.Name)
		}
	}

	def := &UDFDef{
		Name:          node.Name,
		Arity:         len(node.Params),
		ParamNames:    append([]string(nil), node.Params...),
		frameIsFenced: true,
		Body:          compileBlock(node.Body, node.MaxVarDepth, node.FrameVarCount, reg),
	}
	return def, nil
}

// Invoke is the process_callback contract of §4.7 step "Invocation":
//  1. push a fresh fenced frame;
//  2. bind each parameter to its argument;
//  3. set retval = absent;
//  4. execute the top-level block, capturing return_state on early return;
//  5. pop the frame;
//  6. return retval (absent if the body fell off the end without
//     returning).
//
// Functions never emit records: the Outputs passed to inner handlers is
// nil. Invoke assumes len(args) == Arity, matching the function manager's
// caller-side arity-checking contract (§8 scenario 5) — the interpreter
// itself does not re-validate arity on every call.
func (d *UDFDef) Invoke(args []value.Value, reg *Registry) value.Value {
	vars := NewVars()
	return d.CallFrom(vars, args, reg)
}

// CallFrom is the re-entrant call path: it pushes/pops a frame on vars'
// existing bind stack rather than allocating a new stack, so a recursive
// call (a function calling itself from within its own body) re-enters with
// isolated locals while bind-stack depth after return equals depth before
// the call. Invoke uses this too, via a fresh Vars.
func (d *UDFDef) CallFrom(vars *Vars, args []value.Value, reg *Registry) value.Value {
	vars.Binds.Push(d.frameIsFenced)
	for i := 0; i < d.Arity && i < len(args); i++ {
		vars.Binds.Set(d.ParamNames[i], args[i])
	}

	retval := value.Absent()
	d.Body.Execute(vars, nil)
	if vars.Returns.Returned {
		retval = vars.Returns.Value
		vars.Returns.Reset()
	}

	vars.Binds.Pop()
	return retval
}
