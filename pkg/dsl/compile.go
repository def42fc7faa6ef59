package dsl

import "tabverb/pkg/value"

// compileStmt compiles one body-level AST statement node into a Statement
// carrying a handler closure, per §4.6/§4.7 step 6. The value-less-return-
// in-UDF and value-returning-return-in-subroutine checks happen one level
// up, in AllocUDF/AllocSubroutine's loop over body children — mirroring the
// original's own body-child loop rather than a recursive per-node check.
func compileStmt(node StmtNode, reg *Registry) *Statement {
	switch n := node.(type) {
	case ReturnNode:
		return &Statement{handler: func(vars *Vars, outputs *Outputs) {
			if n.Value == nil {
				vars.Returns.Set(value.Absent())
				return
			}
			vars.Returns.Set(evalExpr(n.Value, vars, reg))
		}}

	case LocalAssignNode:
		return &Statement{handler: func(vars *Vars, outputs *Outputs) {
			vars.Binds.Set(n.Name, evalExpr(n.Value, vars, reg))
		}}

	case FieldAssignNode:
		return &Statement{handler: func(vars *Vars, outputs *Outputs) {
			if vars.Record == nil {
				return
			}
			vars.Record.Put(n.Field, evalExpr(n.Value, vars, reg).String())
		}}

	case EmitNode:
		return &Statement{handler: func(vars *Vars, outputs *Outputs) {
			if outputs == nil {
				return
			}
			outputs.Emitted = append(outputs.Emitted, evalExpr(n.Value, vars, reg))
		}}

	case CallStmtNode:
		return &Statement{handler: func(vars *Vars, outputs *Outputs) {
			def, ok := reg.LookupSubr(n.Name)
			if !ok {
				return
			}
			args := evalArgs(n.Args, vars, reg)
			def.Execute(args, vars, outputs, reg)
		}}

	default:
		return &Statement{handler: func(vars *Vars, outputs *Outputs) {}}
	}
}

// compileBlock compiles an ordered list of body statements into a Block,
// reusing the AST node's captured MaxVarDepth/FrameVarCount.
func compileBlock(nodes []StmtNode, maxVarDepth, frameVarCount int, reg *Registry) *Block {
	b := &Block{
		Statements:    make([]*Statement, 0, len(nodes)),
		MaxVarDepth:   maxVarDepth,
		FrameVarCount: frameVarCount,
	}
	for _, node := range nodes {
		b.Statements = append(b.Statements, compileStmt(node, reg))
	}
	return b
}
