package dsl

import "tabverb/pkg/value"

// evalExpr evaluates an expression AST node against the current bind stack.
// It never panics on malformed input: a name that is not bound yields the
// absent value, while a call to an undefined function, an unsupported node
// or operator, or a type mismatch yields an mv error value, per §7 item 3
// ("DSL runtime value errors: represented as an error tagged value").
func evalExpr(node ExprNode, vars *Vars, reg *Registry) value.Value {
	switch n := node.(type) {
	case LitNode:
		return n.Value

	case ParamNode:
		v, ok := vars.Binds.Get(n.Name)
		if !ok {
			return value.Absent()
		}
		return v

	case BinOpNode:
		l := evalExpr(n.L, vars, reg)
		r := evalExpr(n.R, vars, reg)
		switch n.Op {
		case '+':
			return value.Add(l, r)
		case '*':
			return value.Mul(l, r)
		default:
			return value.Error("unsupported operator")
		}

	case CallExprNode:
		def, ok := reg.LookupUDF(n.Name)
		if !ok {
			return value.Error("call to undefined function " + n.Name)
		}
		args := evalArgs(n.Args, vars, reg)
		return def.CallFrom(vars, args, reg)

	default:
		return value.Error("unsupported expression node")
	}
}

func evalArgs(nodes []ExprNode, vars *Vars, reg *Registry) []value.Value {
	args := make([]value.Value, len(nodes))
	for i, n := range nodes {
		args[i] = evalExpr(n, vars, reg)
	}
	return args
}
