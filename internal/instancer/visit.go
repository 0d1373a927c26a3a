package instancer

import "github.com/vscfl-lang/frontend/internal/ast"

// The Visit* methods below mirror check_insts_for_expr/
// check_insts_for_pattern in original_source/src/frontend/instancer.rs
// one arm at a time. Panicking through abortSignal on an internal
// error unwinds the whole Accept chain automatically, so unlike the
// Rust source's threaded `?`, no method here needs to check for an
// abort between child visits.

func (c *checker) VisitIntLiteral(*ast.IntLiteral)       {}
func (c *checker) VisitFloatLiteral(*ast.FloatLiteral)   {}
func (c *checker) VisitCharLiteral(*ast.CharLiteral)     {}
func (c *checker) VisitStringLiteral(*ast.StringLiteral) {}

func (c *checker) VisitTupleLiteral(n *ast.TupleLiteral) {
	for _, e := range n.Elements {
		e.Accept(c)
	}
}

func (c *checker) VisitArrayLiteral(n *ast.ArrayLiteral) {
	for _, e := range n.Elements {
		e.Accept(c)
	}
}

func (c *checker) VisitFilledArrayLiteral(n *ast.FilledArrayLiteral) {
	// Count isn't an instantiation site worth checking, the same way
	// Literal::FilledArray(elem_other, _) ignores its second field.
	n.Elem.Accept(c)
}

func (c *checker) VisitLambda(n *ast.Lambda) {
	c.varEnv.Push()
	for _, p := range n.Params {
		c.varEnv.Add(p.Name, struct{}{})
	}
	n.Body.Accept(c)
	c.varEnv.Pop()
}

func (c *checker) VisitVarRef(n *ast.VarRef) {
	if _, bound := c.varEnv.Lookup(n.Ident); bound {
		return
	}
	c.checkIdentUse(n.Ident, n.LocalType(), n.Pos())
}

func (c *checker) VisitConstructorApp(n *ast.ConstructorApp) {
	c.checkIdentUse(n.Ident, n.LocalType(), n.Pos())
	for _, f := range n.Fields {
		f.Accept(c)
	}
}

func (c *checker) VisitConstructorAppNamed(n *ast.ConstructorAppNamed) {
	c.checkIdentUse(n.Ident, n.LocalType(), n.Pos())
	for _, k := range sortedKeys(n.Fields) {
		n.Fields[k].Accept(c)
	}
}

func (c *checker) VisitPrintfCall(n *ast.PrintfCall) {
	for _, a := range n.Args {
		a.Accept(c)
	}
}

func (c *checker) VisitApplication(n *ast.Application) {
	n.Func.Accept(c)
	for _, a := range n.Args {
		a.Accept(c)
	}
}

func (c *checker) VisitFieldAccess(n *ast.FieldAccess) {
	n.Target.Accept(c)
}

func (c *checker) VisitFieldWrite(n *ast.FieldWrite) {
	n.Target.Accept(c)
	n.Value.Accept(c)
}

func (c *checker) VisitFieldUpdate(n *ast.FieldUpdate) {
	n.Target.Accept(c)
	n.Update.Accept(c)
}

func (c *checker) VisitUniqCoercion(n *ast.UniqCoercion) {
	n.Operand.Accept(c)
}

func (c *checker) VisitAscription(n *ast.Ascription) {
	n.Operand.Accept(c)
}

func (c *checker) VisitCast(n *ast.Cast) {
	n.Operand.Accept(c)
}

func (c *checker) VisitIf(n *ast.If) {
	n.Cond.Accept(c)
	n.Then.Accept(c)
	n.Else.Accept(c)
}

func (c *checker) VisitLet(n *ast.Let) {
	c.varEnv.Push()
	n.Value.Accept(c)
	n.Binder.Accept(c)
	n.Body.Accept(c)
	c.varEnv.Pop()
}

func (c *checker) VisitMatch(n *ast.Match) {
	n.Scrutinee.Accept(c)
	for _, arm := range n.Arms {
		c.varEnv.Push()
		arm.Pattern.Accept(c)
		arm.Body.Accept(c)
		c.varEnv.Pop()
	}
}

func (c *checker) VisitLiteralPattern(*ast.LiteralPattern)         {}
func (c *checker) VisitLiteralCastPattern(*ast.LiteralCastPattern) {}
func (c *checker) VisitWildcardPattern(*ast.WildcardPattern)       {}

func (c *checker) VisitConstRefPattern(n *ast.ConstRefPattern) {
	c.checkIdentUse(n.Ident, n.LocalType(), n.Pos())
}

func (c *checker) VisitConstructorPattern(n *ast.ConstructorPattern) {
	c.checkIdentUse(n.Ident, n.LocalType(), n.Pos())
	for _, f := range n.Fields {
		f.Accept(c)
	}
}

func (c *checker) VisitConstructorPatternNamed(n *ast.ConstructorPatternNamed) {
	c.checkIdentUse(n.Ident, n.LocalType(), n.Pos())
	for _, k := range sortedKeys(n.Fields) {
		n.Fields[k].Accept(c)
	}
}

func (c *checker) VisitVarPattern(n *ast.VarPattern) {
	c.varEnv.Add(n.Ident, struct{}{})
}

func (c *checker) VisitAsPattern(n *ast.AsPattern) {
	c.varEnv.Add(n.Ident, struct{}{})
	n.Inner.Accept(c)
}

func (c *checker) VisitAltPattern(n *ast.AltPattern) {
	for _, alt := range n.Alternatives {
		alt.Accept(c)
	}
}

// checkDefs dispatches each of tree.Defs() through Accept; the methods
// below route every variable body, trait member, and impl member to
// checkVariable, and skip data declarations.
func (c *checker) VisitVarDef(n *ast.VarDef)     { c.checkVariable(n.Var) }
func (c *checker) VisitTraitDef(n *ast.TraitDef) {
	for _, m := range n.Members {
		c.checkVariable(m)
	}
}
func (c *checker) VisitImplDef(n *ast.ImplDef) {
	for _, m := range n.Members {
		c.checkVariable(m)
	}
}
func (c *checker) VisitDataDecl(*ast.DataDecl) {}
