package frontend

import (
	"github.com/vscfl-lang/frontend/internal/ast"
	"github.com/vscfl-lang/frontend/internal/localtype"
)

// matchSite is one match expression found somewhere inside a
// definition's body, paired with the local-type table that resolves its
// nodes' Local indices.
type matchSite struct {
	table *localtype.Table
	match *ast.Match
}

// collectMatches walks every function-shaped and plain definition's body
// in tree and returns every match expression found, in a fixed,
// definition-then-depth-first order.
func collectMatches(tree *ast.Tree) []matchSite {
	var out []matchSite
	walkDef := func(v *ast.Variable) {
		if v == nil || v.Init == nil {
			return
		}
		c := &collectorWalker{table: v.LocalTypes, out: &out}
		v.Init.Accept(c)
	}
	for _, def := range tree.Defs() {
		switch d := def.(type) {
		case *ast.VarDef:
			walkDef(d.Var)
		case *ast.TraitDef:
			for _, m := range d.Members {
				walkDef(m)
			}
		case *ast.ImplDef:
			for _, m := range d.Members {
				walkDef(m)
			}
		}
	}
	return out
}

// collectorWalker is a full structural traversal (unlike instancer's and
// recurser's walkers, it carries no extra state beyond the enclosing
// table) whose only job is to record every ast.Match it passes through.
type collectorWalker struct {
	table *localtype.Table
	out   *[]matchSite
}

func (c *collectorWalker) VisitIntLiteral(*ast.IntLiteral)       {}
func (c *collectorWalker) VisitFloatLiteral(*ast.FloatLiteral)   {}
func (c *collectorWalker) VisitCharLiteral(*ast.CharLiteral)     {}
func (c *collectorWalker) VisitStringLiteral(*ast.StringLiteral) {}

func (c *collectorWalker) VisitTupleLiteral(n *ast.TupleLiteral) {
	for _, e := range n.Elements {
		e.Accept(c)
	}
}

func (c *collectorWalker) VisitArrayLiteral(n *ast.ArrayLiteral) {
	for _, e := range n.Elements {
		e.Accept(c)
	}
}

func (c *collectorWalker) VisitFilledArrayLiteral(n *ast.FilledArrayLiteral) {
	n.Elem.Accept(c)
	n.Count.Accept(c)
}

func (c *collectorWalker) VisitLambda(n *ast.Lambda) {
	n.Body.Accept(c)
}

func (c *collectorWalker) VisitVarRef(*ast.VarRef) {}

func (c *collectorWalker) VisitConstructorApp(n *ast.ConstructorApp) {
	for _, f := range n.Fields {
		f.Accept(c)
	}
}

func (c *collectorWalker) VisitConstructorAppNamed(n *ast.ConstructorAppNamed) {
	for _, f := range n.Fields {
		f.Accept(c)
	}
}

func (c *collectorWalker) VisitPrintfCall(n *ast.PrintfCall) {
	for _, a := range n.Args {
		a.Accept(c)
	}
}

func (c *collectorWalker) VisitApplication(n *ast.Application) {
	n.Func.Accept(c)
	for _, a := range n.Args {
		a.Accept(c)
	}
}

func (c *collectorWalker) VisitFieldAccess(n *ast.FieldAccess) { n.Target.Accept(c) }

func (c *collectorWalker) VisitFieldWrite(n *ast.FieldWrite) {
	n.Target.Accept(c)
	n.Value.Accept(c)
}

func (c *collectorWalker) VisitFieldUpdate(n *ast.FieldUpdate) {
	n.Target.Accept(c)
	n.Update.Accept(c)
}

func (c *collectorWalker) VisitUniqCoercion(n *ast.UniqCoercion) { n.Operand.Accept(c) }
func (c *collectorWalker) VisitAscription(n *ast.Ascription)     { n.Operand.Accept(c) }
func (c *collectorWalker) VisitCast(n *ast.Cast)                 { n.Operand.Accept(c) }

func (c *collectorWalker) VisitIf(n *ast.If) {
	n.Cond.Accept(c)
	n.Then.Accept(c)
	n.Else.Accept(c)
}

func (c *collectorWalker) VisitLet(n *ast.Let) {
	n.Value.Accept(c)
	n.Binder.Accept(c)
	n.Body.Accept(c)
}

func (c *collectorWalker) VisitMatch(n *ast.Match) {
	*c.out = append(*c.out, matchSite{table: c.table, match: n})
	n.Scrutinee.Accept(c)
	for _, arm := range n.Arms {
		arm.Pattern.Accept(c)
		arm.Body.Accept(c)
	}
}

func (c *collectorWalker) VisitLiteralPattern(*ast.LiteralPattern)         {}
func (c *collectorWalker) VisitLiteralCastPattern(*ast.LiteralCastPattern) {}
func (c *collectorWalker) VisitWildcardPattern(*ast.WildcardPattern)       {}
func (c *collectorWalker) VisitConstRefPattern(*ast.ConstRefPattern)       {}
func (c *collectorWalker) VisitVarPattern(*ast.VarPattern)                {}

func (c *collectorWalker) VisitAsPattern(n *ast.AsPattern) { n.Inner.Accept(c) }

func (c *collectorWalker) VisitConstructorPattern(n *ast.ConstructorPattern) {
	for _, f := range n.Fields {
		f.Accept(c)
	}
}

func (c *collectorWalker) VisitConstructorPatternNamed(n *ast.ConstructorPatternNamed) {
	for _, f := range n.Fields {
		f.Accept(c)
	}
}

func (c *collectorWalker) VisitAltPattern(n *ast.AltPattern) {
	for _, alt := range n.Alternatives {
		alt.Accept(c)
	}
}

func (c *collectorWalker) VisitVarDef(*ast.VarDef)     {}
func (c *collectorWalker) VisitTraitDef(*ast.TraitDef) {}
func (c *collectorWalker) VisitImplDef(*ast.ImplDef)   {}
func (c *collectorWalker) VisitDataDecl(*ast.DataDecl) {}
