package recurser

import (
	"sort"

	"github.com/vscfl-lang/frontend/internal/ast"
	"github.com/vscfl-lang/frontend/internal/env"
)

// walker descends one function's body tracking whether the node it is
// currently looking at sits in tail position (§4.2), recording a call
// graph edge for every Application whose callee is a tracked
// function-shaped identifier not shadowed by a local binder.
type walker struct {
	b       *builder
	current string
	tail    bool
	env     *env.Environment[struct{}]
}

func (w *walker) at(tail bool, e ast.Expression) {
	prev := w.tail
	w.tail = tail
	e.Accept(w)
	w.tail = prev
}

func (w *walker) VisitIntLiteral(*ast.IntLiteral)       {}
func (w *walker) VisitFloatLiteral(*ast.FloatLiteral)   {}
func (w *walker) VisitCharLiteral(*ast.CharLiteral)     {}
func (w *walker) VisitStringLiteral(*ast.StringLiteral) {}

func (w *walker) VisitTupleLiteral(n *ast.TupleLiteral) {
	for _, e := range n.Elements {
		w.at(false, e)
	}
}

func (w *walker) VisitArrayLiteral(n *ast.ArrayLiteral) {
	for _, e := range n.Elements {
		w.at(false, e)
	}
}

func (w *walker) VisitFilledArrayLiteral(n *ast.FilledArrayLiteral) {
	w.at(false, n.Elem)
	w.at(false, n.Count)
}

func (w *walker) VisitLambda(n *ast.Lambda) {
	w.env.Push()
	for _, p := range n.Params {
		w.env.Add(p.Name, struct{}{})
	}
	w.at(true, n.Body)
	w.env.Pop()
}

func (w *walker) VisitVarRef(*ast.VarRef) {
	// A bare reference to an identifier isn't itself a call; the
	// enclosing Application records the edge.
}

func (w *walker) VisitConstructorApp(n *ast.ConstructorApp) {
	for _, f := range n.Fields {
		w.at(false, f)
	}
}

func (w *walker) VisitConstructorAppNamed(n *ast.ConstructorAppNamed) {
	for _, k := range sortedKeys(n.Fields) {
		w.at(false, n.Fields[k])
	}
}

func (w *walker) VisitPrintfCall(n *ast.PrintfCall) {
	for _, a := range n.Args {
		w.at(false, a)
	}
}

func (w *walker) VisitApplication(n *ast.Application) {
	if ref, ok := n.Func.(*ast.VarRef); ok {
		if _, bound := w.env.Lookup(ref.Ident); !bound {
			w.b.addEdge(w.current, ref.Ident, w.tail, n.Pos())
		}
	}
	w.at(false, n.Func)
	for _, a := range n.Args {
		w.at(false, a)
	}
}

func (w *walker) VisitFieldAccess(n *ast.FieldAccess) {
	w.at(false, n.Target)
}

func (w *walker) VisitFieldWrite(n *ast.FieldWrite) {
	w.at(false, n.Target)
	w.at(false, n.Value)
}

func (w *walker) VisitFieldUpdate(n *ast.FieldUpdate) {
	w.at(false, n.Target)
	w.at(false, n.Update)
}

func (w *walker) VisitUniqCoercion(n *ast.UniqCoercion) {
	w.at(false, n.Operand)
}

func (w *walker) VisitAscription(n *ast.Ascription) {
	w.at(w.tail, n.Operand)
}

func (w *walker) VisitCast(n *ast.Cast) {
	w.at(false, n.Operand)
}

func (w *walker) VisitIf(n *ast.If) {
	w.at(false, n.Cond)
	w.at(w.tail, n.Then)
	w.at(w.tail, n.Else)
}

func (w *walker) VisitLet(n *ast.Let) {
	w.env.Push()
	w.at(false, n.Value)
	n.Binder.Accept(w)
	w.at(w.tail, n.Body)
	w.env.Pop()
}

func (w *walker) VisitMatch(n *ast.Match) {
	w.at(false, n.Scrutinee)
	for _, arm := range n.Arms {
		w.env.Push()
		arm.Pattern.Accept(w)
		w.at(w.tail, arm.Body)
		w.env.Pop()
	}
}

// Patterns carry no nested expressions the call graph cares about, but
// VarPattern/AsPattern/ConstructorPattern binders can still shadow an
// outer function identifier, so binder idents are added to env the same
// way instancer does.
func (w *walker) VisitLiteralPattern(*ast.LiteralPattern)         {}
func (w *walker) VisitLiteralCastPattern(*ast.LiteralCastPattern) {}
func (w *walker) VisitWildcardPattern(*ast.WildcardPattern)       {}
func (w *walker) VisitConstRefPattern(*ast.ConstRefPattern)       {}

func (w *walker) VisitConstructorPattern(n *ast.ConstructorPattern) {
	for _, f := range n.Fields {
		f.Accept(w)
	}
}

func (w *walker) VisitConstructorPatternNamed(n *ast.ConstructorPatternNamed) {
	for _, k := range sortedKeys(n.Fields) {
		n.Fields[k].Accept(w)
	}
}

func (w *walker) VisitVarPattern(n *ast.VarPattern) {
	w.env.Add(n.Ident, struct{}{})
}

func (w *walker) VisitAsPattern(n *ast.AsPattern) {
	w.env.Add(n.Ident, struct{}{})
	n.Inner.Accept(w)
}

func (w *walker) VisitAltPattern(n *ast.AltPattern) {
	for _, alt := range n.Alternatives {
		alt.Accept(w)
	}
}

// Defs are never reached via Accept from this package.
func (w *walker) VisitVarDef(*ast.VarDef)     {}
func (w *walker) VisitTraitDef(*ast.TraitDef) {}
func (w *walker) VisitImplDef(*ast.ImplDef)   {}
func (w *walker) VisitDataDecl(*ast.DataDecl) {}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
