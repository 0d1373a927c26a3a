package frontend

import (
	"testing"

	"github.com/vscfl-lang/frontend/internal/ast"
	"github.com/vscfl-lang/frontend/internal/config"
	"github.com/vscfl-lang/frontend/internal/diag"
	"github.com/vscfl-lang/frontend/internal/localtype"
	"github.com/vscfl-lang/frontend/internal/token"
)

func call(ident string, args ...ast.Expression) *ast.Application {
	return &ast.Application{Func: &ast.VarRef{Ident: ident}, Args: args}
}

func function(ident string, params []ast.Param, body ast.Expression) *ast.Variable {
	return &ast.Variable{Ident: ident, Kind: ast.FunctionVariable, Init: &ast.Lambda{Params: params, Body: body}}
}

// S1: built-in Int arithmetic with a matching impl has no errors from
// any pass.
func TestCheckAcceptsBuiltinArithmetic(t *testing.T) {
	table := localtype.NewTable()
	table.Set(0, localtype.TypeEntry{Value: localtype.ConcreteType{Con: localtype.FuncCon, Args: []localtype.LocalType{1, 1, 1}}})
	table.Set(1, localtype.TypeEntry{Value: localtype.ConcreteType{Con: "Int"}})

	opAdd := &ast.Variable{Ident: "op_add", Kind: ast.BuiltinVariable, Builtin: true}
	a := &ast.Variable{
		Ident: "a", Kind: ast.PlainVariable, LocalTypes: table,
		Init: &ast.Application{
			ExprBase: ast.ExprBase{Local: 1},
			Func:     &ast.VarRef{ExprBase: ast.ExprBase{Local: 0}, Ident: "op_add"},
			Args:     []ast.Expression{&ast.IntLiteral{Value: 1}, &ast.IntLiteral{Value: 2}},
		},
	}

	tree := ast.NewTree()
	tree.AddDef(&ast.ImplDef{TargetType: "Int", TraitIdent: "OpAdd", Members: []*ast.Variable{opAdd}})
	tree.AddDef(&ast.VarDef{Var: a})

	errs := Check(tree)
	if len(errs) != 0 {
		t.Fatalf("Check() = %v, want no errors", errs)
	}
}

// S2: a Zero trait with no concrete instance in scope fails the
// instance check; Check still runs through without panicking even
// though the recursion/exhaustiveness passes never see a Match.
func TestCheckRejectsMissingInstanceOnBuiltin(t *testing.T) {
	table := localtype.NewTable()
	table.Set(0, localtype.TypeEntry{Value: localtype.ConcreteType{Con: localtype.FuncCon, Args: []localtype.LocalType{1}}})
	table.Set(1, localtype.ParamEntry{Defined: localtype.Undefined, Vars: localtype.ParamVars{TraitNames: map[config.TraitName]bool{"Zero": true}}})

	pos := token.Pos{Path: "test.vx", Line: 7, Column: 13}
	zeroCall := &ast.Application{
		ExprBase: ast.ExprBase{Position: pos, Local: 1},
		Func:     &ast.VarRef{ExprBase: ast.ExprBase{Position: pos, Local: 0}, Ident: "zero"},
	}
	letExpr := &ast.Let{Binder: &ast.WildcardPattern{}, Value: zeroCall, Body: &ast.IntLiteral{Value: 1}}
	zero := &ast.Variable{Ident: "zero", Kind: ast.BuiltinVariable, Builtin: true}
	a := &ast.Variable{Ident: "a", Kind: ast.PlainVariable, Init: letExpr, LocalTypes: table}

	tree := ast.NewTree()
	tree.AddDef(&ast.TraitDef{TraitIdent: "Zero", Members: []*ast.Variable{zero}})
	tree.AddDef(&ast.VarDef{Var: a})

	errs := Check(tree)
	if len(errs) != 1 {
		t.Fatalf("Check() = %v, want exactly 1 error", errs)
	}
	msg, ok := errs[0].(*diag.MessageError)
	if !ok {
		t.Fatalf("errs[0] = %T, want *diag.MessageError", errs[0])
	}
	want := "no instance of built-in variable zero with type () -> t2 with traits"
	if msg.Text != want {
		t.Fatalf("msg.Text = %q, want %q", msg.Text, want)
	}
}

// S4: f recurses only through each match arm's body, every one of which
// is tail-preserving, so the recursion pass accepts it; the match
// itself is exhaustive over its three-constructor scrutinee type, so
// the exhaustiveness pass reports nothing either.
func TestCheckAcceptsTailRecursionThroughMatchAndExhaustiveArms(t *testing.T) {
	table := localtype.NewTable()
	table.Set(0, localtype.TypeEntry{Value: localtype.ConcreteType{Con: "T"}})

	body := &ast.Match{
		Scrutinee: &ast.VarRef{ExprBase: ast.ExprBase{Local: 0}, Ident: "x"},
		Arms: []ast.MatchArm{
			{Pattern: &ast.ConstructorPattern{Ident: "C"}, Body: call("f", &ast.ConstructorApp{Ident: "D"}, call("op_add", &ast.VarRef{Ident: "y"}, &ast.IntLiteral{Value: 1}))},
			{Pattern: &ast.ConstructorPattern{Ident: "D"}, Body: call("f", &ast.ConstructorApp{Ident: "E"}, call("op_add", &ast.VarRef{Ident: "y"}, &ast.IntLiteral{Value: 1}))},
			{Pattern: &ast.ConstructorPattern{Ident: "E"}, Body: &ast.VarRef{Ident: "y"}},
		},
	}
	f := function("f", []ast.Param{{Name: "x"}, {Name: "y"}}, body)
	f.LocalTypes = table

	tree := ast.NewTree()
	tree.AddDef(&ast.DataDecl{TypeIdent: "T", Constructors: []ast.ConstructorSig{{Ident: "C"}, {Ident: "D"}, {Ident: "E"}}})
	tree.AddDef(&ast.VarDef{Var: f})

	errs := Check(tree)
	if len(errs) != 0 {
		t.Fatalf("Check() = %v, want no errors", errs)
	}
}

// S5: f calls itself as an operand of g's argument list, a non-tail
// position, so the recursion pass reports exactly one error; the
// instance and exhaustiveness passes, with nothing to flag, stay
// silent.
func TestCheckRejectsNonTailRecursionInApplicationOperand(t *testing.T) {
	table := localtype.NewTable()
	table.Set(0, localtype.TypeEntry{Value: localtype.ConcreteType{Con: "Int"}})

	pos := token.Pos{Path: "test.vx", Line: 1, Column: 9}
	innerCall := &ast.Application{ExprBase: ast.ExprBase{Position: pos}, Func: &ast.VarRef{Ident: "f"}}
	g := function("g", []ast.Param{{Name: "x"}}, &ast.VarRef{Ident: "x"})
	g.LocalTypes = table
	fBody := call("g", innerCall)
	f := function("f", nil, fBody)
	f.LocalTypes = table

	tree := ast.NewTree()
	tree.AddDef(&ast.VarDef{Var: f})
	tree.AddDef(&ast.VarDef{Var: g})

	errs := Check(tree)
	if len(errs) != 1 {
		t.Fatalf("Check() = %v, want exactly 1 error", errs)
	}
	msg, ok := errs[0].(*diag.MessageError)
	if !ok {
		t.Fatalf("errs[0] = %T, want *diag.MessageError", errs[0])
	}
	want := "recursive function f can use only tail recursion"
	if msg.Text != want {
		t.Fatalf("msg.Text = %q, want %q", msg.Text, want)
	}
}

// A match missing one of its scrutinee type's constructors is reported
// non-exhaustive by the exhaustiveness pass.
func TestCheckRejectsNonExhaustiveMatch(t *testing.T) {
	table := localtype.NewTable()
	table.Set(0, localtype.TypeEntry{Value: localtype.ConcreteType{Con: "Bool2"}})

	body := &ast.Match{
		Scrutinee: &ast.VarRef{ExprBase: ast.ExprBase{Local: 0}, Ident: "x"},
		Arms: []ast.MatchArm{
			{Pattern: &ast.ConstructorPattern{Ident: "T"}, Body: &ast.IntLiteral{Value: 1}},
		},
	}
	a := &ast.Variable{Ident: "a", Kind: ast.PlainVariable, Init: body, LocalTypes: table}

	tree := ast.NewTree()
	tree.AddDef(&ast.DataDecl{TypeIdent: "Bool2", Constructors: []ast.ConstructorSig{{Ident: "T"}, {Ident: "F"}}})
	tree.AddDef(&ast.VarDef{Var: a})

	errs := Check(tree)
	if len(errs) != 1 {
		t.Fatalf("Check() = %v, want exactly 1 error", errs)
	}
	msg, ok := errs[0].(*diag.MessageError)
	if !ok {
		t.Fatalf("errs[0] = %T, want *diag.MessageError", errs[0])
	}
	want := "match is not exhaustive: not all cases of Bool2 are covered"
	if msg.Text != want {
		t.Fatalf("msg.Text = %q, want %q", msg.Text, want)
	}
}

// A match whose second arm repeats the first arm's wildcard coverage is
// reported unreachable.
func TestCheckRejectsUnreachableMatchArm(t *testing.T) {
	table := localtype.NewTable()
	table.Set(0, localtype.TypeEntry{Value: localtype.ConcreteType{Con: "Bool2"}})

	pos := token.Pos{Path: "test.vx", Line: 3, Column: 5}
	body := &ast.Match{
		Scrutinee: &ast.VarRef{ExprBase: ast.ExprBase{Local: 0}, Ident: "x"},
		Arms: []ast.MatchArm{
			{Pattern: &ast.WildcardPattern{}, Body: &ast.IntLiteral{Value: 1}},
			{Pattern: &ast.WildcardPattern{PatternBase: ast.PatternBase{Position: pos}}, Body: &ast.IntLiteral{Value: 2}},
		},
	}
	a := &ast.Variable{Ident: "a", Kind: ast.PlainVariable, Init: body, LocalTypes: table}

	tree := ast.NewTree()
	tree.AddDef(&ast.DataDecl{TypeIdent: "Bool2", Constructors: []ast.ConstructorSig{{Ident: "T"}, {Ident: "F"}}})
	tree.AddDef(&ast.VarDef{Var: a})

	errs := Check(tree)
	if len(errs) != 1 {
		t.Fatalf("Check() = %v, want exactly 1 error", errs)
	}
	msg, ok := errs[0].(*diag.MessageError)
	if !ok {
		t.Fatalf("errs[0] = %T, want *diag.MessageError", errs[0])
	}
	if msg.Pos != pos {
		t.Fatalf("msg.Pos = %v, want %v", msg.Pos, pos)
	}
	want := "unreachable match arm"
	if msg.Text != want {
		t.Fatalf("msg.Text = %q, want %q", msg.Text, want)
	}
}
