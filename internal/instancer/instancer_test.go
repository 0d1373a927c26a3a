package instancer

import (
	"testing"

	"github.com/vscfl-lang/frontend/internal/ast"
	"github.com/vscfl-lang/frontend/internal/config"
	"github.com/vscfl-lang/frontend/internal/diag"
	"github.com/vscfl-lang/frontend/internal/localtype"
	"github.com/vscfl-lang/frontend/internal/token"
)

func mustNoErrors(t *testing.T, errs diag.Errors) {
	t.Helper()
	if len(errs) != 0 {
		t.Fatalf("CheckInsts() = %v, want no errors", errs)
	}
}

// S1: "a: Int = 1 + 2;" against a built-in Int/OpAdd impl. Every operand
// and op_add's own instantiated type are concrete, so is_inst holds
// trivially and the pass reports nothing.
func TestCheckInstsAcceptsBuiltinArithmetic(t *testing.T) {
	table := localtype.NewTable()
	table.Set(0, localtype.TypeEntry{Value: localtype.ConcreteType{Con: localtype.FuncCon, Args: []localtype.LocalType{1, 1, 1}}})
	table.Set(1, localtype.TypeEntry{Value: localtype.ConcreteType{Con: "Int"}})

	opAdd := &ast.Variable{Ident: "op_add", Kind: ast.BuiltinVariable, Builtin: true}
	one := &ast.IntLiteral{Value: 1}
	two := &ast.IntLiteral{Value: 2}
	call := &ast.Application{
		ExprBase: ast.ExprBase{Local: 1},
		Func:     &ast.VarRef{ExprBase: ast.ExprBase{Local: 0}, Ident: "op_add"},
		Args:     []ast.Expression{one, two},
	}
	a := &ast.Variable{Ident: "a", Kind: ast.PlainVariable, Init: call, LocalTypes: table}

	tree := ast.NewTree()
	tree.AddDef(&ast.ImplDef{TargetType: "Int", TraitIdent: "OpAdd", Members: []*ast.Variable{opAdd}})
	tree.AddDef(&ast.VarDef{Var: a})

	errs := CheckInsts(tree)
	mustNoErrors(t, errs)
}

// S2: "a: Int = let _ = zero(); in 1;" where Zero's zero is a built-in
// member with no concrete instance in scope — zero's own instantiated
// type is () -> t2, an unresolved, non-benign type variable, so is_inst
// fails and the pass reports exactly one Message at zero's call site.
func TestCheckInstsRejectsMissingInstanceOnBuiltin(t *testing.T) {
	table := localtype.NewTable()
	table.Set(0, localtype.TypeEntry{Value: localtype.ConcreteType{Con: localtype.FuncCon, Args: []localtype.LocalType{1}}})
	table.Set(1, localtype.ParamEntry{Defined: localtype.Undefined, Vars: localtype.ParamVars{TraitNames: map[config.TraitName]bool{"Zero": true}}})

	pos := token.Pos{Path: "test.vx", Line: 7, Column: 13}
	zeroCall := &ast.Application{
		ExprBase: ast.ExprBase{Position: pos, Local: 1},
		Func:     &ast.VarRef{ExprBase: ast.ExprBase{Position: pos, Local: 0}, Ident: "zero"},
	}
	letExpr := &ast.Let{
		Binder: &ast.WildcardPattern{},
		Value:  zeroCall,
		Body:   &ast.IntLiteral{Value: 1},
	}
	zero := &ast.Variable{Ident: "zero", Kind: ast.BuiltinVariable, Builtin: true}
	a := &ast.Variable{Ident: "a", Kind: ast.PlainVariable, Init: letExpr, LocalTypes: table}

	tree := ast.NewTree()
	tree.AddDef(&ast.TraitDef{TraitIdent: "Zero", Members: []*ast.Variable{zero}})
	tree.AddDef(&ast.VarDef{Var: a})

	errs := CheckInsts(tree)
	if len(errs) != 1 {
		t.Fatalf("CheckInsts() = %v, want exactly 1 error", errs)
	}
	msg, ok := errs[0].(*diag.MessageError)
	if !ok {
		t.Fatalf("errs[0] = %T, want *diag.MessageError", errs[0])
	}
	if msg.Pos != pos {
		t.Fatalf("msg.Pos = %v, want %v", msg.Pos, pos)
	}
	want := "no instance of built-in variable zero with type () -> t2 with traits"
	if msg.Text != want {
		t.Fatalf("msg.Text = %q, want %q", msg.Text, want)
	}
}

// S3: a data type U<t> = C(t) and an abstract trait member f() -> t
// where t: T, used as "match C(f()) { C(_) -> 1 }". T isn't benign, so
// both C's and f's instantiated types fail is_inst: three messages, two
// on C (the constructor application and the match pattern) and one on
// f, each rendering the shared free type variable as t3.
func TestCheckInstsRejectsMissingConstructorInstanceWithPropagatedArgument(t *testing.T) {
	table := localtype.NewTable()
	table.Set(0, localtype.TypeEntry{Value: localtype.ConcreteType{Con: localtype.FuncCon, Args: []localtype.LocalType{2, 1}}}) // C : (t3) -> U<t3>
	table.Set(1, localtype.TypeEntry{Value: localtype.ConcreteType{Con: "U", Args: []localtype.LocalType{2}}})                  // U<t3>
	table.Set(2, localtype.ParamEntry{Defined: localtype.Undefined, Vars: localtype.ParamVars{TraitNames: map[config.TraitName]bool{"T": true}}})
	table.Set(3, localtype.TypeEntry{Value: localtype.ConcreteType{Con: localtype.FuncCon, Args: []localtype.LocalType{2}}}) // f : () -> t3

	fCall := &ast.Application{
		Func: &ast.VarRef{ExprBase: ast.ExprBase{Local: 3}, Ident: "f"},
	}
	scrutinee := &ast.ConstructorApp{
		ExprBase: ast.ExprBase{Local: 0},
		Ident:    "C",
		Fields:   []ast.Expression{fCall},
	}
	arm := ast.MatchArm{
		Pattern: &ast.ConstructorPattern{
			PatternBase: ast.PatternBase{Local: 0},
			Ident:       "C",
			Fields:      []ast.Pattern{&ast.WildcardPattern{}},
		},
		Body: &ast.IntLiteral{Value: 1},
	}
	match := &ast.Match{Scrutinee: scrutinee, Arms: []ast.MatchArm{arm}}

	f := &ast.Variable{Ident: "f", Kind: ast.FunctionVariable}
	a := &ast.Variable{Ident: "a", Kind: ast.PlainVariable, Init: match, LocalTypes: table}

	tree := ast.NewTree()
	tree.AddDef(&ast.TraitDef{TraitIdent: "T", Members: []*ast.Variable{f}})
	tree.AddDef(&ast.DataDecl{TypeIdent: "U", Constructors: []ast.ConstructorSig{{Ident: "C", FieldArity: 1}}})
	tree.AddDef(&ast.VarDef{Var: a})

	errs := CheckInsts(tree)
	if len(errs) != 3 {
		t.Fatalf("CheckInsts() = %v, want exactly 3 errors", errs)
	}

	wantTexts := []string{
		"no instance of constructor C with type (t3) -> U<t3> with traits",
		"no instance of function f with type () -> t3 with traits",
		"no instance of constructor C with type (t3) -> U<t3> with traits",
	}
	for i, want := range wantTexts {
		msg, ok := errs[i].(*diag.MessageError)
		if !ok {
			t.Fatalf("errs[%d] = %T, want *diag.MessageError", i, errs[i])
		}
		if msg.Text != want {
			t.Fatalf("errs[%d].Text = %q, want %q", i, msg.Text, want)
		}
	}
}
