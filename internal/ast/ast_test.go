package ast

import "testing"

func TestTreeVarLooksUpTraitAndImplMembers(t *testing.T) {
	tree := NewTree()

	tree.AddDef(&VarDef{Var: &Variable{Ident: "a"}})
	tree.AddDef(&TraitDef{TraitIdent: "Zero", Members: []*Variable{{Ident: "zero", Builtin: true}}})
	tree.AddDef(&ImplDef{TargetType: "Int", TraitIdent: "OpAdd", Members: []*Variable{{Ident: "op_add", Builtin: true}}})

	for _, ident := range []string{"a", "zero", "op_add"} {
		if _, ok := tree.Var(ident); !ok {
			t.Fatalf("Var(%q) not found", ident)
		}
	}
	if _, ok := tree.Var("nope"); ok {
		t.Fatal("Var(nope) should not be found")
	}
}

func TestTreeDefsPreservesOrder(t *testing.T) {
	tree := NewTree()
	first := &VarDef{Var: &Variable{Ident: "a"}}
	second := &DataDecl{TypeIdent: "U", Constructors: []ConstructorSig{{Ident: "C", FieldArity: 1}}}
	tree.AddDef(first)
	tree.AddDef(second)

	defs := tree.Defs()
	if len(defs) != 2 || defs[0] != Def(first) || defs[1] != Def(second) {
		t.Fatalf("Defs() order not preserved: %v", defs)
	}
}
