package ast

import (
	"github.com/vscfl-lang/frontend/internal/localtype"
	"github.com/vscfl-lang/frontend/internal/token"
)

// VarKind classifies how ident was declared, which the instance check
// uses verbatim to pick the right diagnostic wording (§4.1/§6) — it is
// a property of the declaration form (a bare builtin marker, a
// parameter-list signature, a plain initializer, a data constructor),
// not of the identifier's resolved type.
type VarKind int

const (
	PlainVariable VarKind = iota
	BuiltinVariable
	FunctionVariable
	ConstructorVariable
)

// Variable is the shape shared by a top-level variable binding, a
// trait member declaration, and an implementation member: spec.md
// calls a trait member "a variable carrying the trait's type
// parameter" and an impl member "either a built-in marker or a
// concrete body" — exactly what Variable already models, so all three
// def kinds below reuse it instead of three near-duplicate structs.
type Variable struct {
	Ident      string
	Position   token.Pos
	Kind       VarKind
	Init       Expression // nil for a built-in or declaration-only member
	Builtin    bool
	LocalTypes *localtype.Table
	Type       localtype.LocalType // this binding's own type, indexed into LocalTypes
	Pending    bool
}

// VarDef is a top-level value binding.
type VarDef struct {
	DefBase
	Var *Variable
	// TraitMember marks a variable definition as fulfilling a
	// trait-instance obligation rather than being an ordinary
	// top-level binding (spec.md's "optional trait-membership marker").
	TraitMember bool
}

func (d *VarDef) Ident() string     { return d.Var.Ident }
func (d *VarDef) Accept(v Visitor)  { v.VisitVarDef(d) }

// TraitDef declares a trait's members.
type TraitDef struct {
	DefBase
	TraitIdent string
	Members    []*Variable
}

func (d *TraitDef) Ident() string    { return d.TraitIdent }
func (d *TraitDef) Accept(v Visitor) { v.VisitTraitDef(d) }

// ImplDef binds a trait's members to a concrete target type.
type ImplDef struct {
	DefBase
	TargetType string
	TraitIdent string
	Members    []*Variable
}

func (d *ImplDef) Ident() string    { return d.TraitIdent + " for " + d.TargetType }
func (d *ImplDef) Accept(v Visitor) { v.VisitImplDef(d) }

// ConstructorSig names one of a data type's constructors and how many
// fields it takes — opaque to this core beyond that, per spec.md §3.
type ConstructorSig struct {
	Ident      string
	FieldArity int
}

// DataDecl declares a type (or plain data type) and its constructors.
type DataDecl struct {
	DefBase
	TypeIdent    string
	Constructors []ConstructorSig
}

func (d *DataDecl) Ident() string    { return d.TypeIdent }
func (d *DataDecl) Accept(v Visitor) { v.VisitDataDecl(d) }

// Tree is the top-level collection of definitions produced by the
// parser, annotated in place by the namer and typer, and read-only to
// this core from then on.
type Tree struct {
	defs []Def
	vars map[string]*Variable
}

// NewTree returns an empty tree. Definitions are appended in parse
// order with AddDef; the instance and recursion checks rely on that
// order for their fixed, test-observable traversal order.
func NewTree() *Tree {
	return &Tree{vars: make(map[string]*Variable)}
}

// AddDef appends d and indexes any Variable it introduces for Var
// lookup: a VarDef's own binding, every TraitDef/ImplDef member, and a
// ConstructorVariable for every DataDecl constructor.
func (t *Tree) AddDef(d Def) {
	t.defs = append(t.defs, d)
	switch dd := d.(type) {
	case *VarDef:
		t.vars[dd.Var.Ident] = dd.Var
	case *TraitDef:
		for _, m := range dd.Members {
			t.vars[m.Ident] = m
		}
	case *ImplDef:
		for _, m := range dd.Members {
			t.vars[m.Ident] = m
		}
	case *DataDecl:
		for _, c := range dd.Constructors {
			t.vars[c.Ident] = &Variable{Ident: c.Ident, Kind: ConstructorVariable}
		}
	}
}

// Defs returns the definitions in the order they were added.
func (t *Tree) Defs() []Def {
	return t.defs
}

// Var looks up a bound identifier across top-level variables, trait
// members, impl members, and data constructors.
func (t *Tree) Var(ident string) (*Variable, bool) {
	v, ok := t.vars[ident]
	return v, ok
}
