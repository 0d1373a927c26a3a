// Package ast defines the annotated syntax tree the instance, recursion,
// and exhaustiveness passes walk. The tree is built and annotated by
// external collaborators this core never implements (parser, namer,
// typer, per the external-interfaces boundary); everything here is
// read-only once those passes are done with it.
package ast

import (
	"github.com/vscfl-lang/frontend/internal/localtype"
	"github.com/vscfl-lang/frontend/internal/token"
)

// Node is the base interface for every tree element: definitions,
// expressions, and patterns alike.
type Node interface {
	Pos() token.Pos
	Accept(v Visitor)
}

// Expression is a Node that produces a value and, once typed, carries a
// local-type index into its enclosing definition's table.
type Expression interface {
	Node
	expressionNode()
	LocalType() localtype.LocalType
}

// Pattern is a Node appearing in a binder or match arm, also carrying a
// local-type index once typed.
type Pattern interface {
	Node
	patternNode()
	LocalType() localtype.LocalType
}

// Def is one top-level tree entry: a variable, trait, implementation,
// or data declaration.
type Def interface {
	Node
	defNode()
	Ident() string
	// Pending reports whether this definition is marked as a
	// forward-declaration placeholder awaiting its real body from the
	// namer. The instance, recursion, and exhaustiveness passes do not
	// read it: a pending definition is walked like any other.
	Pending() bool
}

// ExprBase is embedded by every Expression node.
type ExprBase struct {
	Position token.Pos
	Local    localtype.LocalType
}

func (b *ExprBase) Pos() token.Pos                    { return b.Position }
func (b *ExprBase) LocalType() localtype.LocalType    { return b.Local }
func (*ExprBase) expressionNode()                     {}

// PatternBase is embedded by every Pattern node.
type PatternBase struct {
	Position token.Pos
	Local    localtype.LocalType
}

func (b *PatternBase) Pos() token.Pos                 { return b.Position }
func (b *PatternBase) LocalType() localtype.LocalType { return b.Local }
func (*PatternBase) patternNode()                     {}

// DefBase is embedded by every Def node.
type DefBase struct {
	Position    token.Pos
	PendingFlag bool
}

func (b *DefBase) Pos() token.Pos  { return b.Position }
func (b *DefBase) Pending() bool   { return b.PendingFlag }
func (*DefBase) defNode()          {}

// Visitor dispatches over the whole node set. Each concrete node's
// Accept calls the matching Visit method; recursion into children is
// each Visitor implementation's own responsibility (the instancer,
// recurser, and exhaustiveness passes each recurse differently —
// the recurser tracks tail position, the instancer doesn't).
type Visitor interface {
	VisitIntLiteral(*IntLiteral)
	VisitFloatLiteral(*FloatLiteral)
	VisitCharLiteral(*CharLiteral)
	VisitStringLiteral(*StringLiteral)
	VisitTupleLiteral(*TupleLiteral)
	VisitArrayLiteral(*ArrayLiteral)
	VisitFilledArrayLiteral(*FilledArrayLiteral)
	VisitLambda(*Lambda)
	VisitVarRef(*VarRef)
	VisitConstructorApp(*ConstructorApp)
	VisitConstructorAppNamed(*ConstructorAppNamed)
	VisitPrintfCall(*PrintfCall)
	VisitApplication(*Application)
	VisitFieldAccess(*FieldAccess)
	VisitFieldWrite(*FieldWrite)
	VisitFieldUpdate(*FieldUpdate)
	VisitUniqCoercion(*UniqCoercion)
	VisitAscription(*Ascription)
	VisitCast(*Cast)
	VisitIf(*If)
	VisitLet(*Let)
	VisitMatch(*Match)

	VisitLiteralPattern(*LiteralPattern)
	VisitConstRefPattern(*ConstRefPattern)
	VisitConstructorPattern(*ConstructorPattern)
	VisitConstructorPatternNamed(*ConstructorPatternNamed)
	VisitVarPattern(*VarPattern)
	VisitAsPattern(*AsPattern)
	VisitWildcardPattern(*WildcardPattern)
	VisitAltPattern(*AltPattern)
	VisitLiteralCastPattern(*LiteralCastPattern)

	VisitVarDef(*VarDef)
	VisitTraitDef(*TraitDef)
	VisitImplDef(*ImplDef)
	VisitDataDecl(*DataDecl)
}
