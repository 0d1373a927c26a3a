package ast

import (
	"github.com/vscfl-lang/frontend/internal/localtype"
	"github.com/vscfl-lang/frontend/internal/token"
)

// Param is one lambda parameter: a binder identifier and its source
// position. Its type lives in the lambda expression's local-type
// table like any other local type, not here.
type Param struct {
	Name string
	At   token.Pos
}

// IntLiteral is an integer literal.
type IntLiteral struct {
	ExprBase
	Value int64
}

func (n *IntLiteral) Accept(v Visitor) { v.VisitIntLiteral(n) }

// FloatLiteral is a floating-point literal.
type FloatLiteral struct {
	ExprBase
	Value float64
}

func (n *FloatLiteral) Accept(v Visitor) { v.VisitFloatLiteral(n) }

// CharLiteral is a character literal.
type CharLiteral struct {
	ExprBase
	Value rune
}

func (n *CharLiteral) Accept(v Visitor) { v.VisitCharLiteral(n) }

// StringLiteral is a string literal.
type StringLiteral struct {
	ExprBase
	Value string
}

func (n *StringLiteral) Accept(v Visitor) { v.VisitStringLiteral(n) }

// TupleLiteral is a tuple of element expressions, each a non-tail
// position.
type TupleLiteral struct {
	ExprBase
	Elements []Expression
}

func (n *TupleLiteral) Accept(v Visitor) { v.VisitTupleLiteral(n) }

// ArrayLiteral is an array of element expressions.
type ArrayLiteral struct {
	ExprBase
	Elements []Expression
}

func (n *ArrayLiteral) Accept(v Visitor) { v.VisitArrayLiteral(n) }

// FilledArrayLiteral builds an array of Count copies of Elem.
type FilledArrayLiteral struct {
	ExprBase
	Elem  Expression
	Count Expression
}

func (n *FilledArrayLiteral) Accept(v Visitor) { v.VisitFilledArrayLiteral(n) }

// Lambda introduces new bindings for Params over Body, which is the
// lambda's own tail position.
type Lambda struct {
	ExprBase
	Params []Param
	Body   Expression
}

func (n *Lambda) Accept(v Visitor) { v.VisitLambda(n) }

// VarRef references a bound identifier — a local binder, a top-level
// variable, a trait member, or an impl member, resolved elsewhere.
type VarRef struct {
	ExprBase
	Ident string
}

func (n *VarRef) Accept(v Visitor) { v.VisitVarRef(n) }

// ConstructorApp applies a data constructor to positional field
// expressions.
type ConstructorApp struct {
	ExprBase
	Ident  string
	Fields []Expression
}

func (n *ConstructorApp) Accept(v Visitor) { v.VisitConstructorApp(n) }

// ConstructorAppNamed applies a data constructor to named field
// expressions.
type ConstructorAppNamed struct {
	ExprBase
	Ident  string
	Fields map[string]Expression
}

func (n *ConstructorAppNamed) Accept(v Visitor) { v.VisitConstructorAppNamed(n) }

// PrintfCall is a printf-style formatted call; Args are all non-tail.
type PrintfCall struct {
	ExprBase
	Format string
	Args   []Expression
}

func (n *PrintfCall) Accept(v Visitor) { v.VisitPrintfCall(n) }

// Application is a general function application; Func and Args are
// both non-tail positions.
type Application struct {
	ExprBase
	Func Expression
	Args []Expression
}

func (n *Application) Accept(v Visitor) { v.VisitApplication(n) }

// FieldAccess reads one or two levels of field (`.f` or `.f.g`).
type FieldAccess struct {
	ExprBase
	Target Expression
	Fields []string
}

func (n *FieldAccess) Accept(v Visitor) { v.VisitFieldAccess(n) }

// FieldWrite writes Value into Target's field path (`<-`).
type FieldWrite struct {
	ExprBase
	Target Expression
	Fields []string
	Value  Expression
}

func (n *FieldWrite) Accept(v Visitor) { v.VisitFieldWrite(n) }

// FieldUpdate reads Target's field path, applies Update, and writes it
// back (`<->`).
type FieldUpdate struct {
	ExprBase
	Target Expression
	Fields []string
	Update Expression
}

func (n *FieldUpdate) Accept(v Visitor) { v.VisitFieldUpdate(n) }

// UniqCoercion coerces Operand's uniqueness annotation (`uniq` or
// `shared`).
type UniqCoercion struct {
	ExprBase
	Kind    localtype.UniqFlag
	Operand Expression
}

func (n *UniqCoercion) Accept(v Visitor) { v.VisitUniqCoercion(n) }

// Ascription annotates Operand with an explicit type (`e : T`).
// Operand is in tail position iff the ascription itself is.
type Ascription struct {
	ExprBase
	Operand  Expression
	TypeName string
}

func (n *Ascription) Accept(v Visitor) { v.VisitAscription(n) }

// Cast numerically converts Operand to TargetType (`as`).
type Cast struct {
	ExprBase
	Operand    Expression
	TargetType string
}

func (n *Cast) Accept(v Visitor) { v.VisitCast(n) }

// If evaluates Cond (non-tail) and then one of Then/Else, both in the
// same position as the If itself.
type If struct {
	ExprBase
	Cond Expression
	Then Expression
	Else Expression
}

func (n *If) Accept(v Visitor) { v.VisitIf(n) }

// Let binds Binder to Value (non-tail) and evaluates Body in the Let's
// own position.
type Let struct {
	ExprBase
	Binder Pattern
	Value  Expression
	Body   Expression
}

func (n *Let) Accept(v Visitor) { v.VisitLet(n) }

// MatchArm is one case of a Match: Body is evaluated in the Match's own
// position when Pattern matches.
type MatchArm struct {
	Pattern Pattern
	Body    Expression
}

// Match evaluates Scrutinee (non-tail) and dispatches to the first
// matching arm's Body.
type Match struct {
	ExprBase
	Scrutinee Expression
	Arms      []MatchArm
}

func (n *Match) Accept(v Visitor) { v.VisitMatch(n) }
