package ast

// LiteralPattern matches a literal value. The passes here never branch
// on which kind of literal (int/float/char/string) it is — only that
// it's a leaf carrying a local type — so unlike the Expression literal
// nodes, one node type suffices; Value is whatever the typer's source
// literal was (int64, float64, rune, or string).
type LiteralPattern struct {
	PatternBase
	Value any
}

func (n *LiteralPattern) Accept(v Visitor) { v.VisitLiteralPattern(n) }

// ConstRefPattern matches the value of an already-bound constant
// identifier (as opposed to binding a new one — see VarPattern).
type ConstRefPattern struct {
	PatternBase
	Ident string
}

func (n *ConstRefPattern) Accept(v Visitor) { v.VisitConstRefPattern(n) }

// ConstructorPattern matches a constructor application with positional
// field patterns.
type ConstructorPattern struct {
	PatternBase
	Ident  string
	Fields []Pattern
}

func (n *ConstructorPattern) Accept(v Visitor) { v.VisitConstructorPattern(n) }

// ConstructorPatternNamed matches a constructor application with named
// field patterns.
type ConstructorPatternNamed struct {
	PatternBase
	Ident  string
	Fields map[string]Pattern
}

func (n *ConstructorPatternNamed) Accept(v Visitor) { v.VisitConstructorPatternNamed(n) }

// VarPattern binds the matched value to a new identifier.
type VarPattern struct {
	PatternBase
	Ident string
}

func (n *VarPattern) Accept(v Visitor) { v.VisitVarPattern(n) }

// AsPattern binds Ident to the whole value matched by Inner (`x @ p`).
type AsPattern struct {
	PatternBase
	Ident string
	Inner Pattern
}

func (n *AsPattern) Accept(v Visitor) { v.VisitAsPattern(n) }

// WildcardPattern matches anything and binds nothing (`_`).
type WildcardPattern struct {
	PatternBase
}

func (n *WildcardPattern) Accept(v Visitor) { v.VisitWildcardPattern(n) }

// AltPattern matches if any of Alternatives matches (`p | q`). The
// parser is responsible for rejecting alternatives with inconsistent
// binder sets; this core doesn't re-check that.
type AltPattern struct {
	PatternBase
	Alternatives []Pattern
}

func (n *AltPattern) Accept(v Visitor) { v.VisitAltPattern(n) }

// LiteralCastPattern matches a literal after casting the scrutinee to
// TargetType.
type LiteralCastPattern struct {
	PatternBase
	Value      any
	TargetType string
}

func (n *LiteralCastPattern) Accept(v Visitor) { v.VisitLiteralCastPattern(n) }
