// Package exhaustiveness drives internal/pattern's union algebra over a
// match expression's arms (§4.3): does the set of arm patterns cover
// every value the scrutinee's type admits, and is each arm reachable
// given the arms before it.
//
// original_source only carries the algebra itself (src/utils/pattern.rs,
// ported verbatim into internal/pattern) — the driver that starts from
// the empty forest and folds each arm's pattern into it is described by
// spec.md §4.3 only in prose ("The driver for a match starts with the
// empty forest and repeatedly unions in each arm's pattern..."), so
// CheckMatch and the ast.Pattern-to-pattern.Forest lowering below are
// built directly from that prose rather than ported from a source file.
package exhaustiveness

import (
	"fmt"
	"sort"

	"github.com/vscfl-lang/frontend/internal/ast"
	"github.com/vscfl-lang/frontend/internal/pattern"
)

// ctorInfo records which data type a constructor belongs to and how
// many fields it declares.
type ctorInfo struct {
	typeIdent string
	arity     int
}

// Registry answers the two questions lowering needs that spec.md's §3
// data model keeps out of ast.Pattern itself: how many constructors a
// data type has (the forest's max, for detecting when an Alt has
// become total), and how many fields a given constructor takes (for
// catching a pattern whose field count disagrees with its declaration).
type Registry struct {
	ctors   map[string]ctorInfo
	typeLen map[string]int
}

// NewRegistry builds a Registry from every DataDecl in tree.
func NewRegistry(tree *ast.Tree) *Registry {
	r := &Registry{ctors: make(map[string]ctorInfo), typeLen: make(map[string]int)}
	for _, def := range tree.Defs() {
		dd, ok := def.(*ast.DataDecl)
		if !ok {
			continue
		}
		r.typeLen[dd.TypeIdent] = len(dd.Constructors)
		for _, c := range dd.Constructors {
			r.ctors[c.Ident] = ctorInfo{typeIdent: dd.TypeIdent, arity: c.FieldArity}
		}
	}
	return r
}

// TypeMax returns typeIdent's constructor count, or nil if typeIdent
// names no known data declaration (e.g. a built-in scalar type, which
// can only be matched exhaustively through an explicit wildcard arm).
func (r *Registry) TypeMax(typeIdent string) *int {
	n, ok := r.typeLen[typeIdent]
	if !ok {
		return nil
	}
	return &n
}

func (r *Registry) constructorMax(ident string) *int {
	info, ok := r.ctors[ident]
	if !ok {
		return nil
	}
	return r.TypeMax(info.typeIdent)
}

// CheckMatch runs §4.3's driver over a match against the scrutinee
// type's constructor set: starting from the empty forest, it unions in
// each arm's lowered pattern in order, recording as unreachable any arm
// whose union yields Left (already fully covered) or Both (identical to
// what's already covered). exhaustive reports whether the final forest
// equals All. err is non-nil only for an internal algebra inconsistency
// (mismatched arity between occurrences of the same constructor) — never
// a user-facing diagnostic.
func CheckMatch(reg *Registry, typeIdent string, arms []ast.Pattern) (exhaustive bool, unreachable []int, err error) {
	acc := pattern.AltForest[string](nil, reg.TypeMax(typeIdent))
	for i, arm := range arms {
		armForest, lerr := lower(reg, arm)
		if lerr != nil {
			return false, nil, lerr
		}
		kind, next, uerr := acc.Union(armForest)
		if uerr != nil {
			return false, nil, uerr
		}
		if kind == pattern.Left || kind == pattern.Both {
			unreachable = append(unreachable, i)
		}
		acc = next
	}
	return acc.IsAll(), unreachable, nil
}

// lower translates one ast.Pattern into the forest it contributes to a
// match's running union. A wildcard or bare binder covers everything; a
// constructor pattern is a single-node Alt tagged with its type's
// constructor count; an alternative pattern (`p | q`) is the union of
// what each alternative covers on its own.
func lower(reg *Registry, p ast.Pattern) (pattern.Forest[string], error) {
	switch n := p.(type) {
	case *ast.WildcardPattern:
		return pattern.AllForest[string](), nil
	case *ast.VarPattern:
		return pattern.AllForest[string](), nil
	case *ast.AsPattern:
		return lower(reg, n.Inner)
	case *ast.LiteralPattern:
		return literalForest(literalKey(n.Value)), nil
	case *ast.LiteralCastPattern:
		return literalForest(n.TargetType + ":" + literalKey(n.Value)), nil
	case *ast.ConstRefPattern:
		return literalForest("@" + n.Ident), nil
	case *ast.ConstructorPattern:
		return lowerConstructor(reg, n.Ident, n.Fields)
	case *ast.ConstructorPatternNamed:
		return lowerConstructorNamed(reg, n.Ident, n.Fields)
	case *ast.AltPattern:
		return lowerAlt(reg, n.Alternatives)
	default:
		return pattern.Forest[string]{}, fmt.Errorf("exhaustiveness: unhandled pattern type %T", p)
	}
}

func lowerConstructor(reg *Registry, ident string, fields []ast.Pattern) (pattern.Forest[string], error) {
	if info, ok := reg.ctors[ident]; ok && info.arity != len(fields) {
		return pattern.Forest[string]{}, pattern.ErrCount
	}
	children := make([]pattern.Forest[string], len(fields))
	for i, f := range fields {
		cf, err := lower(reg, f)
		if err != nil {
			return pattern.Forest[string]{}, err
		}
		children[i] = cf
	}
	node := pattern.NewNode(ident, children)
	return pattern.AltForest([]*pattern.Node[string]{node}, reg.constructorMax(ident)), nil
}

// lowerConstructorNamed orders named fields alphabetically by field
// name. ConstructorSig (§3) records only a constructor's field arity,
// not field names, so there is no declared order to follow; alphabetical
// order is merely required to be the SAME order every time a given
// constructor's named pattern is lowered, so that two arms matching the
// same constructor produce structurally comparable nodes.
func lowerConstructorNamed(reg *Registry, ident string, fields map[string]ast.Pattern) (pattern.Forest[string], error) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ordered := make([]ast.Pattern, len(keys))
	for i, k := range keys {
		ordered[i] = fields[k]
	}
	return lowerConstructor(reg, ident, ordered)
}

func lowerAlt(reg *Registry, alts []ast.Pattern) (pattern.Forest[string], error) {
	if len(alts) == 0 {
		return pattern.Forest[string]{}, fmt.Errorf("exhaustiveness: alternative pattern with no alternatives")
	}
	acc, err := lower(reg, alts[0])
	if err != nil {
		return pattern.Forest[string]{}, err
	}
	for _, a := range alts[1:] {
		next, err := lower(reg, a)
		if err != nil {
			return pattern.Forest[string]{}, err
		}
		_, acc, err = acc.Union(next)
		if err != nil {
			return pattern.Forest[string]{}, err
		}
	}
	return acc, nil
}

// literalForest lowers a literal-shaped pattern to a single-node Alt
// with no declared maximum: a literal domain (ints, strings, chars) has
// no enumerable constructor count, so a set of literal arms can never
// collapse to All on its own — only an explicit wildcard/binder arm can
// make such a match exhaustive, matching how every other typed language
// in this family treats literal matches.
func literalForest(key string) pattern.Forest[string] {
	node := pattern.NewNode[string](key, nil)
	return pattern.AltForest([]*pattern.Node[string]{node}, nil)
}

func literalKey(v any) string {
	return fmt.Sprintf("%v", v)
}
