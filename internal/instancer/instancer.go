// Package instancer implements the trait instantiation check (§4.1):
// every use of a polymorphic name must have its trait constraints
// discharged by a concrete implementation at the use site.
//
// Grounded in original_source/src/frontend/instancer.rs's
// is_inst_for_type_value/check_insts_for_expr shape, adapted to walk
// ast.Expression/ast.Pattern via the Visitor dispatch instead of a
// hand-rolled match, and to read the benign trait set from
// internal/config instead of a hardcoded two-element check.
package instancer

import (
	"sort"

	"github.com/vscfl-lang/frontend/internal/ast"
	"github.com/vscfl-lang/frontend/internal/config"
	"github.com/vscfl-lang/frontend/internal/diag"
	"github.com/vscfl-lang/frontend/internal/env"
	"github.com/vscfl-lang/frontend/internal/localtype"
	"github.com/vscfl-lang/frontend/internal/token"
)

// abortSignal unwinds the walk once an Internal error has been
// recorded. Go has no equivalent of Rust's `?` early-return through a
// deeply nested visitor dispatch, so this package uses panic/recover
// as a purely internal control-flow device — it never escapes
// CheckInsts and never represents a user-facing error.
type abortSignal struct{}

// CheckInsts walks every variable body, trait member, and impl member
// in tree, reporting every unresolved trait instantiation. The
// traversal order is definition order, then child-first left-to-right
// within each definition, matching §4.1's fixed, test-observable order.
func CheckInsts(tree *ast.Tree) (errs diag.Errors) {
	c := &checker{tree: tree}
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(abortSignal); !ok {
				panic(r)
			}
			errs = c.errs
		}
	}()
	c.checkDefs()
	errs = c.errs
	return
}

type checker struct {
	tree *ast.Tree
	errs diag.Errors

	varEnv     *env.Environment[struct{}]
	localTypes *localtype.Table
}

func (c *checker) internal(format string, args ...any) {
	c.errs.Add(diag.NewInternal(format, args...))
	panic(abortSignal{})
}

func (c *checker) checkDefs() {
	for _, def := range c.tree.Defs() {
		def.Accept(c)
	}
}

func (c *checker) checkVariable(v *ast.Variable) {
	if v.Builtin || v.Init == nil {
		return
	}
	if v.LocalTypes == nil {
		c.internal("checkVariable: %s has a body but no local-type table", v.Ident)
	}
	c.varEnv = env.New[struct{}]()
	c.localTypes = v.LocalTypes
	c.varEnv.Push()
	if v.Kind == ast.FunctionVariable {
		for _, p := range lambdaParams(v.Init) {
			c.varEnv.Add(p.Name, struct{}{})
		}
	}
	v.Init.Accept(c)
	c.varEnv.Pop()
}

// lambdaParams extracts a function-shaped variable's argument binders
// from its Lambda body, matching original_source's Fun::Fun arg list.
func lambdaParams(init ast.Expression) []ast.Param {
	if lam, ok := init.(*ast.Lambda); ok {
		return lam.Params
	}
	return nil
}

// isInst implements the is_inst predicate (§4.1). Recursing through a
// defined parameter's child local-types (rather than treating a
// defined parameter as trivially instantiable, as
// original_source/src/frontend/instancer.rs does) follows spec.md's
// literal prose; see DESIGN.md for this discrepancy and why spec.md's
// wording wins.
func (c *checker) isInst(lt localtype.LocalType) bool {
	entry, ok := c.localTypes.Entry(lt)
	if !ok {
		c.internal("isInst: no local type entry for %v", lt)
	}
	switch e := entry.(type) {
	case localtype.ParamEntry:
		if e.Defined == localtype.Defined {
			return c.isInstAll(e.Vars.TypeValues)
		}
		if !isSubsetOfBenign(e.Vars.TraitNames) {
			return false
		}
		return c.isInstAll(e.Vars.TypeValues)
	case localtype.TypeEntry:
		return c.isInstAll(e.Value.Args)
	default:
		c.internal("isInst: local type entry has an unexpected shape")
		panic("unreachable")
	}
}

func (c *checker) isInstAll(lts []localtype.LocalType) bool {
	ok := true
	for _, lt := range lts {
		if !c.isInst(lt) {
			ok = false
		}
	}
	return ok
}

func isSubsetOfBenign(names map[config.TraitName]bool) bool {
	benign := config.BenignTraitNames()
	for n := range names {
		if !benign[n] {
			return false
		}
	}
	return true
}

func kindText(v *ast.Variable) string {
	switch v.Kind {
	case ast.BuiltinVariable:
		return "built-in variable"
	case ast.FunctionVariable:
		return "function"
	case ast.ConstructorVariable:
		return "constructor"
	default:
		return "variable"
	}
}

// checkIdentUse runs is_inst for ident's use at lt and, if it fails,
// appends the literal diagnostic §6 specifies.
func (c *checker) checkIdentUse(ident string, lt localtype.LocalType, pos token.Pos) {
	if c.isInst(lt) {
		return
	}
	v, ok := c.tree.Var(ident)
	if !ok {
		c.internal("checkIdentUse: %s is not a bound variable", ident)
	}
	rendered := localtype.Render(lt, c.localTypes)
	c.errs.Add(diag.NewMessage(pos, "no instance of %s %s with type %s with traits", kindText(v), ident, rendered))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
