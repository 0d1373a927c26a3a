// Package localtype models the per-definition local-type table the typer
// hands to this frontend: a mapping from a small integer index to either
// an unresolved type parameter (with its trait constraints) or a
// concrete, constructor-applied type.
//
// The frontend never constructs this table — it is read-only input
// produced by the (external) typer — so the only exported mutators here
// exist to let tests build fixtures that stand in for that typer output.
package localtype

import (
	"fmt"
	"sort"

	"github.com/vscfl-lang/frontend/internal/config"
)

// LocalType is an index into a Table, valid only within the definition
// the table belongs to.
type LocalType int

// DefinedFlag marks whether unification has pinned a type parameter to a
// concrete form.
type DefinedFlag bool

const (
	Undefined DefinedFlag = false
	Defined   DefinedFlag = true
)

// UniqFlag records a local type's uniqueness annotation. The instance and
// recursion checks don't interpret it — it passes through untouched — but
// it is part of the entry shape the typer hands down (§6).
type UniqFlag int

const (
	UniqNone UniqFlag = iota
	Uniq
	SharedFlag
)

// Entry is either a Param or a Type local-type-table entry.
type Entry interface {
	isEntry()
}

// ParamVars bundles a type parameter's trait constraints with any
// argument type-values the constraints enforce (e.g. Convert<U> enforces
// U). TypeValues is recursed into by is_inst the same way a concrete
// type's Args are.
type ParamVars struct {
	TraitNames map[config.TraitName]bool
	TypeValues []LocalType
}

// ParamEntry is an unresolved type parameter, or one unification has
// already pinned to a concrete form (Defined).
type ParamEntry struct {
	Defined DefinedFlag
	Uniq    UniqFlag
	Vars    ParamVars
}

func (ParamEntry) isEntry() {}

// ConcreteType is a constructor applied to child local-type indices —
// the representation named in §3: "a concrete type (constructor + child
// local-type indices)".
//
// FuncCon is a reserved constructor name for function types: Args holds
// the parameter types followed by the return type as its last element,
// rendered as "(p1, p2) -> ret" rather than "Fun<p1, p2, ret>".
type ConcreteType struct {
	Con  string
	Args []LocalType
}

// FuncCon marks a ConcreteType as a function arrow rather than an
// ordinary type application.
const FuncCon = "->"

// TypeEntry is an already-resolved concrete type.
type TypeEntry struct {
	Uniq  UniqFlag
	Value ConcreteType
}

func (TypeEntry) isEntry() {}

// Table is one definition's local-type table.
type Table struct {
	entries map[LocalType]Entry
}

// NewTable returns an empty table. Tests populate it with Set; production
// tables are built by the external typer and only ever read here.
func NewTable() *Table {
	return &Table{entries: make(map[LocalType]Entry)}
}

// Set installs an entry. Exported for test fixtures; the typer is the
// only real-world writer of a Table.
func (t *Table) Set(lt LocalType, e Entry) {
	t.entries[lt] = e
}

// Entry returns the entry at lt, and whether one exists. A missing entry
// on a node the walker actually visited is an internal error (§3
// invariants), never a user error.
func (t *Table) Entry(lt LocalType) (Entry, bool) {
	e, ok := t.entries[lt]
	return e, ok
}

// Render formats lt against the table, substituting resolved children
// inline. A still-unresolved type variable renders as "t" followed by
// its own local-type index plus one (§6's t1, t2, … numbering): since
// the typer allocates local-type indices in the order it first
// encounters each type variable, a variable's raw index already *is*
// its first-appearance position — no separate per-message counter is
// needed to reproduce §6/§8's literal t1, t2, … diagnostics.
func Render(lt LocalType, t *Table) string {
	entry, ok := t.Entry(lt)
	if !ok {
		return varName(lt)
	}
	switch e := entry.(type) {
	case ParamEntry:
		if e.Defined == Defined && len(e.Vars.TypeValues) == 0 {
			return varName(lt)
		}
		if len(e.Vars.TypeValues) > 0 {
			return renderCon(varName(lt), e.Vars.TypeValues, t)
		}
		return varName(lt)
	case TypeEntry:
		return renderCon(e.Value.Con, e.Value.Args, t)
	default:
		return varName(lt)
	}
}

func varName(lt LocalType) string {
	return fmt.Sprintf("t%d", int(lt)+1)
}

func renderCon(con string, args []LocalType, t *Table) string {
	if con == FuncCon {
		return renderFunc(args, t)
	}
	if len(args) == 0 {
		return con
	}
	rendered := make([]string, len(args))
	for i, a := range args {
		rendered[i] = Render(a, t)
	}
	return fmt.Sprintf("%s<%s>", con, joinComma(rendered))
}

// renderFunc renders a FuncCon's args (params..., return) as
// "(p1, p2) -> ret", matching the literal diagnostic format in §6/§8.
func renderFunc(args []LocalType, t *Table) string {
	if len(args) == 0 {
		return "() -> ?"
	}
	params := args[:len(args)-1]
	ret := args[len(args)-1]
	rendered := make([]string, len(params))
	for i, p := range params {
		rendered[i] = Render(p, t)
	}
	return fmt.Sprintf("(%s) -> %s", joinComma(rendered), Render(ret, t))
}

func joinComma(ss []string) string {
	out := ""
	for i, s := range ss {
		if i > 0 {
			out += ", "
		}
		out += s
	}
	return out
}

// TraitNamesSorted returns the trait names in names sorted for deterministic
// diagnostic rendering.
func TraitNamesSorted(names map[config.TraitName]bool) []config.TraitName {
	out := make([]config.TraitName, 0, len(names))
	for n := range names {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
