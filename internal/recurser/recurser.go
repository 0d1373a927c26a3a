// Package recurser implements the recursion discipline check (§4.2):
// a function may recurse, directly or mutually, only through tail
// calls — every call that closes a cycle in the call graph must sit in
// tail position.
//
// Grounded in the same walk-the-annotated-tree shape as
// internal/instancer, adapted to track tail position as it descends
// (original_source/src/frontend/recurser keeps no corresponding .rs
// source in this retrieval — only its test suite survived — so the
// tail/non-tail position table below is built directly from spec.md
// §4.2's prose) and to build a call graph consumed by internal/graph's
// DFS driver instead of instancer's direct recursive check.
package recurser

import (
	"sort"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/vscfl-lang/frontend/internal/ast"
	"github.com/vscfl-lang/frontend/internal/diag"
	"github.com/vscfl-lang/frontend/internal/env"
	"github.com/vscfl-lang/frontend/internal/graph"
	"github.com/vscfl-lang/frontend/internal/token"
)

// edge is one observed call from the function currently being walked to
// a callee, annotated with whether the call site was in tail position.
type edge struct {
	callee string
	tail   bool
	pos    token.Pos
}

// node is one function-shaped definition that participates in the call
// graph: a top-level function, a trait default body, or an impl member.
// ident is its display name (what the diagnostic names); key
// disambiguates multiple impls that share ident (one per concrete type).
type node struct {
	key   string
	ident string
	pos   token.Pos
	v     *ast.Variable
}

// CheckRecursions walks every function-shaped definition in tree,
// builds the call graph described in §4.2, and reports one Message per
// cycle that contains a non-tail edge.
func CheckRecursions(tree *ast.Tree) diag.Errors {
	b := &builder{
		nodesByIdent: make(map[string][]*node),
		nodesByKey:   make(map[string]*node),
		graph:        make(map[string][]edge),
	}
	b.collect(tree)

	order := make([]string, 0, len(b.nodesByKey))
	for _, n := range b.order {
		order = append(order, n.key)
	}

	for _, n := range b.order {
		w := &walker{b: b, current: n.key, tail: true, env: env.New[struct{}]()}
		w.env.Push()
		for _, p := range lambdaParams(n.v.Init) {
			w.env.Add(p.Name, struct{}{})
		}
		lambdaBody(n.v.Init).Accept(w)
		w.env.Pop()
	}

	var errs diag.Errors
	reported := make(map[string]bool) // dedup by representative key of the SCC
	for _, n := range b.order {
		scc := b.sccOf(n.key)
		if len(scc) == 0 {
			continue
		}
		repKey := firstInOrder(order, scc)
		if reported[repKey] {
			continue
		}
		offending := b.firstOffendingEdge(scc)
		if offending == nil {
			continue
		}
		reported[repKey] = true
		rep := b.nodesByKey[repKey]
		errs.Add(diag.NewMessage(offending.pos, "recursive function %s can use only tail recursion", rep.ident))
	}
	return errs
}

// builder collects the function-shaped definitions in tree and, once
// walker has run over each of them, the call graph between them.
type builder struct {
	order        []*node
	nodesByIdent map[string][]*node
	nodesByKey   map[string]*node
	graph        map[string][]edge
}

func (b *builder) collect(tree *ast.Tree) {
	for _, def := range tree.Defs() {
		switch d := def.(type) {
		case *ast.VarDef:
			b.addIfFunction(d.Var, d.Var.Ident)
		case *ast.TraitDef:
			for _, m := range d.Members {
				b.addIfFunction(m, m.Ident)
			}
		case *ast.ImplDef:
			for _, m := range d.Members {
				b.addIfFunction(m, m.Ident+"#"+d.TargetType)
			}
		}
	}
}

func (b *builder) addIfFunction(v *ast.Variable, key string) {
	if v.Kind != ast.FunctionVariable || v.Init == nil {
		return
	}
	n := &node{key: key, ident: v.Ident, pos: v.Position, v: v}
	b.order = append(b.order, n)
	b.nodesByKey[key] = n
	b.nodesByIdent[v.Ident] = append(b.nodesByIdent[v.Ident], n)
}

// addEdge records that the function currently at fromKey references
// ident (in tail position or not) at pos. Every function-shaped
// definition sharing ident receives an edge — a plain top-level
// function has exactly one, a trait member conservatively fans out to
// every concrete impl and its trait's default body, matching §4.2's
// "conservative" trait-dispatch rule.
func (b *builder) addEdge(fromKey, ident string, tail bool, pos token.Pos) {
	targets := b.nodesByIdent[ident]
	for _, t := range targets {
		b.graph[fromKey] = append(b.graph[fromKey], edge{callee: t.key, tail: tail, pos: pos})
	}
}

// reach returns every key reachable from start (including start
// itself), via internal/graph's DFS driver.
func (b *builder) reach(start string) map[string]bool {
	visited := graph.NewSet()
	var out []string
	expand := func(u string, _ *treeset.Set, _ *[]string) ([]string, error) {
		var next []string
		for _, e := range b.graph[u] {
			next = append(next, e.callee)
		}
		return next, nil
	}
	finalize := func(u string, s *[]string) error {
		*s = append(*s, u)
		return nil
	}
	_ = graph.Dfs(start, visited, &out, expand, finalize)

	set := make(map[string]bool, len(out))
	for _, k := range out {
		set[k] = true
	}
	return set
}

// sccOf returns the set of keys mutually reachable with key (key's own
// strongly connected component), or an empty set if key isn't part of
// any cycle.
func (b *builder) sccOf(key string) map[string]bool {
	forward := b.reach(key)
	scc := make(map[string]bool)
	for other := range forward {
		if other == key {
			continue
		}
		if b.reach(other)[key] {
			scc[other] = true
		}
	}
	// A self-loop also makes {key} its own (size-1) cycle.
	selfLoop := false
	for _, e := range b.graph[key] {
		if e.callee == key {
			selfLoop = true
			break
		}
	}
	if len(scc) > 0 || selfLoop {
		scc[key] = true
	}
	return scc
}

// firstOffendingEdge returns the first (in a deterministic, per-node,
// per-edge order) edge internal to scc that is not tail, or nil if
// every internal edge is tail.
func (b *builder) firstOffendingEdge(scc map[string]bool) *edge {
	keys := make([]string, 0, len(scc))
	for k := range scc {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, e := range b.graph[k] {
			if scc[e.callee] && !e.tail {
				ec := e
				return &ec
			}
		}
	}
	return nil
}

func firstInOrder(order []string, scc map[string]bool) string {
	for _, k := range order {
		if scc[k] {
			return k
		}
	}
	return ""
}

// lambdaParams/lambdaBody extract a function-shaped variable's argument
// binders and body from its Lambda initializer, the same shape
// instancer.lambdaParams relies on.
func lambdaParams(init ast.Expression) []ast.Param {
	if lam, ok := init.(*ast.Lambda); ok {
		return lam.Params
	}
	return nil
}

func lambdaBody(init ast.Expression) ast.Expression {
	if lam, ok := init.(*ast.Lambda); ok {
		return lam.Body
	}
	return init
}
