// Package graph implements the generic post-order DFS the frontend uses
// to schedule its passes over the definition graph and detect cycles
// (§4.5). It is deliberately free of any knowledge of definitions, call
// graphs, or traits — callers supply node identifiers and two callbacks.
package graph

import (
	"github.com/emirpasic/gods/sets/treeset"
)

// NewSet returns an empty ordered string set, the node container used for
// both the global "visited" set a caller owns across multiple Dfs calls
// and the "in-progress" set Dfs maintains internally. Ordered iteration
// (over gods' comparator-backed treeset) mirrors the determinism
// original_source/src/utils/dfs.rs gets from BTreeSet<T>.
func NewSet() *treeset.Set {
	return treeset.NewWithStringComparator()
}

// Expand returns u's successors given the current in-progress ancestor
// set (for back-edge detection) and the shared state. Returning an error
// aborts the whole traversal.
type Expand[S any] func(u string, inProgress *treeset.Set, state *S) ([]string, error)

// Finalize is called in post-order: all of u's successors are finalized
// (or already visited) before u is.
type Finalize[S any] func(u string, state *S) error

// Dfs runs an iterative depth-first search from start.
//
//   - Nodes already in visited are skipped entirely: second and
//     subsequent calls with an already-visited start are no-ops.
//   - A successor already in visited is not re-expanded.
//   - A successor already in-progress is a back-edge on the current
//     path; Expand is responsible for reporting it as an error if the
//     caller wants cycles rejected.
//   - finalize fires for each node at most once, in reverse topological
//     order on a DAG.
//   - An error from expand aborts immediately: already-finalized nodes
//     stay finalized, nodes still in-progress are not finalized.
func Dfs[S any](start string, visited *treeset.Set, state *S, expand Expand[S], finalize Finalize[S]) error {
	if visited.Contains(start) {
		return nil
	}

	type frame struct {
		node      string
		neighbors []string
	}

	inProgress := NewSet()
	inProgress.Add(start)
	neighbors, err := expand(start, inProgress, state)
	if err != nil {
		return err
	}
	reverseStrings(neighbors)

	stack := []frame{{node: start, neighbors: neighbors}}
	visited.Add(start)

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		inProgress.Remove(top.node)

		var next string
		found := false
		for len(top.neighbors) > 0 {
			w := top.neighbors[len(top.neighbors)-1]
			top.neighbors = top.neighbors[:len(top.neighbors)-1]
			if visited.Contains(w) {
				continue
			}
			next = w
			found = true
			break
		}
		stack[len(stack)-1] = top

		if found {
			inProgress.Add(top.node)
			inProgress.Add(next)
			nbrs, err := expand(next, inProgress, state)
			if err != nil {
				return err
			}
			reverseStrings(nbrs)
			stack = append(stack, frame{node: next, neighbors: nbrs})
			visited.Add(next)
			continue
		}

		stack = stack[:len(stack)-1]
		if err := finalize(top.node, state); err != nil {
			return err
		}
	}
	return nil
}

func reverseStrings(ss []string) {
	for i, j := 0, len(ss)-1; i < j; i, j = i+1, j-1 {
		ss[i], ss[j] = ss[j], ss[i]
	}
}
