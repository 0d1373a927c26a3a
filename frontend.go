// Package frontend is the single entry point over the three analysis
// passes (§2): instance → recursion → exhaustiveness, run in that fixed
// order, mirroring the teacher's analyzer.New(...).Analyze(...) shape as
// one function instead of a stateful object, since this core carries no
// cross-call state of its own between passes.
package frontend

import (
	"github.com/vscfl-lang/frontend/internal/ast"
	"github.com/vscfl-lang/frontend/internal/config"
	"github.com/vscfl-lang/frontend/internal/diag"
	"github.com/vscfl-lang/frontend/internal/exhaustiveness"
	"github.com/vscfl-lang/frontend/internal/instancer"
	"github.com/vscfl-lang/frontend/internal/localtype"
	"github.com/vscfl-lang/frontend/internal/recurser"
	"github.com/vscfl-lang/frontend/internal/trace"
)

// Check runs the instance, recursion, and exhaustiveness passes over
// tree in order and returns every diagnostic accumulated across all
// three. A nil or empty result means tree is accepted.
func Check(tree *ast.Tree) diag.Errors {
	tr := trace.New(config.IsTraceVerbose)
	var errs diag.Errors

	done := tr.Pass("instance")
	instErrs := instancer.CheckInsts(tree)
	done(len(tree.Defs()), len(instErrs))
	errs = append(errs, instErrs...)
	if instErrs.HasInternal() {
		return errs
	}

	done = tr.Pass("recursion")
	recErrs := recurser.CheckRecursions(tree)
	done(len(tree.Defs()), len(recErrs))
	errs = append(errs, recErrs...)
	if recErrs.HasInternal() {
		return errs
	}

	done = tr.Pass("exhaustiveness")
	exErrs := checkExhaustiveness(tree, tr)
	done(len(tree.Defs()), len(exErrs))
	errs = append(errs, exErrs...)

	return errs
}

// checkExhaustiveness runs §4.3's driver over every match expression
// found anywhere in tree's definitions, reporting a non-exhaustive match
// and every unreachable arm it finds.
func checkExhaustiveness(tree *ast.Tree, tr *trace.Tracer) diag.Errors {
	reg := exhaustiveness.NewRegistry(tree)
	var errs diag.Errors

	for _, site := range collectMatches(tree) {
		typeIdent, ok := scrutineeTypeIdent(site.table, site.match.Scrutinee.LocalType())
		if !ok {
			errs.Add(diag.NewInternal("exhaustiveness: scrutinee has no resolved concrete type"))
			return errs
		}

		arms := make([]ast.Pattern, len(site.match.Arms))
		for i, arm := range site.match.Arms {
			arms[i] = arm.Pattern
		}
		tr.Detail("exhaustiveness: match on %s (%d arms)", arms, typeIdent, len(arms))

		exhaustiveMatch, unreachable, err := exhaustiveness.CheckMatch(reg, typeIdent, arms)
		if err != nil {
			errs.Add(diag.NewInternal("exhaustiveness: " + err.Error()))
			return errs
		}
		if !exhaustiveMatch {
			errs.Add(diag.NewMessage(site.match.Pos(), "match is not exhaustive: not all cases of %s are covered", typeIdent))
		}
		for _, i := range unreachable {
			errs.Add(diag.NewMessage(site.match.Arms[i].Pattern.Pos(), "unreachable match arm"))
		}
	}
	return errs
}

// scrutineeTypeIdent resolves lt against table to the constructor name
// of its concrete type, the typeIdent exhaustiveness.CheckMatch expects.
func scrutineeTypeIdent(table *localtype.Table, lt localtype.LocalType) (string, bool) {
	entry, ok := table.Entry(lt)
	if !ok {
		return "", false
	}
	te, ok := entry.(localtype.TypeEntry)
	if !ok {
		return "", false
	}
	return te.Value.Con, true
}
