package diag

import (
	"testing"

	"github.com/vscfl-lang/frontend/internal/token"
)

func TestErrorsAsErrorEmpty(t *testing.T) {
	var es Errors
	if es.AsError() != nil {
		t.Fatal("expected empty Errors to yield a nil error")
	}
}

func TestErrorsAsErrorNonEmpty(t *testing.T) {
	var es Errors
	es.Add(NewMessage(token.Pos{Path: "a.vscfl", Line: 1, Column: 1}, "no instance of function %s with type %s with traits", "f", "() -> t1"))
	if err := es.AsError(); err == nil {
		t.Fatal("expected non-empty Errors to yield a non-nil error")
	}
}

func TestHasInternal(t *testing.T) {
	var es Errors
	es.Add(NewMessage(token.Pos{}, "ordinary message"))
	if es.HasInternal() {
		t.Fatal("expected no internal errors yet")
	}
	es.Add(NewInternal("missing local type"))
	if !es.HasInternal() {
		t.Fatal("expected HasInternal to detect the added InternalError")
	}
}
