// Package diag implements the frontend's two-kind error model: a
// user-facing Message tied to a source position, and an Internal error
// reserved for invariant violations that indicate the typer and this
// core have drifted out of sync.
package diag

import (
	"fmt"

	"github.com/vscfl-lang/frontend/internal/token"
)

// MessageError is a user-visible diagnostic. Passes accumulate these and
// keep walking sibling nodes so one unreachable use doesn't hide another.
type MessageError struct {
	Pos  token.Pos
	Text string
}

func (e *MessageError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Text)
}

// NewMessage builds a MessageError, applying fmt.Sprintf to text/args.
func NewMessage(pos token.Pos, text string, args ...any) *MessageError {
	if len(args) > 0 {
		text = fmt.Sprintf(text, args...)
	}
	return &MessageError{Pos: pos, Text: text}
}

// InternalError indicates the walker found a shape the typer should never
// have produced: a missing local type on a visited node, a parameter
// where a concrete type was expected, a constructor in variable position.
// It aborts the pass that raised it immediately.
type InternalError struct {
	Text string
}

func (e *InternalError) Error() string {
	return "internal: " + e.Text
}

// NewInternal builds an InternalError.
func NewInternal(text string, args ...any) *InternalError {
	if len(args) > 0 {
		text = fmt.Sprintf(text, args...)
	}
	return &InternalError{Text: text}
}

// Errors is an ordered list of Message/Internal errors accumulated by a
// pass. A nil or empty Errors means the pass succeeded.
type Errors []error

// Add appends a diagnostic to the accumulator.
func (es *Errors) Add(err error) {
	*es = append(*es, err)
}

// AsError returns nil for an empty Errors, and the Errors itself
// (satisfying the error interface) otherwise — the idiomatic Go analogue
// of Result<(), Errors>.
func (es Errors) AsError() error {
	if len(es) == 0 {
		return nil
	}
	return es
}

func (es Errors) Error() string {
	s := ""
	for i, e := range es {
		if i > 0 {
			s += "\n"
		}
		s += e.Error()
	}
	return s
}

// HasInternal reports whether any accumulated error is an InternalError.
func (es Errors) HasInternal() bool {
	for _, e := range es {
		if _, ok := e.(*InternalError); ok {
			return true
		}
	}
	return false
}
