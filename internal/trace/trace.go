// Package trace is an opt-in, single-threaded progress logger for the
// pass driver (instance → recursion → exhaustiveness). It follows the
// teacher's internal/evaluator/builtins_term.go: github.com/mattn/go-isatty
// decides whether stderr is a terminal worth decorating, github.com/kr/pretty
// dumps structures (local-type tables, pattern forests) when tracing runs
// verbose, and github.com/dustin/go-humanize renders the definition/error
// counts in a pass's summary line.
package trace

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"
	"github.com/mattn/go-isatty"

	"github.com/vscfl-lang/frontend/internal/config"
)

// Tracer logs one run of the pass driver. A Tracer built by New writes
// to os.Stderr and is silent whenever config.IsTraceMode is false. A nil
// *Tracer is always silent, so callers can hold a *Tracer unconditionally
// instead of threading a nil check through every pass.
type Tracer struct {
	out     io.Writer
	verbose bool
	isTTY   bool
}

// New returns a Tracer writing to os.Stderr. verbose additionally dumps
// structures via kr/pretty on each Detail call.
func New(verbose bool) *Tracer {
	return &Tracer{
		out:     os.Stderr,
		verbose: verbose,
		isTTY:   isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()),
	}
}

// enabled reports whether this Tracer should produce any output at all.
func (t *Tracer) enabled() bool {
	return t != nil && config.IsTraceMode
}

// Pass announces the start of a driver pass (e.g. "instance", "recursion",
// "exhaustiveness"). A no-op unless config.IsTraceMode is set.
func (t *Tracer) Pass(name string) func(defCount, errCount int) {
	if !t.enabled() {
		return func(int, int) {}
	}
	start := time.Now()
	t.printf("-- %s --", name)
	return func(defCount, errCount int) {
		t.printf(
			"%s: %s definitions, %s errors (%s)",
			name,
			humanize.Comma(int64(defCount)),
			humanize.Comma(int64(errCount)),
			time.Since(start).Round(time.Microsecond),
		)
	}
}

// Detail logs a free-form trace line, pretty-printing v (via kr/pretty)
// after it only when the Tracer was built with verbose set — the table
// dumps spec.md's design notes mention (local-type tables, pattern
// forests) are large enough that plain-mode tracing should skip them.
func (t *Tracer) Detail(format string, v any, args ...any) {
	if !t.enabled() {
		return
	}
	t.printf(format, args...)
	if t.verbose {
		fmt.Fprintln(t.out, pretty.Sprint(v))
	}
}

func (t *Tracer) printf(format string, args ...any) {
	prefix := "trace: "
	if t.isTTY {
		prefix = "\x1b[2mtrace:\x1b[0m "
	}
	fmt.Fprintf(t.out, prefix+format+"\n", args...)
}
