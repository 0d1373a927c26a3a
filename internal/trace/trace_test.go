package trace

import (
	"bytes"
	"testing"

	"github.com/vscfl-lang/frontend/internal/config"
)

func TestTracerSilentByDefault(t *testing.T) {
	config.IsTraceMode = false
	tr := New(false)
	buf := &bytes.Buffer{}
	tr.out = buf

	done := tr.Pass("instance")
	done(3, 0)
	tr.Detail("detail", nil)

	if buf.Len() != 0 {
		t.Fatalf("output = %q, want empty while trace mode is off", buf.String())
	}
}

func TestTracerWritesWhenEnabled(t *testing.T) {
	config.IsTraceMode = true
	defer func() { config.IsTraceMode = false }()

	tr := New(false)
	buf := &bytes.Buffer{}
	tr.out = buf

	done := tr.Pass("instance")
	done(3, 1)

	if buf.Len() == 0 {
		t.Fatalf("output is empty, want a pass summary while trace mode is on")
	}
}

func TestTracerDetailPrettyPrintsWhenVerbose(t *testing.T) {
	config.IsTraceMode = true
	defer func() { config.IsTraceMode = false }()

	tr := New(true)
	buf := &bytes.Buffer{}
	tr.out = buf

	tr.Detail("checked %s", struct{ Name string }{"A"}, "A")

	if buf.Len() == 0 {
		t.Fatalf("output is empty, want a detail line plus a pretty-printed dump")
	}
	if !bytes.Contains(buf.Bytes(), []byte("Name:")) {
		t.Fatalf("output = %q, want the pretty-printed struct field", buf.String())
	}
}

func TestNilTracerIsSafe(t *testing.T) {
	config.IsTraceMode = true
	defer func() { config.IsTraceMode = false }()

	var tr *Tracer
	done := tr.Pass("instance")
	done(1, 0)
	tr.Detail("detail", nil)
}
