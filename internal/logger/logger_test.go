package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestVerbosityGating(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	SetVerbosity(int(Info))
	defer SetVerbosity(int(Info))

	Errorf("boom %d", 1)
	Infof("started")
	Debugf("should be suppressed")
	Tracef("should be suppressed too")

	out := buf.String()
	if !strings.Contains(out, "[ERROR] boom 1") {
		t.Fatalf("expected error line in output, got:\n%s", out)
	}
	if !strings.Contains(out, "[INFO]  started") {
		t.Fatalf("expected info line in output, got:\n%s", out)
	}
	if strings.Contains(out, "[DEBUG]") || strings.Contains(out, "[TRACE]") {
		t.Fatalf("debug/trace leaked at info verbosity:\n%s", out)
	}

	buf.Reset()
	SetVerbosity(int(Trace))
	Debugf("now visible")
	Tracef("also visible")

	out = buf.String()
	if !strings.Contains(out, "[DEBUG] now visible") || !strings.Contains(out, "[TRACE] also visible") {
		t.Fatalf("expected debug and trace lines at trace verbosity, got:\n%s", out)
	}
}
