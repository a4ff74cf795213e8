package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestVerboseSuppressedByDefault(t *testing.T) {
	var buf bytes.Buffer
	o := New(Config{Writer: &buf})

	o.Verbose("processing %s", "a.tsx")
	if buf.Len() != 0 {
		t.Errorf("verbose output emitted when disabled: %q", buf.String())
	}
}

func TestVerboseEmittedWhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	o := New(Config{Writer: &buf, Verbose: true})

	o.Verbose("processing %s", "a.tsx")
	if got := buf.String(); got != "processing a.tsx\n" {
		t.Errorf("verbose output = %q", got)
	}
}

func TestInfoAppendsNewline(t *testing.T) {
	var buf bytes.Buffer
	o := New(Config{Writer: &buf})

	o.Info("done")
	o.Info("already terminated\n")
	if got := buf.String(); got != "done\nalready terminated\n" {
		t.Errorf("info output = %q", got)
	}
}

func TestChanged(t *testing.T) {
	var buf bytes.Buffer
	o := New(Config{Writer: &buf})

	o.Changed("src/a.tsx", true)
	o.Changed("src/b.tsx", false)

	got := buf.String()
	if !strings.Contains(got, "rewrote src/a.tsx") {
		t.Errorf("missing rewrote line: %q", got)
	}
	if !strings.Contains(got, "would rewrite src/b.tsx") {
		t.Errorf("missing would-rewrite line: %q", got)
	}
}

func TestErrorGoesToErrWriter(t *testing.T) {
	var out, errOut bytes.Buffer
	o := New(Config{Writer: &out, ErrWriter: &errOut})

	o.Error("boom: %v", "reason")
	if out.Len() != 0 {
		t.Errorf("error leaked to stdout: %q", out.String())
	}
	if got := errOut.String(); got != "boom: reason\n" {
		t.Errorf("error output = %q", got)
	}
}

func TestProgressSuppressedWithoutTTY(t *testing.T) {
	var buf bytes.Buffer
	o := New(Config{Writer: &buf, IsTTY: false})

	o.StartProgress(10)
	o.UpdateProgress(3)
	o.EndProgress()
	if buf.Len() != 0 {
		t.Errorf("progress emitted without TTY: %q", buf.String())
	}
}

func TestProgressOnTTY(t *testing.T) {
	var buf bytes.Buffer
	o := New(Config{Writer: &buf, IsTTY: true})

	o.StartProgress(2)
	o.UpdateProgress(1)
	o.EndProgress()

	got := buf.String()
	if !strings.Contains(got, "Formatting file 1/2") {
		t.Errorf("progress output = %q", got)
	}
	if !strings.HasSuffix(got, "\r") {
		t.Errorf("progress line not cleared: %q", got)
	}
}
