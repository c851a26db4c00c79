package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestCIReporterLogsTitles(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{out: &buf}

	r.Start(2)
	r.Update(1, "Drug X Market Assessment")
	r.Update(2, "Healthcare Data Analysis Plan")
	r.Finish()

	out := buf.String()
	for _, want := range []string{
		"Building 2 prompt documents",
		"[1/2] Drug X Market Assessment",
		"[2/2] Healthcare Data Analysis Plan",
		"Prompt build complete",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("line %q missing from output:\n%s", want, out)
		}
	}
}

func TestNewReporterHonorsCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter().(*CIReporter); !ok {
		t.Error("expected CIReporter when CI is set")
	}

	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	if _, ok := NewReporter().(*TerminalReporter); !ok {
		t.Error("expected TerminalReporter outside CI")
	}
}
