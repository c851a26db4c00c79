package prompt

import (
	"strings"
	"testing"
)

func TestParseThoughtType(t *testing.T) {
	tests := []struct {
		input string
		want  ThoughtType
	}{
		{"analysis", ThoughtAnalysis},
		{"hypothesis", ThoughtHypothesis},
		{"methodology", ThoughtMethodology},
		{"consideration", ThoughtConsideration},
		{"bogus", ThoughtConsideration},
		{"", ThoughtConsideration},
		{"ANALYSIS", ThoughtConsideration},
	}
	for _, tt := range tests {
		if got := ParseThoughtType(tt.input); got != tt.want {
			t.Errorf("ParseThoughtType(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestThoughtFluentChain(t *testing.T) {
	th := NewThought("check incidence").
		SetType(ThoughtAnalysis).
		SetOrder(2).
		AddReference("cohort study 2023").
		AddTag("epi")

	if th.Type != ThoughtAnalysis {
		t.Errorf("type = %q, want %q", th.Type, ThoughtAnalysis)
	}
	if th.Order != 2 {
		t.Errorf("order = %d, want 2", th.Order)
	}
	if len(th.References) != 1 || th.References[0] != "cohort study 2023" {
		t.Errorf("references = %v", th.References)
	}
	if len(th.Tags) != 1 || th.Tags[0] != "epi" {
		t.Errorf("tags = %v", th.Tags)
	}
}

func TestThoughtToDictMinimal(t *testing.T) {
	d := NewThought("bare").ToDict()

	if d["content"] != "bare" {
		t.Errorf("content = %v", d["content"])
	}
	if d["type"] != "consideration" {
		t.Errorf("type = %v, want consideration", d["type"])
	}
	if d["order"] != 0 {
		t.Errorf("order = %v, want 0", d["order"])
	}
	tags, ok := d["tags"].([]string)
	if !ok || len(tags) != 0 {
		t.Errorf("tags = %v, want empty list", d["tags"])
	}
	if _, present := d["references"]; present {
		t.Error("empty references should be omitted")
	}
	if _, present := d["sub_thoughts"]; present {
		t.Error("empty sub_thoughts should be omitted")
	}
}

func TestThoughtToDictNested(t *testing.T) {
	parent := NewThought("parent").
		AddSubThought(NewThought("first child")).
		AddSubThought(NewThought("second child").AddSubThought(NewThought("grandchild")))

	d := parent.ToDict()
	subs, ok := d["sub_thoughts"].([]map[string]any)
	if !ok {
		t.Fatalf("sub_thoughts has wrong shape: %T", d["sub_thoughts"])
	}
	if len(subs) != 2 {
		t.Fatalf("sub_thoughts count = %d, want 2", len(subs))
	}
	if subs[0]["content"] != "first child" || subs[1]["content"] != "second child" {
		t.Errorf("child order not preserved: %v, %v", subs[0]["content"], subs[1]["content"])
	}
	grand, ok := subs[1]["sub_thoughts"].([]map[string]any)
	if !ok || len(grand) != 1 || grand[0]["content"] != "grandchild" {
		t.Errorf("grandchild not nested: %v", subs[1]["sub_thoughts"])
	}
}

func TestThoughtPromptTextHeader(t *testing.T) {
	tests := []struct {
		name  string
		order int
		want  string
	}{
		{"ordered", 1, "Thought 1: look here"},
		{"unordered", 0, "Thought: look here"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewThought("look here").SetOrder(tt.order).ToPromptText(0)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestThoughtPromptTextNesting(t *testing.T) {
	parent := NewThought("parent").
		AddSubThought(NewThought("child one")).
		AddSubThought(NewThought("child two").AddSubThought(NewThought("grandchild")))

	got := parent.ToPromptText(0)
	want := strings.Join([]string{
		"Thought: parent",
		"  Thought: child one",
		"  Thought: child two",
		"    Thought: grandchild",
	}, "\n")
	if got != want {
		t.Errorf("nested text:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestThoughtPromptTextReferences(t *testing.T) {
	th := NewThought("claim").AddReference("source A").AddReference("source B")
	got := th.ToPromptText(1)
	want := "  Thought: claim\n  References: source A, source B"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestThoughtRenderIdempotent(t *testing.T) {
	th := NewThought("stable").SetOrder(3).AddSubThought(NewThought("sub"))
	if th.ToPromptText(0) != th.ToPromptText(0) {
		t.Error("ToPromptText is not idempotent")
	}
	first := th.ToDict()
	second := th.ToDict()
	if len(first) != len(second) {
		t.Error("ToDict is not idempotent")
	}
}
