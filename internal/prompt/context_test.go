package prompt

import (
	"strings"
	"testing"
)

func TestContextToDictAlwaysPresentFields(t *testing.T) {
	d := NewContext().ToDict()

	for _, key := range []string{"background", "domain", "constraints", "assumptions", "resources", "stakeholders"} {
		if _, present := d[key]; !present {
			t.Errorf("key %q missing from empty context dict", key)
		}
	}
	if lists, ok := d["constraints"].([]string); !ok || len(lists) != 0 {
		t.Errorf("constraints = %v, want empty list", d["constraints"])
	}
}

func TestContextAdditionalInfoMergesFlat(t *testing.T) {
	c := NewContext().
		SetBackground("Phase III complete").
		AddInfo("data_window", "2015-2025").
		AddInfo("cohorts", []string{"treated", "comparator"})

	d := c.ToDict()
	if d["data_window"] != "2015-2025" {
		t.Errorf("scalar entry not merged: %v", d["data_window"])
	}
	cohorts, ok := d["cohorts"].([]string)
	if !ok || len(cohorts) != 2 {
		t.Errorf("list entry not merged: %v", d["cohorts"])
	}
	if _, present := d["additional_info"]; present {
		t.Error("additional entries must merge flat, not nest")
	}
}

func TestContextAdditionalInfoShadowsNamedField(t *testing.T) {
	// Entries apply after named fields, so a colliding key wins.
	c := NewContext().SetDomain("oncology").AddInfo("domain", "cardiology")
	d := c.ToDict()
	if d["domain"] != "cardiology" {
		t.Errorf("domain = %v, want shadowing value cardiology", d["domain"])
	}
}

func TestContextPromptText(t *testing.T) {
	c := NewContext().
		SetBackground("A novel therapy enters the market.").
		SetDomain("Pharmaceutical research").
		AddConstraint("HIPAA compliance").
		AddResource("OMOP CDM data").
		AddStakeholder("Medical Affairs")

	got := c.ToPromptText()
	want := strings.Join([]string{
		"A novel therapy enters the market.",
		"Domain: Pharmaceutical research",
		"",
		"Constraints:",
		"- HIPAA compliance",
		"",
		"Available Resources:",
		"- OMOP CDM data",
		"",
		"Stakeholders:",
		"- Medical Affairs",
	}, "\n")
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestContextPromptTextAdditionalInfoShapes(t *testing.T) {
	c := NewContext().
		SetBackground("bg").
		AddInfo("Data Window", "2015-2025").
		AddInfo("Key Cohorts", []string{"treated", "untreated"})

	got := c.ToPromptText()
	want := strings.Join([]string{
		"bg",
		"",
		"Data Window: 2015-2025",
		"",
		"Key Cohorts:",
		"- treated",
		"- untreated",
	}, "\n")
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestContextAdditionalInfoOrderPreserved(t *testing.T) {
	c := NewContext()
	keys := []string{"zeta", "alpha", "mid"}
	for _, k := range keys {
		c.AddInfo(k, "v")
	}

	text := c.ToPromptText()
	last := -1
	for _, k := range keys {
		idx := strings.Index(text, k+": v")
		if idx < 0 {
			t.Fatalf("key %q missing from text", k)
		}
		if idx < last {
			t.Errorf("key %q rendered out of insertion order", k)
		}
		last = idx
	}
}

func TestContextEmptyRendersNothing(t *testing.T) {
	if got := NewContext().ToPromptText(); got != "" {
		t.Errorf("empty context should render empty text, got %q", got)
	}
}
