package prompt

import (
	"strings"
	"testing"
)

func TestRoleToDictAllFieldsPresent(t *testing.T) {
	d := NewRole("Epidemiologist").ToDict()

	if d["name"] != "Epidemiologist" {
		t.Errorf("name = %v", d["name"])
	}
	for _, key := range []string{"expertise", "responsibilities", "focus_areas", "description"} {
		if _, present := d[key]; !present {
			t.Errorf("key %q should be present even when empty", key)
		}
	}
	if resp, ok := d["responsibilities"].([]string); !ok || len(resp) != 0 {
		t.Errorf("responsibilities = %v, want empty list", d["responsibilities"])
	}
}

func TestRolePromptText(t *testing.T) {
	r := NewRole("Epidemiologist").
		SetExpertise("OMOP CDM").
		SetDescription("Designs population-level studies.").
		AddResponsibility("Define cohorts").
		AddFocusArea("Incidence and prevalence")

	got := r.ToPromptText()
	want := strings.Join([]string{
		"Role: Epidemiologist",
		"Expertise: OMOP CDM",
		"",
		"Designs population-level studies.",
		"",
		"Responsibilities:",
		"- Define cohorts",
		"",
		"Focus Areas:",
		"- Incidence and prevalence",
	}, "\n")
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRolePromptTextHeaderOnly(t *testing.T) {
	if got := NewRole("Reviewer").ToPromptText(); got != "Role: Reviewer" {
		t.Errorf("bare role should render only its header, got %q", got)
	}
}
