package prompt

import (
	"strings"
	"testing"
)

func TestDepartmentToDict(t *testing.T) {
	d := NewDepartment("Medical Affairs")
	dict := d.ToDict()

	if dict["name"] != "Medical Affairs" {
		t.Errorf("name = %v", dict["name"])
	}
	if _, present := dict["roles"]; present {
		t.Error("empty roles should be omitted")
	}

	d.AddRole(NewRole("Epidemiologist")).AddRole(NewRole("Biostatistician"))
	dict = d.ToDict()
	roles, ok := dict["roles"].([]map[string]any)
	if !ok || len(roles) != 2 {
		t.Fatalf("roles = %v", dict["roles"])
	}
	if roles[0]["name"] != "Epidemiologist" || roles[1]["name"] != "Biostatistician" {
		t.Errorf("role order not preserved: %v, %v", roles[0]["name"], roles[1]["name"])
	}
}

func TestDepartmentPromptTextIndentsRoles(t *testing.T) {
	dept := NewDepartment("Medical Affairs").
		SetMission("Bridge science and practice.").
		AddFunction("Evidence generation").
		AddRole(NewRole("Epidemiologist").
			SetExpertise("OMOP CDM").
			AddResponsibility("Define cohorts"))

	got := dept.ToPromptText()
	if !strings.HasPrefix(got, "Department: Medical Affairs\nMission: Bridge science and practice.") {
		t.Errorf("header lines wrong:\n%s", got)
	}

	// Every line of the role block, including its blank lines, carries the
	// two-space prefix.
	if !strings.Contains(got, "  Role: Epidemiologist") {
		t.Errorf("role header not indented:\n%s", got)
	}
	if !strings.Contains(got, "  Expertise: OMOP CDM") {
		t.Errorf("role sub-line not indented:\n%s", got)
	}
	if !strings.Contains(got, "  Responsibilities:") {
		t.Errorf("role list label not indented:\n%s", got)
	}
	if !strings.Contains(got, "  - Define cohorts") {
		t.Errorf("role bullet not indented:\n%s", got)
	}
}

func TestDepartmentPromptTextHeaderOnly(t *testing.T) {
	if got := NewDepartment("Finance").ToPromptText(); got != "Department: Finance" {
		t.Errorf("bare department should render only its header, got %q", got)
	}
}
