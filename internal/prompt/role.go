package prompt

import "strings"

// Role describes a professional role with specific expertise and
// responsibilities. Roles are flat nodes; only the name is required.
type Role struct {
	Name             string
	Expertise        string
	Responsibilities []string
	FocusAreas       []string
	Description      string
}

// NewRole creates a role with the given name.
func NewRole(name string) *Role {
	return &Role{
		Name:             name,
		Responsibilities: []string{},
		FocusAreas:       []string{},
	}
}

// SetExpertise sets the role's domain of expertise.
func (r *Role) SetExpertise(expertise string) *Role {
	r.Expertise = expertise
	return r
}

// SetDescription sets the detailed description of the role's perspective.
func (r *Role) SetDescription(description string) *Role {
	r.Description = description
	return r
}

// AddResponsibility appends a key responsibility.
func (r *Role) AddResponsibility(responsibility string) *Role {
	r.Responsibilities = append(r.Responsibilities, responsibility)
	return r
}

// AddFocusArea appends a specific area this role should focus on.
func (r *Role) AddFocusArea(focusArea string) *Role {
	r.FocusAreas = append(r.FocusAreas, focusArea)
	return r
}

// ToDict returns the dictionary projection. All fields are present
// unconditionally; list fields serialize as empty lists when unset.
func (r *Role) ToDict() map[string]any {
	return map[string]any{
		"name":             r.Name,
		"expertise":        r.Expertise,
		"responsibilities": stringList(r.Responsibilities),
		"focus_areas":      stringList(r.FocusAreas),
		"description":      r.Description,
	}
}

// ToPromptText renders the role as a text block: header, expertise line,
// description paragraph, then responsibility and focus-area bullet blocks.
func (r *Role) ToPromptText() string {
	lines := []string{"Role: " + r.Name}

	if r.Expertise != "" {
		lines = append(lines, "Expertise: "+r.Expertise)
	}

	if r.Description != "" {
		lines = append(lines, "", r.Description)
	}

	lines = appendBulletBlock(lines, "Responsibilities:", r.Responsibilities)
	lines = appendBulletBlock(lines, "Focus Areas:", r.FocusAreas)

	return strings.Join(lines, "\n")
}
