package prompt

import "strings"

// Department groups roles under an organizational unit with its own mission,
// functions and expertise areas. A department exclusively owns the roles
// attached to it.
type Department struct {
	Name           string
	Mission        string
	Functions      []string
	ExpertiseAreas []string
	Description    string
	Roles          []*Role
}

// NewDepartment creates a department with the given name.
func NewDepartment(name string) *Department {
	return &Department{
		Name:           name,
		Functions:      []string{},
		ExpertiseAreas: []string{},
		Roles:          []*Role{},
	}
}

// SetMission sets the department's core mission statement.
func (d *Department) SetMission(mission string) *Department {
	d.Mission = mission
	return d
}

// SetDescription sets the detailed description of the department's place in
// the organization.
func (d *Department) SetDescription(description string) *Department {
	d.Description = description
	return d
}

// AddFunction appends a key function or responsibility.
func (d *Department) AddFunction(function string) *Department {
	d.Functions = append(d.Functions, function)
	return d
}

// AddExpertiseArea appends an area of specialized knowledge.
func (d *Department) AddExpertiseArea(area string) *Department {
	d.ExpertiseAreas = append(d.ExpertiseAreas, area)
	return d
}

// AddRole attaches a role to this department.
func (d *Department) AddRole(role *Role) *Department {
	d.Roles = append(d.Roles, role)
	return d
}

// ToDict returns the dictionary projection. Flat fields are present
// unconditionally; roles appear only when the department has any.
func (d *Department) ToDict() map[string]any {
	result := map[string]any{
		"name":            d.Name,
		"mission":         d.Mission,
		"functions":       stringList(d.Functions),
		"expertise_areas": stringList(d.ExpertiseAreas),
		"description":     d.Description,
	}
	if len(d.Roles) > 0 {
		roles := make([]map[string]any, 0, len(d.Roles))
		for _, role := range d.Roles {
			roles = append(roles, role.ToDict())
		}
		result["roles"] = roles
	}
	return result
}

// ToPromptText renders the department as a text block. Each contained role's
// full multi-line block is indented by two spaces uniformly.
func (d *Department) ToPromptText() string {
	lines := []string{"Department: " + d.Name}

	if d.Mission != "" {
		lines = append(lines, "Mission: "+d.Mission)
	}

	if d.Description != "" {
		lines = append(lines, "", d.Description)
	}

	lines = appendBulletBlock(lines, "Key Functions:", d.Functions)
	lines = appendBulletBlock(lines, "Areas of Expertise:", d.ExpertiseAreas)

	if len(d.Roles) > 0 {
		lines = append(lines, "", "Department Roles:")
		for _, role := range d.Roles {
			lines = append(lines, indentBlock(role.ToPromptText(), "  "))
		}
	}

	return strings.Join(lines, "\n")
}
