package prompt

import "strings"

// Builder is the root composer for a structured analytical prompt. Nodes are
// accumulated through fluent adders and the whole tree is serialized on
// demand; Build and ToDict may be called repeatedly and interleaved with
// further mutation, each call reflecting current state.
type Builder struct {
	Title        string
	Roles        []*Role
	Departments  []*Department
	Context      *Context
	Branches     []*Branch
	Questions    []*Question
	Requirements []*Requirement
	Approach     string
	OutputFormat string
}

// NewBuilder creates a builder for a document with the given title.
func NewBuilder(title string) *Builder {
	return &Builder{
		Title:        title,
		Roles:        []*Role{},
		Departments:  []*Department{},
		Branches:     []*Branch{},
		Questions:    []*Question{},
		Requirements: []*Requirement{},
	}
}

// AddRole appends a standalone role, independent of any department.
func (b *Builder) AddRole(role *Role) *Builder {
	b.Roles = append(b.Roles, role)
	return b
}

// AddDepartment appends a department.
func (b *Builder) AddDepartment(department *Department) *Builder {
	b.Departments = append(b.Departments, department)
	return b
}

// AddRoleToDepartment attaches a role to the named department, creating the
// department first if it does not exist yet.
func (b *Builder) AddRoleToDepartment(role *Role, departmentName string) *Builder {
	for _, dept := range b.Departments {
		if dept.Name == departmentName {
			dept.AddRole(role)
			return b
		}
	}
	b.Departments = append(b.Departments, NewDepartment(departmentName).AddRole(role))
	return b
}

// SetContext sets the document context, replacing any previous one. A
// builder holds at most one context.
func (b *Builder) SetContext(context *Context) *Builder {
	b.Context = context
	return b
}

// AddBranch appends an analysis branch.
func (b *Builder) AddBranch(branch *Branch) *Builder {
	b.Branches = append(b.Branches, branch)
	return b
}

// AddQuestion appends a question.
func (b *Builder) AddQuestion(question *Question) *Builder {
	b.Questions = append(b.Questions, question)
	return b
}

// AddRequirement appends a requirement.
func (b *Builder) AddRequirement(requirement *Requirement) *Builder {
	b.Requirements = append(b.Requirements, requirement)
	return b
}

// SetApproach sets the analytical approach description.
func (b *Builder) SetApproach(approach string) *Builder {
	b.Approach = approach
	return b
}

// SetOutputFormat sets the expected output format description.
func (b *Builder) SetOutputFormat(outputFormat string) *Builder {
	b.OutputFormat = outputFormat
	return b
}

// ToDict returns the dictionary projection of the whole document. Each
// sub-collection nests its own projection under a named key and is included
// only when non-empty, mirroring Build's omit-when-empty policy.
func (b *Builder) ToDict() map[string]any {
	result := map[string]any{
		"title": b.Title,
	}

	if len(b.Roles) > 0 {
		roles := make([]map[string]any, 0, len(b.Roles))
		for _, role := range b.Roles {
			roles = append(roles, role.ToDict())
		}
		result["roles"] = roles
	}

	if len(b.Departments) > 0 {
		departments := make([]map[string]any, 0, len(b.Departments))
		for _, dept := range b.Departments {
			departments = append(departments, dept.ToDict())
		}
		result["departments"] = departments
	}

	if b.Context != nil {
		result["context"] = b.Context.ToDict()
	}

	if len(b.Branches) > 0 {
		branches := make([]map[string]any, 0, len(b.Branches))
		for _, branch := range b.Branches {
			branches = append(branches, branch.ToDict())
		}
		result["branches"] = branches
	}

	if len(b.Questions) > 0 {
		questions := make([]map[string]any, 0, len(b.Questions))
		for _, question := range b.Questions {
			questions = append(questions, question.ToDict())
		}
		result["questions"] = questions
	}

	if len(b.Requirements) > 0 {
		requirements := make([]map[string]any, 0, len(b.Requirements))
		for _, req := range b.Requirements {
			requirements = append(requirements, req.ToDict())
		}
		result["requirements"] = requirements
	}

	if b.Approach != "" {
		result["approach"] = b.Approach
	}

	if b.OutputFormat != "" {
		result["output_format"] = b.OutputFormat
	}

	return result
}

// Build generates the complete prompt text. Sections appear in fixed order,
// each populated section preceded by its heading and followed by one blank
// separator line; empty sections contribute nothing.
func (b *Builder) Build() string {
	sections := []string{"# " + b.Title, ""}

	if len(b.Departments) > 0 {
		sections = append(sections, "## Organizational Context")
		for _, dept := range b.Departments {
			sections = append(sections, dept.ToPromptText(), "")
		}
	}

	if len(b.Roles) > 0 {
		sections = append(sections, "## Roles")
		for _, role := range b.Roles {
			sections = append(sections, role.ToPromptText(), "")
		}
	}

	if b.Context != nil {
		sections = append(sections, "## Context", b.Context.ToPromptText(), "")
	}

	if len(b.Branches) > 0 {
		sections = append(sections, "## Analysis Structure")
		for _, branch := range b.Branches {
			sections = append(sections, branch.ToPromptText(), "")
		}
	}

	if len(b.Questions) > 0 {
		sections = append(sections, "## Questions to Address")
		for _, question := range b.Questions {
			sections = append(sections, question.ToPromptText(0), "")
		}
	}

	if len(b.Requirements) > 0 {
		sections = append(sections, "## Requirements")
		for _, req := range b.Requirements {
			sections = append(sections, req.ToPromptText(), "")
		}
	}

	if b.Approach != "" {
		sections = append(sections, "## Approach", b.Approach, "")
	}

	if b.OutputFormat != "" {
		sections = append(sections, "## Output Format", b.OutputFormat)
	}

	return strings.Join(sections, "\n")
}
