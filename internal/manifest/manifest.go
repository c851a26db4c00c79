// Package manifest defines the YAML document-definition schema and turns
// decoded manifests into prompt trees. The manifest layer is the string
// boundary of the system: enum fields arrive as free-form text and are
// coerced to their typed defaults here, and scale values are clamped on the
// way in.
package manifest

import (
	"fmt"

	"github.com/A1exanderAlexeyuk/LlmPrompts/internal/prompt"
)

// Document is the top-level manifest shape, mirroring the builder's
// sections.
type Document struct {
	Title        string            `yaml:"title"`
	Approach     string            `yaml:"approach"`
	OutputFormat string            `yaml:"output_format"`
	Context      *ContextSpec      `yaml:"context"`
	Roles        []RoleSpec        `yaml:"roles"`
	Departments  []DepartmentSpec  `yaml:"departments"`
	Branches     []BranchSpec      `yaml:"branches"`
	Questions    []QuestionSpec    `yaml:"questions"`
	Requirements []RequirementSpec `yaml:"requirements"`
}

// RoleSpec declares a role.
type RoleSpec struct {
	Name             string   `yaml:"name"`
	Expertise        string   `yaml:"expertise"`
	Description      string   `yaml:"description"`
	Responsibilities []string `yaml:"responsibilities"`
	FocusAreas       []string `yaml:"focus_areas"`
}

// DepartmentSpec declares a department and its roles.
type DepartmentSpec struct {
	Name           string     `yaml:"name"`
	Mission        string     `yaml:"mission"`
	Description    string     `yaml:"description"`
	Functions      []string   `yaml:"functions"`
	ExpertiseAreas []string   `yaml:"expertise_areas"`
	Roles          []RoleSpec `yaml:"roles"`
}

// ThoughtSpec declares a thought; sub-thoughts nest recursively.
type ThoughtSpec struct {
	Content     string        `yaml:"content"`
	Type        string        `yaml:"type"`
	Order       int           `yaml:"order"`
	References  []string      `yaml:"references"`
	Tags        []string      `yaml:"tags"`
	SubThoughts []ThoughtSpec `yaml:"sub_thoughts"`
}

// BranchSpec declares a branch of thoughts. Priority is a pointer so an
// absent key keeps the builder default rather than clamping zero to one.
type BranchSpec struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Owner       string        `yaml:"owner"`
	Priority    *int          `yaml:"priority"`
	Tags        []string      `yaml:"tags"`
	Thoughts    []ThoughtSpec `yaml:"thoughts"`
}

// QuestionSpec declares a question; follow-ups nest recursively.
type QuestionSpec struct {
	Text       string         `yaml:"text"`
	Type       string         `yaml:"type"`
	Category   string         `yaml:"category"`
	Context    string         `yaml:"context"`
	Importance *int           `yaml:"importance"`
	Tags       []string       `yaml:"tags"`
	FollowUps  []QuestionSpec `yaml:"follow_ups"`
}

// RequirementSpec declares a requirement.
type RequirementSpec struct {
	Description        string   `yaml:"description"`
	Type               string   `yaml:"type"`
	Priority           string   `yaml:"priority"`
	Rationale          string   `yaml:"rationale"`
	AcceptanceCriteria []string `yaml:"acceptance_criteria"`
	Tags               []string `yaml:"tags"`
}

// ContextSpec declares the document context. Additional entries are an
// ordered list of key/value pairs so YAML authors control their rendering
// order.
type ContextSpec struct {
	Background     string      `yaml:"background"`
	Domain         string      `yaml:"domain"`
	Constraints    []string    `yaml:"constraints"`
	Assumptions    []string    `yaml:"assumptions"`
	Resources      []string    `yaml:"resources"`
	Stakeholders   []string    `yaml:"stakeholders"`
	AdditionalInfo []InfoEntry `yaml:"additional_info"`
}

// InfoEntry is one additional context entry; the value is either a scalar
// or a list.
type InfoEntry struct {
	Key   string `yaml:"key"`
	Value any    `yaml:"value"`
}

// ToBuilder converts the decoded manifest into a prompt builder. The only
// error case is a missing title; everything else coerces or clamps
// silently, matching the core's failure semantics.
func (d *Document) ToBuilder() (*prompt.Builder, error) {
	if d.Title == "" {
		return nil, fmt.Errorf("manifest has no title")
	}

	b := prompt.NewBuilder(d.Title)

	for _, rs := range d.Roles {
		b.AddRole(rs.build())
	}
	for _, ds := range d.Departments {
		b.AddDepartment(ds.build())
	}
	if d.Context != nil {
		b.SetContext(d.Context.build())
	}
	for _, bs := range d.Branches {
		b.AddBranch(bs.build())
	}
	for _, qs := range d.Questions {
		b.AddQuestion(qs.build())
	}
	for _, rs := range d.Requirements {
		b.AddRequirement(rs.build())
	}
	if d.Approach != "" {
		b.SetApproach(d.Approach)
	}
	if d.OutputFormat != "" {
		b.SetOutputFormat(d.OutputFormat)
	}

	return b, nil
}

func (s RoleSpec) build() *prompt.Role {
	r := prompt.NewRole(s.Name).
		SetExpertise(s.Expertise).
		SetDescription(s.Description)
	for _, resp := range s.Responsibilities {
		r.AddResponsibility(resp)
	}
	for _, area := range s.FocusAreas {
		r.AddFocusArea(area)
	}
	return r
}

func (s DepartmentSpec) build() *prompt.Department {
	d := prompt.NewDepartment(s.Name).
		SetMission(s.Mission).
		SetDescription(s.Description)
	for _, fn := range s.Functions {
		d.AddFunction(fn)
	}
	for _, area := range s.ExpertiseAreas {
		d.AddExpertiseArea(area)
	}
	for _, rs := range s.Roles {
		d.AddRole(rs.build())
	}
	return d
}

func (s ThoughtSpec) build() *prompt.Thought {
	t := prompt.NewThought(s.Content).
		SetType(prompt.ParseThoughtType(s.Type)).
		SetOrder(s.Order)
	for _, ref := range s.References {
		t.AddReference(ref)
	}
	for _, tag := range s.Tags {
		t.AddTag(tag)
	}
	for _, sub := range s.SubThoughts {
		t.AddSubThought(sub.build())
	}
	return t
}

func (s BranchSpec) build() *prompt.Branch {
	b := prompt.NewBranch(s.Name).
		SetDescription(s.Description).
		SetOwner(s.Owner)
	if s.Priority != nil {
		b.SetPriority(*s.Priority)
	}
	for _, tag := range s.Tags {
		b.AddTag(tag)
	}
	for _, ts := range s.Thoughts {
		b.AddThought(ts.build())
	}
	return b
}

func (s QuestionSpec) build() *prompt.Question {
	q := prompt.NewQuestion(s.Text).
		SetType(prompt.ParseQuestionType(s.Type)).
		SetCategory(prompt.ParseQuestionCategory(s.Category)).
		SetContext(s.Context)
	if s.Importance != nil {
		q.SetImportance(*s.Importance)
	}
	for _, tag := range s.Tags {
		q.AddTag(tag)
	}
	for _, fs := range s.FollowUps {
		q.AddFollowUp(fs.build())
	}
	return q
}

func (s RequirementSpec) build() *prompt.Requirement {
	r := prompt.NewRequirement(s.Description).
		SetType(prompt.ParseRequirementType(s.Type)).
		SetRationale(s.Rationale)
	if s.Priority != "" {
		r.SetPriority(prompt.ParseRequirementPriority(s.Priority))
	}
	for _, criterion := range s.AcceptanceCriteria {
		r.AddAcceptanceCriterion(criterion)
	}
	for _, tag := range s.Tags {
		r.AddTag(tag)
	}
	return r
}

func (s *ContextSpec) build() *prompt.Context {
	c := prompt.NewContext().
		SetBackground(s.Background).
		SetDomain(s.Domain)
	for _, item := range s.Constraints {
		c.AddConstraint(item)
	}
	for _, item := range s.Assumptions {
		c.AddAssumption(item)
	}
	for _, item := range s.Resources {
		c.AddResource(item)
	}
	for _, item := range s.Stakeholders {
		c.AddStakeholder(item)
	}
	for _, entry := range s.AdditionalInfo {
		c.AddInfo(entry.Key, normalizeInfoValue(entry.Value))
	}
	return c
}

// normalizeInfoValue maps YAML-decoded values onto the two shapes the
// context renders: a scalar string or a list of strings.
func normalizeInfoValue(v any) any {
	switch val := v.(type) {
	case []any:
		items := make([]string, 0, len(val))
		for _, item := range val {
			items = append(items, fmt.Sprint(item))
		}
		return items
	case []string:
		return val
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}
