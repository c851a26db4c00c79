package prompt

import (
	"fmt"
	"strings"
)

// RequirementType classifies what aspect of the task a requirement governs.
type RequirementType string

const (
	RequirementFunctional   RequirementType = "functional"
	RequirementTechnical    RequirementType = "technical"
	RequirementAnalytical   RequirementType = "analytical"
	RequirementPresentation RequirementType = "presentation"
	RequirementCompliance   RequirementType = "compliance"
	RequirementPerformance  RequirementType = "performance"
	RequirementConstraint   RequirementType = "constraint"
	RequirementQuality      RequirementType = "quality"
)

var requirementTypes = map[RequirementType]bool{
	RequirementFunctional:   true,
	RequirementTechnical:    true,
	RequirementAnalytical:   true,
	RequirementPresentation: true,
	RequirementCompliance:   true,
	RequirementPerformance:  true,
	RequirementConstraint:   true,
	RequirementQuality:      true,
}

// ParseRequirementType coerces a raw string to a RequirementType, falling
// back to RequirementFunctional for unrecognized input.
func ParseRequirementType(s string) RequirementType {
	if t := RequirementType(s); requirementTypes[t] {
		return t
	}
	return RequirementFunctional
}

// RequirementPriority ranks how binding a requirement is.
type RequirementPriority string

const (
	PriorityCritical RequirementPriority = "critical"
	PriorityHigh     RequirementPriority = "high"
	PriorityMedium   RequirementPriority = "medium"
	PriorityLow      RequirementPriority = "low"
	PriorityOptional RequirementPriority = "optional"
)

var requirementPriorities = map[RequirementPriority]bool{
	PriorityCritical: true,
	PriorityHigh:     true,
	PriorityMedium:   true,
	PriorityLow:      true,
	PriorityOptional: true,
}

// ParseRequirementPriority coerces a raw string to a RequirementPriority,
// falling back to PriorityMedium for unrecognized input.
func ParseRequirementPriority(s string) RequirementPriority {
	if p := RequirementPriority(s); requirementPriorities[p] {
		return p
	}
	return PriorityMedium
}

// Requirement is a flat descriptive node specifying what a response must
// include, consider, or adhere to. Requirements have no children.
type Requirement struct {
	Description        string
	Type               RequirementType
	Priority           RequirementPriority
	Rationale          string
	AcceptanceCriteria []string
	Tags               []string
}

// NewRequirement creates a requirement with default type functional and
// priority medium.
func NewRequirement(description string) *Requirement {
	return &Requirement{
		Description:        description,
		Type:               RequirementFunctional,
		Priority:           PriorityMedium,
		AcceptanceCriteria: []string{},
		Tags:               []string{},
	}
}

// SetType sets the requirement type.
func (r *Requirement) SetType(rt RequirementType) *Requirement {
	r.Type = rt
	return r
}

// SetPriority sets the priority level.
func (r *Requirement) SetPriority(p RequirementPriority) *Requirement {
	r.Priority = p
	return r
}

// SetRationale sets the explanation of why this requirement exists.
func (r *Requirement) SetRationale(rationale string) *Requirement {
	r.Rationale = rationale
	return r
}

// AddAcceptanceCriterion appends a criterion for judging whether the
// requirement is met.
func (r *Requirement) AddAcceptanceCriterion(criterion string) *Requirement {
	r.AcceptanceCriteria = append(r.AcceptanceCriteria, criterion)
	return r
}

// AddTag appends a categorization tag.
func (r *Requirement) AddTag(tag string) *Requirement {
	r.Tags = append(r.Tags, tag)
	return r
}

// ToDict returns the dictionary projection. Rationale and acceptance
// criteria appear only when non-empty.
func (r *Requirement) ToDict() map[string]any {
	result := map[string]any{
		"description": r.Description,
		"type":        string(r.Type),
		"priority":    string(r.Priority),
		"tags":        stringList(r.Tags),
	}
	if r.Rationale != "" {
		result["rationale"] = r.Rationale
	}
	if len(r.AcceptanceCriteria) > 0 {
		result["acceptance_criteria"] = r.AcceptanceCriteria
	}
	return result
}

// ToPromptText renders the requirement as a text block headed by its
// priority.
func (r *Requirement) ToPromptText() string {
	lines := []string{fmt.Sprintf("Requirement (%s): %s", r.Priority, r.Description)}

	if r.Rationale != "" {
		lines = append(lines, "Rationale: "+r.Rationale)
	}

	if len(r.AcceptanceCriteria) > 0 {
		lines = append(lines, "Acceptance Criteria:")
		for _, criterion := range r.AcceptanceCriteria {
			lines = append(lines, "- "+criterion)
		}
	}

	return strings.Join(lines, "\n")
}
