package prompt

import "strings"

// Branch organizes related thoughts into a named path of reasoning, letting
// several parallel analytical perspectives coexist in one document. A branch
// exclusively owns its thoughts.
type Branch struct {
	Name        string
	Description string
	Thoughts    []*Thought
	Owner       string
	Priority    int
	Tags        []string
}

// NewBranch creates a branch with the given name and the default priority 3.
func NewBranch(name string) *Branch {
	return &Branch{
		Name:     name,
		Thoughts: []*Thought{},
		Priority: 3,
		Tags:     []string{},
	}
}

// SetDescription sets the description of what this branch explores.
func (b *Branch) SetDescription(description string) *Branch {
	b.Description = description
	return b
}

// SetOwner sets the role or persona responsible for this branch.
func (b *Branch) SetOwner(owner string) *Branch {
	b.Owner = owner
	return b
}

// SetPriority sets the priority level, clamped to [1,5].
func (b *Branch) SetPriority(priority int) *Branch {
	b.Priority = clampScale(priority)
	return b
}

// AddThought appends a thought to this branch.
func (b *Branch) AddThought(thought *Thought) *Branch {
	b.Thoughts = append(b.Thoughts, thought)
	return b
}

// AddTag appends a categorization tag.
func (b *Branch) AddTag(tag string) *Branch {
	b.Tags = append(b.Tags, tag)
	return b
}

// ToDict returns the dictionary projection. Thoughts appear only when the
// branch has any.
func (b *Branch) ToDict() map[string]any {
	result := map[string]any{
		"name":        b.Name,
		"description": b.Description,
		"owner":       b.Owner,
		"priority":    b.Priority,
		"tags":        stringList(b.Tags),
	}
	if len(b.Thoughts) > 0 {
		thoughts := make([]map[string]any, 0, len(b.Thoughts))
		for _, thought := range b.Thoughts {
			thoughts = append(thoughts, thought.ToDict())
		}
		result["thoughts"] = thoughts
	}
	return result
}

// ToPromptText renders the branch header, description and owner, followed by
// each thought rendered at one level of indentation.
func (b *Branch) ToPromptText() string {
	lines := []string{"Branch " + b.Name + ":"}

	if b.Description != "" {
		lines = append(lines, b.Description)
	}

	if b.Owner != "" {
		lines = append(lines, "Owner: "+b.Owner)
	}

	for _, thought := range b.Thoughts {
		lines = append(lines, thought.ToPromptText(1))
	}

	return strings.Join(lines, "\n")
}
