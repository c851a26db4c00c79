package prompt

import (
	"fmt"
	"strings"
)

// ThoughtType classifies the analytical role of a thought.
type ThoughtType string

const (
	ThoughtAnalysis       ThoughtType = "analysis"
	ThoughtHypothesis     ThoughtType = "hypothesis"
	ThoughtConsideration  ThoughtType = "consideration"
	ThoughtLimitation     ThoughtType = "limitation"
	ThoughtImplication    ThoughtType = "implication"
	ThoughtRecommendation ThoughtType = "recommendation"
	ThoughtQuestion       ThoughtType = "question"
	ThoughtObservation    ThoughtType = "observation"
	ThoughtInsight        ThoughtType = "insight"
	ThoughtMethodology    ThoughtType = "methodology"
)

var thoughtTypes = map[ThoughtType]bool{
	ThoughtAnalysis:       true,
	ThoughtHypothesis:     true,
	ThoughtConsideration:  true,
	ThoughtLimitation:     true,
	ThoughtImplication:    true,
	ThoughtRecommendation: true,
	ThoughtQuestion:       true,
	ThoughtObservation:    true,
	ThoughtInsight:        true,
	ThoughtMethodology:    true,
}

// ParseThoughtType coerces a raw string to a ThoughtType. Unrecognized input
// falls back to ThoughtConsideration rather than failing; upstream callers
// may pass free-form strings and a well-formed prompt beats a hard error.
func ParseThoughtType(s string) ThoughtType {
	if t := ThoughtType(s); thoughtTypes[t] {
		return t
	}
	return ThoughtConsideration
}

// Thought is the minimal recursive unit of structured thinking. A thought
// exclusively owns its sub-thoughts; trees are built by appending freshly
// constructed nodes, so no cycles can arise.
type Thought struct {
	Content     string
	Type        ThoughtType
	Order       int
	SubThoughts []*Thought
	References  []string
	Tags        []string
}

// NewThought creates a thought with the default consideration type and no
// ordering rank (0 means unordered).
func NewThought(content string) *Thought {
	return &Thought{
		Content:     content,
		Type:        ThoughtConsideration,
		SubThoughts: []*Thought{},
		References:  []string{},
		Tags:        []string{},
	}
}

// SetType sets the thought type.
func (t *Thought) SetType(tt ThoughtType) *Thought {
	t.Type = tt
	return t
}

// SetOrder sets the order/sequence number.
func (t *Thought) SetOrder(order int) *Thought {
	t.Order = order
	return t
}

// AddSubThought appends a nested sub-thought.
func (t *Thought) AddSubThought(sub *Thought) *Thought {
	t.SubThoughts = append(t.SubThoughts, sub)
	return t
}

// AddReference appends a supporting reference or source.
func (t *Thought) AddReference(ref string) *Thought {
	t.References = append(t.References, ref)
	return t
}

// AddTag appends a categorization tag.
func (t *Thought) AddTag(tag string) *Thought {
	t.Tags = append(t.Tags, tag)
	return t
}

// ToDict returns the dictionary projection. References and sub-thoughts are
// included only when present; tags are always present, as an empty list if
// needed.
func (t *Thought) ToDict() map[string]any {
	result := map[string]any{
		"content": t.Content,
		"type":    string(t.Type),
		"order":   t.Order,
		"tags":    stringList(t.Tags),
	}
	if len(t.References) > 0 {
		result["references"] = t.References
	}
	if len(t.SubThoughts) > 0 {
		subs := make([]map[string]any, 0, len(t.SubThoughts))
		for _, sub := range t.SubThoughts {
			subs = append(subs, sub.ToDict())
		}
		result["sub_thoughts"] = subs
	}
	return result
}

// ToPromptText renders the thought and its sub-thoughts as an indented text
// block. Each nesting level adds two spaces of indentation.
func (t *Thought) ToPromptText(indentLevel int) string {
	indent := strings.Repeat("  ", indentLevel)

	var header string
	if t.Order > 0 {
		header = fmt.Sprintf("%sThought %d: %s", indent, t.Order, t.Content)
	} else {
		header = fmt.Sprintf("%sThought: %s", indent, t.Content)
	}

	lines := []string{header}

	if len(t.References) > 0 {
		lines = append(lines, fmt.Sprintf("%sReferences: %s", indent, strings.Join(t.References, ", ")))
	}

	for _, sub := range t.SubThoughts {
		lines = append(lines, sub.ToPromptText(indentLevel+1))
	}

	return strings.Join(lines, "\n")
}
