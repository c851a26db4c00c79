package prompt

import (
	"fmt"
	"strings"
)

// QuestionType classifies the reasoning mode a question calls for.
type QuestionType string

const (
	QuestionOpenEnded    QuestionType = "open_ended"
	QuestionAnalytical   QuestionType = "analytical"
	QuestionComparative  QuestionType = "comparative"
	QuestionDiagnostic   QuestionType = "diagnostic"
	QuestionPredictive   QuestionType = "predictive"
	QuestionCausal       QuestionType = "causal"
	QuestionExploratory  QuestionType = "exploratory"
	QuestionConfirmatory QuestionType = "confirmatory"
	QuestionStrategic    QuestionType = "strategic"
	QuestionTechnical    QuestionType = "technical"
)

var questionTypes = map[QuestionType]bool{
	QuestionOpenEnded:    true,
	QuestionAnalytical:   true,
	QuestionComparative:  true,
	QuestionDiagnostic:   true,
	QuestionPredictive:   true,
	QuestionCausal:       true,
	QuestionExploratory:  true,
	QuestionConfirmatory: true,
	QuestionStrategic:    true,
	QuestionTechnical:    true,
}

// ParseQuestionType coerces a raw string to a QuestionType, falling back to
// QuestionOpenEnded for unrecognized input.
func ParseQuestionType(s string) QuestionType {
	if t := QuestionType(s); questionTypes[t] {
		return t
	}
	return QuestionOpenEnded
}

// QuestionCategory identifies the domain a question belongs to.
type QuestionCategory string

const (
	CategoryEpidemiology QuestionCategory = "epidemiology"
	CategoryClinical     QuestionCategory = "clinical"
	CategoryTechnical    QuestionCategory = "technical"
	CategoryBusiness     QuestionCategory = "business"
	CategoryResearch     QuestionCategory = "research"
	CategoryOperational  QuestionCategory = "operational"
	CategoryRegulatory   QuestionCategory = "regulatory"
	CategoryEthical      QuestionCategory = "ethical"
	CategoryGeneral      QuestionCategory = "general"
)

var questionCategories = map[QuestionCategory]bool{
	CategoryEpidemiology: true,
	CategoryClinical:     true,
	CategoryTechnical:    true,
	CategoryBusiness:     true,
	CategoryResearch:     true,
	CategoryOperational:  true,
	CategoryRegulatory:   true,
	CategoryEthical:      true,
	CategoryGeneral:      true,
}

// ParseQuestionCategory coerces a raw string to a QuestionCategory, falling
// back to CategoryGeneral for unrecognized input.
func ParseQuestionCategory(s string) QuestionCategory {
	if c := QuestionCategory(s); questionCategories[c] {
		return c
	}
	return CategoryGeneral
}

// Question represents a structured question with type, category, importance
// and nested follow-up questions.
type Question struct {
	Text       string
	Type       QuestionType
	Category   QuestionCategory
	FollowUps  []*Question
	Context    string
	Importance int
	Tags       []string
}

// NewQuestion creates a question with default type open_ended, category
// general, and importance 3.
func NewQuestion(text string) *Question {
	return &Question{
		Text:       text,
		Type:       QuestionOpenEnded,
		Category:   CategoryGeneral,
		FollowUps:  []*Question{},
		Importance: 3,
		Tags:       []string{},
	}
}

// SetType sets the question type.
func (q *Question) SetType(qt QuestionType) *Question {
	q.Type = qt
	return q
}

// SetCategory sets the question category.
func (q *Question) SetCategory(c QuestionCategory) *Question {
	q.Category = c
	return q
}

// SetContext sets additional context specific to this question.
func (q *Question) SetContext(context string) *Question {
	q.Context = context
	return q
}

// SetImportance sets the importance rating, clamped to [1,5].
func (q *Question) SetImportance(importance int) *Question {
	q.Importance = clampScale(importance)
	return q
}

// AddFollowUp appends a follow-up question.
func (q *Question) AddFollowUp(followUp *Question) *Question {
	q.FollowUps = append(q.FollowUps, followUp)
	return q
}

// AddTag appends a categorization tag.
func (q *Question) AddTag(tag string) *Question {
	q.Tags = append(q.Tags, tag)
	return q
}

// ToDict returns the dictionary projection. Context and follow-ups appear
// only when non-empty.
func (q *Question) ToDict() map[string]any {
	result := map[string]any{
		"text":       q.Text,
		"type":       string(q.Type),
		"category":   string(q.Category),
		"importance": q.Importance,
		"tags":       stringList(q.Tags),
	}
	if q.Context != "" {
		result["context"] = q.Context
	}
	if len(q.FollowUps) > 0 {
		followUps := make([]map[string]any, 0, len(q.FollowUps))
		for _, fu := range q.FollowUps {
			followUps = append(followUps, fu.ToDict())
		}
		result["follow_ups"] = followUps
	}
	return result
}

// ToPromptText renders the question and its follow-ups as an indented text
// block. Each nesting level adds two spaces of indentation.
func (q *Question) ToPromptText(indentLevel int) string {
	indent := strings.Repeat("  ", indentLevel)
	lines := []string{fmt.Sprintf("%sQuestion: %s", indent, q.Text)}

	if q.Context != "" {
		lines = append(lines, fmt.Sprintf("%sContext: %s", indent, q.Context))
	}

	if len(q.FollowUps) > 0 {
		lines = append(lines, indent+"Follow-up questions:")
		for _, fu := range q.FollowUps {
			lines = append(lines, fu.ToPromptText(indentLevel+1))
		}
	}

	return strings.Join(lines, "\n")
}
