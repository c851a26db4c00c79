package prompt

import (
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Context holds background information and situational framing for a prompt:
// general background, domain, and lists of constraints, assumptions,
// resources and stakeholders. Beyond the named fields it carries an
// open-ended set of additional entries whose insertion order is preserved;
// each entry value is either a scalar string or an ordered list of strings
// and renders according to its shape.
type Context struct {
	Background     string
	Domain         string
	Constraints    []string
	Assumptions    []string
	Resources      []string
	Stakeholders   []string
	AdditionalInfo *orderedmap.OrderedMap[string, any]
}

// NewContext creates an empty context.
func NewContext() *Context {
	return &Context{
		Constraints:    []string{},
		Assumptions:    []string{},
		Resources:      []string{},
		Stakeholders:   []string{},
		AdditionalInfo: orderedmap.New[string, any](),
	}
}

// SetBackground sets the general background information.
func (c *Context) SetBackground(background string) *Context {
	c.Background = background
	return c
}

// SetDomain sets the domain or field this context relates to.
func (c *Context) SetDomain(domain string) *Context {
	c.Domain = domain
	return c
}

// AddConstraint appends a constraint to consider.
func (c *Context) AddConstraint(constraint string) *Context {
	c.Constraints = append(c.Constraints, constraint)
	return c
}

// AddAssumption appends an assumption that can be made.
func (c *Context) AddAssumption(assumption string) *Context {
	c.Assumptions = append(c.Assumptions, assumption)
	return c
}

// AddResource appends an available resource or data source.
func (c *Context) AddResource(resource string) *Context {
	c.Resources = append(c.Resources, resource)
	return c
}

// AddStakeholder appends a relevant stakeholder.
func (c *Context) AddStakeholder(stakeholder string) *Context {
	c.Stakeholders = append(c.Stakeholders, stakeholder)
	return c
}

// AddInfo records an additional contextual entry. The value must be a string
// or a []string; other shapes render via their default formatting. Setting
// an existing key updates its value in place without changing its position.
func (c *Context) AddInfo(key string, value any) *Context {
	c.AdditionalInfo.Set(key, value)
	return c
}

// ToDict returns the dictionary projection. Additional entries are merged
// flat into the same top-level map as the named fields, applied after them,
// so an entry can shadow a named field of the same key.
func (c *Context) ToDict() map[string]any {
	result := map[string]any{
		"background":   c.Background,
		"domain":       c.Domain,
		"constraints":  stringList(c.Constraints),
		"assumptions":  stringList(c.Assumptions),
		"resources":    stringList(c.Resources),
		"stakeholders": stringList(c.Stakeholders),
	}
	for pair := c.AdditionalInfo.Oldest(); pair != nil; pair = pair.Next() {
		result[pair.Key] = pair.Value
	}
	return result
}

// ToPromptText renders the context as a text block: background, domain line,
// then each populated list as a labeled bullet block, then additional
// entries in insertion order rendered by value shape.
func (c *Context) ToPromptText() string {
	var lines []string

	if c.Background != "" {
		lines = append(lines, c.Background)
	}

	if c.Domain != "" {
		lines = append(lines, "Domain: "+c.Domain)
	}

	lines = appendBulletBlock(lines, "Constraints:", c.Constraints)
	lines = appendBulletBlock(lines, "Assumptions:", c.Assumptions)
	lines = appendBulletBlock(lines, "Available Resources:", c.Resources)
	lines = appendBulletBlock(lines, "Stakeholders:", c.Stakeholders)

	for pair := c.AdditionalInfo.Oldest(); pair != nil; pair = pair.Next() {
		switch v := pair.Value.(type) {
		case []string:
			lines = appendBulletBlock(lines, pair.Key+":", v)
		default:
			lines = append(lines, "", fmt.Sprintf("%s: %v", pair.Key, v))
		}
	}

	return strings.Join(lines, "\n")
}

// appendBulletBlock appends a blank line, a label line, and one bullet per
// item. Empty lists produce no output.
func appendBulletBlock(lines []string, label string, items []string) []string {
	if len(items) == 0 {
		return lines
	}
	lines = append(lines, "", label)
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	return lines
}
