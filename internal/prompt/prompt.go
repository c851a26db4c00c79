// Package prompt composes trees of typed building blocks (roles, departments,
// context, branches, thoughts, questions, requirements) into structured
// natural-language prompts for LLM consumption. Every node renders to two
// shapes: a prompt-text block and a dictionary projection suitable for JSON
// encoding by the caller. Construction and rendering never fail; unrecognized
// enum strings coerce to documented defaults and scale values clamp to [1,5].
package prompt

import "strings"

// clampScale bounds a 1-5 scale value. Applied on construction and on every
// mutation so the invariant holds at all times.
func clampScale(v int) int {
	if v < 1 {
		return 1
	}
	if v > 5 {
		return 5
	}
	return v
}

// stringList guards against nil slices in dictionary projections so list
// fields always serialize as empty lists, never null.
func stringList(xs []string) []string {
	if xs == nil {
		return []string{}
	}
	return xs
}

// indentBlock prefixes every line of a multi-line block with the given prefix.
func indentBlock(block, prefix string) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
