// Package wizard collects a prompt manifest interactively on the terminal.
package wizard

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/manifoldco/promptui"
	"gopkg.in/yaml.v3"

	"github.com/A1exanderAlexeyuk/LlmPrompts/internal/manifest"
	"github.com/A1exanderAlexeyuk/LlmPrompts/internal/presets"
)

// CollectInteractive runs an interactive prompt session to gather a document
// manifest. The title is required; every other question is optional and
// pressing Enter skips it.
func CollectInteractive() (*manifest.Document, error) {
	fmt.Println("Describe the prompt document to create.")
	fmt.Println("Press Enter to skip any optional question.")
	fmt.Println()

	doc := &manifest.Document{}

	title, err := askRequired("Document title")
	if err != nil {
		return nil, fmt.Errorf("title prompt: %w", err)
	}
	doc.Title = title

	background, err := askOptional("Background for the context section")
	if err != nil {
		return nil, fmt.Errorf("background prompt: %w", err)
	}
	domain, err := askOptional("Domain or field")
	if err != nil {
		return nil, fmt.Errorf("domain prompt: %w", err)
	}
	if background != "" || domain != "" {
		doc.Context = &manifest.ContextSpec{Background: background, Domain: domain}
	}

	snippet, err := askSnippet()
	if err != nil {
		return nil, fmt.Errorf("snippet prompt: %w", err)
	}
	if snippet != nil {
		AttachSnippet(doc, *snippet)
	}

	question, err := askOptional("A first question to address")
	if err != nil {
		return nil, fmt.Errorf("question prompt: %w", err)
	}
	if question != "" {
		doc.Questions = append(doc.Questions, manifest.QuestionSpec{Text: question})
	}

	approach, err := askOptional("Analytical approach")
	if err != nil {
		return nil, fmt.Errorf("approach prompt: %w", err)
	}
	doc.Approach = approach

	outputFormat, err := askOptional("Expected output format")
	if err != nil {
		return nil, fmt.Errorf("output format prompt: %w", err)
	}
	doc.OutputFormat = outputFormat

	return doc, nil
}

// Save writes the manifest to a YAML file, creating parent directories as
// needed.
func Save(doc *manifest.Document, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating manifest directory: %w", err)
		}
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshalling manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest file: %w", err)
	}
	return nil
}

// AttachSnippet records a narrative snippet on the manifest as an additional
// context entry, creating the context section if the wizard skipped it.
func AttachSnippet(doc *manifest.Document, s presets.Snippet) {
	if doc.Context == nil {
		doc.Context = &manifest.ContextSpec{}
	}
	doc.Context.AdditionalInfo = append(doc.Context.AdditionalInfo, manifest.InfoEntry{
		Key:   "Industry Background",
		Value: s.Text,
	})
}

// askSnippet offers the narrative context snippets as a selection list. A nil
// snippet means the user chose to attach none.
func askSnippet() (*presets.Snippet, error) {
	snippets := presets.ContextSnippets()
	items := []string{"none"}
	for _, s := range snippets {
		items = append(items, s.Name)
	}

	sel := promptui.Select{
		Label: "Industry context snippet to attach",
		Items: items,
	}
	idx, _, err := sel.Run()
	if err != nil {
		return nil, err
	}
	if idx == 0 {
		return nil, nil
	}
	return &snippets[idx-1], nil
}

// askOptional displays a prompt and returns the user's input. An empty
// string is returned if the user presses Enter without typing anything.
func askOptional(label string) (string, error) {
	p := promptui.Prompt{
		Label:     label,
		Default:   "",
		AllowEdit: true,
	}
	result, err := p.Run()
	if err != nil {
		return "", err
	}
	return result, nil
}

// askRequired keeps prompting until the user enters a non-empty value.
func askRequired(label string) (string, error) {
	p := promptui.Prompt{
		Label:     label,
		AllowEdit: true,
		Validate: func(s string) error {
			if s == "" {
				return fmt.Errorf("%s is required", label)
			}
			return nil
		},
	}
	return p.Run()
}
