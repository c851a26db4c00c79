package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/A1exanderAlexeyuk/LlmPrompts/internal/config"
	"github.com/A1exanderAlexeyuk/LlmPrompts/internal/prompt"
)

func sampleBuilder() *prompt.Builder {
	return prompt.NewBuilder("Export Test").
		AddRole(prompt.NewRole("Analyst").SetExpertise("Modeling")).
		AddQuestion(prompt.NewQuestion("What changed?")).
		SetOutputFormat("Bullet list")
}

func TestWriteText(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(config.FormatText, dir)

	path, err := w.Write("sample", sampleBuilder())
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if filepath.Ext(path) != ".txt" {
		t.Errorf("extension = %q, want .txt", filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# Export Test") {
		t.Errorf("text output missing title:\n%s", data)
	}
}

func TestWriteJSONRoundTrips(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(config.FormatJSON, dir)

	path, err := w.Write("sample", sampleBuilder())
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["title"] != "Export Test" {
		t.Errorf("title = %v", decoded["title"])
	}
	if _, present := decoded["roles"]; !present {
		t.Error("roles key missing")
	}
	if _, present := decoded["requirements"]; present {
		t.Error("empty requirements should be omitted from JSON")
	}
	tags := decoded["questions"].([]any)[0].(map[string]any)["tags"]
	if tags == nil {
		t.Error("tags serialized as null, want empty list")
	}
}

func TestWriteHTML(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(config.FormatHTML, dir)

	path, err := w.Write("sample", sampleBuilder())
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.Contains(content, "<h1") || !strings.Contains(content, "Export Test") {
		t.Errorf("title heading not rendered:\n%s", content)
	}
	if !strings.Contains(content, "<h2") {
		t.Errorf("section heading not rendered:\n%s", content)
	}
}

func TestOutputNamesDisambiguates(t *testing.T) {
	paths := []string{
		"manifests/teamA/doc.yaml",
		"manifests/teamB/doc.yaml",
		"manifests/unique.yaml",
	}
	names := OutputNames(paths)

	if names["manifests/unique.yaml"] != "unique" {
		t.Errorf("unique base name rewritten: %q", names["manifests/unique.yaml"])
	}
	if names["manifests/teamA/doc.yaml"] != "manifests-teamA-doc" {
		t.Errorf("colliding name = %q", names["manifests/teamA/doc.yaml"])
	}
	if names["manifests/teamA/doc.yaml"] == names["manifests/teamB/doc.yaml"] {
		t.Errorf("colliding manifests map to the same output name %q", names["manifests/teamA/doc.yaml"])
	}
}

func TestWriteCollidingManifestsKeepsBoth(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(config.FormatText, dir)

	paths := []string{"teamA/doc.yaml", "teamB/doc.yaml"}
	names := OutputNames(paths)

	first, err := w.Write(names[paths[0]], prompt.NewBuilder("First Document"))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	second, err := w.Write(names[paths[1]], prompt.NewBuilder("Second Document"))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if first == second {
		t.Fatalf("both manifests wrote to %s", first)
	}

	data, err := os.ReadFile(first)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "# First Document") {
		t.Errorf("first document overwritten:\n%s", data)
	}
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"manifests/assessment.yaml", "assessment"},
		{"plain.yml", "plain"},
		{"noext", "noext"},
	}
	for _, tt := range tests {
		if got := BaseName(tt.input); got != tt.want {
			t.Errorf("BaseName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
