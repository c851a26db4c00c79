// Package export writes built prompt documents to disk. The prompt core
// produces only in-memory shapes; this package does the byte moving: plain
// text, indented JSON of the dictionary projection, or a standalone HTML
// preview rendered from the prompt's markdown-style headings.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/A1exanderAlexeyuk/LlmPrompts/internal/config"
	"github.com/A1exanderAlexeyuk/LlmPrompts/internal/prompt"
)

// Writer exports built documents into an output directory in one format.
type Writer struct {
	Format    config.OutputFormat
	OutputDir string
}

// NewWriter creates a writer for the given format and directory.
func NewWriter(format config.OutputFormat, outputDir string) *Writer {
	return &Writer{Format: format, OutputDir: outputDir}
}

// Write renders the builder and writes it under the given base name,
// returning the path written.
func (w *Writer) Write(name string, b *prompt.Builder) (string, error) {
	if err := os.MkdirAll(w.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output dir: %w", err)
	}

	var (
		data []byte
		ext  string
		err  error
	)
	switch w.Format {
	case config.FormatJSON:
		data, err = json.MarshalIndent(b.ToDict(), "", "  ")
		if err != nil {
			return "", fmt.Errorf("encoding %s: %w", name, err)
		}
		data = append(data, '\n')
		ext = ".json"
	case config.FormatHTML:
		data, err = RenderHTML(b)
		if err != nil {
			return "", fmt.Errorf("rendering %s: %w", name, err)
		}
		ext = ".html"
	default:
		data = []byte(b.Build() + "\n")
		ext = ".txt"
	}

	path := filepath.Join(w.OutputDir, name+ext)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// BaseName derives the output base name from a manifest path: the file name
// without its extension.
func BaseName(manifestPath string) string {
	base := filepath.Base(manifestPath)
	return base[:len(base)-len(filepath.Ext(base))]
}

// OutputNames derives one output base name per manifest path. Names are the
// bare base name where that is unique; when several paths share a base name,
// the path's directories are folded into the name so no document overwrites
// another.
func OutputNames(paths []string) map[string]string {
	counts := make(map[string]int)
	for _, p := range paths {
		counts[BaseName(p)]++
	}

	names := make(map[string]string, len(paths))
	for _, p := range paths {
		name := BaseName(p)
		if counts[name] > 1 {
			name = flattenPath(p)
		}
		names[p] = name
	}
	return names
}

// flattenPath turns a manifest path into a file-safe name: extension
// stripped, relative markers dropped, separators replaced with dashes.
func flattenPath(manifestPath string) string {
	p := filepath.ToSlash(filepath.Clean(manifestPath))
	p = strings.TrimSuffix(p, filepath.Ext(p))
	p = strings.ReplaceAll(p, "../", "")
	p = strings.TrimPrefix(p, "/")
	return strings.ReplaceAll(p, "/", "-")
}
