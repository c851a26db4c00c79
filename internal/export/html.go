package export

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/A1exanderAlexeyuk/LlmPrompts/internal/prompt"
)

// RenderHTML converts the built prompt text into a standalone HTML page.
// The prompt's `#`/`##` headings and `- ` bullets are valid markdown, so a
// GFM pipeline handles the conversion.
func RenderHTML(b *prompt.Builder) ([]byte, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	var body bytes.Buffer
	if err := md.Convert([]byte(b.Build()), &body); err != nil {
		return nil, fmt.Errorf("converting markdown: %w", err)
	}

	var page bytes.Buffer
	fmt.Fprintf(&page, pageHeader, b.Title)
	page.Write(body.Bytes())
	page.WriteString(pageFooter)
	return page.Bytes(), nil
}

const pageHeader = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: -apple-system, sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; line-height: 1.5; }
h1, h2 { border-bottom: 1px solid #d0d7de; padding-bottom: .3rem; }
</style>
</head>
<body>
`

const pageFooter = `</body>
</html>
`
