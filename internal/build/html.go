package build

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// htmlShell wraps the converted body so the page prints with readable
// typography and the font-awesome icons the templates reference.
const htmlShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/4.7.0/css/font-awesome.min.css">
<style>
body { font-family: Georgia, serif; max-width: 48rem; margin: 2rem auto; line-height: 1.5; }
h1, h2, h3 { font-family: Helvetica, Arial, sans-serif; }
blockquote { margin: 0.2rem 0; padding-left: 0.8rem; border-left: 2px solid #999; }
sup { font-size: 0.7em; }
</style>
</head>
<body>
%s
</body>
</html>
`

// markdownConverter renders the assembled document. Raw inline HTML (the
// icon spans and <br> tags in the default templates) must pass through.
var markdownConverter = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// HTML converts the assembled markdown document into a printable HTML page.
func HTML(markdown string) (string, error) {
	var sb strings.Builder
	if err := markdownConverter.Convert([]byte(markdown), &sb); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return fmt.Sprintf(htmlShell, sb.String()), nil
}
