package richtext

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrUnsupportedContent is returned when an article body is neither Markdown
// nor a rich text document.
var ErrUnsupportedContent = errors.New("richtext: unsupported content")

// Options tune the Markdown engine. Rich text documents ignore them.
type Options struct {
	// Extensions names goldmark extensions to enable. Empty selects GFM,
	// linkify and task lists.
	Extensions []string
	HardWraps  bool
	// AllowHTML lets raw HTML embedded in Markdown through unescaped.
	AllowHTML bool
}

// Renderer turns article content into HTML. It is stateless and safe for
// concurrent use.
type Renderer struct {
	markdown goldmark.Markdown
}

// New constructs a renderer with the supplied Markdown options.
func New(opts Options) *Renderer {
	return &Renderer{markdown: newEngine(opts)}
}

var defaultRenderer = New(Options{})

// Render converts content with the default renderer.
func Render(content any) (string, error) {
	return defaultRenderer.Render(content)
}

// Render converts a Markdown string or a rich text document into HTML. Nil
// and blank content render as an empty string.
func (r *Renderer) Render(content any) (string, error) {
	switch value := content.(type) {
	case nil:
		return "", nil
	case string:
		return r.renderMarkdown([]byte(value))
	case []byte:
		return r.renderMarkdown(value)
	case map[string]any:
		if nodeType(value) != nodeDocument {
			return "", fmt.Errorf("%w: node type %q", ErrUnsupportedContent, nodeType(value))
		}
		var b strings.Builder
		writeNode(&b, value)
		return b.String(), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedContent, content)
	}
}

func (r *Renderer) renderMarkdown(source []byte) (string, error) {
	if len(bytes.TrimSpace(source)) == 0 {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.markdown.Convert(source, &buf); err != nil {
		return "", fmt.Errorf("richtext: markdown: %w", err)
	}
	return buf.String(), nil
}

func newEngine(opts Options) goldmark.Markdown {
	rendererOptions := []renderer.Option{}
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if opts.AllowHTML {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithExtensions(extensions(opts.Extensions)...),
	}
	if len(rendererOptions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(rendererOptions...))
	}
	return goldmark.New(engineOptions...)
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"tasklist":      extension.TaskList,
	"footnote":      extension.Footnote,
	"typographer":   extension.Typographer,
}

func extensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{extension.GFM, extension.Linkify, extension.TaskList}
	}
	var out []goldmark.Extender
	seen := map[string]bool{}
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		ext, ok := extensionRegistry[key]
		if !ok || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, ext)
	}
	return out
}
