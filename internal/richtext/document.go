package richtext

import (
	"html"
	"net/url"
	"strings"

	"github.com/goliatone/go-newsroom/internal/normalize"
	"github.com/goliatone/go-newsroom/internal/sources"
)

const (
	nodeDocument      = "document"
	nodeText          = "text"
	nodeParagraph     = "paragraph"
	nodeHR            = "hr"
	nodeBlockquote    = "blockquote"
	nodeUnordered     = "unordered-list"
	nodeOrdered       = "ordered-list"
	nodeListItem      = "list-item"
	nodeHyperlink     = "hyperlink"
	nodeEntryLink     = "entry-hyperlink"
	nodeEmbeddedAsset = "embedded-asset-block"
	nodeTable         = "table"
	nodeTableRow      = "table-row"
	nodeTableCell     = "table-cell"
	nodeTableHeader   = "table-header-cell"
)

var blockTags = map[string]string{
	nodeParagraph:   "p",
	"heading-1":     "h1",
	"heading-2":     "h2",
	"heading-3":     "h3",
	"heading-4":     "h4",
	"heading-5":     "h5",
	"heading-6":     "h6",
	nodeBlockquote:  "blockquote",
	nodeUnordered:   "ul",
	nodeOrdered:     "ol",
	nodeListItem:    "li",
	nodeTable:       "table",
	nodeTableRow:    "tr",
	nodeTableCell:   "td",
	nodeTableHeader: "th",
}

var markTags = map[string]string{
	"bold":        "strong",
	"italic":      "em",
	"underline":   "u",
	"code":        "code",
	"superscript": "sup",
	"subscript":   "sub",
}

func nodeType(node map[string]any) string {
	value, _ := node["nodeType"].(string)
	return value
}

func writeNode(b *strings.Builder, node map[string]any) {
	kind := nodeType(node)
	switch kind {
	case nodeText:
		writeText(b, node)
	case nodeHR:
		b.WriteString("<hr>")
	case nodeHyperlink:
		writeHyperlink(b, node)
	case nodeEntryLink:
		writeEntryLink(b, node)
	case nodeEmbeddedAsset:
		writeAsset(b, node)
	default:
		tag, ok := blockTags[kind]
		if !ok {
			// document and unknown nodes contribute only their children.
			writeChildren(b, node)
			return
		}
		b.WriteString("<" + tag + ">")
		writeChildren(b, node)
		b.WriteString("</" + tag + ">")
	}
}

func writeChildren(b *strings.Builder, node map[string]any) {
	children, _ := node["content"].([]any)
	for _, child := range children {
		if m, ok := child.(map[string]any); ok {
			writeNode(b, m)
		}
	}
}

func writeText(b *strings.Builder, node map[string]any) {
	value, _ := node["value"].(string)
	var closing []string
	marks, _ := node["marks"].([]any)
	for _, mark := range marks {
		m, _ := mark.(map[string]any)
		name, _ := m["type"].(string)
		tag, ok := markTags[name]
		if !ok {
			continue
		}
		b.WriteString("<" + tag + ">")
		closing = append(closing, tag)
	}
	b.WriteString(html.EscapeString(value))
	for i := len(closing) - 1; i >= 0; i-- {
		b.WriteString("</" + closing[i] + ">")
	}
}

func writeHyperlink(b *strings.Builder, node map[string]any) {
	data, _ := node["data"].(map[string]any)
	uri, _ := data["uri"].(string)
	if !safeHref(uri) {
		writeChildren(b, node)
		return
	}
	b.WriteString(`<a href="` + html.EscapeString(uri) + `" target="_blank" rel="noopener noreferrer">`)
	writeChildren(b, node)
	b.WriteString("</a>")
}

func writeEntryLink(b *strings.Builder, node map[string]any) {
	data, _ := node["data"].(map[string]any)
	entry, ok := data["target"].(*sources.EntryRow)
	var slug string
	if ok && entry != nil {
		slug, _ = entry.Fields["slug"].(string)
	}
	if strings.TrimSpace(slug) == "" {
		writeChildren(b, node)
		return
	}
	b.WriteString(`<a href="` + html.EscapeString(normalize.ArticlePath(slug)) + `">`)
	writeChildren(b, node)
	b.WriteString("</a>")
}

func writeAsset(b *strings.Builder, node map[string]any) {
	data, _ := node["data"].(map[string]any)
	src, title := assetSource(data["target"])
	if src == "" {
		return
	}
	b.WriteString(`<figure><img src="` + html.EscapeString(normalize.AbsoluteURL(src)) + `" alt="` + html.EscapeString(title) + `">`)
	if title != "" {
		b.WriteString("<figcaption>" + html.EscapeString(title) + "</figcaption>")
	}
	b.WriteString("</figure>")
}

// assetSource accepts a resolved asset or the raw asset object shape.
func assetSource(target any) (string, string) {
	switch value := target.(type) {
	case *sources.AssetRow:
		if value == nil {
			return "", ""
		}
		return value.URL, value.Title
	case map[string]any:
		fields, _ := value["fields"].(map[string]any)
		title, _ := fields["title"].(string)
		file, _ := fields["file"].(map[string]any)
		src, _ := file["url"].(string)
		return src, title
	}
	return "", ""
}

func safeHref(uri string) bool {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return false
	}
	parsed, err := url.Parse(uri)
	if err != nil {
		return false
	}
	switch strings.ToLower(parsed.Scheme) {
	case "", "http", "https", "mailto", "tel":
		return true
	}
	return false
}
