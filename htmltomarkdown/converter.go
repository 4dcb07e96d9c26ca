// Package htmltomarkdown converts rendered docs pages to Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/dom"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/strikethrough"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/storyllms"
	"golang.org/x/net/html"
)

// Ensure Converter implements storyllms.Converter at compile time.
var _ storyllms.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown with the rule set used for rendered
// docs pages. On top of the commonmark defaults it fences code blocks
// with their advertised language, drops images, buttons and
// navigation-only anchors, renders checkbox inputs as task markers, and
// leaves markdown punctuation unescaped.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithEmDelimiter("_"),
				commonmark.WithHorizontalRule("---"),
			),
			strikethrough.NewStrikethroughPlugin(),
			table.NewTablePlugin(),
		),
		converter.WithEscapeMode(converter.EscapeModeDisabled),
	)

	conv.Register.RendererFor("pre", converter.TagTypeBlock, renderCodeBlock, converter.PriorityEarly)
	conv.Register.RendererFor("a", converter.TagTypeInline, renderAnchor, converter.PriorityEarly)
	conv.Register.RendererFor("input", converter.TagTypeInline, renderInput, converter.PriorityEarly)
	conv.Register.RendererFor("img", converter.TagTypeInline, renderNothing, converter.PriorityEarly)
	conv.Register.RendererFor("button", converter.TagTypeInline, renderNothing, converter.PriorityEarly)

	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", storyllms.Errorf(storyllms.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return result, nil
}

// renderCodeBlock emits a fenced code block for a pre element, tagged
// with any language advertised by a language-* class on the element or a
// descendant. Content that already begins with a fence passes through
// untouched, because docs pages sometimes embed pre-rendered markdown.
func renderCodeBlock(_ converter.Context, w converter.Writer, n *html.Node) converter.RenderStatus {
	content := strings.TrimSpace(textContent(n))
	if strings.HasPrefix(content, "```") {
		w.WriteString("\n\n" + content + "\n\n")
		return converter.RenderSuccess
	}

	w.WriteString("\n\n```" + codeLanguage(n) + "\n")
	if content != "" {
		w.WriteString(content + "\n")
	}
	w.WriteString("```\n\n")
	return converter.RenderSuccess
}

// renderAnchor drops navigation-only anchors (missing href, same-page
// fragment targets, hidden or unfocusable elements) and renders the rest
// as inline links.
func renderAnchor(ctx converter.Context, w converter.Writer, n *html.Node) converter.RenderStatus {
	href := dom.GetAttributeOr(n, "href", "")
	if href == "" || strings.HasPrefix(href, "#") {
		return converter.RenderSuccess
	}
	if dom.GetAttributeOr(n, "aria-hidden", "") == "true" || dom.GetAttributeOr(n, "tabindex", "") == "-1" {
		return converter.RenderSuccess
	}

	var text strings.Builder
	ctx.RenderChildNodes(ctx, &text, n)
	label := strings.TrimSpace(text.String())
	if label == "" {
		return converter.RenderSuccess
	}

	w.WriteString("[" + label + "](" + href + ")")
	return converter.RenderSuccess
}

// renderInput renders checkbox inputs as task list markers and leaves
// other inputs to the remaining rules.
func renderInput(_ converter.Context, w converter.Writer, n *html.Node) converter.RenderStatus {
	if dom.GetAttributeOr(n, "type", "") != "checkbox" {
		return converter.RenderTryNext
	}

	if hasAttr(n, "checked") {
		w.WriteString("[x] ")
	} else {
		w.WriteString("[ ] ")
	}
	return converter.RenderSuccess
}

// renderNothing suppresses an element and its children entirely.
func renderNothing(_ converter.Context, _ converter.Writer, _ *html.Node) converter.RenderStatus {
	return converter.RenderSuccess
}

// codeLanguage finds a language-<name> class token on the element or any
// descendant.
func codeLanguage(n *html.Node) string {
	if lang := languageToken(dom.GetAttributeOr(n, "class", "")); lang != "" {
		return lang
	}

	lang := ""
	doc := goquery.NewDocumentFromNode(n)
	doc.Find("[class]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		class, _ := sel.Attr("class")
		if found := languageToken(class); found != "" {
			lang = found
			return false
		}
		return true
	})
	return lang
}

// languageToken extracts the language name from a class attribute value.
func languageToken(class string) string {
	for _, token := range strings.Fields(class) {
		if name, found := strings.CutPrefix(token, "language-"); found && name != "" {
			return name
		}
	}
	return ""
}

// textContent concatenates the text nodes under n.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}
