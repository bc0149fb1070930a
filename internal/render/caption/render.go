package caption

import (
	"html"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	nethtml "golang.org/x/net/html"
)

var reANSICodes = regexp.MustCompile(`\x1b\[[0-9;]*m`)
var reHTTPURL = regexp.MustCompile(`https?://[^\s)]+`)

type Options struct {
	StyleLinks bool
}

var DefaultOptions = Options{StyleLinks: true}

type captionRenderer struct {
	width int
	opts  Options
}

// Lines renders a photo caption, which may carry a small HTML fragment, as
// wrapped terminal lines.
func Lines(raw string, width int) []string {
	return LinesWithOptions(raw, width, DefaultOptions)
}

func LinesWithOptions(raw string, width int, opts Options) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if !strings.Contains(raw, "<") {
		return wrapText(normalizeInlineText(raw), width)
	}
	doc, err := nethtml.Parse(strings.NewReader("<html><body>" + raw + "</body></html>"))
	if err != nil {
		return wrapText(strings.TrimSpace(html.UnescapeString(raw)), width)
	}
	body := findBodyNode(doc)
	if body == nil {
		return wrapText(strings.TrimSpace(html.UnescapeString(raw)), width)
	}
	r := captionRenderer{width: width, opts: opts}
	lines := trimBlankLines(r.renderNodes(elementChildren(body)))
	if opts.StyleLinks {
		lines = styleLinks(lines)
	}
	return lines
}

// Text flattens a caption to a single plain line, used for one-line summaries.
func Text(raw string) string {
	lines := LinesWithOptions(raw, 0, Options{})
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}

// Wrap wraps plain text to width without parsing it as markup.
func Wrap(text string, width int) []string {
	return wrapText(text, width)
}

func (r captionRenderer) renderNodes(nodes []*nethtml.Node) []string {
	lines := make([]string, 0, len(nodes)*2)
	inlineParts := make([]string, 0, 4)
	appendBlock := func(block []string) {
		if len(block) == 0 {
			return
		}
		if len(lines) > 0 && lines[len(lines)-1] != "" {
			lines = append(lines, "")
		}
		lines = append(lines, block...)
	}
	flushInline := func() {
		text := normalizeInlineText(strings.Join(inlineParts, " "))
		inlineParts = inlineParts[:0]
		if text == "" {
			return
		}
		appendBlock(wrapText(text, r.width))
	}

	for _, node := range nodes {
		switch node.Type {
		case nethtml.TextNode:
			inlineParts = append(inlineParts, node.Data)
		case nethtml.ElementNode:
			if isBlockElement(node.Data) {
				flushInline()
				appendBlock(r.renderBlock(node))
				continue
			}
			inlineParts = append(inlineParts, r.renderInlineNode(node))
		}
	}
	flushInline()
	return trimBlankLines(lines)
}

func (r captionRenderer) renderBlock(node *nethtml.Node) []string {
	switch strings.ToLower(node.Data) {
	case "script", "style", "noscript":
		return nil
	case "ul", "ol":
		ordered := strings.EqualFold(node.Data, "ol")
		lines := make([]string, 0, 4)
		n := 0
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			if child.Type != nethtml.ElementNode || !strings.EqualFold(child.Data, "li") {
				continue
			}
			n++
			prefix := "• "
			if ordered {
				prefix = strconv.Itoa(n) + ". "
			}
			text := normalizeInlineText(r.renderInlineChildren(child))
			if text == "" {
				continue
			}
			lines = append(lines, wrapPrefixedText(text, r.width, prefix, strings.Repeat(" ", utf8.RuneCountInString(prefix)))...)
		}
		return lines
	default:
		if hasBlockChild(node) {
			return r.renderNodes(elementChildren(node))
		}
		return wrapText(normalizeInlineText(r.renderInlineChildren(node)), r.width)
	}
}

func (r captionRenderer) renderInlineChildren(node *nethtml.Node) string {
	parts := make([]string, 0, 4)
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		parts = append(parts, r.renderInlineNode(child))
	}
	return strings.Join(parts, " ")
}

func (r captionRenderer) renderInlineNode(node *nethtml.Node) string {
	if node == nil {
		return ""
	}
	switch node.Type {
	case nethtml.TextNode:
		return node.Data
	case nethtml.ElementNode:
		switch strings.ToLower(node.Data) {
		case "script", "style", "noscript", "img":
			return ""
		case "br":
			return "\n"
		case "a":
			text := normalizeInlineText(r.renderInlineChildren(node))
			href := nodeAttr(node, "href")
			switch {
			case href == "":
				return text
			case text == "", strings.EqualFold(text, href):
				return href
			default:
				return text + " (" + href + ")"
			}
		default:
			return r.renderInlineChildren(node)
		}
	default:
		return ""
	}
}

func isBlockElement(tag string) bool {
	switch strings.ToLower(tag) {
	case "p", "div", "section", "blockquote", "ul", "ol", "h1", "h2", "h3", "h4", "h5", "h6", "figure", "figcaption", "script", "style", "noscript":
		return true
	}
	return false
}

func hasBlockChild(node *nethtml.Node) bool {
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == nethtml.ElementNode && isBlockElement(child.Data) {
			return true
		}
	}
	return false
}

func styleLinks(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = reHTTPURL.ReplaceAllStringFunc(line, func(u string) string {
			return linkStyle.Render(u)
		})
	}
	return out
}

func normalizeInlineText(s string) string {
	s = html.UnescapeString(s)
	parts := strings.Split(s, "\n")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.Join(strings.Fields(part), " ")
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	replacer := strings.NewReplacer(
		" .", ".",
		" ,", ",",
		" ;", ";",
		" :", ":",
		" !", "!",
		" ?", "?",
		" )", ")",
		"( ", "(",
	)
	return replacer.Replace(strings.Join(out, "\n"))
}

func trimBlankLines(lines []string) []string {
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := len(lines) - 1
	for end >= start && strings.TrimSpace(lines[end]) == "" {
		end--
	}
	if end < start {
		return nil
	}
	out := make([]string, 0, end-start+1)
	prevBlank := false
	for i := start; i <= end; i++ {
		blank := strings.TrimSpace(lines[i]) == ""
		if blank && prevBlank {
			continue
		}
		out = append(out, lines[i])
		prevBlank = blank
	}
	return out
}

// wrapText wraps on word boundaries, counting runes. A width below one
// disables wrapping.
func wrapText(text string, width int) []string {
	if text == "" {
		return nil
	}
	if width < 1 {
		return strings.Split(text, "\n")
	}
	out := make([]string, 0, 4)
	for _, p := range strings.Split(text, "\n") {
		words := strings.Fields(p)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := ""
		for _, word := range words {
			for visibleLen(word) > width {
				if line != "" {
					out = append(out, line)
					line = ""
				}
				runes := []rune(word)
				out = append(out, string(runes[:width]))
				word = string(runes[width:])
			}
			if line == "" {
				line = word
				continue
			}
			if visibleLen(line)+1+visibleLen(word) <= width {
				line += " " + word
				continue
			}
			out = append(out, line)
			line = word
		}
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func wrapPrefixedText(text string, width int, first, rest string) []string {
	inner := width - utf8.RuneCountInString(first)
	switch {
	case width < 1:
		inner = 0
	case inner < 1:
		inner = 1
	}
	wrapped := wrapText(text, inner)
	for i := range wrapped {
		if i == 0 {
			wrapped[i] = first + wrapped[i]
			continue
		}
		wrapped[i] = rest + wrapped[i]
	}
	return wrapped
}

func visibleLen(s string) int {
	return utf8.RuneCountInString(reANSICodes.ReplaceAllString(s, ""))
}

func findBodyNode(node *nethtml.Node) *nethtml.Node {
	if node == nil {
		return nil
	}
	if node.Type == nethtml.ElementNode && strings.EqualFold(node.Data, "body") {
		return node
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if found := findBodyNode(child); found != nil {
			return found
		}
	}
	return nil
}

func elementChildren(node *nethtml.Node) []*nethtml.Node {
	children := make([]*nethtml.Node, 0, 4)
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == nethtml.TextNode && strings.TrimSpace(child.Data) == "" {
			continue
		}
		children = append(children, child)
	}
	return children
}

func nodeAttr(node *nethtml.Node, name string) string {
	for _, attr := range node.Attr {
		if strings.EqualFold(attr.Key, name) {
			return strings.TrimSpace(attr.Val)
		}
	}
	return ""
}
