package tui

import (
	"strings"

	"golang.org/x/net/html"
)

// plainText renders catalog description markup as terminal text: block
// elements start new lines, list items get a bullet and entities are
// decoded by the tokenizer.
func plainText(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return tidyLines(b.String())

		case html.TextToken:
			b.Write(z.Text())

		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "li":
				b.WriteString("\n• ")
			case "p", "div", "br", "ul", "ol", "h1", "h2", "h3", "h4", "h5", "h6":
				b.WriteString("\n")
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "p", "div", "li", "ul", "ol", "h1", "h2", "h3", "h4", "h5", "h6":
				b.WriteString("\n")
			}
		}
	}
}

// tidyLines collapses runs of spaces and drops blank lines.
func tidyLines(s string) string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" && line != "•" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
