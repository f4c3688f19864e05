package search

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// ExtractText parses rendered HTML and returns the whitespace-normalized
// text content, suitable as an entry's indexed text. Script and style
// bodies are skipped. A parse failure is non-fatal for the build; the
// caller skips the entry.
func ExtractText(rendered []byte) (string, error) {
	doc, err := html.Parse(bytes.NewReader(rendered))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return strings.Join(strings.Fields(sb.String()), " "), nil
}
