package htmlparser

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var blockElements = map[atom.Atom]bool{
	atom.Div:   true,
	atom.P:     true,
	atom.Pre:   true,
	atom.Li:    true,
	atom.Ul:    true,
	atom.Ol:    true,
	atom.Table: true,
	atom.Tr:    true,
	atom.H1:    true,
	atom.H2:    true,
	atom.H3:    true,
	atom.H4:    true,
}

// textContent renders the text of n the way a browser lays it out in a
// pre-wrap cell: entities decoded, <br> and block boundaries as newlines,
// everything else untouched. Nodes in skip are left out.
func textContent(n *html.Node, skip *html.Node) string {
	var b strings.Builder
	writeText(&b, n, skip)
	return strings.TrimSpace(b.String())
}

func writeText(b *strings.Builder, n *html.Node, skip *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c == skip {
			continue
		}

		switch c.Type {
		case html.TextNode:
			b.WriteString(c.Data)
		case html.ElementNode:
			switch {
			case c.DataAtom == atom.Script || c.DataAtom == atom.Style:
				continue
			case c.DataAtom == atom.Br:
				b.WriteByte('\n')
			case blockElements[c.DataAtom]:
				newline(b)
				writeText(b, c, skip)
				newline(b)
			default:
				writeText(b, c, skip)
			}
		}
	}
}

func newline(b *strings.Builder) {
	if s := b.String(); s != "" && !strings.HasSuffix(s, "\n") {
		b.WriteByte('\n')
	}
}
