package htmlparser

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type cellRole int

const (
	roleNone cellRole = iota
	roleTimestamp
	roleLevel
	roleMessage
	roleStack
)

// Column order used when a cell carries no recognizable class.
var positionalRoles = []cellRole{roleTimestamp, roleLevel, roleMessage, roleStack}

var classRoles = map[string]cellRole{
	"date":       roleTimestamp,
	"time":       roleTimestamp,
	"datetime":   roleTimestamp,
	"timestamp":  roleTimestamp,
	"ts":         roleTimestamp,
	"level":      roleLevel,
	"lvl":        roleLevel,
	"severity":   roleLevel,
	"message":    roleMessage,
	"msg":        roleMessage,
	"text":       roleMessage,
	"content":    roleMessage,
	"stack":      roleStack,
	"stacktrace": roleStack,
	"trace":      roleStack,
	"exception":  roleStack,
}

// roleByClass maps class tokens such as "date", "log-level" or "stack-trace"
// to a cell role. The first recognized token wins.
func roleByClass(n *html.Node) cellRole {
	for _, token := range strings.Fields(attr(n, "class")) {
		token = strings.ToLower(token)
		if r, ok := classRoles[token]; ok {
			return r
		}
		if i := strings.LastIndexAny(token, "-_"); i >= 0 && i < len(token)-1 {
			if r, ok := classRoles[token[i+1:]]; ok {
				return r
			}
		}
	}
	return roleNone
}

// classifyCells assigns roles to the cells of one row: class attributes
// first, then column position for the cells left over.
func classifyCells(cells []*html.Node) map[cellRole]*html.Node {
	roles := make(map[cellRole]*html.Node, len(positionalRoles))

	type positioned struct {
		pos  int
		node *html.Node
	}
	var unclassified []positioned

	for i, c := range cells {
		r := roleByClass(c)
		switch {
		case r == roleNone:
			unclassified = append(unclassified, positioned{pos: i, node: c})
		case roles[r] == nil:
			roles[r] = c
		}
	}

	for _, u := range unclassified {
		if u.pos >= len(positionalRoles) {
			continue
		}
		if r := positionalRoles[u.pos]; roles[r] == nil {
			roles[r] = u.node
		}
	}

	return roles
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func isElement(n *html.Node, a atom.Atom) bool {
	return n.Type == html.ElementNode && n.DataAtom == a
}

// findFirst returns the first descendant of n (depth first) accepted by match.
func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if match(c) {
			return c
		}
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}
