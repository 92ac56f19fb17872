// Package htmlparser turns HTML test-log tables into log entries.
//
// The expected document holds a table whose rows carry a timestamp, a level,
// a message and optionally a (usually hidden) stack trace. Producers differ
// in markup, so cells are recognized by class first and by column second.
package htmlparser

import (
	"bytes"
	"strings"

	"github.com/Egor213/LogLens/internal/domain"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultFailureAnchor is the id (or name) of the anchor test frameworks
// drop into the message of the entry where a test failed.
const DefaultFailureAnchor = "failure"

type Parser struct {
	failureAnchors map[string]struct{}
}

// New returns a parser that recognizes the given failure anchor ids, or
// DefaultFailureAnchor when none are given.
func New(failureAnchors ...string) *Parser {
	if len(failureAnchors) == 0 {
		failureAnchors = []string{DefaultFailureAnchor}
	}

	anchors := make(map[string]struct{}, len(failureAnchors))
	for _, a := range failureAnchors {
		if a = strings.TrimSpace(a); a != "" {
			anchors[a] = struct{}{}
		}
	}
	return &Parser{failureAnchors: anchors}
}

// Parse returns the entries of one file in row order. Entries get
// SourceFileIndex = fileIndex and LineNumber = the 0-based position of their
// row among the data rows of the file, so a skipped malformed row leaves a
// gap. Header rows are not counted. A document without table rows is a
// *ParseError.
func (p *Parser) Parse(data []byte, fileIndex int) ([]domain.LogEntry, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, &ParseError{FileIndex: fileIndex, Err: err}
	}

	rows := collectRows(doc)
	if len(rows) == 0 {
		return nil, &ParseError{FileIndex: fileIndex, Err: ErrNotLogTable}
	}

	entries := make([]domain.LogEntry, 0, len(rows))
	line := 0
	for _, row := range rows {
		cells := dataCells(row)
		if len(cells) == 0 {
			continue
		}

		entry, ok := p.parseRow(cells)
		if ok {
			entry.SourceFileIndex = fileIndex
			entry.LineNumber = line
			entries = append(entries, entry)
		}
		line++
	}

	return entries, nil
}

// collectRows returns the <tr> elements in document order. Rows of tables
// nested inside a cell belong to that cell, not to the log.
func collectRows(n *html.Node) []*html.Node {
	var rows []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if isElement(c, atom.Tr) {
				rows = append(rows, c)
				continue
			}
			walk(c)
		}
	}
	walk(n)
	return rows
}

// dataCells returns the <td> children of row. Header rows have none.
func dataCells(row *html.Node) []*html.Node {
	var cells []*html.Node
	for c := row.FirstChild; c != nil; c = c.NextSibling {
		if isElement(c, atom.Td) {
			cells = append(cells, c)
		}
	}
	return cells
}

func (p *Parser) parseRow(cells []*html.Node) (domain.LogEntry, bool) {
	roles := classifyCells(cells)
	tsCell, levelCell, msgCell := roles[roleTimestamp], roles[roleLevel], roles[roleMessage]
	if tsCell == nil || levelCell == nil || msgCell == nil {
		return domain.LogEntry{}, false
	}

	level := textContent(levelCell, nil)
	if level == "" {
		return domain.LogEntry{}, false
	}

	entry := domain.LogEntry{
		Timestamp:       textContent(tsCell, nil),
		Level:           level,
		IsFailureMarker: p.hasFailureAnchor(msgCell),
	}

	// Some producers nest the hidden stack trace inside the message cell.
	nested := findFirst(msgCell, func(n *html.Node) bool {
		return n.Type == html.ElementNode && roleByClass(n) == roleStack
	})
	entry.Message = textContent(msgCell, nested)

	var stack string
	if stackCell := roles[roleStack]; stackCell != nil {
		stack = textContent(stackCell, nil)
	}
	if stack == "" && nested != nil {
		stack = textContent(nested, nil)
	}
	if stack != "" {
		entry.Stack = &stack
	}

	return entry, true
}

func (p *Parser) hasFailureAnchor(cell *html.Node) bool {
	anchor := findFirst(cell, func(n *html.Node) bool {
		if !isElement(n, atom.A) {
			return false
		}
		for _, key := range []string{"id", "name"} {
			if _, ok := p.failureAnchors[attr(n, key)]; ok {
				return true
			}
		}
		return false
	})
	return anchor != nil
}
