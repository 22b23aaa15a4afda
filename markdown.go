package assetexpl

import (
	"errors"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Heading is a section title of a markdown text block.
type Heading struct {
	Level int
	Text  string
}

// Outline parses a description or strategy block and returns its headings.
//
// Text blocks are otherwise opaque, but each one must be non-empty markdown
// with at least one heading, which is how the bundled content is structured.
func Outline(md string) ([]Heading, error) {
	if strings.TrimSpace(md) == "" {
		return nil, errors.New("empty text")
	}
	src := []byte(md)
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	var headings []Heading
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			headings = append(headings, Heading{Level: h.Level, Text: inlineText(h, src)})
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}
	if len(headings) == 0 {
		return nil, errors.New("no heading")
	}
	return headings, nil
}

// inlineText concatenates the text segments below n, dropping emphasis markers.
func inlineText(n ast.Node, src []byte) string {
	var b strings.Builder
	ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := c.(*ast.Text); ok && entering {
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
