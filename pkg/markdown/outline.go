// Package markdown inspects generated wiki pages.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Heading is an ATX or setext heading of a page.
type Heading struct {
	Level int
	Text  string
}

// PageOutline summarizes the structure of a markdown page.
type PageOutline struct {
	Headings   []Heading
	CodeBlocks int // fenced code blocks
}

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Outline parses source and collects its headings and fenced code blocks.
func Outline(source []byte) PageOutline {
	var out PageOutline
	doc := md.Parser().Parse(text.NewReader(source))
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			out.Headings = append(out.Headings, Heading{Level: node.Level, Text: inlineText(node, source)})
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock:
			out.CodeBlocks++
		}
		return ast.WalkContinue, nil
	})
	return out
}

// HeadingsAt returns the text of every heading at level.
func (o PageOutline) HeadingsAt(level int) []string {
	var out []string
	for _, h := range o.Headings {
		if h.Level == level {
			out = append(out, h.Text)
		}
	}
	return out
}

func inlineText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch child := c.(type) {
		case *ast.Text:
			buf.Write(child.Segment.Value(source))
			if child.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(child.Value)
		default:
			buf.WriteString(inlineText(c, source))
		}
	}
	return buf.String()
}
