// Copyright 2026 The Forgejo Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package mdast

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Parse parses Markdown source with goldmark and converts the result.
func Parse(source []byte, opts ...goldmark.Option) *Node {
	md := goldmark.New(opts...)
	doc := md.Parser().Parse(text.NewReader(source))
	return FromGoldmark(doc, source)
}

// FromGoldmark converts a goldmark AST into an owned tree.
//
// Adjacent text segments are merged into one text node. A soft line break
// becomes a "\n" inside the text value and a hard line break becomes a
// break node. Node kinds without a counterpart are dropped and their
// children are spliced into the parent.
func FromGoldmark(doc ast.Node, source []byte) *Node {
	root := NewRoot()
	convertChildren(root, doc, source)
	return root
}

func convertChildren(parent *Node, gn ast.Node, source []byte) {
	for c := gn.FirstChild(); c != nil; c = c.NextSibling() {
		convertNode(parent, c, source)
	}
}

func convertNode(parent *Node, gn ast.Node, source []byte) {
	var n *Node
	switch v := gn.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		n = NewParagraph()
	case *ast.Heading:
		n = NewHeading(v.Level)
	case *ast.Blockquote:
		n = NewBlockquote()
	case *ast.List:
		n = &Node{Type: TypeList, Ordered: v.IsOrdered()}
		if v.IsOrdered() {
			n.Start = v.Start
		}
	case *ast.ListItem:
		n = &Node{Type: TypeListItem}
	case *ast.ThematicBreak:
		parent.AppendChild(&Node{Type: TypeThematicBreak})
		return
	case *ast.FencedCodeBlock:
		parent.AppendChild(&Node{
			Type:  TypeCode,
			Lang:  string(v.Language(source)),
			Value: strings.TrimSuffix(linesValue(v.Lines(), source), "\n"),
		})
		return
	case *ast.CodeBlock:
		parent.AppendChild(&Node{Type: TypeCode, Value: strings.TrimSuffix(linesValue(v.Lines(), source), "\n")})
		return
	case *ast.HTMLBlock:
		value := linesValue(v.Lines(), source)
		if v.HasClosure() {
			value += string(v.ClosureLine.Value(source))
		}
		parent.AppendChild(&Node{Type: TypeHTML, Value: strings.TrimSuffix(value, "\n")})
		return
	case *ast.Text:
		value := v.Segment.Value(source)
		if !v.IsRaw() {
			value = util.UnescapePunctuations(util.ResolveNumericReferences(util.ResolveEntityNames(value)))
		}
		appendText(parent, string(value))
		switch {
		case v.HardLineBreak():
			parent.AppendChild(NewBreak())
		case v.SoftLineBreak():
			appendText(parent, "\n")
		}
		return
	case *ast.String:
		appendText(parent, string(v.Value))
		return
	case *ast.Emphasis:
		if v.Level >= 2 {
			n = NewStrong()
		} else {
			n = NewEmphasis()
		}
	case *ast.CodeSpan:
		parent.AppendChild(&Node{Type: TypeInlineCode, Value: rawText(v, source)})
		return
	case *ast.Link:
		n = &Node{Type: TypeLink, URL: string(v.Destination), Title: string(v.Title)}
	case *ast.AutoLink:
		parent.AppendChild(&Node{
			Type:     TypeLink,
			URL:      string(v.URL(source)),
			Children: []*Node{NewText(string(v.Label(source)))},
		})
		return
	case *ast.Image:
		parent.AppendChild(&Node{
			Type:  TypeImage,
			URL:   string(v.Destination),
			Title: string(v.Title),
			Value: rawText(v, source),
		})
		return
	case *ast.RawHTML:
		var sb strings.Builder
		for i := 0; i < v.Segments.Len(); i++ {
			segment := v.Segments.At(i)
			sb.Write(segment.Value(source))
		}
		parent.AppendChild(&Node{Type: TypeHTML, Value: sb.String()})
		return
	default:
		convertChildren(parent, gn, source)
		return
	}
	convertChildren(n, gn, source)
	parent.AppendChild(n)
}

// appendText merges value into a trailing text child or starts a new one.
func appendText(parent *Node, value string) {
	if value == "" {
		return
	}
	if last := parent.ChildAt(len(parent.Children) - 1); last.Is(TypeText) {
		last.Value += value
		return
	}
	parent.AppendChild(NewText(value))
}

func linesValue(lines *text.Segments, source []byte) string {
	var sb strings.Builder
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		sb.Write(line.Value(source))
	}
	return sb.String()
}

func rawText(gn ast.Node, source []byte) string {
	var sb strings.Builder
	for c := gn.FirstChild(); c != nil; c = c.NextSibling() {
		switch v := c.(type) {
		case *ast.Text:
			sb.Write(v.Segment.Value(source))
			if v.SoftLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(v.Value)
		default:
			sb.WriteString(rawText(c, source))
		}
	}
	return sb.String()
}
