// Copyright 2026 The Forgejo Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package mdast holds a small owned document tree for Markdown content.
//
// Every node owns its children slice; there are no parent pointers, so a
// tree can be mutated in place during a single walk and copied with Clone.
package mdast

import "slices"

type NodeType string

const (
	TypeRoot          NodeType = "root"
	TypeBlockquote    NodeType = "blockquote"
	TypeParagraph     NodeType = "paragraph"
	TypeHeading       NodeType = "heading"
	TypeList          NodeType = "list"
	TypeListItem      NodeType = "listItem"
	TypeCode          NodeType = "code"
	TypeHTML          NodeType = "html"
	TypeThematicBreak NodeType = "thematicBreak"
	TypeText          NodeType = "text"
	TypeBreak         NodeType = "break"
	TypeEmphasis      NodeType = "emphasis"
	TypeStrong        NodeType = "strong"
	TypeInlineCode    NodeType = "inlineCode"
	TypeLink          NodeType = "link"
	TypeImage         NodeType = "image"
)

// ClassNameProperty is the HProperties key holding the ordered class list.
const ClassNameProperty = "className"

// Data carries render hints attached to a node.
type Data struct {
	// HName overrides the output tag name.
	HName string `json:"hName,omitempty" yaml:"hName,omitempty"`
	// HProperties maps output attribute names to values.
	HProperties map[string]any `json:"hProperties,omitempty" yaml:"hProperties,omitempty"`
}

// ClassName returns the class list stored in HProperties, or nil.
func (d *Data) ClassName() []string {
	if d == nil || d.HProperties == nil {
		return nil
	}
	classes, _ := d.HProperties[ClassNameProperty].([]string)
	return classes
}

// SetClassName stores the class list, creating HProperties when needed.
func (d *Data) SetClassName(classes []string) {
	if d.HProperties == nil {
		d.HProperties = map[string]any{}
	}
	d.HProperties[ClassNameProperty] = classes
}

func (d *Data) Clone() *Data {
	if d == nil {
		return nil
	}
	c := &Data{HName: d.HName}
	if d.HProperties != nil {
		c.HProperties = make(map[string]any, len(d.HProperties))
		for k, v := range d.HProperties {
			if s, ok := v.([]string); ok {
				v = slices.Clone(s)
			}
			c.HProperties[k] = v
		}
	}
	return c
}

// Node is one element of the tree. Which of the optional fields are
// meaningful depends on Type.
type Node struct {
	Type NodeType `json:"type" yaml:"type"`
	// Value is the literal content of text, code, inlineCode and html
	// nodes, and the alt text of images.
	Value string `json:"value,omitempty" yaml:"value,omitempty"`

	Depth   int    `json:"depth,omitempty" yaml:"depth,omitempty"`
	Ordered bool   `json:"ordered,omitempty" yaml:"ordered,omitempty"`
	Start   int    `json:"start,omitempty" yaml:"start,omitempty"`
	Lang    string `json:"lang,omitempty" yaml:"lang,omitempty"`
	URL     string `json:"url,omitempty" yaml:"url,omitempty"`
	Title   string `json:"title,omitempty" yaml:"title,omitempty"`

	Data     *Data   `json:"data,omitempty" yaml:"data,omitempty"`
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

func NewRoot(children ...*Node) *Node {
	return &Node{Type: TypeRoot, Children: children}
}

func NewBlockquote(children ...*Node) *Node {
	return &Node{Type: TypeBlockquote, Children: children}
}

func NewParagraph(children ...*Node) *Node {
	return &Node{Type: TypeParagraph, Children: children}
}

func NewHeading(depth int, children ...*Node) *Node {
	return &Node{Type: TypeHeading, Depth: depth, Children: children}
}

func NewText(value string) *Node {
	return &Node{Type: TypeText, Value: value}
}

// NewBreak returns a hard line break.
func NewBreak() *Node {
	return &Node{Type: TypeBreak}
}

func NewEmphasis(children ...*Node) *Node {
	return &Node{Type: TypeEmphasis, Children: children}
}

func NewStrong(children ...*Node) *Node {
	return &Node{Type: TypeStrong, Children: children}
}

// Is reports whether n is non-nil and of type t.
func (n *Node) Is(t NodeType) bool {
	return n != nil && n.Type == t
}

// ChildAt returns the i-th child or nil when out of range.
func (n *Node) ChildAt(i int) *Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

func (n *Node) FirstChild() *Node {
	return n.ChildAt(0)
}

func (n *Node) AppendChild(c *Node) {
	n.Children = append(n.Children, c)
}

// InsertChild inserts c at index i, shifting later children right.
func (n *Node) InsertChild(i int, c *Node) {
	n.Children = slices.Insert(n.Children, i, c)
}

// RemoveChildAt removes the i-th child and returns it.
func (n *Node) RemoveChildAt(i int) *Node {
	c := n.Children[i]
	n.Children = slices.Delete(n.Children, i, i+1)
	return c
}

// RemoveChild removes c (compared by identity) and reports whether it was found.
func (n *Node) RemoveChild(c *Node) bool {
	i := slices.Index(n.Children, c)
	if i < 0 {
		return false
	}
	n.RemoveChildAt(i)
	return true
}

// EnsureData returns n.Data, allocating it first when absent.
func (n *Node) EnsureData() *Data {
	if n.Data == nil {
		n.Data = &Data{}
	}
	return n.Data
}

// TextContent concatenates the values of all text-like descendants.
func (n *Node) TextContent() string {
	switch n.Type {
	case TypeText, TypeInlineCode, TypeCode:
		return n.Value
	case TypeBreak:
		return "\n"
	}
	var s string
	for _, c := range n.Children {
		s += c.TextContent()
	}
	return s
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	c.Data = n.Data.Clone()
	if n.Children != nil {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Clone()
		}
	}
	return &c
}
