// Copyright 2026 The Forgejo Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package mdast

// VisitStatus tells Visit how to proceed after a node has been handled.
type VisitStatus int

const (
	VisitContinue VisitStatus = iota
	VisitSkipChildren
	VisitStop
)

// Visitor is called for every node in pre-order. parent is nil and index
// is -1 for the node Visit started from.
type Visitor func(n *Node, index int, parent *Node) VisitStatus

// Visit walks the tree rooted at root depth-first. Children are read after
// the visitor returns, so a visitor may rewrite the children of the node it
// was called for; it must not touch the children of parent.
func Visit(root *Node, visitor Visitor) {
	visit(root, -1, nil, visitor)
}

func visit(n *Node, index int, parent *Node, visitor Visitor) bool {
	switch visitor(n, index, parent) {
	case VisitStop:
		return false
	case VisitSkipChildren:
		return true
	}
	for i := 0; i < len(n.Children); i++ {
		if !visit(n.Children[i], i, n, visitor) {
			return false
		}
	}
	return true
}
