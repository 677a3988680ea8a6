package ast

import "iter"

// Visitor defines the interface for tree traversal. If Visit returns nil,
// children of the node are not visited. Otherwise, the returned Visitor
// is used to visit children.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses a tree in depth-first order. It starts by calling
// v.Visit(node); if the returned visitor w is not nil, Walk is invoked
// recursively with visitor w for each child of node.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}
	for _, child := range node.Children() {
		Walk(v, child)
	}
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses a tree in depth-first order. If f returns false,
// the children of the node are skipped.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

// Preorder returns an iterator over all nodes of the tree rooted at root,
// parents before children.
func Preorder(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		var visit func(Node) bool
		visit = func(n Node) bool {
			if !yield(n) {
				return false
			}
			for _, child := range n.Children() {
				if !visit(child) {
					return false
				}
			}
			return true
		}
		visit(root)
	}
}

// Tokens returns an iterator over the token leaves of the tree in source
// order, implicit tokens included.
func Tokens(root Node) iter.Seq[*Token] {
	return func(yield func(*Token) bool) {
		for n := range Preorder(root) {
			if tok, ok := n.(*Token); ok && !yield(tok) {
				return
			}
		}
	}
}
