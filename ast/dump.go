package ast

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented tree rendering of node to w. Tokens are shown with
// their type and text; trivia is omitted.
func Dump(w io.Writer, node Node) error {
	d := &dumper{w: w}
	d.line("", "", node)
	d.children(node, "")
	return d.err
}

// DumpString returns the Dump rendering of node.
func DumpString(node Node) string {
	var sb strings.Builder
	_ = Dump(&sb, node)
	return sb.String()
}

type dumper struct {
	w   io.Writer
	err error
}

func (d *dumper) children(node Node, indent string) {
	children := node.Children()
	for i, child := range children {
		connector := "├─ "
		childIndent := indent + "│  "
		if i == len(children)-1 {
			connector = "└─ "
			childIndent = indent + "   "
		}
		d.line(indent, connector, child)
		d.children(child, childIndent)
	}
}

func (d *dumper) line(indent, connector string, node Node) {
	if d.err != nil {
		return
	}
	var label string
	switch n := node.(type) {
	case *Token:
		label = fmt.Sprintf("Token %s %q", n.Type, n.Text)
		if n.IsImplicit() {
			label += " implicit"
		}
	default:
		label = node.Kind().String()
	}
	_, d.err = fmt.Fprintf(d.w, "%s%s%s\n", indent, connector, label)
}
