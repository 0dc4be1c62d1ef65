package ast

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented outline of the tree: one line per node with its
// type, byte span and, for leaves, the source text.
func Fprint(w io.Writer, node Node) error {
	return fprint(w, node, 0)
}

func fprint(w io.Writer, node Node, depth int) error {
	name := strings.TrimPrefix(fmt.Sprintf("%T", node), "*ast.")
	sp := node.Span()
	line := fmt.Sprintf("%s%s [%d..%d)", strings.Repeat("  ", depth), name, sp.Start, sp.End)
	if text, ok := LeafText(node); ok {
		line += " " + fmt.Sprintf("%q", text)
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}
	for _, child := range Children(node) {
		if err := fprint(w, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// LeafText returns the token text shown next to leaf and operator nodes.
func LeafText(node Node) (string, bool) {
	switch n := node.(type) {
	case *Variable:
		return n.Token.Text, true
	case *Identifier:
		return n.Token.Text, true
	case *Name:
		return n.Token.Text, true
	case *Literal:
		return n.Token.Text, true
	case *Binary:
		return n.Operator.Text, true
	case *Assignment:
		return n.Operator.Text, true
	case *Unary:
		return n.Operator.Text, true
	case *Postfix:
		return n.Operator.Text, true
	case *Cast:
		return n.Type.Text, true
	case *Construct:
		return n.Keyword.Text, true
	case *Global:
		return n.Terminator.Kind.String(), true
	case *Echo:
		return n.Terminator.Kind.String(), true
	case *ExpressionStatement:
		return n.Terminator.Kind.String(), true
	}
	return "", false
}
