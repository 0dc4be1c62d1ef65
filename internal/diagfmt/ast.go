package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"quill/internal/ast"
	"quill/internal/source"
)

type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Span     source.Span     `json:"span"`
	Text     string          `json:"text,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

func nodeType(n ast.Node) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", n), "*ast.")
}

// FormatASTPretty печатает дерево с ветками ├─ └─, по строке на узел.
func FormatASTPretty(w io.Writer, prog *ast.Program, fs *source.FileSet) error {
	if prog == nil {
		return fmt.Errorf("no program")
	}
	header := "File"
	if f := fs.Get(prog.File); f != nil {
		header = f.FormatPath("auto", fs.BaseDir())
	}
	if _, err := fmt.Fprintf(w, "%s (span: %s)\n", header, formatSpan(prog.Span(), fs)); err != nil {
		return err
	}
	return formatChildrenPretty(w, prog, fs, "")
}

func formatChildrenPretty(w io.Writer, node ast.Node, fs *source.FileSet, prefix string) error {
	children := ast.Children(node)
	for i, child := range children {
		branch, next := "├─ ", "│  "
		if i == len(children)-1 {
			branch, next = "└─ ", "   "
		}
		label := fmt.Sprintf("%s (span: %s)", nodeType(child), formatSpan(child.Span(), fs))
		if text, ok := ast.LeafText(child); ok {
			label += fmt.Sprintf(" %q", text)
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, branch, label); err != nil {
			return err
		}
		if err := formatChildrenPretty(w, child, fs, prefix+next); err != nil {
			return err
		}
	}
	return nil
}

// BuildASTOutput converts a subtree into its JSON shape.
func BuildASTOutput(node ast.Node) ASTNodeOutput {
	out := ASTNodeOutput{Type: nodeType(node), Span: node.Span()}
	if text, ok := ast.LeafText(node); ok {
		out.Text = text
	}
	for _, child := range ast.Children(node) {
		out.Children = append(out.Children, BuildASTOutput(child))
	}
	return out
}

func FormatASTJSON(w io.Writer, prog *ast.Program) error {
	if prog == nil {
		return fmt.Errorf("no program")
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildASTOutput(prog))
}
