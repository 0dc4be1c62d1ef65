// Package testkit holds checks shared by parser and pipeline tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"quill/internal/ast"
	"quill/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed file:
// 1) every node span points at sf and lies within its content
// 2) every child span is contained in its parent span
// 3) siblings appear in source order and do not overlap
func CheckSpanInvariants(prog *ast.Program, sf *source.File) error {
	if prog == nil || sf == nil {
		return fmt.Errorf("nil program or file")
	}
	if prog.File != sf.ID {
		return fmt.Errorf("program points to different file id: got=%d want=%d", prog.File, sf.ID)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	return checkNode(prog, sf.ID, lenContent)
}

func checkNode(node ast.Node, file source.FileID, lenContent uint32) error {
	sp := node.Span()
	if sp.File != file {
		return fmt.Errorf("%T span file mismatch: got=%d want=%d", node, sp.File, file)
	}
	if sp.End < sp.Start || sp.End > lenContent {
		return fmt.Errorf("%T span %v out of bounds (content %d)", node, sp, lenContent)
	}
	var prev source.Span
	for i, child := range ast.Children(node) {
		csp := child.Span()
		if !sp.Contains(csp) {
			return fmt.Errorf("%T span %v is outside parent %T span %v", child, csp, node, sp)
		}
		if i > 0 && csp.Start < prev.End {
			return fmt.Errorf("%T span %v overlaps previous sibling %v", child, csp, prev)
		}
		if err := checkNode(child, file, lenContent); err != nil {
			return err
		}
		prev = csp
	}
	return nil
}
