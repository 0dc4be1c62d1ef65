package fix

import (
	"testing"

	"quill/internal/diag"
	"quill/internal/source"
)

func TestDeleteSpan(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.php", []byte("<?php ;;"))

	span := source.Span{File: fileID, Start: 7, End: 8}
	fix := DeleteSpan("Remove semicolon", span, ";", WithID("redundancy/redundant-noop"))

	if fix.ID != "redundancy/redundant-noop" {
		t.Errorf("ID = %q", fix.ID)
	}
	if len(fix.Edits) != 1 {
		t.Fatalf("expected 1 edit, got %d", len(fix.Edits))
	}
	edit := fix.Edits[0]
	if edit.NewText != "" {
		t.Errorf("expected empty NewText for deletion, got %q", edit.NewText)
	}
	if edit.OldText != ";" {
		t.Errorf("expected OldText ';', got %q", edit.OldText)
	}
	if fix.Kind != diag.FixKindQuickFix || fix.Applicability != diag.FixApplicabilityAlwaysSafe {
		t.Errorf("unexpected metadata: %v %v", fix.Kind, fix.Applicability)
	}
}

func TestReplaceSpanOptions(t *testing.T) {
	span := source.Span{File: 0, Start: 6, End: 12}
	fix := ReplaceSpan("Lowercase keyword", span, "global", "GLOBAL",
		Preferred(),
		WithKind(diag.FixKindRefactorRewrite),
		WithApplicability(diag.FixApplicabilityManualReview),
		nil,
	)
	if !fix.IsPreferred {
		t.Error("expected preferred fix")
	}
	if fix.Kind != diag.FixKindRefactorRewrite {
		t.Errorf("Kind = %v", fix.Kind)
	}
	if fix.Applicability != diag.FixApplicabilityManualReview {
		t.Errorf("Applicability = %v", fix.Applicability)
	}
	if fix.Edits[0].NewText != "global" || fix.Edits[0].Span != span {
		t.Errorf("edit = %+v", fix.Edits[0])
	}
}

func TestInsertIsZeroWidth(t *testing.T) {
	e := Insert(source.Span{File: 2, Start: 4, End: 9}, ";")
	if e.Span.Start != 4 || e.Span.End != 4 || e.NewText != ";" || e.OldText != "" {
		t.Fatalf("insert = %+v, want zero width at 4", e)
	}
}

func TestComposeSortsEdits(t *testing.T) {
	tag := source.Span{File: 1, Start: 13, End: 16}
	prev := source.Span{File: 1, Start: 11, End: 12}
	edits := []diag.TextEdit{
		Replace(tag, "\n", "?>\n"),
		Insert(prev.ZeroideToEnd(), ";"),
	}
	fix := Compose("terminate and remove", edits, Preferred())
	if len(fix.Edits) != 2 {
		t.Fatalf("expected 2 edits, got %d", len(fix.Edits))
	}
	if fix.Edits[0].Span.Start != 12 || fix.Edits[0].NewText != ";" {
		t.Errorf("first edit = %+v", fix.Edits[0])
	}
	if fix.Edits[1].Span != tag {
		t.Errorf("second edit = %+v", fix.Edits[1])
	}
	// исходный срез не переупорядочен
	if edits[0].Span != tag {
		t.Errorf("Compose reordered the caller's slice")
	}
	if !fix.IsPreferred || fix.Kind != diag.FixKindQuickFix {
		t.Errorf("metadata = %+v", fix)
	}
}

func TestComposeInsertBeforeReplaceAtSameOffset(t *testing.T) {
	tag := source.Span{File: 1, Start: 12, End: 15}
	fix := Compose("terminate and remove", []diag.TextEdit{
		Replace(tag, "\n", "?>\n"),
		Insert(tag, ";"),
	})
	if !fix.Edits[0].Span.Empty() || fix.Edits[1].Span != tag {
		t.Fatalf("edits = %+v, want insertion first", fix.Edits)
	}
}
