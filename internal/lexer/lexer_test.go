package lexer_test

import (
	"testing"

	"quill/internal/diag"
	"quill/internal/lexer"
	"quill/internal/source"
	"quill/internal/token"
)

func lexAll(t *testing.T, src string) ([]token.Token, []lexer.Error) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.php", []byte(src))
	return lexer.Tokenize(fs.Get(id))
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, tk := range toks {
		out = append(out, tk.Kind)
	}
	return out
}

func expectKinds(t *testing.T, src string, want ...token.Kind) []token.Token {
	t.Helper()
	toks, errs := lexAll(t, src)
	if len(errs) != 0 {
		t.Fatalf("unexpected lexical errors for %q: %v", src, errs)
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("lex %q:\n got  %v\n want %v", src, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("lex %q: token %d = %v, want %v (all: %v)", src, i, got[i], want[i], got)
		}
	}
	return toks
}

func TestGlobalStatement(t *testing.T) {
	toks := expectKinds(t, "<?php global $a, $b;",
		token.OpenTag, token.KwGlobal, token.Variable, token.Comma, token.Variable, token.Semicolon, token.EOF)
	if toks[2].Text != "$a" || toks[4].Text != "$b" {
		t.Fatalf("variable texts = %q, %q", toks[2].Text, toks[4].Text)
	}
	if toks[2].Span.Start != 13 || toks[2].Span.End != 15 {
		t.Fatalf("variable span = %v", toks[2].Span)
	}
}

func TestKeywordsAreCaseInsensitive(t *testing.T) {
	toks := expectKinds(t, "<?php GLOBAL $a; Echo 1;",
		token.OpenTag, token.KwGlobal, token.Variable, token.Semicolon,
		token.KwEcho, token.IntLit, token.Semicolon, token.EOF)
	if toks[1].Text != "GLOBAL" {
		t.Fatalf("keyword text must keep original spelling, got %q", toks[1].Text)
	}
}

func TestInlineHTMLAndTags(t *testing.T) {
	toks := expectKinds(t, "<p>hi</p>\n<?= $x ?>\n<b><?php echo 1;",
		token.InlineHTML, token.EchoTag, token.Variable, token.CloseTag,
		token.InlineHTML, token.OpenTag, token.KwEcho, token.IntLit, token.Semicolon, token.EOF)
	if toks[0].Text != "<p>hi</p>\n" {
		t.Fatalf("inline html = %q", toks[0].Text)
	}
	if toks[3].Text != "?>\n" {
		t.Fatalf("close tag must own one newline, got %q", toks[3].Text)
	}
	if toks[4].Text != "<b>" {
		t.Fatalf("second inline html = %q", toks[4].Text)
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	expectKinds(t, "<?php // line\n# hash\n/* block\n */ $a; // trailing ?>tail",
		token.OpenTag, token.Variable, token.Semicolon, token.CloseTag, token.InlineHTML, token.EOF)
}

func TestQualifiedNames(t *testing.T) {
	toks := expectKinds(t, `<?php new \Foo\Bar(); Baz\Qux::X; namespace\Y; foo;`,
		token.OpenTag,
		token.KwNew, token.QualifiedIdent, token.LParen, token.RParen, token.Semicolon,
		token.QualifiedIdent, token.ColonColon, token.Ident, token.Semicolon,
		token.QualifiedIdent, token.Semicolon,
		token.Ident, token.Semicolon,
		token.EOF)
	if toks[2].Text != `\Foo\Bar` || toks[6].Text != `Baz\Qux` || toks[10].Text != `namespace\Y` {
		t.Fatalf("qualified texts: %q %q %q", toks[2].Text, toks[6].Text, toks[10].Text)
	}
}

func TestNumbersAndStrings(t *testing.T) {
	toks := expectKinds(t, `<?php 0 42 1_000 0x1F 0b101 0o17 1.5 .5 1e3 'a\'b' "c\"d"`,
		token.OpenTag,
		token.IntLit, token.IntLit, token.IntLit, token.IntLit, token.IntLit, token.IntLit,
		token.FloatLit, token.FloatLit, token.FloatLit,
		token.StringLit, token.StringLit,
		token.EOF)
	if toks[10].Text != `'a\'b'` {
		t.Fatalf("single-quoted text = %q", toks[10].Text)
	}
}

func TestHeredoc(t *testing.T) {
	toks := expectKinds(t, "<?php $a = <<<EOT\nline EOTX\n  EOT;\n$b;",
		token.OpenTag, token.Variable, token.Assign, token.StringLit, token.Semicolon,
		token.Variable, token.Semicolon, token.EOF)
	if toks[3].Text != "<<<EOT\nline EOTX\n  EOT" {
		t.Fatalf("heredoc text = %q", toks[3].Text)
	}
}

func TestOperatorsLongestMatch(t *testing.T) {
	expectKinds(t, "<?php === !== <=> ??= ?-> ... ** **= .= != <> -> => :: ++ --",
		token.OpenTag,
		token.EqEqEq, token.BangEqEq, token.Spaceship, token.QuestionQuestionAssign,
		token.NullsafeArrow, token.Ellipsis, token.StarStar, token.StarStarAssign,
		token.DotAssign, token.BangEq, token.BangEq, token.Arrow, token.FatArrow,
		token.ColonColon, token.PlusPlus, token.MinusMinus,
		token.EOF)
}

func TestInvalidInputIsRecoverable(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code diag.Code
		text string
	}{
		{"unknown char", "<?php $a ` $b;", diag.LexUnknownChar, "`"},
		{"lone dollar", "<?php $ ;", diag.LexBadVariable, "$"},
		{"unterminated string", "<?php 'abc", diag.LexUnterminatedString, "'abc"},
		{"unterminated comment", "<?php /* abc", diag.LexUnterminatedComment, "/* abc"},
		{"bad number", "<?php 12abc;", diag.LexBadNumber, "12abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, errs := lexAll(t, tt.src)
			if len(errs) != 1 {
				t.Fatalf("expected 1 error, got %v", errs)
			}
			if errs[0].Code != tt.code {
				t.Fatalf("code = %v, want %v", errs[0].Code, tt.code)
			}
			var invalid *token.Token
			for i := range toks {
				if toks[i].Kind == token.Invalid {
					invalid = &toks[i]
					break
				}
			}
			if invalid == nil {
				t.Fatalf("no Invalid token in %v", kinds(toks))
			}
			if invalid.Text != tt.text || invalid.Span != errs[0].Span {
				t.Fatalf("invalid token %q %v, error span %v", invalid.Text, invalid.Span, errs[0].Span)
			}
			if toks[len(toks)-1].Kind != token.EOF {
				t.Fatalf("stream must end with EOF")
			}
		})
	}
}

func TestEOFIsSticky(t *testing.T) {
	fs := source.NewFileSet()
	lx := lexer.New(fs.Get(fs.AddVirtual("e.php", []byte("<?php"))))
	lx.Next()
	for range 3 {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("expected EOF, got %v", tok.Kind)
		}
	}
}
