package fuzztests

import (
	"testing"

	"quill/internal/lexer"
	"quill/internal/source"
	"quill/internal/token"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.php", input))

		lx := lexer.New(file)
		prevEnd := uint32(0)
		// каждый токен продвигает курсор, иначе лексер зациклится
		for range len(input) + 2 {
			tok := lx.Next()
			if tok.Span.Start < prevEnd {
				t.Fatalf("token %v starts at %d before previous end %d", tok.Kind, tok.Span.Start, prevEnd)
			}
			prevEnd = tok.Span.End
			if tok.Kind == token.EOF {
				return
			}
		}
		t.Fatalf("lexer did not reach EOF on %d bytes", len(input))
	})
}
