package fuzztests

import (
	"testing"
	"time"

	"quill/internal/parser"
	"quill/internal/source"
	"quill/internal/testkit"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

func FuzzParserBuildsAST(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.php", input))

		prog, perr, _ := parser.ParseFile(file)
		if prog == nil {
			t.Fatalf("ParseFile returned nil program")
		}
		if perr != nil {
			return
		}
		if err := testkit.CheckSpanInvariants(prog, file); err != nil {
			t.Fatalf("span invariants: %v\ninput: %q", err, truncateForLog(input, 200))
		}
	})
}

// FuzzParserNoHang tests that the parser doesn't hang on any input.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)

	// Входы, на которых восстановление после ошибок легко зациклить
	f.Add([]byte("<?php function f( { }"))
	f.Add([]byte("<?php class A { public function }"))
	f.Add([]byte("<?php if ($a) { while ($b) { for (;;) { } } "))
	f.Add([]byte("<?php $a = [1, 2, [3, [4"))
	f.Add([]byte("<?php switch ($x) { case 1: default: default: }"))
	f.Add([]byte("<?php ?>html<?php ?><?= $x"))
	f.Add([]byte("<?php \"unterminated {$a[1]"))

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)

		done := make(chan struct{})
		go func() {
			defer close(done)
			fs := source.NewFileSet()
			file := fs.Get(fs.AddVirtual("fuzz.php", input))
			_, _, _ = parser.ParseFile(file)
		}()

		select {
		case <-done:
		case <-time.After(parseTimeout):
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], []byte("...")...)
}
