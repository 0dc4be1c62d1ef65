package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
)

var inlineSeeds = []string{
	"",
	"plain html only",
	"<?php\n",
	"<?php echo 'hi';",
	"<?php namespace App; use Foo\\Bar as Baz; class A extends Baz implements I { const X = 1; public $p = [1, 2]; public static function m(int $a = 1, ...$rest): ?string { return null; } }",
	"<?php function f($x) { foreach ($x as $k => &$v) { if ($k) { continue; } else { break; } } }",
	"<?php interface I { function m(); } trait T { } abstract class B { abstract protected function n(); }",
	"<?php $f = function ($a) use (&$b) { return $a . \"x{$b}y\" . <<<EOT\nbody $a\nEOT;\n};",
	"<?php try { throw new E(); } catch (E $e) { } finally { }",
	"<?php switch ($a) { case 1: echo 1; break; default: echo 2; }",
	"<?php do { $i++; } while ($i < 10); list($a, $b) = [1, 2]; global $g; static $s = 0;",
	"<a><?= $x ?></a><?php if (1): ?>yes<?php endif; ?>",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.php файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".php" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
