package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	files := []string{
		"src/b.php",
		"src/a.php",
		"src/readme.md",
		"src/cache/tmp.php",
		"src/deep/x/c.PHP",
	}
	for _, f := range files {
		p := filepath.Join(root, f)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(p, []byte("<?php"), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	got, err := Discover([]string{filepath.Join(root, "src")}, DiscoverOptions{
		Excludes: []string{"**/cache/**"},
	})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	want := []string{
		filepath.ToSlash(filepath.Join(root, "src/a.php")),
		filepath.ToSlash(filepath.Join(root, "src/b.php")),
		filepath.ToSlash(filepath.Join(root, "src/deep/x/c.PHP")),
	}
	if len(got) != len(want) {
		t.Fatalf("Discover = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMatchGlob(t *testing.T) {
	tests := []struct {
		pattern, path string
		want          bool
	}{
		{"**/cache/**", "a/b/cache/x.php", true},
		{"**/cache/**", "cache", true},
		{"vendor/*.php", "vendor/a.php", true},
		{"vendor/*.php", "vendor/x/a.php", false},
		{"**/*.tpl.php", "views/a.tpl.php", true},
		{"src", "src/a.php", false},
	}
	for _, tt := range tests {
		if got := matchGlob(tt.pattern, tt.path); got != tt.want {
			t.Errorf("matchGlob(%q, %q) = %v, want %v", tt.pattern, tt.path, got, tt.want)
		}
	}
}

func TestDiscoverMissingRoot(t *testing.T) {
	if _, err := Discover([]string{filepath.Join(t.TempDir(), "nope")}, DiscoverOptions{}); err == nil {
		t.Fatal("expected error for missing root")
	}
}
