package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"quill/internal/linter"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	got, ok, err := FindProjectRoot(nested)
	if err != nil || !ok {
		t.Fatalf("FindProjectRoot: ok=%v err=%v", ok, err)
	}
	want, _ := filepath.Abs(root)
	if got != want {
		t.Fatalf("root = %q, want %q", got, want)
	}
}

func TestLoadFull(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[source]
paths = ["src"]
includes = ["vendor"]
excludes = ["**/cache/**"]

[linter]
level = "warning"
default_plugins = false
plugins = ["migration"]
target_version = "8.1"

[[linter.rules]]
name = "naming/class-name"
level = "error"
options = { psr = true }

[[linter.rules]]
name = "safety/no-global"
enabled = false
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if want := []string{filepath.Join(dir, "src")}; !reflect.DeepEqual(cfg.Source.Paths, want) {
		t.Fatalf("paths = %v, want %v", cfg.Source.Paths, want)
	}
	if want := []string{"php"}; !reflect.DeepEqual(cfg.Source.Extensions, want) {
		t.Fatalf("extensions = %v, want default %v", cfg.Source.Extensions, want)
	}
	s, err := cfg.LintSettings()
	if err != nil {
		t.Fatalf("LintSettings: %v", err)
	}
	if s.Level != linter.LevelWarning || s.DefaultPlugins || !reflect.DeepEqual(s.Plugins, []string{"migration"}) {
		t.Fatalf("settings = %+v", s)
	}
	if s.TargetVersion == nil || s.TargetVersion.String() != "8.1.0" {
		t.Fatalf("target = %v", s.TargetVersion)
	}
	cls := s.Rules["naming/class-name"]
	if !cls.Enabled || cls.Level == nil || *cls.Level != linter.LevelError || cls.Options["psr"] != true {
		t.Fatalf("class-name = %+v", cls)
	}
	if s.Rules["safety/no-global"].Enabled {
		t.Fatalf("no-global should be disabled")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		key  string
	}{
		{"bad level", "[linter]\nlevel = \"loud\"\n", "linter.level"},
		{"bad version", "[linter]\ntarget_version = \"eight\"\n", "linter.target_version"},
		{"unknown key", "[linter]\nlevle = \"help\"\n", "linter.levle"},
		{"rule without plugin", "[[linter.rules]]\nname = \"no-global\"\n", "linter.rules[0]"},
		{"duplicate rule", "[[linter.rules]]\nname = \"a/b\"\n[[linter.rules]]\nname = \"a/b\"\n", "linter.rules[1]"},
		{"syntax", "[linter\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, t.TempDir(), tt.body))
			var cerr *Error
			if !errors.As(err, &cerr) {
				t.Fatalf("err = %v, want *config.Error", err)
			}
			if cerr.Key != tt.key {
				t.Fatalf("key = %q, want %q", cerr.Key, tt.key)
			}
		})
	}
}

func TestDiscoverFallsBackToDefault(t *testing.T) {
	cfg, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if cfg.Path != "" || !reflect.DeepEqual(cfg.Source.Paths, []string{"."}) {
		t.Fatalf("cfg = %+v", cfg)
	}
	s, err := cfg.LintSettings()
	if err != nil {
		t.Fatalf("LintSettings: %v", err)
	}
	if s.Level != linter.LevelHelp || !s.DefaultPlugins {
		t.Fatalf("settings = %+v", s)
	}
}

func TestLevelOffDisablesLinting(t *testing.T) {
	cfg := Default()
	cfg.Linter.Level = "off"
	s, err := cfg.LintSettings()
	if err != nil {
		t.Fatalf("LintSettings: %v", err)
	}
	if s.Level != linter.LevelOff {
		t.Fatalf("level = %v", s.Level)
	}
}
