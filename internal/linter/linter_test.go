package linter_test

import (
	"reflect"
	"testing"

	"github.com/Masterminds/semver/v3"

	"quill/internal/diag"
	"quill/internal/linter"
	"quill/internal/semantics"
	"quill/internal/source"
)

// probe reports one issue per file at the start of the program.
type probe struct {
	name  string
	level diag.Level
}

func (p probe) Name() string             { return p.name }
func (p probe) DefaultLevel() diag.Level { return p.level }
func (p probe) Check(ctx *linter.Context) {
	msg := ctx.OptionString("msg", p.name)
	ctx.Report(diag.New(diag.LevelError, diag.UnknownCode, "ignored", msg).
		WithPrimary(source.Span{File: ctx.Semantics.Source.ID}, ""))
}

type modern struct{ probe }

func (modern) Constraint() string { return ">= 8.0" }

func testPlugins() []linter.Plugin {
	return []linter.Plugin{
		{Name: "a", Default: true, Rules: []linter.Rule{
			probe{"warn", diag.LevelWarning},
			probe{"help", diag.LevelHelp},
		}},
		{Name: "b", Rules: []linter.Rule{
			probe{"err", diag.LevelError},
		}},
		{Name: "c", Default: true, Rules: []linter.Rule{
			modern{probe{"new", diag.LevelNote}},
		}},
	}
}

func levelPtr(l linter.Level) *linter.Level { return &l }

func TestResolveEnabledRules(t *testing.T) {
	v74 := semver.MustParse("7.4")
	v81 := semver.MustParse("8.1")
	tests := []struct {
		name     string
		settings linter.Settings
		want     []string
	}{
		{"defaults", linter.DefaultSettings(), []string{"a/warn", "a/help", "c/new"}},
		{"off", linter.Off(), []string{}},
		{"min level filters", linter.Settings{Level: linter.LevelWarning, DefaultPlugins: true}, []string{"a/warn"}},
		{"extra plugin", linter.Settings{Level: linter.LevelHelp, DefaultPlugins: true, Plugins: []string{"b"}},
			[]string{"a/warn", "a/help", "b/err", "c/new"}},
		{"only named plugins", linter.Settings{Level: linter.LevelHelp, Plugins: []string{"b"}}, []string{"b/err"}},
		{"rule disabled", linter.DefaultSettings().WithRule("a/warn", linter.DisabledRule()), []string{"a/help", "c/new"}},
		{"rule level off", linter.DefaultSettings().WithRule("a/help", linter.RuleAtLevel(linter.LevelOff)), []string{"a/warn", "c/new"}},
		{"explicit level survives filter",
			linter.Settings{Level: linter.LevelWarning, DefaultPlugins: true}.WithRule("a/help", linter.RuleAtLevel(linter.LevelError)),
			[]string{"a/warn", "a/help"}},
		{"old target skips constrained rule", withTarget(linter.DefaultSettings(), v74), []string{"a/warn", "a/help"}},
		{"new target keeps constrained rule", withTarget(linter.DefaultSettings(), v81), []string{"a/warn", "a/help", "c/new"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := linter.New(tt.settings, nil, testPlugins())
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if got := l.Enabled(); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("enabled = %v, want %v", got, tt.want)
			}
		})
	}
}

func withTarget(s linter.Settings, v *semver.Version) linter.Settings {
	s.TargetVersion = v
	return s
}

func TestUnknownConfigurationIsAnError(t *testing.T) {
	if _, err := linter.New(linter.DefaultSettings().WithRule("a/nope", linter.EnabledRule()), nil, testPlugins()); err == nil {
		t.Fatalf("expected error for unknown rule")
	}
	s := linter.DefaultSettings()
	s.Plugins = []string{"zzz"}
	if _, err := linter.New(s, nil, testPlugins()); err == nil {
		t.Fatalf("expected error for unknown plugin")
	}
}

func build(t *testing.T, src string) *semantics.Semantics {
	t.Helper()
	fs := source.NewFileSet()
	return semantics.Build(fs.Get(fs.AddVirtual("a.php", []byte(src))), nil)
}

func TestLintOrderAndResolvedLevel(t *testing.T) {
	s := linter.DefaultSettings().
		WithRule("a/help", linter.RuleAtLevel(linter.LevelNote).WithOption("msg", "custom"))
	l, err := linter.New(s, nil, testPlugins())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	issues := l.Lint(build(t, "<?php echo 1;")).Items()
	type got struct {
		rule  string
		level diag.Level
		msg   string
		code  diag.Code
	}
	var gotIssues []got
	for _, is := range issues {
		gotIssues = append(gotIssues, got{is.Rule, is.Level, is.Message, is.Code})
	}
	want := []got{
		{"a/warn", diag.LevelWarning, "warn", diag.LintRule},
		{"a/help", diag.LevelNote, "custom", diag.LintRule},
		{"c/new", diag.LevelNote, "new", diag.LintRule},
	}
	if !reflect.DeepEqual(gotIssues, want) {
		t.Fatalf("issues = %+v, want %+v", gotIssues, want)
	}
}

func TestRulesDescribesEverything(t *testing.T) {
	l, err := linter.New(linter.DefaultSettings(), nil, testPlugins())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	infos := l.Rules()
	if len(infos) != 4 {
		t.Fatalf("rules = %d, want 4", len(infos))
	}
	if infos[2].FullName != "b/err" || infos[2].Enabled {
		t.Fatalf("b/err = %+v, want registered but disabled", infos[2])
	}
	if infos[3].Constraint != ">= 8.0" {
		t.Fatalf("constraint = %q", infos[3].Constraint)
	}
}

func TestLevelText(t *testing.T) {
	for _, name := range []string{"off", "help", "note", "warning", "error"} {
		var l linter.Level
		if err := l.UnmarshalText([]byte(name)); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", name, err)
		}
		if l.String() != name {
			t.Fatalf("round trip %q = %q", name, l.String())
		}
	}
	if _, err := linter.ParseLevel("loud"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestOptionGetters(t *testing.T) {
	var seen struct {
		n int
		b bool
		s string
	}
	r := optionRule{seen: func(ctx *linter.Context) {
		seen.n = ctx.OptionInt("n", 1)
		seen.b = ctx.OptionBool("b", false)
		seen.s = ctx.OptionString("missing", "def")
	}}
	s := linter.DefaultSettings().WithRule("o/opts",
		linter.EnabledRule().WithOption("n", int64(7)).WithOption("b", "true"))
	l, err := linter.New(s, nil, []linter.Plugin{{Name: "o", Default: true, Rules: []linter.Rule{r}}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Lint(build(t, "<?php"))
	if seen.n != 7 || !seen.b || seen.s != "def" {
		t.Fatalf("options = %+v", seen)
	}
}

type optionRule struct{ seen func(*linter.Context) }

func (optionRule) Name() string               { return "opts" }
func (optionRule) DefaultLevel() diag.Level   { return diag.LevelHelp }
func (r optionRule) Check(ctx *linter.Context) { r.seen(ctx) }
