// Package linter runs configurable rules over analysed files.
//
// Rules are grouped into plugins. New resolves which rules run, at which
// level and with which options once per run; Lint then applies them to one
// file at a time and may be called from many goroutines.
package linter

import (
	"fmt"
	"slices"

	"github.com/Masterminds/semver/v3"

	"quill/internal/diag"
	"quill/internal/reflection"
	"quill/internal/semantics"
)

type resolvedRule struct {
	name    string
	rule    Rule
	level   diag.Level
	options map[string]any
}

// Linter is immutable after New.
type Linter struct {
	settings Settings
	codebase *reflection.Codebase
	plugins  []Plugin
	rules    []resolvedRule
}

// RuleInfo describes a registered rule and how the settings resolved it.
type RuleInfo struct {
	Plugin      string
	Name        string
	FullName    string
	Description string
	Default     diag.Level
	Constraint  string
	Fixable     bool
	Enabled     bool
	Level       diag.Level
}

// New resolves the enabled rule list. It fails on configuration that names
// unknown plugins or rules, or on invalid version constraints.
func New(settings Settings, codebase *reflection.Codebase, plugins []Plugin) (*Linter, error) {
	l := &Linter{settings: settings, codebase: codebase, plugins: plugins}
	if err := l.validate(); err != nil {
		return nil, err
	}
	if settings.Level == LevelOff {
		return l, nil
	}
	minLevel, _ := settings.Level.IssueLevel()
	for _, p := range plugins {
		if !l.pluginEnabled(p) {
			continue
		}
		for _, r := range p.Rules {
			name := FullName(p.Name, r.Name())
			level := r.DefaultLevel()
			rs, configured := settings.Rules[name]
			if configured {
				if !rs.Enabled {
					continue
				}
				if rs.Level != nil {
					explicit, on := rs.Level.IssueLevel()
					if !on {
						continue
					}
					level = explicit
				}
			}
			if level < minLevel {
				continue
			}
			ok, err := versionAllows(r, settings.TargetVersion)
			if err != nil {
				return nil, fmt.Errorf("rule %s: %w", name, err)
			}
			if !ok {
				continue
			}
			l.rules = append(l.rules, resolvedRule{name: name, rule: r, level: level, options: rs.Options})
		}
	}
	return l, nil
}

func (l *Linter) validate() error {
	known := make(map[string]struct{})
	pluginNames := make(map[string]struct{}, len(l.plugins))
	for _, p := range l.plugins {
		pluginNames[p.Name] = struct{}{}
		for _, r := range p.Rules {
			known[FullName(p.Name, r.Name())] = struct{}{}
		}
	}
	for _, name := range l.settings.Plugins {
		if _, ok := pluginNames[name]; !ok {
			return fmt.Errorf("unknown plugin %q", name)
		}
	}
	for name := range l.settings.Rules {
		if _, ok := known[name]; !ok {
			return fmt.Errorf("unknown rule %q", name)
		}
	}
	return nil
}

func (l *Linter) pluginEnabled(p Plugin) bool {
	if p.Default && l.settings.DefaultPlugins {
		return true
	}
	return slices.Contains(l.settings.Plugins, p.Name)
}

func versionAllows(r Rule, target *semver.Version) (bool, error) {
	vc, ok := r.(VersionConstrained)
	if !ok || target == nil {
		return true, nil
	}
	c, err := semver.NewConstraint(vc.Constraint())
	if err != nil {
		return false, fmt.Errorf("invalid version constraint %q: %w", vc.Constraint(), err)
	}
	return c.Check(target), nil
}

// Enabled returns the full names of the rules that will run, in order.
func (l *Linter) Enabled() []string {
	out := make([]string, 0, len(l.rules))
	for _, r := range l.rules {
		out = append(out, r.name)
	}
	return out
}

// Rules describes every registered rule, enabled or not.
func (l *Linter) Rules() []RuleInfo {
	var out []RuleInfo
	for _, p := range l.plugins {
		for _, r := range p.Rules {
			info := RuleInfo{
				Plugin:   p.Name,
				Name:     r.Name(),
				FullName: FullName(p.Name, r.Name()),
				Default:  r.DefaultLevel(),
				Level:    r.DefaultLevel(),
			}
			if d, ok := r.(Described); ok {
				info.Description = d.Description()
			}
			if vc, ok := r.(VersionConstrained); ok {
				info.Constraint = vc.Constraint()
			}
			if f, ok := r.(Fixable); ok {
				info.Fixable = f.Fixable()
			}
			for _, rr := range l.rules {
				if rr.name == info.FullName {
					info.Enabled = true
					info.Level = rr.level
					break
				}
			}
			out = append(out, info)
		}
	}
	return out
}

// Lint runs every enabled rule over sem in registration order.
// Files without a program produce no lint issues.
func (l *Linter) Lint(sem *semantics.Semantics) diag.Collection {
	var issues diag.Collection
	if sem == nil || sem.Program == nil {
		return issues
	}
	for _, r := range l.rules {
		ctx := &Context{
			Semantics: sem,
			Codebase:  l.codebase,
			rule:      r.name,
			level:     r.level,
			options:   r.options,
			issues:    &issues,
		}
		r.rule.Check(ctx)
	}
	return issues
}
