// Package config loads quill.toml.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"

	"quill/internal/linter"
	"quill/internal/source"
)

// Error points at the offending key of a configuration file.
type Error struct {
	Path string
	Key  string
	Err  error
}

func (e *Error) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Key, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

type Source struct {
	Paths []string `toml:"paths"`
	// Includes are reflected for symbols but never linted.
	Includes   []string `toml:"includes"`
	Extensions []string `toml:"extensions"`
	Excludes   []string `toml:"excludes"`
}

type Rule struct {
	Name    string         `toml:"name"`
	Level   string         `toml:"level"`
	Enabled *bool          `toml:"enabled"`
	Options map[string]any `toml:"options"`
}

type Linter struct {
	Level          string   `toml:"level"`
	DefaultPlugins *bool    `toml:"default_plugins"`
	Plugins        []string `toml:"plugins"`
	TargetVersion  string   `toml:"target_version"`
	Rules          []Rule   `toml:"rules"`
}

// Config is the decoded quill.toml. Path is empty for the built-in default.
type Config struct {
	Path   string `toml:"-"`
	Source Source `toml:"source"`
	Linter Linter `toml:"linter"`
}

// Default is used when no configuration file exists.
func Default() *Config {
	return &Config{
		Source: Source{Paths: []string{"."}, Extensions: []string{"php"}},
		Linter: Linter{Level: "help"},
	}
}

// Load decodes path. Missing sections keep their defaults; unknown keys are
// rejected so that typos do not silently change behaviour.
func Load(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, &Error{Path: path, Err: fmt.Errorf("failed to parse TOML: %w", err)}
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, &Error{Path: path, Key: undecoded[0].String(), Err: fmt.Errorf("unknown key")}
	}
	cfg.Path = path
	if !meta.IsDefined("source", "paths") || len(cfg.Source.Paths) == 0 {
		cfg.Source.Paths = []string{"."}
	}
	cfg.resolvePaths(filepath.Dir(path))
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Discover finds quill.toml upward from startDir and loads it, falling back
// to Default when there is none.
func Discover(startDir string) (*Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// resolvePaths makes relative source paths relative to the config directory.
func (c *Config) resolvePaths(dir string) {
	abs := func(list []string) {
		for i, p := range list {
			if !filepath.IsAbs(p) {
				list[i] = filepath.Join(dir, p)
			}
		}
	}
	abs(c.Source.Paths)
	abs(c.Source.Includes)
}

func (c *Config) validate() error {
	if _, err := linter.ParseLevel(c.Linter.Level); err != nil {
		return &Error{Path: c.Path, Key: "linter.level", Err: err}
	}
	if c.Linter.TargetVersion != "" {
		if _, err := semver.NewVersion(c.Linter.TargetVersion); err != nil {
			return &Error{Path: c.Path, Key: "linter.target_version", Err: err}
		}
	}
	seen := make(map[string]struct{}, len(c.Linter.Rules))
	for i, r := range c.Linter.Rules {
		key := fmt.Sprintf("linter.rules[%d]", i)
		if !strings.Contains(r.Name, "/") {
			return &Error{Path: c.Path, Key: key, Err: fmt.Errorf("rule name %q must be plugin/rule", r.Name)}
		}
		if _, dup := seen[r.Name]; dup {
			return &Error{Path: c.Path, Key: key, Err: fmt.Errorf("rule %q configured twice", r.Name)}
		}
		seen[r.Name] = struct{}{}
		if r.Level != "" {
			if _, err := linter.ParseLevel(r.Level); err != nil {
				return &Error{Path: c.Path, Key: key + ".level", Err: err}
			}
		}
	}
	return nil
}

// DiscoverOptions returns the file filter for source.Discover.
func (c *Config) DiscoverOptions() source.DiscoverOptions {
	return source.DiscoverOptions{Extensions: c.Source.Extensions, Excludes: c.Source.Excludes}
}

// LintSettings converts the [linter] section. Values are validated by Load,
// so errors only come from hand-built configs.
func (c *Config) LintSettings() (linter.Settings, error) {
	level, err := linter.ParseLevel(c.Linter.Level)
	if err != nil {
		return linter.Settings{}, &Error{Path: c.Path, Key: "linter.level", Err: err}
	}
	if level == linter.LevelOff {
		return linter.Off(), nil
	}
	s := linter.Settings{
		Level:          level,
		DefaultPlugins: c.Linter.DefaultPlugins == nil || *c.Linter.DefaultPlugins,
		Plugins:        c.Linter.Plugins,
		Rules:          make(map[string]linter.RuleSettings, len(c.Linter.Rules)),
	}
	if c.Linter.TargetVersion != "" {
		v, err := semver.NewVersion(c.Linter.TargetVersion)
		if err != nil {
			return linter.Settings{}, &Error{Path: c.Path, Key: "linter.target_version", Err: err}
		}
		s.TargetVersion = v
	}
	for _, r := range c.Linter.Rules {
		rs := linter.EnabledRule()
		if r.Level != "" {
			lvl, err := linter.ParseLevel(r.Level)
			if err != nil {
				return linter.Settings{}, &Error{Path: c.Path, Key: "linter.rules." + r.Name, Err: err}
			}
			rs = linter.RuleAtLevel(lvl)
		}
		if r.Enabled != nil && !*r.Enabled {
			rs = linter.DisabledRule()
		}
		rs.Options = r.Options
		s.Rules[r.Name] = rs
	}
	return s, nil
}
