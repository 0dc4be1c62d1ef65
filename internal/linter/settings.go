package linter

import (
	"github.com/Masterminds/semver/v3"
)

// RuleSettings configures one rule by its full name ("plugin/rule").
type RuleSettings struct {
	Enabled bool
	// Level overrides the rule's default level; nil keeps the default.
	Level   *Level
	Options map[string]any
}

// EnabledRule keeps the rule on with its default level.
func EnabledRule() RuleSettings {
	return RuleSettings{Enabled: true}
}

// DisabledRule switches the rule off.
func DisabledRule() RuleSettings {
	return RuleSettings{}
}

// RuleAtLevel enables the rule at level; LevelOff disables it.
func RuleAtLevel(level Level) RuleSettings {
	if level == LevelOff {
		return DisabledRule()
	}
	return RuleSettings{Enabled: true, Level: &level}
}

// WithOption returns a copy of rs with option key set.
func (rs RuleSettings) WithOption(key string, value any) RuleSettings {
	opts := make(map[string]any, len(rs.Options)+1)
	for k, v := range rs.Options {
		opts[k] = v
	}
	opts[key] = value
	rs.Options = opts
	return rs
}

// Settings drive rule resolution. They are immutable once handed to New.
type Settings struct {
	// Level is the minimum reported level. LevelOff disables linting.
	Level Level
	// DefaultPlugins enables every plugin registered as default.
	DefaultPlugins bool
	// Plugins enables additional plugins by name.
	Plugins []string
	Rules   map[string]RuleSettings
	// TargetVersion is the language version the project targets; nil means
	// the newest version, so every version-constrained rule applies.
	TargetVersion *semver.Version
}

// DefaultSettings reports everything from the default plugins.
func DefaultSettings() Settings {
	return Settings{
		Level:          LevelHelp,
		DefaultPlugins: true,
	}
}

// Off returns settings that disable linting entirely.
func Off() Settings {
	return Settings{Level: LevelOff}
}

// WithRule returns a copy of s with the rule configured.
func (s Settings) WithRule(name string, rs RuleSettings) Settings {
	rules := make(map[string]RuleSettings, len(s.Rules)+1)
	for k, v := range s.Rules {
		rules[k] = v
	}
	rules[name] = rs
	s.Rules = rules
	return s
}
