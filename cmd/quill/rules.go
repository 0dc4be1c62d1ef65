package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"quill/internal/linter"
	"quill/internal/linter/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List lint rules and whether the current configuration enables them",
	Args:  cobra.NoArgs,
	RunE:  runRules,
}

func init() {
	rulesCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	rulesCmd.Flags().Bool("enabled", false, "list only enabled rules")
}

type ruleJSON struct {
	Name        string `json:"name"`
	Plugin      string `json:"plugin"`
	Description string `json:"description,omitempty"`
	Default     string `json:"default_level"`
	Level       string `json:"level,omitempty"`
	Enabled     bool   `json:"enabled"`
	Fixable     bool   `json:"fixable"`
	Constraint  string `json:"php_version,omitempty"`
}

func runRules(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	onlyEnabled, err := cmd.Flags().GetBool("enabled")
	if err != nil {
		return fmt.Errorf("failed to get enabled flag: %w", err)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	settings, err := cfg.LintSettings()
	if err != nil {
		return err
	}
	l, err := linter.New(settings, nil, rules.Builtin())
	if err != nil {
		return err
	}
	infos := l.Rules()
	if onlyEnabled {
		kept := infos[:0]
		for _, r := range infos {
			if r.Enabled {
				kept = append(kept, r)
			}
		}
		infos = kept
	}

	switch format {
	case "json":
		out := make([]ruleJSON, 0, len(infos))
		for _, r := range infos {
			j := ruleJSON{
				Name:        r.FullName,
				Plugin:      r.Plugin,
				Description: r.Description,
				Default:     r.Default.String(),
				Enabled:     r.Enabled,
				Fixable:     r.Fixable,
				Constraint:  r.Constraint,
			}
			if r.Enabled {
				j.Level = r.Level.String()
			}
			out = append(out, j)
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "pretty":
		renderRules(cmd.OutOrStdout(), infos, terminalWidth())
		return nil
	}
	return fmt.Errorf("unknown format: %s", format)
}

func renderRules(w io.Writer, infos []linter.RuleInfo, width int) {
	nameStyle := lipgloss.NewStyle().Bold(true)
	onStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	offStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	nameWidth := 0
	for _, r := range infos {
		nameWidth = max(nameWidth, runewidth.StringWidth(r.FullName))
	}
	for _, r := range infos {
		status := offStyle.Render(fmt.Sprintf("%-7s", "off"))
		if r.Enabled {
			status = onStyle.Render(fmt.Sprintf("%-7s", r.Level))
		}
		var tags []string
		if r.Fixable {
			tags = append(tags, "fixable")
		}
		if r.Constraint != "" {
			tags = append(tags, "php "+r.Constraint)
		}
		line := fmt.Sprintf("%s  %s", status, nameStyle.Render(runewidth.FillRight(r.FullName, nameWidth)))
		desc := r.Description
		if len(tags) > 0 {
			desc = strings.TrimSpace(desc + " [" + strings.Join(tags, ", ") + "]")
		}
		if desc != "" {
			room := width - 7 - 2 - nameWidth - 2
			if room > 10 {
				desc = runewidth.Truncate(desc, room, "...")
			}
			line += "  " + desc
		}
		fmt.Fprintln(w, line)
	}
}
