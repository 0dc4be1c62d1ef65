package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quill/internal/diag"
	"quill/internal/diagfmt"
	"quill/internal/driver"
	"quill/internal/lexer"
	"quill/internal/semantics"
	"quill/internal/source"
)

var astCmd = &cobra.Command{
	Use:   "ast [flags] file.php",
	Short: "Print the syntax tree of a PHP file",
	Args:  cobra.ExactArgs(1),
	RunE:  runAST,
}

var tokensCmd = &cobra.Command{
	Use:   "tokens [flags] file.php",
	Short: "Print the tokens of a PHP file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	astCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokensCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func loadSingle(path string) (*source.FileSet, *source.File, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return fs, fs.Get(id), nil
}

// reportToStderr печатает проблемы разбора, не смешивая их с выводом дерева.
func reportToStderr(cmd *cobra.Command, issues diag.Collection, fs *source.FileSet) {
	if issues.Len() == 0 {
		return
	}
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))
	_ = diagfmt.Pretty(cmd.ErrOrStderr(), issues, fs, diagfmt.PrettyOpts{Color: useColor, Context: 1})
}

func runAST(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	fs, file, err := loadSingle(args[0])
	if err != nil {
		return err
	}
	sem := semantics.Build(file, nil)
	reportToStderr(cmd, sem.AllIssues(), fs)

	switch format {
	case "pretty":
		err = diagfmt.FormatASTPretty(cmd.OutOrStdout(), sem.Program, fs)
	case "json":
		err = diagfmt.FormatASTJSON(cmd.OutOrStdout(), sem.Program)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return err
	}
	if sem.HasParseError() {
		return exitError{code: driver.ExitIssues}
	}
	return nil
}

func runTokens(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	fs, file, err := loadSingle(args[0])
	if err != nil {
		return err
	}
	toks, lexErrs := lexer.Tokenize(file)
	var issues diag.Collection
	for _, e := range lexErrs {
		issues.Push(diag.NewError(e.Code, "lexer", e.Span, e.Message))
	}
	reportToStderr(cmd, issues, fs)

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), toks, fs)
	case "json":
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), toks)
	}
	return fmt.Errorf("unknown format: %s", format)
}
