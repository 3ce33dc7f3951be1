package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mamushi/internal/diag"
	"mamushi/internal/diagfmt"
	"mamushi/internal/driver"
	"mamushi/internal/source"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file.vy",
		Short: "Tokenize a Vyper source file",
		Long:  `Tokenize breaks down a Vyper source file into its tokens, trivia included`,
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	result, err := driver.Tokenize(args[0])
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	switch format {
	case "pretty":
		err = diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens, result.File)
	case "json":
		err = diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return err
	}
	return reportDiagnostic(cmd, result.Err, result.File)
}

// reportDiagnostic prints a lexing or parsing failure with its excerpt and
// turns it into exit status 1.
func reportDiagnostic(cmd *cobra.Command, err error, file *source.File) error {
	if err == nil {
		return nil
	}
	d, ok := diag.As(err)
	if !ok {
		return err
	}
	opts := diagfmt.PrettyOpts{Color: !color.NoColor, Context: 2}
	if perr := diagfmt.Pretty(cmd.ErrOrStderr(), d, file, opts); perr != nil {
		return perr
	}
	return exitError{code: 1}
}
