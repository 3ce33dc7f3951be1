package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mamushi/internal/ast"
	"mamushi/internal/driver"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse file.vy",
		Short: "Parse a Vyper source file and print its syntax tree",
		Long:  `Parse prints the tree the formatter works on, with comments and blank lines attached to their nodes`,
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	result, err := driver.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if result.Err != nil {
		return reportDiagnostic(cmd, result.Err, result.File)
	}
	return ast.Dump(cmd.OutOrStdout(), result.Module)
}
