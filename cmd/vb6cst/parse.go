package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vb6cst/internal/diagfmt"
	"vb6cst/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.bas",
	Short: "Parse a VB6 source file into a lossless syntax tree",
	Long:  `Parse builds a concrete syntax tree whose leaves concatenate back to the exact source bytes`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "tree", "output format (tree|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.ParseFile(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	printDiagnostics(cmd, result.Bag, result.FileSet)

	// Empty input yields no tree at all.
	if result.Tree == nil {
		return nil
	}

	switch format {
	case "tree":
		return diagfmt.FormatTree(os.Stdout, result.Tree)
	case "json":
		return diagfmt.FormatTreeJSON(os.Stdout, result.Tree)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
