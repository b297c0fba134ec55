package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vb6cst/internal/diagfmt"
	"vb6cst/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.bas",
	Short: "Tokenize a VB6 source file",
	Long:  `Tokenize breaks down a VB6 source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("keep-trivia", false, "include whitespace, newline and comment tokens")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	keepTrivia, err := cmd.Flags().GetBool("keep-trivia")
	if err != nil {
		return fmt.Errorf("failed to get keep-trivia flag: %w", err)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Tokenize(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	printDiagnostics(cmd, result.Bag, result.FileSet)

	tokens := result.Tokens
	if !keepTrivia {
		tokens = tokens.WithoutTrivia()
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, tokens, result.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
