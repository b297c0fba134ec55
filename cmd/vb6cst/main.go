package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"vb6cst/internal/config"
	"vb6cst/internal/diag"
	"vb6cst/internal/diagfmt"
	"vb6cst/internal/source"
	"vb6cst/internal/version"
)

// toolConfig is the vb6cst.toml configuration resolved at startup.
var toolConfig config.Config

var rootCmd = &cobra.Command{
	Use:   "vb6cst",
	Short: "Lossless tokenizer and syntax-tree tool for VB6 sources",
	Long:  `vb6cst tokenizes and parses classic Visual Basic 6 source files into lossless concrete syntax trees, and reads .vbp project manifests`,
}

// main initializes the CLI by setting the command version, registering
// subcommands and persistent flags, and then executes the root command.
// If command execution returns an error, the process exits with status code 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(versionCmd)

	// Config supplies the defaults; flags override per invocation.
	toolConfig = loadConfig()
	rootCmd.PersistentFlags().String("color", toolConfig.Output.Color, "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", toolConfig.Output.MaxDiagnostics, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() config.Config {
	wd, err := os.Getwd()
	if err != nil {
		return config.Default()
	}
	cfg, err := config.Load(wd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vb6cst: config: %v\n", err)
		return config.Default()
	}
	return cfg
}

// isTerminal reports whether the file is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// printDiagnostics renders the bag to stderr in the pretty format,
// honoring the persistent --color flag.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) {
	if bag.Len() == 0 {
		return
	}
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
		Color:   useColor,
		Context: 2,
	})
}
