package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vb6cst/internal/diagfmt"
	"vb6cst/internal/driver"
	"vb6cst/internal/project"
)

var projectCmd = &cobra.Command{
	Use:   "project [flags] file.vbp",
	Short: "Parse a VB6 project manifest",
	Long:  `Project reads a .vbp manifest and reports its references, components and settings`,
	Args:  cobra.ExactArgs(1),
	RunE:  runProject,
}

func init() {
	projectCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runProject(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.ParseProject(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("manifest parsing failed: %w", err)
	}

	printDiagnostics(cmd, result.Bag, result.FileSet)

	switch format {
	case "pretty":
		printProjectPretty(result.Project)
		return nil
	case "json":
		return diagfmt.FormatProjectJSON(os.Stdout, result.Project)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func printProjectPretty(p *project.Project) {
	fmt.Printf("type:    %s\n", p.Kind)
	if p.Name != "" {
		fmt.Printf("name:    %s\n", p.Name)
	}
	if p.Title != "" {
		fmt.Printf("title:   %s\n", p.Title)
	}
	if p.Startup != "" {
		fmt.Printf("startup: %s\n", p.Startup)
	}
	if p.ExeName32 != "" {
		fmt.Printf("exe:     %s\n", p.ExeName32)
	}

	for _, r := range p.References {
		if r.Project {
			fmt.Printf("reference: project %s\n", r.Path)
			continue
		}
		fmt.Printf("reference: {%s} %s %q\n", r.UUID, r.Path, r.Description)
	}
	for _, o := range p.Objects {
		if o.Project {
			fmt.Printf("object:    project %s\n", o.Path)
			continue
		}
		fmt.Printf("object:    {%s} %s\n", o.UUID, o.FileName)
	}
	for _, m := range p.Modules {
		fmt.Printf("module:    %s (%s)\n", m.Name, m.Path)
	}
	for _, c := range p.Classes {
		fmt.Printf("class:     %s (%s)\n", c.Name, c.Path)
	}
	for _, f := range p.Forms {
		fmt.Printf("form:      %s\n", f)
	}
	for _, u := range p.UserControls {
		fmt.Printf("control:   %s\n", u)
	}
	for _, u := range p.UserDocuments {
		fmt.Printf("document:  %s\n", u)
	}
	for _, d := range p.Designers {
		fmt.Printf("designer:  %s\n", d)
	}
}
