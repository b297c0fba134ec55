package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vb6cst/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] directory",
	Short: "Check every VB6 source file under a directory",
	Long:  `Check parses all .bas, .cls and .frm files under the directory and reports their diagnostics, caching results per content digest`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().Bool("no-cache", false, "disable the persistent result cache")
}

func runCheck(cmd *cobra.Command, args []string) error {
	dir := args[0]

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	var cache *driver.DiskCache
	if !noCache {
		cache, err = driver.OpenDiskCache("vb6cst")
		if err != nil {
			fmt.Fprintf(os.Stderr, "vb6cst: cache disabled: %v\n", err)
		}
	}

	results, err := driver.CheckDir(cmd.Context(), dir, jobs, toolConfig.Sources.Extensions, maxDiagnostics, cache)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	var checked, cached, withErrors, unreadable int
	for _, r := range results {
		if r.Err != nil {
			unreadable++
			fmt.Fprintf(os.Stderr, "vb6cst: %s: %v\n", r.Path, r.Err)
			continue
		}
		checked++
		if r.Cached {
			cached++
		}
		if r.HasErrors {
			withErrors++
		}
		if r.Golden != "" {
			fmt.Fprint(os.Stderr, r.Golden)
		}
	}

	fmt.Printf("%d files checked, %d with errors (%d cached)\n", checked, withErrors, cached)
	if withErrors > 0 || unreadable > 0 {
		return fmt.Errorf("%d of %d files have errors", withErrors+unreadable, checked+unreadable)
	}
	return nil
}
