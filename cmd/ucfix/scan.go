package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ucfix/internal/detect"
	"ucfix/internal/diagfmt"
	"ucfix/internal/driver"
	"ucfix/internal/source"
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] <file.uc|directory>",
	Short: "Scan UnrealScript sources for structural defects",
	Long:  "Run the detector set over a source file or every UnrealScript file in a directory, and report located issues. The process exits non-zero when any issue is found.",
	Args:  cobra.ExactArgs(1),
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().Bool("extended", false, "enable the conservative extended detectors")
	scanCmd.Flags().Bool("unmatched-open", false, "enable the unmatched '(' detector (deletes a character; off by default)")
	scanCmd.Flags().String("format", "pretty", "output format (pretty|short|json)")
	scanCmd.Flags().Int("jobs", 0, "max parallel workers for directory scanning (0=auto)")
	scanCmd.Flags().Bool("cache", false, "reuse scan results for unchanged files via the disk cache")
	scanCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
}

func runScan(cmd *cobra.Command, args []string) error {
	targetPath := args[0]

	opts, err := scanOptions(cmd, targetPath)
	if err != nil {
		return err
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	switch format {
	case "pretty", "short", "json":
	default:
		return fmt.Errorf("unknown format %q (must be pretty, short or json)", format)
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	fullpath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return err
	}
	pathMode := diagfmt.PathModeAuto
	if fullpath {
		pathMode = diagfmt.PathModeAbsolute
	}

	info, err := os.Stat(targetPath)
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}

	var fileSet *source.FileSet
	var results []driver.FileResult
	if info.IsDir() {
		fileSet, results, err = driver.ScanDir(cmd.Context(), targetPath, opts)
		if err != nil {
			return fmt.Errorf("scan: %w", err)
		}
	} else {
		fileSet = source.NewFileSetWithBase(manifestDir(targetPath))
		result, err := driver.ScanFile(fileSet, targetPath, opts)
		if err != nil {
			return fmt.Errorf("scan: %w", err)
		}
		results = []driver.FileResult{*result}
	}

	totalIssues, err := renderScanResults(cmd, fileSet, results, format, pathMode, quiet)
	if err != nil {
		return err
	}

	if totalIssues > 0 {
		os.Exit(1)
	}
	return nil
}

// scanOptions merges manifest defaults with command flags; a flag set on
// the command line wins over the manifest.
func scanOptions(cmd *cobra.Command, targetPath string) (driver.Options, error) {
	var opts driver.Options

	manifest, found, err := loadProjectManifest(manifestDir(targetPath))
	if err != nil {
		return opts, err
	}
	if found {
		opts.Detect.UnmatchedOpen = manifest.Config.Scan.UnmatchedOpen
		if manifest.Config.Scan.Extended {
			opts.Detect.Mode = detect.ModeExtended
		}
		opts.Extensions = manifest.Config.Files.Extensions
	}

	if cmd.Flags().Changed("extended") || !found {
		extended, err := cmd.Flags().GetBool("extended")
		if err != nil {
			return opts, err
		}
		opts.Detect.Mode = detect.ModeStrict
		if extended {
			opts.Detect.Mode = detect.ModeExtended
		}
	}
	if cmd.Flags().Changed("unmatched-open") || !found {
		unmatchedOpen, err := cmd.Flags().GetBool("unmatched-open")
		if err != nil {
			return opts, err
		}
		opts.Detect.UnmatchedOpen = unmatchedOpen
	}

	maxIssues, err := cmd.Root().PersistentFlags().GetInt("max-issues")
	if err != nil {
		return opts, err
	}
	opts.Detect.MaxIssues = maxIssues

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return opts, err
	}
	opts.Jobs = jobs

	// the fix command shares these options but registers no cache flag
	useCache := false
	if cmd.Flags().Lookup("cache") != nil {
		if useCache, err = cmd.Flags().GetBool("cache"); err != nil {
			return opts, err
		}
	}
	if useCache {
		cache, err := driver.OpenDiskCache("ucfix")
		if err != nil {
			return opts, fmt.Errorf("open disk cache: %w", err)
		}
		opts.Cache = cache
	}
	return opts, nil
}

func renderScanResults(cmd *cobra.Command, fileSet *source.FileSet, results []driver.FileResult, format string, pathMode diagfmt.PathMode, quiet bool) (int, error) {
	out := cmd.OutOrStdout()

	if format == "json" {
		entries := make([]diagfmt.FileIssues, 0, len(results))
		for _, r := range results {
			if r.Err != nil {
				continue
			}
			entries = append(entries, diagfmt.FileIssues{ID: r.FileID, Issues: r.Issues})
		}
		jsonOpts := diagfmt.JSONOpts{PathMode: pathMode, IncludeSpans: true, IncludeRepairs: true}
		if len(entries) == 1 {
			if err := diagfmt.JSON(out, fileSet, entries[0].ID, entries[0].Issues, jsonOpts); err != nil {
				return 0, err
			}
		} else if err := diagfmt.JSONMany(out, fileSet, entries, jsonOpts); err != nil {
			return 0, err
		}
		total := 0
		for _, e := range entries {
			total += len(e.Issues)
		}
		return total, nil
	}

	totalIssues := 0
	problemFiles := 0
	scanned := 0
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "ucfix: %s: %v\n", r.Path, r.Err)
			continue
		}
		scanned++
		if len(r.Issues) == 0 {
			continue
		}
		problemFiles++
		totalIssues += len(r.Issues)

		switch format {
		case "short":
			diagfmt.Short(out, fileSet, r.FileID, r.Issues, pathMode)
		default:
			diagfmt.Pretty(out, fileSet, r.FileID, r.Issues, diagfmt.PrettyOpts{
				Color:       colorEnabled(cmd),
				PathMode:    pathMode,
				ShowContext: true,
				ShowRepairs: true,
			})
		}
	}

	if !quiet && format == "pretty" {
		if totalIssues == 0 {
			fmt.Fprintf(out, "Scanned %d file(s): no detectable issues.\n", scanned)
		} else {
			fmt.Fprintf(out, "Scanned %d file(s): %d issue(s) in %d file(s).\n", scanned, totalIssues, problemFiles)
		}
	}
	return totalIssues, nil
}
