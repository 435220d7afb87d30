package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ucfix/internal/diag"
	"ucfix/internal/driver"
	"ucfix/internal/fix"
	"ucfix/internal/source"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <file.uc|directory>",
	Short: "Apply automated repairs to UnrealScript sources",
	Long:  "Scan a source file or directory and apply the repairs attached to detected issues. Each file is re-scanned between passes so later repairs see the already-repaired text.",
	Args:  cobra.ExactArgs(1),
	RunE:  runFix,
}

func init() {
	fixCmd.Flags().Bool("all", false, "apply every applicable repair (default)")
	fixCmd.Flags().Bool("once", false, "apply only the first applicable repair")
	fixCmd.Flags().String("kind", "", "apply only repairs for the given issue kind")
	fixCmd.Flags().Bool("extended", false, "enable the conservative extended detectors")
	fixCmd.Flags().Bool("unmatched-open", false, "enable the unmatched '(' detector (deletes a character; off by default)")
	fixCmd.Flags().Bool("backup", false, "write <path>.bak with the original text before overwriting")
	fixCmd.Flags().String("output", "", "write fixed files under this directory instead of in place")
	fixCmd.Flags().Int("passes", 0, "max scan-repair passes per file (0=default)")
	fixCmd.Flags().Int("jobs", 0, "max parallel workers for directory fixing (0=auto)")
}

func runFix(cmd *cobra.Command, args []string) error {
	targetPath := args[0]

	opts, err := fixOptions(cmd, targetPath)
	if err != nil {
		return err
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	info, err := os.Stat(targetPath)
	if err != nil {
		return fmt.Errorf("fix: %w", err)
	}

	out := cmd.OutOrStdout()
	if info.IsDir() {
		fileSet, results, err := driver.FixDir(cmd.Context(), targetPath, opts)
		if err != nil {
			return fmt.Errorf("fix: %w", err)
		}
		saved, clean, dirty := 0, 0, 0
		for _, r := range results {
			reportFixResult(cmd, fileSet, r, quiet)
			if r.Changed {
				saved++
			}
			if r.Remaining == 0 {
				clean++
			} else {
				dirty++
			}
		}
		if !quiet {
			fmt.Fprintf(out, "Batch saved %d file(s) → %d clean, %d still have issues\n", saved, clean, dirty)
		}
		if dirty > 0 {
			os.Exit(1)
		}
		return nil
	}

	fileSet := source.NewFileSetWithBase(manifestDir(targetPath))
	result, err := driver.FixFile(fileSet, targetPath, opts)
	if err != nil {
		return fmt.Errorf("fix: %w", err)
	}
	reportFixResult(cmd, fileSet, *result, quiet)
	if result.Remaining > 0 {
		os.Exit(1)
	}
	return nil
}

func fixOptions(cmd *cobra.Command, targetPath string) (driver.FixOptions, error) {
	var opts driver.FixOptions

	scanOpts, err := scanOptions(cmd, targetPath)
	if err != nil {
		return opts, err
	}
	opts.Options = scanOpts
	opts.Cache = nil // repaired text invalidates any cached scan anyway

	manifest, found, err := loadProjectManifest(manifestDir(targetPath))
	if err != nil {
		return opts, err
	}
	if found {
		opts.Backup = manifest.Config.Fix.Backup
		opts.Passes = manifest.Config.Fix.Passes
		opts.OutputDir = manifest.Config.Fix.Output
	}

	once, err := cmd.Flags().GetBool("once")
	if err != nil {
		return opts, err
	}
	all, err := cmd.Flags().GetBool("all")
	if err != nil {
		return opts, err
	}
	kindName, err := cmd.Flags().GetString("kind")
	if err != nil {
		return opts, err
	}
	if once && all {
		return opts, fmt.Errorf("--once and --all are mutually exclusive")
	}
	switch {
	case once:
		opts.Apply.Mode = fix.ApplyModeOnce
	case kindName != "":
		kind, ok := diag.ParseKind(kindName)
		if !ok {
			return opts, fmt.Errorf("unknown issue kind %q", kindName)
		}
		opts.Apply.Mode = fix.ApplyModeKind
		opts.Apply.TargetKind = kind
	default:
		opts.Apply.Mode = fix.ApplyModeAll
	}

	if cmd.Flags().Changed("backup") || !found {
		if opts.Backup, err = cmd.Flags().GetBool("backup"); err != nil {
			return opts, err
		}
	}
	if cmd.Flags().Changed("passes") || !found {
		if opts.Passes, err = cmd.Flags().GetInt("passes"); err != nil {
			return opts, err
		}
		if opts.Passes < 0 {
			return opts, fmt.Errorf("--passes must not be negative")
		}
	}
	if cmd.Flags().Changed("output") || !found {
		if opts.OutputDir, err = cmd.Flags().GetString("output"); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

func reportFixResult(cmd *cobra.Command, fileSet *source.FileSet, r driver.FixFileResult, quiet bool) {
	out := cmd.OutOrStdout()
	path := r.Path
	if fileSet != nil {
		if file, ok := fileSet.GetByPath(path); ok {
			path = file.FormatPath("auto", fileSet.BaseDir())
		}
	}

	if !quiet {
		for _, a := range r.Applied {
			fmt.Fprintf(out, "%s:%d: applied %s (%s)\n", path, a.Line, a.Kind, a.Message)
		}
		for _, s := range r.Skipped {
			fmt.Fprintf(out, "%s:%d: skipped %s: %s\n", path, s.Line, s.Kind, s.Reason)
		}
	}

	switch {
	case !r.Changed && r.Remaining == 0:
		if !quiet {
			fmt.Fprintf(out, "%s: no detectable issues.\n", path)
		}
	case !r.Changed:
		fmt.Fprintf(out, "%s: %d issue(s) remain, none repairable.\n", path, r.Remaining)
	case r.Remaining == 0:
		fmt.Fprintf(out, "%s: applied %d repair(s) in %d pass(es), saved to %s.\n", path, len(r.Applied), r.Passes, r.OutPath)
	default:
		fmt.Fprintf(out, "%s: applied %d repair(s) in %d pass(es), %d issue(s) remain, saved to %s.\n", path, len(r.Applied), r.Passes, r.Remaining, r.OutPath)
	}
}
