package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ucfix/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "ucfix",
	Short: "UnrealScript structural-defect scanner and fixer",
	Long:  `ucfix scans UnrealScript source files for a fixed set of structural defects (unbalanced braces and parentheses, missing semicolons, malformed block openers) and applies deterministic repairs where the fix is unambiguous`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-issues", 100, "maximum number of issues to report per file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// colorEnabled resolves the persistent --color flag against the terminal.
func colorEnabled(cmd *cobra.Command) bool {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		mode = "auto"
	}
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(os.Stdout)
	}
}
