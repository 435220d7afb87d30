package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ucfix/internal/rules"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "List UnrealScript documentation links",
	Long:  "Print the curated set of official UnrealScript reference pages. Nothing is fetched; the links are printed for the reader to follow.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		width := 0
		for _, link := range rules.DocLinks {
			if len(link.Name) > width {
				width = len(link.Name)
			}
		}
		for _, link := range rules.DocLinks {
			fmt.Fprintf(out, "%-*s  %s\n", width, link.Name, link.URL)
		}
		return nil
	},
}
