package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/seqmeta/anndict/internal/config"
	"github.com/seqmeta/anndict/internal/dictionary"
	"github.com/seqmeta/anndict/internal/report"
)

var rootCmd = &cobra.Command{
	Use:   "anndict",
	Short: "Build the OpenCRAVAT annotator dictionary",
	Long: `Scan the local OpenCRAVAT annotator modules, classify them into topical
categories, and write two artifacts:

  1. A JSON dictionary of all annotators with categories and curated
     recommendations (for machine consumers)
  2. A Markdown quick reference rendered from the same data

Paths are compiled-in; the scan reads local files only and overwrites
prior outputs on every run.

Example:
  $ anndict
  Found 164 annotators
  Successfully parsed 158 annotators
  ✓ Dictionary saved to: opencravat_annotators_dictionary.json
  ✓ Markdown reference saved to: OPENCRAVAT_ANNOTATORS_REFERENCE.md`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild(cmd)
	},
}

func runBuild(cmd *cobra.Command) error {
	green := color.New(color.FgGreen).SprintFunc()

	opts := config.DefaultOptions()

	d, err := dictionary.Build(cmd.Context(), opts)
	if err != nil {
		return err
	}

	// No rollback between the two writes: if the second fails, the first
	// stays on disk.
	if err := report.WriteJSON(d, opts.DictionaryPath); err != nil {
		return err
	}
	fmt.Printf("\n%s Dictionary saved to: %s\n", green("✓"), opts.DictionaryPath)

	if err := report.WriteMarkdown(d, opts.ReferencePath); err != nil {
		return err
	}
	fmt.Printf("%s Markdown reference saved to: %s\n", green("✓"), opts.ReferencePath)

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
