// Package dictionary assembles the aggregated annotator dictionary: it
// drives discovery and extraction over the modules root, classifies the
// results, and attaches the recommendation catalog.
package dictionary

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/seqmeta/anndict/internal/classify"
	"github.com/seqmeta/anndict/internal/config"
	"github.com/seqmeta/anndict/internal/metadata"
	"github.com/seqmeta/anndict/internal/recommend"
)

// SchemaVersion identifies the dictionary document schema.
const SchemaVersion = "1.0.0"

// Dictionary is the aggregated output document. Field order matters: it is
// the serialization order of the structured output.
type Dictionary struct {
	Version         string                     `json:"version"`
	TotalAnnotators int                        `json:"total_annotators"`
	LastUpdated     string                     `json:"last_updated"`
	Annotators      []*metadata.ModuleMetadata `json:"annotators"`
	Categories      *classify.CategorySet      `json:"categories"`
	Recommendations recommend.Catalog          `json:"recommendations"`
}

// Build runs the pipeline up to (but not including) serialization.
//
// Module identifiers are the immediate subdirectories of the modules root,
// processed in lexicographic order. Extraction may run on several workers,
// but results are collected by discovery index, so the output is identical
// to a serial run. Per-module failures are logged and skipped; only an
// unreadable modules root is fatal.
//
// TotalAnnotators counts successfully extracted modules, not discovered
// directories.
func Build(ctx context.Context, opts config.Options) (*Dictionary, error) {
	out := opts.ProgressWriter()
	cyan := color.New(color.FgCyan).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	// Short run ID for correlating operator output; never part of the
	// document itself, which must be reproducible across runs.
	runID := uuid.NewString()[:8]

	entries, err := os.ReadDir(opts.ModulesRoot)
	if err != nil {
		return nil, fmt.Errorf("list modules root %s: %w", opts.ModulesRoot, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	// ReadDir already sorts by filename; keep it explicit since discovery
	// order is a documented property of the output.
	sort.Strings(names)

	fmt.Fprintf(out, "%s Scanning %s (run %s)\n", cyan("→"), opts.ModulesRoot, runID)
	fmt.Fprintf(out, "Found %d annotators\n", len(names))

	type result struct {
		md  *metadata.ModuleMetadata
		err error
	}
	results := make([]result, len(names))

	workers := opts.ExtractWorkers
	if workers < 1 {
		workers = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			md, err := metadata.Extract(opts.ModulesRoot, name)
			results[i] = result{md: md, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Collect in discovery order so diagnostics and the annotator list come
	// out deterministically regardless of worker scheduling.
	records := make([]*metadata.ModuleMetadata, 0, len(names))
	for i, res := range results {
		switch {
		case errors.Is(res.err, metadata.ErrNoConfig):
			// No config file: not an installed annotator, skip silently.
		case res.err != nil:
			fmt.Fprintf(out, "%s Error processing %s: %v\n", yellow("⚠"), names[i], res.err)
		default:
			records = append(records, res.md)
		}
	}
	fmt.Fprintf(out, "Successfully parsed %d annotators\n", len(records))

	set := classify.Classify(records, classify.DefaultRules())

	fmt.Fprintf(out, "Category breakdown:\n")
	for _, cat := range set.Categories() {
		fmt.Fprintf(out, "  %s: %d annotators\n", cat, len(set.Modules(cat)))
	}

	return &Dictionary{
		Version:         SchemaVersion,
		TotalAnnotators: len(records),
		LastUpdated:     opts.BuildTime().Format("2006-01-02"),
		Annotators:      records,
		Categories:      set,
		Recommendations: recommend.DefaultCatalog(),
	}, nil
}
