// Package config defines the run options for the dictionary pipeline.
package config

import (
	"io"
	"os"
	"time"
)

// Default paths. The tool has no flag or environment surface; callers that
// need different locations (tests, embedding code) pass their own Options.
const (
	// DefaultModulesRoot is where OpenCRAVAT installs annotator modules.
	DefaultModulesRoot = "/apps/opencravat_modules/annotators"
	// DefaultDictionaryPath is the structured JSON output.
	DefaultDictionaryPath = "opencravat_annotators_dictionary.json"
	// DefaultReferencePath is the human-readable Markdown output.
	DefaultReferencePath = "OPENCRAVAT_ANNOTATORS_REFERENCE.md"
	// DefaultExtractWorkers bounds concurrent module config reads.
	DefaultExtractWorkers = 4
)

// Options configures one pipeline run.
type Options struct {
	// ModulesRoot is the directory whose immediate subdirectories are
	// annotator modules.
	ModulesRoot string

	// DictionaryPath is where the JSON dictionary is written.
	DictionaryPath string

	// ReferencePath is where the Markdown reference is written.
	ReferencePath string

	// ExtractWorkers is the number of concurrent extraction workers.
	// Values below 1 mean serial extraction. Extraction order never
	// affects output; results are re-sorted to discovery order.
	ExtractWorkers int

	// Progress receives operator-facing status lines. Nil means stdout.
	Progress io.Writer

	// Now supplies the last_updated stamp. Nil means time.Now.
	Now func() time.Time
}

// DefaultOptions returns the compiled-in production configuration.
func DefaultOptions() Options {
	return Options{
		ModulesRoot:    DefaultModulesRoot,
		DictionaryPath: DefaultDictionaryPath,
		ReferencePath:  DefaultReferencePath,
		ExtractWorkers: DefaultExtractWorkers,
	}
}

// ProgressWriter returns the diagnostics sink, defaulting to stdout.
func (o Options) ProgressWriter() io.Writer {
	if o.Progress != nil {
		return o.Progress
	}
	return os.Stdout
}

// BuildTime returns the timestamp used for the last_updated field.
func (o Options) BuildTime() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}
