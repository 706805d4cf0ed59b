package dictionary

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqmeta/anndict/internal/classify"
	"github.com/seqmeta/anndict/internal/config"
)

// fixtureRoot builds a modules root with the canonical test scenario:
// two parseable modules, one with a broken config, one with no config.
func fixtureRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	write := func(name, content string) {
		dir := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		if content != "" {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yml"), []byte(content), 0o644))
		}
	}

	write("clinvar", "title: ClinVar\ndescription: Clinical significance\ntags: [clinical relevance]\n")
	write("gnomad", "title: gnomAD\ndescription: Population frequencies\ntags: [allele frequency]\n")
	write("broken", "title: \"unterminated\n")
	write("unconfigured", "")

	return root
}

func testOptions(root string, progress *bytes.Buffer) config.Options {
	return config.Options{
		ModulesRoot:    root,
		ExtractWorkers: 1,
		Progress:       progress,
		Now:            func() time.Time { return time.Date(2025, 10, 7, 12, 0, 0, 0, time.UTC) },
	}
}

func TestBuildScenario(t *testing.T) {
	root := fixtureRoot(t)
	var progress bytes.Buffer

	d, err := Build(context.Background(), testOptions(root, &progress))
	require.NoError(t, err)

	assert.Equal(t, SchemaVersion, d.Version)
	assert.Equal(t, "2025-10-07", d.LastUpdated)

	// broken and unconfigured are excluded from the count.
	assert.Equal(t, 2, d.TotalAnnotators)
	assert.Len(t, d.Annotators, 2)
	assert.Equal(t, d.TotalAnnotators, len(d.Annotators))

	// Sorted discovery order, names from directories.
	assert.Equal(t, "clinvar", d.Annotators[0].Name)
	assert.Equal(t, "gnomad", d.Annotators[1].Name)

	assert.Equal(t, []string{"clinvar"}, d.Categories.Names(classify.CategoryClinicalSignificance))
	assert.Equal(t, []string{"gnomad"}, d.Categories.Names(classify.CategoryPopulationFrequency))

	// broken appears nowhere in the document.
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "broken")

	// ...but produced exactly one diagnostic.
	assert.Equal(t, 1, strings.Count(progress.String(), "Error processing broken"))
	assert.NotContains(t, progress.String(), "unconfigured")
	assert.Contains(t, progress.String(), "Found 4 annotators")
	assert.Contains(t, progress.String(), "Successfully parsed 2 annotators")
}

func TestBuildRecommendationsAttached(t *testing.T) {
	root := fixtureRoot(t)
	var progress bytes.Buffer

	d, err := Build(context.Background(), testOptions(root, &progress))
	require.NoError(t, err)

	// The catalog is static and independent of the scan.
	assert.Len(t, d.Recommendations.Phenotypes.Labels, 7)
	assert.Len(t, d.Recommendations.AnalysisTypes.Labels, 4)
	entry, ok := d.Recommendations.Phenotypes.Entry("cancer")
	require.True(t, ok)
	assert.Contains(t, entry.RecommendedAnnotators, "cosmic")
}

func TestBuildParallelMatchesSerial(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"alpha", "cadd", "clinvar", "gnomad", "kegg", "omim", "spliceai", "uniprot", "zeta"} {
		dir := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yml"),
			[]byte("title: "+name+"\ndescription: test module\n"), 0o644))
	}

	serialOpts := testOptions(root, &bytes.Buffer{})
	parallelOpts := testOptions(root, &bytes.Buffer{})
	parallelOpts.ExtractWorkers = 8

	serial, err := Build(context.Background(), serialOpts)
	require.NoError(t, err)
	parallel, err := Build(context.Background(), parallelOpts)
	require.NoError(t, err)

	serialJSON, err := json.Marshal(serial)
	require.NoError(t, err)
	parallelJSON, err := json.Marshal(parallel)
	require.NoError(t, err)
	assert.Equal(t, string(serialJSON), string(parallelJSON))
}

func TestBuildIdempotent(t *testing.T) {
	root := fixtureRoot(t)

	first, err := Build(context.Background(), testOptions(root, &bytes.Buffer{}))
	require.NoError(t, err)
	second, err := Build(context.Background(), testOptions(root, &bytes.Buffer{}))
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestBuildMissingRootIsFatal(t *testing.T) {
	opts := testOptions(filepath.Join(t.TempDir(), "does-not-exist"), &bytes.Buffer{})

	_, err := Build(context.Background(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "modules root")
}

func TestBuildIgnoresStrayFiles(t *testing.T) {
	root := fixtureRoot(t)
	// A loose file in the root is not a module directory.
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.txt"), []byte("hi"), 0o644))

	var progress bytes.Buffer
	d, err := Build(context.Background(), testOptions(root, &progress))
	require.NoError(t, err)

	assert.Equal(t, 2, d.TotalAnnotators)
	assert.Contains(t, progress.String(), "Found 4 annotators")
}
