// Package report serializes the annotator dictionary: a JSON document for
// machine consumers and a Markdown quick reference for humans. Both writers
// are pure functions of the dictionary plus an output path.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/seqmeta/anndict/internal/dictionary"
	"github.com/seqmeta/anndict/internal/metadata"
	"github.com/seqmeta/anndict/internal/recommend"
)

// descriptionLimit is how many characters of a module description the
// Markdown reference shows.
const descriptionLimit = 100

// WriteJSON writes the full dictionary to path with 2-space indentation.
// Key order is stable: struct field order at the top level, canonical
// category and catalog order below.
func WriteJSON(d *dictionary.Dictionary, path string) error {
	if d == nil {
		return errors.New("dictionary is nil")
	}

	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal dictionary: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write dictionary %s: %w", path, err)
	}
	return nil
}

// WriteMarkdown renders the condensed human-readable reference to path.
// Categories and recommendation entries with no modules are omitted
// entirely (the JSON output keeps them as empty lists).
func WriteMarkdown(d *dictionary.Dictionary, path string) error {
	if d == nil {
		return errors.New("dictionary is nil")
	}

	var sb strings.Builder
	sb.WriteString("# OpenCRAVAT Annotators Quick Reference\n\n")
	sb.WriteString(fmt.Sprintf("**Total Annotators**: %d\n", d.TotalAnnotators))
	sb.WriteString(fmt.Sprintf("**Last Updated**: %s\n\n", d.LastUpdated))

	writeCategorySections(&sb, d)
	writeRecommendationGroup(&sb, "Phenotype-Based Recommendations", d.Recommendations.Phenotypes)
	writeRecommendationGroup(&sb, "Analysis Type Recommendations", d.Recommendations.AnalysisTypes)

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("write reference %s: %w", path, err)
	}
	return nil
}

func writeCategorySections(sb *strings.Builder, d *dictionary.Dictionary) {
	sb.WriteString("## Categories\n\n")

	for _, category := range d.Categories.Categories() {
		mods := d.Categories.Modules(category)
		if len(mods) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("### %s (%d)\n\n", titleCase(category), len(mods)))

		// Alphabetical within a section; the JSON output keeps scan order.
		sorted := make([]*metadata.ModuleMetadata, len(mods))
		copy(sorted, mods)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

		for _, m := range sorted {
			sb.WriteString(fmt.Sprintf("- **%s** (`%s`): %s\n", m.Title, m.Name, truncate(m.Description, descriptionLimit)))
		}
		sb.WriteString("\n")
	}
}

func writeRecommendationGroup(sb *strings.Builder, heading string, group recommend.Group) {
	sb.WriteString(fmt.Sprintf("## %s\n\n", heading))

	for _, label := range group.Labels {
		entry, ok := group.Entry(label)
		if !ok || len(entry.RecommendedAnnotators) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("### %s\n", titleCase(label)))
		sb.WriteString(entry.Description + "\n\n")
		sb.WriteString("**Recommended annotators**:\n")
		for _, name := range entry.RecommendedAnnotators {
			sb.WriteString(fmt.Sprintf("- `%s`\n", name))
		}
		sb.WriteString("\n")
	}
}

// titleCase turns a snake_case label into a display heading
// ("de_novo" → "De Novo").
func titleCase(label string) string {
	words := strings.Split(strings.ReplaceAll(label, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// truncate clips s to limit characters, appending an ellipsis only when
// something was actually cut.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
