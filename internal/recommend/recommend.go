// Package recommend holds the curated annotator recommendation catalog.
// The catalog is hand-maintained data, built entirely at compile time; it is
// independent of whatever modules happen to be installed and is never
// validated against the scanned module set.
package recommend

import (
	"bytes"
	"encoding/json"
)

// Entry is one curated recommendation: a short description of the use case
// and the annotators considered useful for it, in priority order.
type Entry struct {
	Description           string   `json:"description"`
	RecommendedAnnotators []string `json:"recommended_annotators"`
}

// Group is an ordered label → Entry mapping. Labels preserves the curated
// ordering so serialization is stable across runs (a plain map would come
// out alphabetical).
type Group struct {
	Labels  []string
	Entries map[string]Entry
}

// Entry returns the entry for a label, with ok reporting membership.
func (g Group) Entry(label string) (Entry, bool) {
	e, ok := g.Entries[label]
	return e, ok
}

// MarshalJSON serializes the group as a JSON object with keys in curated
// order.
func (g Group) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, label := range g.Labels {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(g.Entries[label])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Catalog bundles the two recommendation groups.
type Catalog struct {
	Phenotypes    Group `json:"phenotypes"`
	AnalysisTypes Group `json:"analysis_types"`
}
