// Package classify partitions annotator metadata into topical categories
// using declarative keyword rules. Classification is non-exclusive: a module
// may land in several categories, and only modules matching no rule at all
// fall into the catch-all "other" bucket.
package classify

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/seqmeta/anndict/internal/metadata"
)

// CategoryOther collects modules that matched no specific rule.
const CategoryOther = "other"

// Rule selects modules for one category.
//
// TagKeywords are compared for exact membership against normalized tags
// (lower-cased, spaces replaced with underscores). NameKeywords are matched
// as case-sensitive substrings anywhere in the raw module name. The
// asymmetry is deliberate: tags are free-form prose in module configs while
// names are stable lower-case identifiers.
//
// A rule normally fires when either keyword set matches. When
// RequireNameMatch is set, a tag hit alone is not enough: at least one
// NameKeyword must also appear in the name.
type Rule struct {
	Category         string
	TagKeywords      []string
	NameKeywords     []string
	RequireNameMatch bool
}

// Matches reports whether the rule selects a module with the given raw name
// and pre-normalized tags.
func (r Rule) Matches(name string, normalizedTags []string) bool {
	tagHit := false
	for _, kw := range r.TagKeywords {
		for _, tag := range normalizedTags {
			if tag == kw {
				tagHit = true
				break
			}
		}
		if tagHit {
			break
		}
	}

	nameHit := false
	for _, kw := range r.NameKeywords {
		if strings.Contains(name, kw) {
			nameHit = true
			break
		}
	}

	if r.RequireNameMatch {
		return tagHit && nameHit
	}
	return tagHit || nameHit
}

// CategorySet is the classification result: an ordered set of category
// buckets, each holding the matched modules in input order. The category
// order is the rule order with "other" appended, so serialization is stable
// across runs.
type CategorySet struct {
	order   []string
	modules map[string][]*metadata.ModuleMetadata
}

// Classify evaluates every rule against every record. Records are visited in
// input order and appended to each matching category, so bucket contents
// mirror the caller's ordering. A record matching zero rules is placed in
// "other". The result depends only on record names and tags, never on
// traversal timing.
func Classify(records []*metadata.ModuleMetadata, rules []Rule) *CategorySet {
	set := &CategorySet{
		order:   make([]string, 0, len(rules)+1),
		modules: make(map[string][]*metadata.ModuleMetadata, len(rules)+1),
	}
	for _, r := range rules {
		set.order = append(set.order, r.Category)
		set.modules[r.Category] = []*metadata.ModuleMetadata{}
	}
	set.order = append(set.order, CategoryOther)
	set.modules[CategoryOther] = []*metadata.ModuleMetadata{}

	for _, rec := range records {
		tags := NormalizeTags(rec.Tags)

		matched := false
		for _, r := range rules {
			if r.Matches(rec.Name, tags) {
				set.modules[r.Category] = append(set.modules[r.Category], rec)
				matched = true
			}
		}
		if !matched {
			set.modules[CategoryOther] = append(set.modules[CategoryOther], rec)
		}
	}

	return set
}

// NormalizeTags lower-cases tags and replaces spaces with underscores, the
// canonical form rule keywords are written in.
func NormalizeTags(tags []string) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = strings.ReplaceAll(strings.ToLower(t), " ", "_")
	}
	return out
}

// Categories returns the category names in canonical order.
func (s *CategorySet) Categories() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Modules returns the modules assigned to a category, in input order.
func (s *CategorySet) Modules(category string) []*metadata.ModuleMetadata {
	return s.modules[category]
}

// Names returns the module names assigned to a category, in input order.
func (s *CategorySet) Names(category string) []string {
	mods := s.modules[category]
	names := make([]string, len(mods))
	for i, m := range mods {
		names[i] = m.Name
	}
	return names
}

// MarshalJSON serializes the set as {category: [module names]} with keys in
// canonical category order. Empty categories are kept as empty arrays.
func (s *CategorySet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, category := range s.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(category)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(s.Names(category))
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
