// Package model defines the core data types for feedback categorization.
package model

import (
	"strings"

	"github.com/sichterhq/sichter/internal/common"
)

// CategoryOther is the sentinel label for feedback matching no rule.
const CategoryOther = "Other"

// SuggestionIgnore marks a mined candidate with no close vocabulary match.
const SuggestionIgnore = "ignore"

// Category is a named bucket of feedback meaning together with the
// keywords and phrases that signal it.
type Category struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// KeywordEntry is one vocabulary term with the category it belongs to.
type KeywordEntry struct {
	Term     string
	Category string
}

// RuleSet is the category → keyword mapping the classifier runs on.
// Category insertion order is significant: the classifier resolves
// overlapping keywords by first-match-wins over this order.
type RuleSet struct {
	index      map[string]int
	categories []Category
	version    int64
}

// NewRuleSet returns an empty rule set.
func NewRuleSet() *RuleSet {
	return &RuleSet{index: make(map[string]int)}
}

// NewRuleSetFromCategories builds a rule set from an ordered category
// slice, normalizing and deduplicating keywords. Used when loading a
// persisted snapshot.
func NewRuleSetFromCategories(categories []Category) (*RuleSet, error) {
	rs := NewRuleSet()
	for _, cat := range categories {
		if err := rs.AddCategory(cat.Name); err != nil {
			return nil, err
		}
		for _, term := range cat.Keywords {
			if err := rs.AddKeyword(cat.Name, term); err != nil {
				return nil, err
			}
		}
	}
	return rs, nil
}

// NormalizeKeyword trims surrounding whitespace and lowercases a term.
// All keywords pass through here before insertion or comparison.
func NormalizeKeyword(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// Version is a monotonic counter bumped on every mutation. Compiled
// matchers record the version they were built from; a mismatch means the
// matcher is stale and must be rebuilt.
func (rs *RuleSet) Version() int64 {
	return rs.version
}

// Len returns the number of categories.
func (rs *RuleSet) Len() int {
	return len(rs.categories)
}

// HasCategory reports whether the named category exists (exact match).
func (rs *RuleSet) HasCategory(name string) bool {
	_, ok := rs.index[name]
	return ok
}

// CategoryNames returns all category names in insertion order.
func (rs *RuleSet) CategoryNames() []string {
	names := make([]string, len(rs.categories))
	for i, cat := range rs.categories {
		names[i] = cat.Name
	}
	return names
}

// Keywords returns the keywords of a category in insertion order.
func (rs *RuleSet) Keywords(category string) ([]string, bool) {
	i, ok := rs.index[category]
	if !ok {
		return nil, false
	}
	out := make([]string, len(rs.categories[i].Keywords))
	copy(out, rs.categories[i].Keywords)
	return out, true
}

// Snapshot returns a deep copy of the ordered categories, suitable for
// persistence or serialization.
func (rs *RuleSet) Snapshot() []Category {
	out := make([]Category, len(rs.categories))
	for i, cat := range rs.categories {
		keywords := make([]string, len(cat.Keywords))
		copy(keywords, cat.Keywords)
		out[i] = Category{Name: cat.Name, Keywords: keywords}
	}
	return out
}

// Vocabulary flattens every keyword across all categories, in category
// insertion order. A term appearing in several categories keeps one entry
// per category.
func (rs *RuleSet) Vocabulary() []KeywordEntry {
	var entries []KeywordEntry
	for _, cat := range rs.categories {
		for _, term := range cat.Keywords {
			entries = append(entries, KeywordEntry{Term: term, Category: cat.Name})
		}
	}
	return entries
}

// Clone returns an independent copy sharing no state with the receiver.
// The clone starts at the same version.
func (rs *RuleSet) Clone() *RuleSet {
	clone := NewRuleSet()
	clone.categories = rs.Snapshot()
	for i, cat := range clone.categories {
		clone.index[cat.Name] = i
	}
	clone.version = rs.version
	return clone
}

// AddCategory creates a new empty category at the end of the order.
func (rs *RuleSet) AddCategory(name string) error {
	if strings.TrimSpace(name) == "" || name == CategoryOther {
		return common.ErrInvalidCategoryName
	}
	if rs.HasCategory(name) {
		return common.ErrDuplicateCategory
	}
	rs.index[name] = len(rs.categories)
	rs.categories = append(rs.categories, Category{Name: name})
	rs.version++
	return nil
}

// RemoveCategory deletes a category and all its keywords.
func (rs *RuleSet) RemoveCategory(name string) error {
	i, ok := rs.index[name]
	if !ok {
		return common.ErrUnknownCategory
	}
	rs.categories = append(rs.categories[:i], rs.categories[i+1:]...)
	delete(rs.index, name)
	for j := i; j < len(rs.categories); j++ {
		rs.index[rs.categories[j].Name] = j
	}
	rs.version++
	return nil
}

// AddKeyword normalizes term and inserts it into the category. Inserting
// a term the category already holds is a no-op.
func (rs *RuleSet) AddKeyword(category, term string) error {
	i, ok := rs.index[category]
	if !ok {
		return common.ErrUnknownCategory
	}
	normalized := NormalizeKeyword(term)
	if normalized == "" {
		return common.ErrMalformedKeyword
	}
	if containsTerm(rs.categories[i].Keywords, normalized) {
		return nil
	}
	rs.categories[i].Keywords = append(rs.categories[i].Keywords, normalized)
	rs.version++
	return nil
}

// RemoveKeyword removes a term from a category. Removing an absent term
// is a no-op.
func (rs *RuleSet) RemoveKeyword(category, term string) error {
	i, ok := rs.index[category]
	if !ok {
		return common.ErrUnknownCategory
	}
	normalized := NormalizeKeyword(term)
	keywords := rs.categories[i].Keywords
	for j, existing := range keywords {
		if existing == normalized {
			rs.categories[i].Keywords = append(keywords[:j], keywords[j+1:]...)
			rs.version++
			return nil
		}
	}
	return nil
}

// RenameKeyword replaces an existing term with a new one, normalizing
// both. Implemented as remove plus insert.
func (rs *RuleSet) RenameKeyword(category, oldTerm, newTerm string) error {
	if NormalizeKeyword(newTerm) == "" {
		return common.ErrMalformedKeyword
	}
	if err := rs.RemoveKeyword(category, oldTerm); err != nil {
		return err
	}
	return rs.AddKeyword(category, newTerm)
}

func containsTerm(keywords []string, term string) bool {
	for _, existing := range keywords {
		if existing == term {
			return true
		}
	}
	return false
}
