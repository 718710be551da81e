// Package match compiles rule sets into word-boundary-safe matchers and
// applies them to feedback text.
package match

import (
	"regexp"
	"strings"

	"github.com/sichterhq/sichter/internal/model"
)

// Go's RE2 \b is ASCII-only and would never fire before keywords starting
// with an umlaut ("überweisung"). The boundary brackets below are the
// Unicode equivalent: start/end of text or a non-word rune on either side
// of the keyword.
const (
	boundaryLeft  = `(?:\A|[^\p{L}\p{N}_])`
	boundaryRight = `(?:[^\p{L}\p{N}_]|\z)`
)

// CompileWarning reports a category whose keywords could not be compiled
// into a boundary-safe pattern. The category still matches, via plain
// case-insensitive substring tests.
type CompileWarning struct {
	Err      error
	Category string
}

// categoryMatcher tests one category. Either re is set (boundary-safe
// pattern) or terms is set (lowercased substring fallback).
type categoryMatcher struct {
	re    *regexp.Regexp
	name  string
	terms []string
}

func (cm *categoryMatcher) matches(text, lowered string) bool {
	if cm.re != nil {
		return cm.re.MatchString(text)
	}
	for _, term := range cm.terms {
		if strings.Contains(lowered, term) {
			return true
		}
	}
	return false
}

// Matcher is the compiled, read-only artifact derived from one rule set
// snapshot. It is valid only for the exact rule set version it was built
// from; any mutation requires a rebuild.
type Matcher struct {
	matchers []categoryMatcher
	version  int64
}

// Compile builds a matcher from a rule set snapshot. Each category with at
// least one keyword gets a single combined pattern: the alternation of all
// its keywords, each matched literally, case-insensitively and only at
// word boundaries. A category whose pattern fails to compile degrades to
// substring matching and is reported in the returned warnings; the compile
// as a whole never fails. Categories with zero keywords are omitted.
func Compile(rules *model.RuleSet) (*Matcher, []CompileWarning) {
	m := &Matcher{version: rules.Version()}
	var warnings []CompileWarning

	for _, cat := range rules.Snapshot() {
		if len(cat.Keywords) == 0 {
			continue
		}

		escaped := make([]string, len(cat.Keywords))
		for i, term := range cat.Keywords {
			escaped[i] = regexp.QuoteMeta(term)
		}
		pattern := `(?i)` + boundaryLeft + `(?:` + strings.Join(escaped, "|") + `)` + boundaryRight

		re, err := regexp.Compile(pattern)
		if err != nil {
			warnings = append(warnings, CompileWarning{Category: cat.Name, Err: err})
			m.matchers = append(m.matchers, newFallbackMatcher(cat.Name, cat.Keywords))
			continue
		}

		m.matchers = append(m.matchers, categoryMatcher{name: cat.Name, re: re})
	}

	return m, warnings
}

// newFallbackMatcher builds the degraded substring matcher for a category.
func newFallbackMatcher(name string, keywords []string) categoryMatcher {
	terms := make([]string, len(keywords))
	for i, term := range keywords {
		terms[i] = strings.ToLower(term)
	}
	return categoryMatcher{name: name, terms: terms}
}

// Version returns the rule set version this matcher was compiled from.
func (m *Matcher) Version() int64 {
	return m.version
}

// Categories returns the category names the matcher can produce, in
// match-priority order.
func (m *Matcher) Categories() []string {
	names := make([]string, len(m.matchers))
	for i, cm := range m.matchers {
		names[i] = cm.name
	}
	return names
}

// Classify returns the first category, in rule set insertion order, whose
// matcher fires on the text, or model.CategoryOther when none does. An
// empty or whitespace-only text is always Other.
func (m *Matcher) Classify(text string) string {
	if strings.TrimSpace(text) == "" {
		return model.CategoryOther
	}

	lowered := ""
	for i := range m.matchers {
		cm := &m.matchers[i]
		if cm.re == nil && lowered == "" {
			lowered = strings.ToLower(text)
		}
		if cm.matches(text, lowered) {
			return cm.name
		}
	}
	return model.CategoryOther
}
