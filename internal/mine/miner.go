// Package mine extracts candidate keywords from uncategorized feedback
// and proposes target categories for them.
package mine

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/sichterhq/sichter/internal/model"
)

// Mining defaults. Candidates shorter than minCandidateLen runes are too
// short to discriminate; more than defaultLimit proposals are not useful
// to a human reviewer.
const (
	defaultLimit             = 30
	minCandidateLen          = 4
	defaultVocabThreshold    = 0.6
	defaultCategoryThreshold = 0.4
	maxNgram                 = 3
)

var wordRe = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Miner mines frequent n-grams from unclassified feedback and
// fuzzy-matches them against the existing vocabulary to suggest a target
// category per candidate.
type Miner struct {
	metric            *metrics.SorensenDice
	Limit             int
	VocabThreshold    float64
	CategoryThreshold float64
}

// NewMiner creates a miner with the default limits and thresholds.
func NewMiner() *Miner {
	return &Miner{
		metric:            metrics.NewSorensenDice(),
		Limit:             defaultLimit,
		VocabThreshold:    defaultVocabThreshold,
		CategoryThreshold: defaultCategoryThreshold,
	}
}

// Mine scans unclassified feedback texts, counts candidate phrases
// (contiguous 1- to 3-grams of word tokens, at least four runes long) and
// returns the most frequent candidates first, each with a best-guess
// target category. Ties in frequency keep first-encountered order, so the
// output is deterministic for identical input. An empty corpus yields an
// empty list.
func (m *Miner) Mine(texts []string, rules *model.RuleSet) []model.Suggestion {
	counts := make(map[string]int)
	var order []string

	for _, text := range texts {
		tokens := tokenize(text)
		for n := 1; n <= maxNgram; n++ {
			for i := 0; i+n <= len(tokens); i++ {
				phrase := strings.Join(tokens[i:i+n], " ")
				if utf8.RuneCountInString(phrase) < minCandidateLen {
					continue
				}
				if counts[phrase] == 0 {
					order = append(order, phrase)
				}
				counts[phrase]++
			}
		}
	}

	sort.SliceStable(order, func(a, b int) bool {
		return counts[order[a]] > counts[order[b]]
	})

	limit := m.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if len(order) > limit {
		order = order[:limit]
	}

	vocabulary := rules.Vocabulary()
	categories := rules.CategoryNames()

	suggestions := make([]model.Suggestion, len(order))
	for i, phrase := range order {
		suggestions[i] = model.Suggestion{
			Term:     phrase,
			Count:    counts[phrase],
			Category: m.suggestCategory(phrase, vocabulary, categories),
		}
	}
	return suggestions
}

// suggestCategory fuzzy-matches a candidate against the flattened keyword
// vocabulary first; a close keyword lends its category. Failing that, the
// candidate is matched directly against category names with a lower
// threshold. No close match means the candidate is proposed for ignoring.
func (m *Miner) suggestCategory(candidate string, vocabulary []model.KeywordEntry, categories []string) string {
	best := ""
	bestScore := m.VocabThreshold
	for _, entry := range vocabulary {
		score := strutil.Similarity(candidate, entry.Term, m.metric)
		if score > bestScore || (best == "" && score == bestScore) {
			best = entry.Category
			bestScore = score
		}
	}
	if best != "" {
		return best
	}

	bestScore = m.CategoryThreshold
	for _, name := range categories {
		score := strutil.Similarity(candidate, strings.ToLower(name), m.metric)
		if score > bestScore || (best == "" && score == bestScore) {
			best = name
			bestScore = score
		}
	}
	if best != "" {
		return best
	}

	return model.SuggestionIgnore
}

// tokenize splits text into lowercased word tokens: maximal runs of
// letters, digits, and underscores.
func tokenize(text string) []string {
	return wordRe.FindAllString(strings.ToLower(text), -1)
}
