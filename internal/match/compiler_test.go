package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sichterhq/sichter/internal/model"
)

func buildRules(t *testing.T, categories []model.Category) *model.RuleSet {
	t.Helper()
	rules, err := model.NewRuleSetFromCategories(categories)
	require.NoError(t, err)
	return rules
}

func TestMatcherWordBoundaries(t *testing.T) {
	rules := buildRules(t, []model.Category{
		{Name: "TAN Probleme", Keywords: []string{"tan"}},
	})

	matcher, warnings := Compile(rules)
	require.Empty(t, warnings)

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "standalone word matches", text: "die tan kommt nicht an", want: "TAN Probleme"},
		{name: "case-insensitive", text: "Die TAN kommt nicht an", want: "TAN Probleme"},
		{name: "at start of text", text: "tan fehlt schon wieder", want: "TAN Probleme"},
		{name: "at end of text", text: "ich warte auf die tan", want: "TAN Probleme"},
		{name: "followed by punctuation", text: "keine tan!", want: "TAN Probleme"},
		{name: "inside a longer word does not match", text: "instant überweisung klappt nicht", want: model.CategoryOther},
		{name: "prefix of a longer word does not match", text: "tante emma laden", want: model.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matcher.Classify(tt.text))
		})
	}
}

func TestMatcherUmlautBoundaries(t *testing.T) {
	rules := buildRules(t, []model.Category{
		{Name: "Zahlungsprobleme", Keywords: []string{"überweisung"}},
	})

	matcher, warnings := Compile(rules)
	require.Empty(t, warnings)

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "umlaut keyword matches standalone", text: "die überweisung hängt fest", want: "Zahlungsprobleme"},
		{name: "umlaut keyword matches capitalized", text: "Überweisung dauert ewig", want: "Zahlungsprobleme"},
		{name: "umlaut keyword at start of text", text: "überweisung fehlgeschlagen", want: "Zahlungsprobleme"},
		{name: "not inside a compound word", text: "die überweisungsfunktion fehlt", want: model.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matcher.Classify(tt.text))
		})
	}
}

func TestMatcherPhraseKeywords(t *testing.T) {
	rules := buildRules(t, []model.Category{
		{Name: "App abstürze", Keywords: []string{"stürzt ab", "absturz"}},
	})

	matcher, warnings := Compile(rules)
	require.Empty(t, warnings)

	assert.Equal(t, "App abstürze", matcher.Classify("die app stürzt ab beim login"))
	assert.Equal(t, "App abstürze", matcher.Classify("schon wieder ein Absturz"))
	assert.Equal(t, model.CategoryOther, matcher.Classify("alles gut"))
}

func TestMatcherFirstMatchWins(t *testing.T) {
	rules := buildRules(t, []model.Category{
		{Name: "Login", Keywords: []string{"login", "passwort"}},
		{Name: "Fehler / Bugs", Keywords: []string{"fehler", "login"}},
	})

	matcher, warnings := Compile(rules)
	require.Empty(t, warnings)

	// "login" appears in both categories; the earlier one wins.
	assert.Equal(t, "Login", matcher.Classify("login geht nicht"))
	// Text matching both categories resolves to the earlier one too.
	assert.Equal(t, "Login", matcher.Classify("fehler beim login"))
	assert.Equal(t, "Fehler / Bugs", matcher.Classify("ständig fehler"))
}

func TestMatcherEmptyText(t *testing.T) {
	rules := buildRules(t, []model.Category{
		{Name: "Login", Keywords: []string{"login"}},
	})

	matcher, _ := Compile(rules)

	assert.Equal(t, model.CategoryOther, matcher.Classify(""))
	assert.Equal(t, model.CategoryOther, matcher.Classify("   \t\n"))
}

func TestCompileSkipsEmptyCategories(t *testing.T) {
	rules := model.NewRuleSet()
	require.NoError(t, rules.AddCategory("Leer"))
	require.NoError(t, rules.AddCategory("Login"))
	require.NoError(t, rules.AddKeyword("Login", "login"))

	matcher, warnings := Compile(rules)
	require.Empty(t, warnings)

	assert.Equal(t, []string{"Login"}, matcher.Categories())
	assert.Equal(t, model.CategoryOther, matcher.Classify("leer"))
}

func TestCompileRecordsVersion(t *testing.T) {
	rules := model.NewRuleSet()
	require.NoError(t, rules.AddCategory("Login"))
	require.NoError(t, rules.AddKeyword("Login", "login"))

	matcher, _ := Compile(rules)
	assert.Equal(t, rules.Version(), matcher.Version())

	require.NoError(t, rules.AddKeyword("Login", "passwort"))
	assert.NotEqual(t, rules.Version(), matcher.Version())
}

func TestFallbackMatcherSubstring(t *testing.T) {
	cm := newFallbackMatcher("Login", []string{"LOGIN"})

	assert.True(t, cm.matches("beim login hakt es", "beim login hakt es"))
	// Fallback is plain substring, boundaries are not enforced.
	assert.True(t, cm.matches("loginproblem", "loginproblem"))
	assert.False(t, cm.matches("alles gut", "alles gut"))
}

func TestMatcherSpecialCharacterKeywords(t *testing.T) {
	rules := buildRules(t, []model.Category{
		{Name: "UI/UX", Keywords: []string{"ui/ux", "design"}},
	})

	matcher, warnings := Compile(rules)
	require.Empty(t, warnings)

	// Metacharacters in keywords are escaped, not interpreted.
	assert.Equal(t, "UI/UX", matcher.Classify("das ui/ux ist veraltet"))
	assert.Equal(t, model.CategoryOther, matcher.Classify("uixux egal"))
}
