package feed

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRequiresFeedbackColumn(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "missing feedback column",
			input:   "ID,Text\n1,hallo\n",
			wantErr: `column "Feedback" not found`,
		},
		{
			name:    "empty file",
			input:   "",
			wantErr: "CSV file is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestReadAndFeedback(t *testing.T) {
	input := "ID,Feedback,Datum\n" +
		"1,Die App stürzt ab,2025-01-01\n" +
		"2,Überweisung hängt,2025-01-02\n" +
		"3\n"

	doc, err := Read(strings.NewReader(input))
	require.NoError(t, err)

	texts := doc.Feedback()
	require.Len(t, texts, 3)
	assert.Equal(t, "Die App stürzt ab", texts[0])
	assert.Equal(t, "Überweisung hängt", texts[1])
	// A row too short for the feedback column yields an empty text.
	assert.Equal(t, "", texts[2])
}

func TestSetCategoriesAppendsColumn(t *testing.T) {
	doc, err := Read(strings.NewReader("Feedback\nlogin kaputt\nalles gut\n"))
	require.NoError(t, err)

	require.NoError(t, doc.SetCategories([]string{"Login", "Other"}))

	assert.Equal(t, []string{"Feedback", "Kategorie"}, doc.Header)
	assert.Equal(t, []string{"login kaputt", "Login"}, doc.Rows[0])
	assert.Equal(t, []string{"alles gut", "Other"}, doc.Rows[1])
}

func TestSetCategoriesOverwritesExistingColumn(t *testing.T) {
	doc, err := Read(strings.NewReader("Feedback,Kategorie\nlogin kaputt,Alt\n"))
	require.NoError(t, err)

	require.NoError(t, doc.SetCategories([]string{"Login"}))

	assert.Equal(t, []string{"Feedback", "Kategorie"}, doc.Header)
	assert.Equal(t, []string{"login kaputt", "Login"}, doc.Rows[0])
}

func TestSetCategoriesLengthMismatch(t *testing.T) {
	doc, err := Read(strings.NewReader("Feedback\neins\nzwei\n"))
	require.NoError(t, err)

	assert.Error(t, doc.SetCategories([]string{"Login"}))
}

func TestRoundTripKeepsUmlautsAndQuoting(t *testing.T) {
	input := "ID,Feedback\n" +
		"1,\"Überweisung hängt, nichts geht\"\n" +
		"2,ganz ok\n"

	doc, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.NoError(t, doc.SetCategories([]string{"Zahlungsprobleme", "Other"}))

	var buf bytes.Buffer
	require.NoError(t, doc.Write(&buf))

	reparsed, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, "Überweisung hängt, nichts geht", reparsed.Feedback()[0])
	assert.Equal(t, doc.Rows, reparsed.Rows)
}

func TestSummarize(t *testing.T) {
	labels := []string{"Login", "Other", "Login", "Gebühren", "Other", "Login"}

	summary := Summarize(labels)
	require.Len(t, summary, 3)

	assert.Equal(t, CategoryCount{Category: "Login", Count: 3, Share: 50.0}, summary[0])
	assert.Equal(t, "Other", summary[1].Category)
	assert.Equal(t, 2, summary[1].Count)
	assert.Equal(t, "Gebühren", summary[2].Category)
	assert.InDelta(t, 100.0/6, summary[2].Share, 0.001)
}

func TestSummarizeTieBreaksAlphabetically(t *testing.T) {
	summary := Summarize([]string{"Zebra", "Apfel"})
	require.Len(t, summary, 2)
	assert.Equal(t, "Apfel", summary[0].Category)
	assert.Equal(t, "Zebra", summary[1].Category)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Empty(t, Summarize(nil))
}
