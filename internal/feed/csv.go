// Package feed reads and writes feedback records at the CSV boundary.
// The contract is one named text column ("Feedback") in, one label column
// ("Kategorie") out; everything else passes through untouched.
package feed

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
)

// Column names of the record contract.
const (
	FeedbackColumn = "Feedback"
	CategoryColumn = "Kategorie"
)

// Document holds a parsed feedback file: the header, all rows, and the
// position of the feedback column.
type Document struct {
	Header      []string
	Rows        [][]string
	feedbackIdx int
	categoryIdx int
}

// Read parses CSV feedback records. A missing Feedback column is a
// caller-side validation error reported before any classification runs.
func Read(r io.Reader) (*Document, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	doc := &Document{
		Header:      records[0],
		Rows:        records[1:],
		feedbackIdx: -1,
		categoryIdx: -1,
	}

	for i, name := range doc.Header {
		switch name {
		case FeedbackColumn:
			doc.feedbackIdx = i
		case CategoryColumn:
			doc.categoryIdx = i
		}
	}

	if doc.feedbackIdx < 0 {
		return nil, fmt.Errorf("column %q not found", FeedbackColumn)
	}

	return doc, nil
}

// Feedback returns the feedback text of every row. Rows too short to hold
// the feedback column yield an empty string, so one malformed row never
// fails the batch.
func (d *Document) Feedback() []string {
	texts := make([]string, len(d.Rows))
	for i, row := range d.Rows {
		if d.feedbackIdx < len(row) {
			texts[i] = row[d.feedbackIdx]
		}
	}
	return texts
}

// SetCategories stores one label per row, overwriting an existing
// Kategorie column or appending one.
func (d *Document) SetCategories(labels []string) error {
	if len(labels) != len(d.Rows) {
		return fmt.Errorf("got %d labels for %d rows", len(labels), len(d.Rows))
	}

	if d.categoryIdx < 0 {
		d.categoryIdx = len(d.Header)
		d.Header = append(d.Header, CategoryColumn)
	}

	for i := range d.Rows {
		for len(d.Rows[i]) <= d.categoryIdx {
			d.Rows[i] = append(d.Rows[i], "")
		}
		d.Rows[i][d.categoryIdx] = labels[i]
	}

	return nil
}

// Write emits the document as CSV, UTF-8 throughout.
func (d *Document) Write(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(d.Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range d.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// CategoryCount is one row of the distribution summary.
type CategoryCount struct {
	Category string
	Count    int
	Share    float64
}

// Summarize aggregates labels into a distribution, most frequent first.
// Ties are broken alphabetically to keep the output stable.
func Summarize(labels []string) []CategoryCount {
	counts := make(map[string]int)
	for _, label := range labels {
		counts[label]++
	}

	summary := make([]CategoryCount, 0, len(counts))
	for category, count := range counts {
		share := 0.0
		if len(labels) > 0 {
			share = float64(count) / float64(len(labels)) * 100
		}
		summary = append(summary, CategoryCount{Category: category, Count: count, Share: share})
	}

	sort.Slice(summary, func(a, b int) bool {
		if summary[a].Count != summary[b].Count {
			return summary[a].Count > summary[b].Count
		}
		return summary[a].Category < summary[b].Category
	})

	return summary
}
