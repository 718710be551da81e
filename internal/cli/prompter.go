package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sichterhq/sichter/internal/model"
)

// Prompter walks the user through mined keyword suggestions one at a
// time and collects the ones they accept.
type Prompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewPrompter creates a prompter reading from r and writing to w.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(r),
		writer: w,
	}
}

// ReviewSuggestions presents each suggestion and asks the user to
// accept it for the suggested category, assign a different category,
// or skip it. Returns the accepted suggestions with their final
// categories. Quitting keeps everything accepted so far.
func (p *Prompter) ReviewSuggestions(ctx context.Context, suggestions []model.Suggestion, categories []string) ([]model.Suggestion, error) {
	if len(suggestions) == 0 {
		return nil, nil
	}

	fmt.Fprintln(p.writer, TitleStyle.Render(fmt.Sprintf("Reviewing %d keyword suggestions", len(suggestions))))

	var accepted []model.Suggestion
	for i, s := range suggestions {
		if err := ctx.Err(); err != nil {
			return accepted, err
		}

		p.printSuggestion(i+1, len(suggestions), s)

		choice, err := p.askChoice(s)
		if err != nil {
			return accepted, err
		}

		switch choice {
		case "a":
			accepted = append(accepted, s)
			fmt.Fprintln(p.writer, FormatSuccess(fmt.Sprintf("%q → %s", s.Term, s.Category)))
		case "c":
			category, err := p.chooseCategory(categories)
			if err != nil {
				return accepted, err
			}
			if category == "" {
				fmt.Fprintln(p.writer, SubtleStyle.Render("skipped"))
				continue
			}
			s.Category = category
			accepted = append(accepted, s)
			fmt.Fprintln(p.writer, FormatSuccess(fmt.Sprintf("%q → %s", s.Term, s.Category)))
		case "i":
			fmt.Fprintln(p.writer, SubtleStyle.Render("skipped"))
		case "q":
			return accepted, nil
		}
	}

	return accepted, nil
}

func (p *Prompter) printSuggestion(index, total int, s model.Suggestion) {
	fmt.Fprintln(p.writer)
	header := fmt.Sprintf("[%d/%d] %s", index, total, BoldStyle.Render(s.Term))
	fmt.Fprintln(p.writer, header)
	fmt.Fprintln(p.writer, SubtleStyle.Render(fmt.Sprintf("  seen %d times in unclassified feedback", s.Count)))
	if s.Category != model.SuggestionIgnore {
		fmt.Fprintln(p.writer, InfoStyle.Render("  suggested category: "+s.Category))
	} else {
		fmt.Fprintln(p.writer, SubtleStyle.Render("  no category suggestion"))
	}
}

func (p *Prompter) askChoice(s model.Suggestion) (string, error) {
	hasSuggestion := s.Category != model.SuggestionIgnore
	for {
		if hasSuggestion {
			fmt.Fprint(p.writer, FormatPrompt("[a]ccept / [c]hoose category / [i]gnore / [q]uit"))
		} else {
			fmt.Fprint(p.writer, FormatPrompt("[c]hoose category / [i]gnore / [q]uit"))
		}

		line, err := p.reader.ReadString('\n')
		if err != nil && line == "" {
			if err == io.EOF {
				return "q", nil
			}
			return "", fmt.Errorf("reading input: %w", err)
		}

		choice := strings.ToLower(strings.TrimSpace(line))
		switch choice {
		case "a":
			if hasSuggestion {
				return "a", nil
			}
		case "c", "i", "q":
			return choice, nil
		case "":
			// Enter defaults to accept when there is a suggestion.
			if hasSuggestion {
				return "a", nil
			}
		}
		fmt.Fprintln(p.writer, FormatWarning("please pick one of the listed options"))
	}
}

func (p *Prompter) chooseCategory(categories []string) (string, error) {
	for i, name := range categories {
		fmt.Fprintf(p.writer, "  %2d. %s\n", i+1, name)
	}
	for {
		fmt.Fprint(p.writer, FormatPrompt("category number (empty to skip)"))

		line, err := p.reader.ReadString('\n')
		if err != nil && line == "" {
			if err == io.EOF {
				return "", nil
			}
			return "", fmt.Errorf("reading input: %w", err)
		}

		input := strings.TrimSpace(line)
		if input == "" {
			return "", nil
		}

		idx, err := strconv.Atoi(input)
		if err != nil || idx < 1 || idx > len(categories) {
			fmt.Fprintln(p.writer, FormatWarning(fmt.Sprintf("enter a number between 1 and %d", len(categories))))
			continue
		}
		return categories[idx-1], nil
	}
}
