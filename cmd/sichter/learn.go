package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sichterhq/sichter/internal/cli"
	"github.com/sichterhq/sichter/internal/common"
	"github.com/sichterhq/sichter/internal/feed"
	"github.com/sichterhq/sichter/internal/model"
	"github.com/sichterhq/sichter/internal/tui"
)

func learnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "learn <feedback.csv>",
		Short: "Mine unclassified feedback for new keyword suggestions",
		Long: `Classifies the given feedback, collects the entries no rule matched,
and mines them for frequent words and phrases. Each suggestion can be
accepted into a category, reassigned, or ignored.`,
		Args: cobra.ExactArgs(1),
		RunE: runLearn,
	}

	cmd.Flags().Int("limit", 0, "maximum number of suggestions (default from config, 30)")
	cmd.Flags().Bool("tui", false, "review suggestions in the full-screen interface")
	cmd.Flags().Bool("dry-run", false, "only print suggestions, do not change any rules")

	return cmd
}

func runLearn(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	inputPath := args[0]

	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		limit = viper.GetInt("mining.limit")
	}
	useTUI, _ := cmd.Flags().GetBool("tui")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	in, err := os.Open(inputPath)
	if err != nil {
		return common.NewUserError(fmt.Sprintf("could not open feedback file %s", inputPath), err)
	}
	doc, err := feed.Read(in)
	closeErr := in.Close()
	if err != nil {
		return err
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close %s: %w", inputPath, closeErr)
	}

	eng, _, cleanup, err := newEngine(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if limit > 0 {
		eng.Miner().Limit = limit
	}

	suggestions, stats, err := eng.Learn(ctx, doc.Feedback())
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatInfo(fmt.Sprintf("Scanned %d entries, %d unclassified, %d suggestions",
		stats.Scanned, stats.Unclassified, stats.Suggestions)))

	if len(suggestions) == 0 {
		fmt.Println(cli.FormatSuccess("No suggestions, the rules already cover this feedback"))
		return nil
	}

	if dryRun {
		for _, s := range suggestions {
			hint := cli.SubtleStyle.Render("no suggestion")
			if s.Category != model.SuggestionIgnore {
				hint = cli.InfoStyle.Render(s.Category)
			}
			fmt.Printf("  %-40s ×%-4d %s\n", s.Term, s.Count, hint)
		}
		return nil
	}

	categories := eng.Rules().CategoryNames()

	var accepted []model.Suggestion
	if useTUI {
		accepted, err = tui.ReviewSuggestions(ctx, suggestions, categories)
	} else {
		prompter := cli.NewPrompter(os.Stdin, os.Stdout)
		accepted, err = prompter.ReviewSuggestions(ctx, suggestions, categories)
	}
	if err != nil {
		return err
	}

	for _, s := range accepted {
		if err := eng.AcceptSuggestion(ctx, s.Term, s.Category); err != nil {
			return fmt.Errorf("failed to add %q to %s: %w", s.Term, s.Category, err)
		}
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Accepted %d of %d suggestions", len(accepted), len(suggestions))))
	return nil
}
