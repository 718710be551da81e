package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/sichterhq/sichter/internal/cli"
	"github.com/sichterhq/sichter/internal/common"
	"github.com/sichterhq/sichter/internal/feed"
	"github.com/sichterhq/sichter/internal/service"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <feedback.csv>",
		Short: "Categorize a CSV file of customer feedback",
		Long: `Reads a CSV file with a "Feedback" column, assigns a category to every
entry and writes the result with a "Kategorie" column added.`,
		Args: cobra.ExactArgs(1),
		RunE: runClassify,
	}

	cmd.Flags().StringP("output", "o", "", "output file (default: <input>_kategorisiert.csv)")
	cmd.Flags().Bool("summary", true, "print the category distribution after classifying")

	return cmd
}

func runClassify(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	inputPath := args[0]

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = defaultOutputPath(inputPath)
	}
	showSummary, _ := cmd.Flags().GetBool("summary")

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

	texts := doc.Feedback()
	if len(texts) == 0 {
		fmt.Println(cli.FormatWarning("no feedback rows found, nothing to do"))
		return nil
	}

	eng, classifier, cleanup, err := newEngine(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if eng.InMemory() {
		fmt.Println(cli.FormatWarning("rule database unavailable, using built-in defaults"))
	}

	bar := progressbar.NewOptions(len(texts),
		progressbar.OptionSetDescription("Classifying"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	if reporter, ok := classifier.(interface{ SetProgress(service.ProgressFunc) }); ok {
		reporter.SetProgress(func(done int) {
			_ = bar.Set(done)
		})
	}

	results, stats, err := eng.ClassifyFeedback(ctx, texts)
	_ = bar.Finish()
	if err != nil {
		return err
	}

	labels := make([]string, len(results))
	for i, r := range results {
		labels[i] = r.Category
	}
	if err := doc.SetCategories(labels); err != nil {
		return err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outputPath, err)
	}
	if err := doc.Write(out); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", outputPath, err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Classified %d entries in %s (%d matched, %d Other)",
		stats.Total, stats.Duration.Round(time.Millisecond), stats.Matched, stats.Other)))
	fmt.Println(cli.FormatInfo("Written to " + outputPath))

	if showSummary {
		printSummary(feed.Summarize(labels))
	}

	return nil
}

// defaultOutputPath derives the output name from the input file.
func defaultOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(inputPath, ext)
	if ext == "" {
		ext = ".csv"
	}
	return base + "_kategorisiert" + ext
}

func printSummary(counts []feed.CategoryCount) {
	if len(counts) == 0 {
		return
	}

	var b strings.Builder
	for _, c := range counts {
		b.WriteString(fmt.Sprintf("%-30s %5d  %5.1f%%\n", c.Category, c.Count, c.Share))
	}
	fmt.Println(cli.RenderBox("Category Distribution", strings.TrimRight(b.String(), "\n")))
}
