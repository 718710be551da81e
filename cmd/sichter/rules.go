package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sichterhq/sichter/internal/cli"
	"github.com/sichterhq/sichter/internal/model"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect, export and import the full rule set",
	}

	cmd.AddCommand(rulesShowCmd())
	cmd.AddCommand(rulesExportCmd())
	cmd.AddCommand(rulesImportCmd())

	return cmd
}

func rulesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print every category with its keywords",
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, _, cleanup, err := newEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			for _, category := range eng.Rules().Snapshot() {
				fmt.Println(cli.BoldStyle.Render(category.Name))
				for _, term := range category.Keywords {
					fmt.Println("  " + term)
				}
			}
			return nil
		},
	}
}

func rulesExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the rule set as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputPath, _ := cmd.Flags().GetString("output")

			eng, _, cleanup, err := newEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			data, err := json.MarshalIndent(eng.Rules().Snapshot(), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode rules: %w", err)
			}
			data = append(data, '\n')

			if outputPath == "" {
				_, err = os.Stdout.Write(data)
				return err
			}
			if err := os.WriteFile(outputPath, data, 0o600); err != nil {
				return fmt.Errorf("failed to write %s: %w", outputPath, err)
			}
			fmt.Println(cli.FormatSuccess("Exported rules to " + outputPath))
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "write to file instead of stdout")

	return cmd
}

func rulesImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <rules.json>",
		Short: "Replace the rule set with an exported JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			var categories []model.Category
			if err := json.Unmarshal(data, &categories); err != nil {
				return fmt.Errorf("failed to parse %s: %w", args[0], err)
			}

			eng, _, cleanup, err := newEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := eng.ImportRules(cmd.Context(), categories); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d categories", len(categories))))
			return nil
		},
	}
}
