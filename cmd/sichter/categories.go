package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sichterhq/sichter/internal/cli"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage feedback categories",
	}

	cmd.AddCommand(categoriesListCmd())
	cmd.AddCommand(categoriesAddCmd())
	cmd.AddCommand(categoriesRemoveCmd())

	return cmd
}

func categoriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories with their keyword counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, _, cleanup, err := newEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			rules := eng.Rules()
			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Categories (%d)", rules.Len())))
			for i, name := range rules.CategoryNames() {
				keywords, _ := rules.Keywords(name)
				line := fmt.Sprintf("%3d. %-30s %s", i+1, name,
					cli.SubtleStyle.Render(fmt.Sprintf("%d keywords", len(keywords))))
				fmt.Println(line)
			}
			return nil
		},
	}
}

func categoriesAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")

			eng, _, cleanup, err := newEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := eng.AddCategory(cmd.Context(), name); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added category %q", name)))
			return nil
		},
	}
}

func categoriesRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a category and all its keywords",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			force, _ := cmd.Flags().GetBool("force")

			eng, _, cleanup, err := newEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if !force {
				keywords, _ := eng.Rules().Keywords(name)
				if len(keywords) > 0 {
					return fmt.Errorf("category %q has %d keywords, rerun with --force to remove it", name, len(keywords))
				}
			}

			if err := eng.RemoveCategory(cmd.Context(), name); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Removed category %q", name)))
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "remove even if the category still has keywords")

	return cmd
}
