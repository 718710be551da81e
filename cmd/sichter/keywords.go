package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sichterhq/sichter/internal/cli"
)

func keywordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "Manage category keywords",
	}

	cmd.AddCommand(keywordsListCmd())
	cmd.AddCommand(keywordsAddCmd())
	cmd.AddCommand(keywordsRemoveCmd())
	cmd.AddCommand(keywordsRenameCmd())

	return cmd
}

func keywordsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <category>",
		Short: "List the keywords of a category",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := strings.Join(args, " ")

			eng, _, cleanup, err := newEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			rules := eng.Rules()
			keywords, ok := rules.Keywords(category)
			if !ok {
				return fmt.Errorf("unknown category %q", category)
			}
			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("%s (%d keywords)", category, len(keywords))))
			for _, term := range keywords {
				fmt.Println("  " + term)
			}
			return nil
		},
	}
}

func keywordsAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <category> <term>",
		Short: "Add a keyword to a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, term := args[0], args[1]

			eng, _, cleanup, err := newEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := eng.AddKeyword(cmd.Context(), category, term); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added %q to %s", term, category)))
			return nil
		},
	}
}

func keywordsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <category> <term>",
		Short: "Remove a keyword from a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, term := args[0], args[1]

			eng, _, cleanup, err := newEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := eng.RemoveKeyword(cmd.Context(), category, term); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Removed %q from %s", term, category)))
			return nil
		},
	}
}

func keywordsRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <category> <old-term> <new-term>",
		Short: "Replace a keyword with a new spelling",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, oldTerm, newTerm := args[0], args[1], args[2]

			eng, _, cleanup, err := newEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := eng.RenameKeyword(cmd.Context(), category, oldTerm, newTerm); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Renamed %q to %q in %s", oldTerm, newTerm, category)))
			return nil
		},
	}
}
