package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/recipebox/internal/conversation"
	"github.com/hammamikhairi/recipebox/internal/display"
	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/engine"
)

func newShopCmd(appFn func() *app) *cobra.Command {
	shop := &cobra.Command{
		Use:   "shop",
		Short: "Manage the shopping list",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the shopping list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := appFn().engine(cmd.Context())
			if err != nil {
				return err
			}
			defer eng.Close()
			fmt.Fprintln(cmd.OutOrStdout(), display.ShoppingList(eng))
			return nil
		},
	}

	add := &cobra.Command{
		Use:   "add <id>...",
		Short: "Add recipe ingredients, scaled to their servings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFn()
			notifier := conversation.NewCLINotifier(a.log, conversation.WriterPrint(cmd.OutOrStdout()))
			eng, err := a.engine(cmd.Context(), engine.WithNotifier(notifier))
			if err != nil {
				return err
			}
			defer eng.Close()

			for _, arg := range args {
				id, err := parseID(arg)
				if err != nil {
					return err
				}
				if _, err := eng.AddToList(cmd.Context(), id); err != nil {
					return err
				}
			}
			return nil
		},
	}

	check := &cobra.Command{
		Use:   "check <n>",
		Short: "Check or uncheck the item at position n",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("position %q: %w", args[0], domain.ErrNotFound)
			}
			eng, err := appFn().engine(cmd.Context())
			if err != nil {
				return err
			}
			defer eng.Close()

			it, err := eng.CheckAt(cmd.Context(), pos)
			if err != nil {
				return err
			}
			state := "unchecked"
			if it.Checked {
				state = "checked"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", state, it.Name)
			return nil
		},
	}

	var onlyChecked bool
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the list, or only checked items with --checked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := appFn().engine(cmd.Context())
			if err != nil {
				return err
			}
			defer eng.Close()

			if onlyChecked {
				n := eng.ClearChecked(cmd.Context())
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d checked items\n", n)
				return nil
			}
			eng.ClearAll(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Shopping list cleared")
			return nil
		},
	}
	clearCmd.Flags().BoolVar(&onlyChecked, "checked", false, "only remove checked items")

	shop.AddCommand(show, add, check, clearCmd)
	return shop
}
