package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/recipebox/internal/display"
	"github.com/hammamikhairi/recipebox/internal/domain"
)

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("recipe id %q: %w", arg, domain.ErrInvalidRoute)
	}
	return id, nil
}

func newShowCmd(appFn func() *app) *cobra.Command {
	var servings int

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a recipe with ingredients scaled to its servings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			eng, err := appFn().engine(cmd.Context())
			if err != nil {
				return err
			}
			defer eng.Close()

			if cmd.Flags().Changed("servings") {
				if err := eng.SetServings(cmd.Context(), id, servings); err != nil {
					return err
				}
			}
			out, err := display.Detail(eng, id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().IntVarP(&servings, "servings", "n", 0, "set and remember the servings (1-12)")
	return cmd
}

func newFavCmd(appFn func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fav <id>",
		Short: "Toggle a recipe as favorite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			eng, err := appFn().engine(cmd.Context())
			if err != nil {
				return err
			}
			defer eng.Close()

			on, err := eng.ToggleFavorite(cmd.Context(), id)
			if err != nil {
				return err
			}
			r, _ := eng.Recipe(id)
			if on {
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s to favorites\n", r.Title)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from favorites\n", r.Title)
			}
			return nil
		},
	}
}
