package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/recipebox/internal/display"
	"github.com/hammamikhairi/recipebox/internal/domain"
)

func newListCmd(appFn func() *app) *cobra.Command {
	var (
		search    string
		category  string
		quickTime bool
		easy      bool
		vegan     bool
		page      int
		favs      bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes matching the filters",
		Example: `  recipebox list --category quick --vegan
  recipebox list --search garlic --page 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := appFn().engine(cmd.Context())
			if err != nil {
				return err
			}
			defer eng.Close()

			out := cmd.OutOrStdout()
			if favs {
				fmt.Fprintln(out, display.Favorites(eng))
				return nil
			}

			eng.SetSearch(search)
			eng.SetCategory(category)
			for q, on := range map[domain.QuickFilter]bool{
				domain.QuickTime:  quickTime,
				domain.QuickEasy:  easy,
				domain.QuickVegan: vegan,
			} {
				if on {
					eng.ToggleQuickFilter(q)
				}
			}
			eng.SetPage(page)

			fmt.Fprintln(out, display.Home(eng))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&search, "search", "s", "", "match title or ingredient")
	f.StringVarP(&category, "category", "c", domain.CategoryAll, "all, quick, or a category/tag")
	f.BoolVar(&quickTime, "quick-time", false, "under 30 minutes")
	f.BoolVar(&easy, "easy", false, "easy recipes only")
	f.BoolVar(&vegan, "vegan", false, "vegan recipes only")
	f.IntVarP(&page, "page", "p", 1, "pages of results to show")
	f.BoolVar(&favs, "favorites", false, "list favorites instead")
	return cmd
}
