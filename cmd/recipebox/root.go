package main

import (
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. Each call returns fresh commands so
// tests can run them in isolation.
func newRootCmd() *cobra.Command {
	opts := &options{}
	var a *app

	root := &cobra.Command{
		Use:   "recipebox",
		Short: "Browse recipes, scale servings, and build a shopping list",
		Long: `recipebox is a terminal recipe browser.

Run without arguments to open the interactive browser. The subcommands
expose the same state (favorites, servings, shopping list) for scripting.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a, err = newApp(opts)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a == nil {
				return nil
			}
			return a.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, a)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file (default .recipebox/config.yaml)")
	pf.BoolVar(&opts.verbose, "verbose", false, "enable verbose/debug logging")
	pf.BoolVar(&opts.quiet, "quiet", false, "disable all logging")
	pf.StringVar(&opts.logFile, "log-file", "", "file to write logs to (use \"stderr\" to log to console)")

	appFn := func() *app { return a }
	root.AddCommand(
		newBrowseCmd(appFn),
		newListCmd(appFn),
		newShowCmd(appFn),
		newFavCmd(appFn),
		newShopCmd(appFn),
	)
	return root
}
