package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/recipebox/internal/conversation"
	"github.com/hammamikhairi/recipebox/internal/display"
	"github.com/hammamikhairi/recipebox/internal/engine"
)

func newBrowseCmd(appFn func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive browser (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, appFn())
		},
	}
}

// runBrowse wires the engine to the Bubble Tea UI. The engine's debounced
// search and notifications are routed through the UI so every state change
// runs on its event loop.
func runBrowse(cmd *cobra.Command, a *app) error {
	ctx := cmd.Context()
	log := a.log.Named("ui")

	ui := display.NewUI(conversation.NewCommandParser(log), log)
	eng, err := a.engine(ctx,
		engine.WithDispatch(ui.Dispatch),
		engine.WithNotifier(conversation.NewCLINotifier(log, ui.Queue)),
	)
	if err != nil {
		return err
	}
	defer eng.Close()

	fmt.Fprintln(cmd.OutOrStdout(), display.RenderBanner(len(eng.Recipes())))
	return ui.Run(ctx, eng)
}
