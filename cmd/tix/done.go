package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tix-cli/tix/ui"
)

var doneCmd = &cobra.Command{
	Use:   "done",
	Short: "Push the branch, open a review request, and mark the ticket in review",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}

		result, err := a.FinishWork(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("%s Pushed %s\n", ui.RenderPassIcon(), ui.RenderAccent(result.Branch))
		fmt.Printf("%s Review request: %s\n", ui.RenderPassIcon(), ui.RenderAccent(result.ReviewURL))
		printWarning(result.Warning)
		return nil
	},
}
