package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tix-cli/tix/ui"
)

var startCmd = &cobra.Command{
	Use:   "start <ticket-id>",
	Short: "Fetch a ticket, branch for it, and mark it in progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}

		result, err := a.StartWork(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if result.Existing {
			fmt.Printf("%s Already on %s\n", ui.RenderPassIcon(), ui.RenderAccent(result.Branch))
			return nil
		}

		fmt.Printf("%s %s: %s\n", ui.RenderPassIcon(), ui.RenderAccent(result.TicketID), result.Summary)
		fmt.Printf("  switched to new branch %s\n", ui.RenderAccent(result.Branch))
		printWarning(result.Warning)
		return nil
	},
}
