package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tix-cli/tix/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current branch, its ticket, and the working tree",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}

		result, err := a.Status(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("%s %s\n", ui.RenderHeader("Branch:"), result.Branch)

		switch {
		case result.Ticket != nil:
			fmt.Printf("%s %s: %s [%s]\n",
				ui.RenderHeader("Ticket:"),
				ui.RenderAccent(result.Ticket.Key),
				result.Ticket.Fields.Summary,
				statusStyle(result.Ticket.Fields.Status.Name))
		case result.TicketID != "":
			fmt.Printf("%s %s %s\n",
				ui.RenderHeader("Ticket:"),
				ui.RenderAccent(result.TicketID),
				ui.RenderMuted("(tracker unreachable)"))
		default:
			fmt.Printf("%s %s\n", ui.RenderHeader("Ticket:"), ui.RenderMuted("none"))
		}

		if result.Changes == "" {
			fmt.Printf("%s %s\n", ui.RenderHeader("Tree:"), ui.RenderPass("clean"))
			return nil
		}

		fmt.Printf("%s\n", ui.RenderHeader("Changes:"))
		for _, line := range strings.Split(result.Changes, "\n") {
			fmt.Printf("  %s\n", ui.RenderWarn(line))
		}
		return nil
	},
}
