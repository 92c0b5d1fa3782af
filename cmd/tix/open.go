package main

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/tix-cli/tix/app"
	"github.com/tix-cli/tix/ui"
)

var openCmd = &cobra.Command{
	Use:   "open [ticket-id]",
	Short: "Open a ticket, the board, or the review request in a browser",
	Long: `Open the given ticket in a browser. Without an argument the ticket
is taken from the current branch; --board and --pr open the project board
or the branch's review request instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}

		ticketID := ""
		if len(args) == 1 {
			ticketID = args[0]
		}

		target := app.OpenTicket
		if b, _ := cmd.Flags().GetBool("board"); b {
			target = app.OpenBoard
		}
		if p, _ := cmd.Flags().GetBool("pr"); p {
			target = app.OpenReview
		}

		url, err := a.OpenURL(cmd.Context(), target, ticketID)
		if err != nil {
			return err
		}

		fmt.Printf("%s %s\n", ui.RenderPassIcon(), ui.RenderAccent(url))
		openBrowser(url)
		return nil
	},
}

// openBrowser launches the platform browser. Failures are ignored since
// the URL is already printed.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}

func init() {
	openCmd.Flags().Bool("board", false, "open the project board instead of the ticket")
	openCmd.Flags().Bool("pr", false, "open the review request for the current branch")
}
