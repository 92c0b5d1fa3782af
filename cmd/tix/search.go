package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/tix-cli/tix/app"
	"github.com/tix-cli/tix/jira"
	"github.com/tix-cli/tix/ui"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search tickets by free text",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}

		query := ""
		if len(args) == 1 {
			query = args[0]
		}

		status, _ := cmd.Flags().GetString("status")
		project, _ := cmd.Flags().GetString("project")
		assignee, _ := cmd.Flags().GetString("assignee")
		limit, _ := cmd.Flags().GetInt("limit")
		interactive, _ := cmd.Flags().GetBool("interactive")
		asJSON, _ := cmd.Flags().GetBool("json")

		tickets, err := a.Search(cmd.Context(), app.SearchOptions{
			Query:    query,
			Project:  project,
			Status:   status,
			Assignee: assignee,
			Limit:    limit,
		})
		if err != nil {
			return err
		}

		if !interactive {
			return printTickets(tickets, asJSON)
		}

		if len(tickets) == 0 {
			fmt.Println(ui.RenderMuted("No tickets found."))
			return nil
		}

		key, err := pickTicket(tickets)
		if err != nil {
			return err
		}

		result, err := a.StartWork(cmd.Context(), key)
		if err != nil {
			return err
		}
		if result.Existing {
			fmt.Printf("%s Already on %s\n", ui.RenderPassIcon(), ui.RenderAccent(result.Branch))
			return nil
		}
		fmt.Printf("%s switched to new branch %s\n", ui.RenderPassIcon(), ui.RenderAccent(result.Branch))
		printWarning(result.Warning)
		return nil
	},
}

// pickTicket prompts for one ticket out of the search results.
func pickTicket(tickets []jira.Ticket) (string, error) {
	options := make([]huh.Option[string], len(tickets))
	for i, t := range tickets {
		label := fmt.Sprintf("%s  %s [%s]", t.Key, t.Fields.Summary, t.Fields.Status.Name)
		options[i] = huh.NewOption(label, t.Key)
	}

	var key string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Start work on which ticket?").
				Options(options...).
				Value(&key),
		),
	)
	if err := form.Run(); err != nil {
		return "", err
	}
	return key, nil
}

func init() {
	searchCmd.Flags().String("status", "", "filter by status name")
	searchCmd.Flags().String("project", "", "project key (defaults to the configured one)")
	searchCmd.Flags().String("assignee", "", "filter by assignee (use \"me\" for yourself)")
	searchCmd.Flags().Int("limit", 10, "maximum number of results")
	searchCmd.Flags().BoolP("interactive", "i", false, "pick a result and start work on it")
	searchCmd.Flags().Bool("json", false, "output as JSON")
}
