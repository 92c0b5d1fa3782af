package main

import (
	"github.com/spf13/cobra"

	"github.com/tix-cli/tix/app"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tickets assigned to you",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}

		status, _ := cmd.Flags().GetString("status")
		project, _ := cmd.Flags().GetString("project")
		limit, _ := cmd.Flags().GetInt("limit")
		asJSON, _ := cmd.Flags().GetBool("json")

		tickets, err := a.List(cmd.Context(), app.ListOptions{
			Project: project,
			Status:  status,
			Limit:   limit,
		})
		if err != nil {
			return err
		}

		return printTickets(tickets, asJSON)
	},
}

func init() {
	listCmd.Flags().String("status", "", "filter by status name")
	listCmd.Flags().String("project", "", "project key (defaults to the configured one)")
	listCmd.Flags().Int("limit", 0, "maximum number of results")
	listCmd.Flags().Bool("json", false, "output as JSON")
}
