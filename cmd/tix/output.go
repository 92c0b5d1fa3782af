package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tix-cli/tix/jira"
	"github.com/tix-cli/tix/ui"
)

// printWarning prints a downgraded tail-step failure, if any.
func printWarning(warning string) {
	if warning != "" {
		fmt.Fprintf(os.Stderr, "%s %s\n", ui.RenderWarnIcon(), ui.RenderWarn(warning))
	}
}

// statusStyle colors a ticket status by its common workflow meaning.
func statusStyle(name string) string {
	switch strings.ToLower(name) {
	case "done", "closed", "resolved":
		return ui.RenderPass(name)
	case "in progress", "in review":
		return ui.RenderWarn(name)
	default:
		return ui.RenderMuted(name)
	}
}

// printTickets renders a ticket listing, as a table or as JSON.
func printTickets(tickets []jira.Ticket, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(tickets)
	}

	if len(tickets) == 0 {
		fmt.Println(ui.RenderMuted("No tickets found."))
		return nil
	}

	for _, t := range tickets {
		assignee := ""
		if t.Fields.Assignee != nil {
			assignee = ui.RenderMuted(" (" + t.Fields.Assignee.DisplayName + ")")
		}
		fmt.Printf("%s  %-14s %s%s\n",
			ui.RenderAccent(t.Key),
			statusStyle(t.Fields.Status.Name),
			t.Fields.Summary,
			assignee)
	}
	return nil
}
