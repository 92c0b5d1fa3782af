// Command tix is a workflow assistant tying Jira tickets, local git
// branches, and GitHub/GitLab review requests together.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tix-cli/tix/ui"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "tix",
	Short: "tix - ticket-driven development workflows",
	Long: `tix automates the ceremony around ticket-driven development:
fetch a ticket, branch for it, commit against it, push, open a review
request, and move the ticket through its workflow.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("tix version %s\n", Version)
			return
		}
		_ = cmd.Help()
	},
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "print version")

	rootCmd.AddCommand(
		initCmd,
		startCmd,
		statusCmd,
		listCmd,
		searchCmd,
		commitCmd,
		doneCmd,
		openCmd,
		configCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", ui.RenderFailIcon(), remediate(err))
		os.Exit(1)
	}
}
