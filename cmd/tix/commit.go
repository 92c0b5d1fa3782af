package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tix-cli/tix/ui"
)

var commitCmd = &cobra.Command{
	Use:   "commit <message>",
	Short: "Stage everything and commit with a ticket trailer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}

		result, err := a.CommitWork(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		short := result.SHA
		if len(short) > 8 {
			short = short[:8]
		}
		fmt.Printf("%s %s committed on %s\n",
			ui.RenderPassIcon(), ui.RenderAccent(short), ui.RenderAccent(result.Branch))
		return nil
	},
}
