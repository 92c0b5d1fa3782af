package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tix-cli/tix/config"
	"github.com/tix-cli/tix/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit the stored configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the configuration with tokens masked",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load()
		if err != nil {
			return err
		}

		fmt.Println(ui.RenderHeader("[jira]"))
		fmt.Printf("  url                = %s\n", settings.Jira.URL)
		fmt.Printf("  email              = %s\n", settings.Jira.Email)
		fmt.Printf("  project_key        = %s\n", settings.Jira.ProjectKey)
		fmt.Printf("  auth.type          = %s\n", settings.Jira.Auth.Type)
		fmt.Printf("  auth.token         = %s\n", config.MaskToken(settings.Jira.Auth.Token))

		fmt.Println(ui.RenderHeader("[git]"))
		fmt.Printf("  provider           = %s\n", settings.Git.Provider)
		fmt.Printf("  base_url           = %s\n", settings.Git.BaseURL)
		fmt.Printf("  token              = %s\n", config.MaskToken(settings.Git.Token))
		fmt.Printf("  owner              = %s\n", settings.Git.Owner)
		fmt.Printf("  repo               = %s\n", settings.Git.Repo)

		fmt.Println(ui.RenderHeader("[preferences]"))
		fmt.Printf("  branch_prefix      = %s\n", settings.Preferences.BranchPrefix)
		fmt.Printf("  default_transition = %s\n", settings.Preferences.DefaultTransition)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <section.key> <value>",
	Short: "Update a single configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load()
		if err != nil {
			return err
		}

		if err := settings.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := settings.Save(); err != nil {
			return err
		}

		fmt.Printf("%s %s updated\n", ui.RenderPassIcon(), ui.RenderAccent(args[0]))
		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration and probe the tracker connection",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load()
		if err != nil {
			return err
		}
		if err := settings.Validate(); err != nil {
			return err
		}
		fmt.Printf("%s settings are well formed\n", ui.RenderPassIcon())

		tracker, err := trackerFromSettings(settings)
		if err != nil {
			return err
		}
		if err := tracker.TestConnection(cmd.Context()); err != nil {
			return err
		}
		fmt.Printf("%s tracker connection OK (%s)\n", ui.RenderPassIcon(), settings.Jira.URL)

		// Validate() already rejects an empty git token; report it so the
		// user sees which credential would be used.
		fmt.Printf("%s git token present (%s)\n", ui.RenderPassIcon(), config.MaskToken(settings.Git.Token))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Path()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd, configValidateCmd, configPathCmd)
}
