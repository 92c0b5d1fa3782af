package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/tix-cli/tix/config"
	"github.com/tix-cli/tix/git"
	"github.com/tix-cli/tix/pr"
	"github.com/tix-cli/tix/ui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively set up the configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := &config.Settings{
			Preferences: config.Preferences{
				BranchPrefix:      "feat",
				DefaultTransition: "In Progress",
			},
		}
		if existing, err := config.Load(); err == nil {
			// Re-running init edits the stored values in place.
			settings = existing
		}

		// Default the provider from the origin remote when run inside a
		// repository that has one.
		if settings.Git.Provider == "" {
			if repo, err := git.NewContext("."); err == nil {
				if remote, err := repo.GetRemoteURL("origin"); err == nil {
					if provider, err := pr.DetectProvider(remote); err == nil {
						settings.Git.Provider = provider
					}
				}
			}
		}

		authType := string(settings.Jira.Auth.Type)
		if authType == "" {
			authType = string(config.AuthAPIToken)
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Jira URL").
					Placeholder("https://yourcompany.atlassian.net").
					Value(&settings.Jira.URL).
					Validate(required("Jira URL")),
				huh.NewSelect[string]().
					Title("Authentication").
					Options(
						huh.NewOption("API token (Jira Cloud)", string(config.AuthAPIToken)),
						huh.NewOption("Personal access token (Server/Data Center)", string(config.AuthPAT)),
					).
					Value(&authType),
				huh.NewInput().
					Title("Email").
					Description("Required for API token auth, ignored for PAT.").
					Value(&settings.Jira.Email),
				huh.NewInput().
					Title("Jira token").
					EchoMode(huh.EchoModePassword).
					Value(&settings.Jira.Auth.Token).
					Validate(required("Jira token")),
				huh.NewInput().
					Title("Default project key").
					Placeholder("WAB").
					Value(&settings.Jira.ProjectKey),
			),
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Git provider").
					Options(
						huh.NewOption("GitHub", "github"),
						huh.NewOption("GitLab", "gitlab"),
					).
					Value(&settings.Git.Provider),
				huh.NewInput().
					Title("Provider base URL").
					Description("Leave empty for github.com / gitlab.com.").
					Value(&settings.Git.BaseURL),
				huh.NewInput().
					Title("Repository owner").
					Description("GitHub only; GitLab derives it from the origin remote.").
					Value(&settings.Git.Owner),
				huh.NewInput().
					Title("Repository name").
					Description("GitHub only.").
					Value(&settings.Git.Repo),
				huh.NewInput().
					Title("Provider token").
					EchoMode(huh.EchoModePassword).
					Value(&settings.Git.Token).
					Validate(required("provider token")),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Branch prefix").
					Value(&settings.Preferences.BranchPrefix),
				huh.NewInput().
					Title("Transition applied by 'tix start'").
					Value(&settings.Preferences.DefaultTransition),
			),
		)

		if err := form.Run(); err != nil {
			return err
		}
		settings.Jira.Auth.Type = config.AuthType(authType)

		if err := settings.Validate(); err != nil {
			return err
		}

		tracker, err := trackerFromSettings(settings)
		if err != nil {
			return err
		}
		if err := tracker.TestConnection(cmd.Context()); err != nil {
			return err
		}
		fmt.Printf("%s connected to %s\n", ui.RenderPassIcon(), ui.RenderAccent(tracker.BaseURL()))

		if err := settings.Save(); err != nil {
			return err
		}

		path, err := config.Path()
		if err != nil {
			return err
		}
		fmt.Printf("%s configuration written to %s\n", ui.RenderPassIcon(), ui.RenderAccent(path))
		return nil
	},
}

// required rejects empty form input.
func required(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
