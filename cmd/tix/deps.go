package main

import (
	"fmt"
	"strings"

	"github.com/tix-cli/tix/app"
	"github.com/tix-cli/tix/config"
	"github.com/tix-cli/tix/git"
	"github.com/tix-cli/tix/jira"
	"github.com/tix-cli/tix/pr"
)

// loadSettings loads and validates the stored configuration.
func loadSettings() (*config.Settings, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// trackerFromSettings builds the Jira client.
func trackerFromSettings(settings *config.Settings) (*jira.Client, error) {
	return jira.NewClient(jira.Config{
		URL:      settings.Jira.URL,
		Email:    settings.Jira.Email,
		AuthType: jira.AuthType(settings.Jira.Auth.Type),
		Token:    settings.Jira.Auth.Token,
	})
}

// reviewsFromSettings builds the review request provider. For GitLab the
// project path comes from the origin remote rather than the config file.
func reviewsFromSettings(settings *config.Settings, repo *git.Context) (pr.Provider, error) {
	owner, name := settings.Git.Owner, settings.Git.Repo

	if strings.EqualFold(settings.Git.Provider, "gitlab") && (owner == "" || name == "") {
		remoteURL, err := repo.GetRemoteURL("origin")
		if err != nil {
			return nil, fmt.Errorf("resolve origin remote: %w", err)
		}
		owner, name, err = pr.ParseRepoFromURL(remoteURL)
		if err != nil {
			return nil, fmt.Errorf("parse origin remote: %w", err)
		}
	}

	return pr.New(pr.Config{
		Provider: strings.ToLower(settings.Git.Provider),
		BaseURL:  settings.Git.BaseURL,
		Token:    settings.Git.Token,
		Owner:    owner,
		Repo:     name,
	})
}

// buildApp wires the full application for commands that need every system.
func buildApp() (*app.App, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, err
	}

	tracker, err := trackerFromSettings(settings)
	if err != nil {
		return nil, err
	}

	repo, err := git.NewContext(".")
	if err != nil {
		return nil, err
	}

	reviews, err := reviewsFromSettings(settings, repo)
	if err != nil {
		return nil, err
	}

	return app.New(settings, tracker, repo, reviews), nil
}
