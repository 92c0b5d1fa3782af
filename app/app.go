// Package app orchestrates the tix workflows across the issue tracker, the
// local git repository, and the review request provider.
//
// The App holds one interface per external system so commands and tests can
// swap in fakes. Workflow methods return a result struct describing what
// happened; a non-empty Warning field means the workflow succeeded but a
// trailing step (a status transition) did not.
package app

import (
	"context"

	"github.com/tix-cli/tix/config"
	"github.com/tix-cli/tix/git"
	"github.com/tix-cli/tix/jira"
	"github.com/tix-cli/tix/pr"
)

// Tracker is the issue tracker surface the workflows need.
// *jira.Client satisfies it.
type Tracker interface {
	GetTicket(ctx context.Context, key string) (*jira.Ticket, error)
	SearchJQL(ctx context.Context, jql string, limit int) ([]jira.Ticket, error)
	TransitionByName(ctx context.Context, key, transitionName string) error
	BrowseURL(key string) string
}

// Repo is the local repository surface the workflows need.
// *git.Context satisfies it.
type Repo interface {
	CurrentBranch() (string, error)
	CheckoutNew(name string) error
	IsClean() (bool, error)
	Status() (string, error)
	CommitAll(message string) (*git.CommitResult, error)
	PushCurrent() (*git.PushResult, error)
	GetRemoteURL(remote string) (string, error)
}

// App ties the configured systems together.
type App struct {
	Settings *config.Settings
	Tracker  Tracker
	Repo     Repo
	Reviews  pr.Provider
}

// New creates an App from explicit dependencies.
func New(settings *config.Settings, tracker Tracker, repo Repo, reviews pr.Provider) *App {
	return &App{
		Settings: settings,
		Tracker:  tracker,
		Repo:     repo,
		Reviews:  reviews,
	}
}

// branchPrefix returns the configured branch prefix, defaulting to "feat".
func (a *App) branchPrefix() string {
	if p := a.Settings.Preferences.BranchPrefix; p != "" {
		return p
	}
	return "feat"
}

// startTransition returns the transition applied when work starts.
func (a *App) startTransition() string {
	if t := a.Settings.Preferences.DefaultTransition; t != "" {
		return t
	}
	return "In Progress"
}
