package main

import (
	"errors"

	"github.com/tix-cli/tix/branch"
	"github.com/tix-cli/tix/clierr"
	"github.com/tix-cli/tix/config"
	"github.com/tix-cli/tix/git"
	"github.com/tix-cli/tix/jira"
	"github.com/tix-cli/tix/pr"
)

// remediate turns domain errors into CLIErrors carrying a suggestion.
// Errors without a known remediation pass through unchanged.
func remediate(err error) error {
	switch {
	case errors.Is(err, config.ErrNotFound):
		return clierr.New(err,
			"No configuration found.",
			"Run 'tix init' to set up your Jira and git provider credentials.")

	case errors.Is(err, config.ErrInvalid):
		return clierr.WithDetails(err,
			"Configuration is invalid.",
			err.Error(),
			"Run 'tix config validate' to see what is wrong, then fix it with 'tix config set'.")

	case errors.Is(err, jira.ErrTicketNotFound):
		return clierr.WithDetails(err,
			"Ticket not found.",
			err.Error(),
			"Check the ticket key and that your account can see the project.")

	case errors.Is(err, jira.ErrTransitionNotFound):
		return clierr.WithDetails(err,
			"The requested status transition is not available.",
			err.Error(),
			"Move the ticket manually in Jira, or set preferences.default_transition to a transition your workflow has.")

	case errors.Is(err, jira.ErrAuthFailed):
		return clierr.New(err,
			"Authentication with Jira failed.",
			"Your token may have expired. Update it with 'tix config set jira.token <token>'.")

	case errors.Is(err, git.ErrNotGitRepo):
		return clierr.New(err,
			"Not inside a git repository.",
			"Run tix from the root of the repository you are working in.")

	case errors.Is(err, git.ErrDetachedHead):
		return clierr.New(err,
			"HEAD is detached.",
			"Switch to a branch first: git switch <branch>.")

	case errors.Is(err, git.ErrGitDirty):
		return clierr.New(err,
			"The working tree has uncommitted changes.",
			"Commit them with 'tix commit \"message\"' (or stash them) before finishing.")

	case errors.Is(err, git.ErrBranchExists):
		return clierr.New(err,
			"A branch for this ticket already exists.",
			"Switch to it with git switch, or delete it if it is stale.")

	case errors.Is(err, git.ErrNothingToCommit):
		return clierr.New(err,
			"Nothing to commit.",
			"The working tree is clean.")

	case errors.Is(err, git.ErrPushFailed):
		return clierr.WithDetails(err,
			"Pushing the branch failed.",
			err.Error(),
			"Check that the origin remote is reachable and that you have push access.")

	case errors.Is(err, branch.ErrNoTicket):
		return clierr.WithDetails(err,
			"The current branch does not carry a ticket key.",
			err.Error(),
			"Start ticket work with 'tix start <ticket-id>', which names the branch for you.")

	case errors.Is(err, pr.ErrExists):
		return clierr.New(err,
			"A review request already exists for this branch.",
			"Open it with 'tix open --pr'.")

	case errors.Is(err, pr.ErrNoChanges):
		return clierr.New(err,
			"The branch has no commits beyond the base branch.",
			"Commit your work with 'tix commit \"message\"' before finishing.")

	case errors.Is(err, pr.ErrUnknownProvider):
		return clierr.WithDetails(err,
			"The git provider is not supported.",
			err.Error(),
			"Set git.provider to github or gitlab with 'tix config set'.")

	case clierr.IsAuthFailure(err):
		return clierr.WithDetails(err,
			"Authentication failed.",
			err.Error(),
			"Check the tokens stored in 'tix config show'.")

	case clierr.IsNetworkFailure(err):
		return clierr.WithDetails(err,
			"Could not reach the server.",
			err.Error(),
			"Check your network connection and the configured URLs.")
	}

	return err
}
