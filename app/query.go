package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/tix-cli/tix/branch"
	"github.com/tix-cli/tix/jira"
)

// StatusResult describes the current working state.
type StatusResult struct {
	Branch   string       // Current branch
	TicketID string       // Decoded ticket key, empty when the branch carries none
	Ticket   *jira.Ticket // Fetched ticket, nil when unavailable
	Changes  string       // Porcelain status output, empty when clean
}

// Status reports the current branch, its ticket, and the working tree state.
// Tracker failures degrade to a nil Ticket so status still works offline.
func (a *App) Status(ctx context.Context) (*StatusResult, error) {
	current, err := a.Repo.CurrentBranch()
	if err != nil {
		return nil, fmt.Errorf("get current branch: %w", err)
	}

	changes, err := a.Repo.Status()
	if err != nil {
		return nil, err
	}

	result := &StatusResult{
		Branch:  current,
		Changes: changes,
	}

	if ticketID, err := branch.TicketID(current); err == nil {
		result.TicketID = ticketID
		if ticket, err := a.Tracker.GetTicket(ctx, ticketID); err == nil {
			result.Ticket = ticket
		}
	}

	return result, nil
}

// ListOptions filters the assigned-ticket listing.
type ListOptions struct {
	Project string // Project key (defaults to the configured one)
	Status  string // Status name filter
	Limit   int    // Maximum results (0 = tracker default)
}

// List returns the tickets assigned to the current user.
func (a *App) List(ctx context.Context, opts ListOptions) ([]jira.Ticket, error) {
	project := opts.Project
	if project == "" {
		project = a.Settings.Jira.ProjectKey
	}

	clauses := []string{"assignee = currentUser()"}
	if project != "" {
		clauses = append(clauses, fmt.Sprintf("project = %s", project))
	}
	if opts.Status != "" {
		clauses = append(clauses, fmt.Sprintf("status = %q", opts.Status))
	}

	jql := strings.Join(clauses, " AND ") + " ORDER BY updated DESC"
	return a.Tracker.SearchJQL(ctx, jql, opts.Limit)
}

// SearchOptions filters a free-text ticket search.
type SearchOptions struct {
	Query    string // Free text matched against summary and description
	Project  string // Project key (defaults to the configured one)
	Status   string // Status name filter
	Assignee string // Assignee; "me" means the current user
	Limit    int    // Maximum results (0 = 10)
}

// Search runs a free-text JQL search against summary and description.
func (a *App) Search(ctx context.Context, opts SearchOptions) ([]jira.Ticket, error) {
	project := opts.Project
	if project == "" {
		project = a.Settings.Jira.ProjectKey
	}

	var clauses []string
	if opts.Query != "" {
		clauses = append(clauses, fmt.Sprintf("(summary ~ %q OR description ~ %q)", opts.Query, opts.Query))
	}
	if project != "" {
		clauses = append(clauses, fmt.Sprintf("project = %s", project))
	}
	if opts.Status != "" {
		clauses = append(clauses, fmt.Sprintf("status = %q", opts.Status))
	}
	switch opts.Assignee {
	case "":
	case "me":
		clauses = append(clauses, "assignee = currentUser()")
	default:
		clauses = append(clauses, fmt.Sprintf("assignee = %q", opts.Assignee))
	}
	if len(clauses) == 0 {
		return nil, fmt.Errorf("search needs a query or at least one filter")
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = 10
	}

	jql := strings.Join(clauses, " AND ") + " ORDER BY updated DESC"
	return a.Tracker.SearchJQL(ctx, jql, limit)
}

// OpenTarget selects what OpenURL resolves.
type OpenTarget int

const (
	// OpenTicket resolves the current branch's ticket page.
	OpenTicket OpenTarget = iota
	// OpenBoard resolves the project board.
	OpenBoard
	// OpenReview resolves the open review request for the current branch.
	OpenReview
)

// OpenURL returns the web URL for the requested target. For OpenTicket a
// non-empty ticketID wins over the current branch's ticket.
func (a *App) OpenURL(ctx context.Context, target OpenTarget, ticketID string) (string, error) {
	switch target {
	case OpenBoard:
		return fmt.Sprintf("%s/jira/software/projects/%s/boards",
			strings.TrimSuffix(a.Settings.Jira.URL, "/"), a.Settings.Jira.ProjectKey), nil

	case OpenReview:
		current, err := a.Repo.CurrentBranch()
		if err != nil {
			return "", fmt.Errorf("get current branch: %w", err)
		}
		review, err := a.Reviews.FindForBranch(ctx, current)
		if err != nil {
			return "", err
		}
		return review.URL, nil

	default:
		if ticketID != "" {
			return a.Tracker.BrowseURL(ticketID), nil
		}
		current, err := a.Repo.CurrentBranch()
		if err != nil {
			return "", fmt.Errorf("get current branch: %w", err)
		}
		id, err := branch.TicketID(current)
		if err != nil {
			return "", err
		}
		return a.Tracker.BrowseURL(id), nil
	}
}
