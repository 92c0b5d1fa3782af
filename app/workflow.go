package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/tix-cli/tix/branch"
	"github.com/tix-cli/tix/git"
	"github.com/tix-cli/tix/pr"
)

// StartResult describes what StartWork did.
type StartResult struct {
	TicketID string // Ticket key
	Summary  string // Ticket summary (empty when short-circuited)
	Branch   string // Branch now checked out
	Existing bool   // True when already on a branch for the ticket
	Warning  string // Non-fatal transition failure, empty on full success
}

// StartWork fetches the ticket, creates and switches to its work branch,
// and moves the ticket to the configured start transition.
//
// When the current branch already names the ticket the call succeeds
// without touching the tracker or creating anything. The check is best
// effort: an unretrievable branch (detached HEAD, unborn branch) skips it.
// The transition is likewise best effort: its failure is reported in
// StartResult.Warning, not as an error.
func (a *App) StartWork(ctx context.Context, ticketID string) (*StartResult, error) {
	if current, err := a.Repo.CurrentBranch(); err == nil && branchNamesTicket(current, ticketID) {
		return &StartResult{
			TicketID: ticketID,
			Branch:   current,
			Existing: true,
		}, nil
	}

	ticket, err := a.Tracker.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	name := branch.Format(a.branchPrefix(), ticket.Key, ticket.Fields.Summary)
	if err := a.Repo.CheckoutNew(name); err != nil {
		return nil, err
	}

	result := &StartResult{
		TicketID: ticket.Key,
		Summary:  ticket.Fields.Summary,
		Branch:   name,
	}

	if err := a.Tracker.TransitionByName(ctx, ticket.Key, a.startTransition()); err != nil {
		result.Warning = fmt.Sprintf("branch created, but moving %s to %q failed: %v",
			ticket.Key, a.startTransition(), err)
	}

	return result, nil
}

// branchNamesTicket reports whether the branch already refers to the
// ticket. Ticket keys compare case-insensitively.
func branchNamesTicket(branchName, ticketID string) bool {
	if id, err := branch.TicketID(branchName); err == nil && strings.EqualFold(id, ticketID) {
		return true
	}
	return strings.Contains(strings.ToUpper(branchName), strings.ToUpper(ticketID))
}

// FinishResult describes what FinishWork did.
type FinishResult struct {
	TicketID  string // Ticket key decoded from the branch
	Summary   string // Ticket summary
	Branch    string // Branch that was pushed
	ReviewURL string // Web URL of the created review request
	Warning   string // Non-fatal transition failure, empty on full success
}

// reviewTransition is the status applied after a review request is opened.
const reviewTransition = "In Review"

// reviewBase is the target branch for review requests.
const reviewBase = "main"

// FinishWork pushes the current branch, opens a review request for it, and
// moves the ticket to "In Review".
//
// The working tree must be clean and the current branch must carry a ticket
// key. As with StartWork, the closing transition is best effort.
func (a *App) FinishWork(ctx context.Context) (*FinishResult, error) {
	clean, err := a.Repo.IsClean()
	if err != nil {
		return nil, fmt.Errorf("check working tree: %w", err)
	}
	if !clean {
		return nil, git.ErrGitDirty
	}

	current, err := a.Repo.CurrentBranch()
	if err != nil {
		return nil, fmt.Errorf("get current branch: %w", err)
	}

	ticketID, err := branch.TicketID(current)
	if err != nil {
		return nil, err
	}

	if _, err := a.Repo.PushCurrent(); err != nil {
		return nil, err
	}

	ticket, err := a.Tracker.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	review, err := a.Reviews.CreateReviewRequest(ctx, a.reviewOptions(ticket.Key, ticket.Fields.Summary, current))
	if err != nil {
		return nil, err
	}

	result := &FinishResult{
		TicketID:  ticket.Key,
		Summary:   ticket.Fields.Summary,
		Branch:    current,
		ReviewURL: review.URL,
	}

	if err := a.Tracker.TransitionByName(ctx, ticket.Key, reviewTransition); err != nil {
		result.Warning = fmt.Sprintf("review request opened, but moving %s to %q failed: %v",
			ticket.Key, reviewTransition, err)
	}

	return result, nil
}

// reviewOptions builds the review request for a finished ticket.
func (a *App) reviewOptions(ticketID, summary, head string) pr.Options {
	return pr.Options{
		Title: fmt.Sprintf("%s: %s", ticketID, summary),
		Body:  fmt.Sprintf("Resolves %s\n\nJira: %s", ticketID, a.Tracker.BrowseURL(ticketID)),
		Base:  reviewBase,
		Head:  head,
	}
}

// CommitWork stages everything and commits with the message, appending a
// ticket trailer when the current branch carries a ticket key.
func (a *App) CommitWork(ctx context.Context, message string) (*git.CommitResult, error) {
	current, err := a.Repo.CurrentBranch()
	if err != nil {
		return nil, fmt.Errorf("get current branch: %w", err)
	}

	if ticketID, err := branch.TicketID(current); err == nil {
		message = fmt.Sprintf("%s\n\n%s: %s", message, ticketID, a.Tracker.BrowseURL(ticketID))
	}

	return a.Repo.CommitAll(message)
}
