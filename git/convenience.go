package git

import (
	"fmt"
	"time"
)

// CommitResult contains the result of a commit operation.
type CommitResult struct {
	SHA     string    // Full commit SHA
	Branch  string    // Branch name
	Message string    // Commit message
	Date    time.Time // Commit timestamp
}

// PushResult contains the result of a push operation.
type PushResult struct {
	Remote      string // Remote name (e.g., "origin")
	Branch      string // Branch that was pushed
	SHA         string // Commit SHA that was pushed
	SetUpstream bool   // Whether upstream tracking was set
	URL         string // Remote URL (for reference)
}

// CommitAll stages all changes and commits with the given message.
// Returns ErrNothingToCommit if there are no changes to commit.
func (g *Context) CommitAll(message string) (*CommitResult, error) {
	if err := g.StageAll(); err != nil {
		return nil, fmt.Errorf("stage all: %w", err)
	}

	if err := g.Commit(message); err != nil {
		return nil, err
	}

	sha, err := g.HeadCommit()
	if err != nil {
		return nil, fmt.Errorf("get head: %w", err)
	}

	branch, err := g.CurrentBranch()
	if err != nil {
		return nil, fmt.Errorf("get branch: %w", err)
	}

	return &CommitResult{
		SHA:     sha,
		Branch:  branch,
		Message: message,
		Date:    time.Now(),
	}, nil
}

// PushCurrent pushes the current branch to origin.
// Sets upstream tracking if the branch hasn't been pushed before.
func (g *Context) PushCurrent() (*PushResult, error) {
	return g.PushCurrentTo("origin")
}

// PushCurrentTo pushes the current branch to the specified remote.
func (g *Context) PushCurrentTo(remote string) (*PushResult, error) {
	branch, err := g.CurrentBranch()
	if err != nil {
		return nil, fmt.Errorf("get current branch: %w", err)
	}

	setUpstream := !g.IsBranchPushed(branch)

	if err := g.Push(remote, branch, setUpstream); err != nil {
		return nil, err
	}

	sha, err := g.HeadCommit()
	if err != nil {
		return nil, fmt.Errorf("get head: %w", err)
	}

	url, _ := g.GetRemoteURL(remote) // URL is informational only

	return &PushResult{
		Remote:      remote,
		Branch:      branch,
		SHA:         sha,
		SetUpstream: setUpstream,
		URL:         url,
	}, nil
}

// CheckoutNew creates and checks out a new branch at the current HEAD.
func (g *Context) CheckoutNew(name string) error {
	if err := g.CreateBranch(name); err != nil {
		return err
	}
	return g.Checkout(name)
}
