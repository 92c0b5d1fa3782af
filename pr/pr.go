package pr

import (
	"context"
	"fmt"
	"time"
)

// State represents the state of a review request.
type State string

const (
	StateOpen   State = "open"
	StateClosed State = "closed"
	StateMerged State = "merged"
)

// Provider is the interface for creating review requests.
// Implementations exist for GitHub and GitLab.
type Provider interface {
	// CreateReviewRequest opens a new review request.
	CreateReviewRequest(ctx context.Context, opts Options) (*ReviewRequest, error)

	// FindForBranch returns the open review request whose source branch
	// matches, or ErrNotFound if none exists.
	FindForBranch(ctx context.Context, branch string) (*ReviewRequest, error)
}

// Options configures review request creation.
type Options struct {
	Title string // Title (required)
	Body  string // Description (markdown)
	Base  string // Target branch (default: "main")
	Head  string // Source branch (required)
	Draft bool   // Create as draft
}

// ReviewRequest represents a created review request.
type ReviewRequest struct {
	ID        int       // PR number / MR IID
	URL       string    // Web URL
	Title     string    // Title
	State     State     // Current state
	Head      string    // Source branch
	Base      string    // Target branch
	CreatedAt time.Time // Creation time
}

// Config identifies the provider and repository for New.
type Config struct {
	Provider string // "github" or "gitlab"
	BaseURL  string // API base URL (empty for the hosted service)
	Token    string // Access token
	Owner    string // Repository owner or namespace
	Repo     string // Repository name
}

// New creates a provider from stored configuration.
func New(cfg Config) (Provider, error) {
	switch cfg.Provider {
	case "github":
		return NewGitHubProvider(cfg.Token, cfg.Owner, cfg.Repo, cfg.BaseURL)
	case "gitlab":
		return NewGitLabProvider(cfg.Token, cfg.BaseURL, cfg.Owner+"/"+cfg.Repo)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
