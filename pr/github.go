package pr

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// GitHubProvider implements Provider for GitHub repositories.
type GitHubProvider struct {
	client *github.Client
	owner  string
	repo   string
}

// NewGitHubProvider creates a new GitHub provider.
// token is a personal access token. baseURL points at a GitHub Enterprise
// instance; leave it empty (or the public API URL) for github.com.
func NewGitHubProvider(token, owner, repo, baseURL string) (*GitHubProvider, error) {
	if token == "" {
		return nil, fmt.Errorf("GitHub token is required")
	}
	if owner == "" || repo == "" {
		return nil, fmt.Errorf("owner and repo are required")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)
	client := github.NewClient(tc)

	if baseURL != "" && baseURL != "https://api.github.com" {
		var err error
		client, err = client.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return nil, fmt.Errorf("configure enterprise URL: %w", err)
		}
	}

	return &GitHubProvider{
		client: client,
		owner:  owner,
		repo:   repo,
	}, nil
}

// CreateReviewRequest opens a pull request.
func (p *GitHubProvider) CreateReviewRequest(ctx context.Context, opts Options) (*ReviewRequest, error) {
	base := opts.Base
	if base == "" {
		base = "main"
	}

	newPR := &github.NewPullRequest{
		Title: github.String(opts.Title),
		Body:  github.String(opts.Body),
		Base:  github.String(base),
		Head:  github.String(opts.Head),
		Draft: github.Bool(opts.Draft),
	}

	created, resp, err := p.client.PullRequests.Create(ctx, p.owner, p.repo, newPR)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnprocessableEntity {
			if strings.Contains(err.Error(), "A pull request already exists") {
				return nil, ErrExists
			}
			if strings.Contains(err.Error(), "No commits between") {
				return nil, ErrNoChanges
			}
		}
		return nil, fmt.Errorf("%w: %v", ErrCreateFailed, err)
	}

	return reviewRequestFromGitHub(created), nil
}

// FindForBranch returns the open pull request whose head is the branch.
func (p *GitHubProvider) FindForBranch(ctx context.Context, branch string) (*ReviewRequest, error) {
	prs, _, err := p.client.PullRequests.List(ctx, p.owner, p.repo, &github.PullRequestListOptions{
		State: "open",
		Head:  p.owner + ":" + branch,
	})
	if err != nil {
		return nil, fmt.Errorf("list pull requests: %w", err)
	}
	if len(prs) == 0 {
		return nil, fmt.Errorf("%w: branch %s", ErrNotFound, branch)
	}
	return reviewRequestFromGitHub(prs[0]), nil
}

// reviewRequestFromGitHub converts a GitHub PR to our ReviewRequest type.
func reviewRequestFromGitHub(p *github.PullRequest) *ReviewRequest {
	rr := &ReviewRequest{
		ID:    p.GetNumber(),
		URL:   p.GetHTMLURL(),
		Title: p.GetTitle(),
	}

	switch p.GetState() {
	case "open":
		rr.State = StateOpen
	case "closed":
		if p.GetMerged() {
			rr.State = StateMerged
		} else {
			rr.State = StateClosed
		}
	}

	if p.Head != nil {
		rr.Head = p.Head.GetRef()
	}
	if p.Base != nil {
		rr.Base = p.Base.GetRef()
	}
	if p.CreatedAt != nil {
		rr.CreatedAt = p.CreatedAt.Time
	}

	return rr
}
