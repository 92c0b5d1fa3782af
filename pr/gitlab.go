package pr

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/xanzy/go-gitlab"
)

// GitLabProvider implements Provider for GitLab repositories.
type GitLabProvider struct {
	client    *gitlab.Client
	projectID string // Numeric ID or "namespace/project"
}

// NewGitLabProvider creates a new GitLab provider.
// token is a personal access token. baseURL is the GitLab instance URL
// (empty for gitlab.com). projectID can be a numeric ID or a
// "namespace/project" path.
func NewGitLabProvider(token, baseURL, projectID string) (*GitLabProvider, error) {
	if token == "" {
		return nil, fmt.Errorf("GitLab token is required")
	}
	if projectID == "" || projectID == "/" {
		return nil, fmt.Errorf("project ID is required")
	}

	var client *gitlab.Client
	var err error

	if baseURL != "" {
		client, err = gitlab.NewClient(token, gitlab.WithBaseURL(baseURL))
	} else {
		client, err = gitlab.NewClient(token)
	}
	if err != nil {
		return nil, fmt.Errorf("create GitLab client: %w", err)
	}

	return &GitLabProvider{
		client:    client,
		projectID: projectID,
	}, nil
}

// CreateReviewRequest opens a merge request.
func (p *GitLabProvider) CreateReviewRequest(ctx context.Context, opts Options) (*ReviewRequest, error) {
	targetBranch := opts.Base
	if targetBranch == "" {
		targetBranch = "main"
	}

	title := opts.Title
	// The draft convention on GitLab is a title prefix.
	if opts.Draft {
		title = "Draft: " + title
	}

	mrOpts := &gitlab.CreateMergeRequestOptions{
		Title:        gitlab.Ptr(title),
		Description:  gitlab.Ptr(opts.Body),
		SourceBranch: gitlab.Ptr(opts.Head),
		TargetBranch: gitlab.Ptr(targetBranch),
	}

	mr, resp, err := p.client.MergeRequests.CreateMergeRequest(p.projectID, mrOpts, gitlab.WithContext(ctx))
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusConflict {
			return nil, ErrExists
		}
		if resp != nil && resp.StatusCode == http.StatusBadRequest &&
			strings.Contains(err.Error(), "No commits between") {
			return nil, ErrNoChanges
		}
		return nil, fmt.Errorf("%w: %v", ErrCreateFailed, err)
	}

	return reviewRequestFromGitLab(mr), nil
}

// FindForBranch returns the open merge request whose source branch matches.
func (p *GitLabProvider) FindForBranch(ctx context.Context, branch string) (*ReviewRequest, error) {
	mrs, _, err := p.client.MergeRequests.ListProjectMergeRequests(p.projectID,
		&gitlab.ListProjectMergeRequestsOptions{
			State:        gitlab.Ptr("opened"),
			SourceBranch: gitlab.Ptr(branch),
		}, gitlab.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("list merge requests: %w", err)
	}
	if len(mrs) == 0 {
		return nil, fmt.Errorf("%w: branch %s", ErrNotFound, branch)
	}
	return reviewRequestFromGitLab(mrs[0]), nil
}

// reviewRequestFromGitLab converts a GitLab MR to our ReviewRequest type.
func reviewRequestFromGitLab(mr *gitlab.MergeRequest) *ReviewRequest {
	rr := &ReviewRequest{
		ID:    mr.IID,
		URL:   mr.WebURL,
		Title: mr.Title,
		Head:  mr.SourceBranch,
		Base:  mr.TargetBranch,
	}

	switch mr.State {
	case "opened":
		rr.State = StateOpen
	case "merged":
		rr.State = StateMerged
	case "closed":
		rr.State = StateClosed
	}

	if mr.CreatedAt != nil {
		rr.CreatedAt = *mr.CreatedAt
	}

	return rr
}
