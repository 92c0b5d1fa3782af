// Package pr creates review requests on git hosting providers.
//
// A review request is a GitHub pull request or a GitLab merge request; the
// Provider interface hides the difference. Construct a provider from the
// stored git configuration with New, or directly with NewGitHubProvider /
// NewGitLabProvider.
//
// Example usage:
//
//	provider, err := pr.New(pr.Config{
//	    Provider: "github",
//	    Token:    token,
//	    Owner:    "example",
//	    Repo:     "widget",
//	})
//	rr, err := provider.CreateReviewRequest(ctx, pr.Options{
//	    Title: "PROJ-123: Add widget",
//	    Head:  "feat/PROJ-123/add_widget",
//	})
package pr
