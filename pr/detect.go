package pr

import (
	"fmt"
	"strings"
)

// DetectProvider guesses the provider from a git remote URL.
func DetectProvider(remoteURL string) (string, error) {
	remoteURL = strings.ToLower(remoteURL)

	if strings.Contains(remoteURL, "github.com") {
		return "github", nil
	}
	if strings.Contains(remoteURL, "gitlab") {
		return "gitlab", nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownProvider, remoteURL)
}

// ParseRepoFromURL extracts owner and repo from a git remote URL.
// Both SSH (git@host:owner/repo.git) and HTTP(S) forms are accepted.
func ParseRepoFromURL(remoteURL string) (owner, repo string, err error) {
	if strings.HasPrefix(remoteURL, "git@") {
		parts := strings.Split(remoteURL, ":")
		if len(parts) != 2 {
			return "", "", fmt.Errorf("invalid SSH URL format")
		}
		path := strings.TrimSuffix(parts[1], ".git")
		pathParts := strings.Split(path, "/")
		if len(pathParts) != 2 {
			return "", "", fmt.Errorf("invalid repository path")
		}
		return pathParts[0], pathParts[1], nil
	}

	remoteURL = strings.TrimPrefix(remoteURL, "https://")
	remoteURL = strings.TrimPrefix(remoteURL, "http://")
	remoteURL = strings.TrimSuffix(remoteURL, ".git")

	parts := strings.Split(remoteURL, "/")
	if len(parts) < 3 {
		return "", "", fmt.Errorf("invalid URL format")
	}

	// Last two segments are owner/repo; anything between host and owner
	// (GitLab subgroups aside) is ignored.
	return parts[len(parts)-2], parts[len(parts)-1], nil
}
