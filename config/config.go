// Package config manages the tix settings file.
//
// Settings live in a single TOML file (by default
// ~/.config/tix/config.toml) holding tracker credentials, git provider
// credentials, and workflow preferences. The file is created with 0600
// permissions since it contains API tokens.
package config

import (
	"fmt"
	"strings"
)

// AuthType selects how the tracker client authenticates.
type AuthType string

// Authentication methods supported by the tracker client.
const (
	// AuthAPIToken sends email:token as basic auth (Jira Cloud).
	AuthAPIToken AuthType = "api_token"

	// AuthPAT sends the token as a bearer token (Jira Data Center/Server).
	AuthPAT AuthType = "pat"
)

// Settings is the full configuration record.
type Settings struct {
	Jira        JiraConfig  `toml:"jira"`
	Git         GitConfig   `toml:"git"`
	Preferences Preferences `toml:"preferences"`
}

// JiraConfig holds tracker connection settings.
type JiraConfig struct {
	// URL is the base URL of the Jira instance.
	URL string `toml:"url"`

	// Email identifies the user for api_token auth.
	Email string `toml:"email"`

	// ProjectKey is the default project for list/search queries.
	ProjectKey string `toml:"project_key"`

	// Auth is the credential variant, chosen once at init.
	Auth AuthConfig `toml:"auth"`
}

// AuthConfig is the tagged credential variant.
type AuthConfig struct {
	Type  AuthType `toml:"type"`
	Token string   `toml:"token"`
}

// GitConfig holds review-provider settings.
type GitConfig struct {
	// Provider is "github" or "gitlab".
	Provider string `toml:"provider"`

	// BaseURL is the API base URL (https://api.github.com, or the
	// GitLab instance URL for self-hosted installs).
	BaseURL string `toml:"base_url"`

	// Token is the provider API token.
	Token string `toml:"token"`

	// Owner and Repo identify the GitHub repository. Unused for GitLab,
	// where the project path is derived from the remote URL.
	Owner string `toml:"owner,omitempty"`
	Repo  string `toml:"repo,omitempty"`
}

// Preferences holds the two workflow preference strings.
type Preferences struct {
	// BranchPrefix is the first segment of generated branch names.
	BranchPrefix string `toml:"branch_prefix"`

	// DefaultTransition is the status applied when work starts.
	DefaultTransition string `toml:"default_transition"`
}

// Validate checks that the settings are usable.
func (s *Settings) Validate() error {
	if s.Jira.URL == "" {
		return fmt.Errorf("%w: jira.url is required", ErrInvalid)
	}
	if s.Jira.Auth.Token == "" {
		return fmt.Errorf("%w: jira auth token is required", ErrInvalid)
	}

	switch s.Jira.Auth.Type {
	case AuthAPIToken:
		if s.Jira.Email == "" {
			return fmt.Errorf("%w: jira.email is required for api_token auth", ErrInvalid)
		}
	case AuthPAT:
	default:
		return fmt.Errorf("%w: jira auth type must be api_token or pat", ErrInvalid)
	}

	switch strings.ToLower(s.Git.Provider) {
	case "github":
		if s.Git.Owner == "" || s.Git.Repo == "" {
			return fmt.Errorf("%w: git.owner and git.repo are required for github", ErrInvalid)
		}
	case "gitlab":
	default:
		return fmt.Errorf("%w: git.provider must be github or gitlab", ErrInvalid)
	}

	if s.Git.Token == "" {
		return fmt.Errorf("%w: git.token is required", ErrInvalid)
	}

	return nil
}

// Set updates a single field addressed as "section.key".
func (s *Settings) Set(key, value string) error {
	switch key {
	case "jira.url":
		s.Jira.URL = value
	case "jira.email":
		s.Jira.Email = value
	case "jira.project_key":
		s.Jira.ProjectKey = value
	case "jira.auth_type":
		s.Jira.Auth.Type = AuthType(value)
	case "jira.token":
		s.Jira.Auth.Token = value
	case "git.provider":
		s.Git.Provider = value
	case "git.base_url":
		s.Git.BaseURL = value
	case "git.token":
		s.Git.Token = value
	case "git.owner":
		s.Git.Owner = value
	case "git.repo":
		s.Git.Repo = value
	case "preferences.branch_prefix":
		s.Preferences.BranchPrefix = value
	case "preferences.default_transition":
		s.Preferences.DefaultTransition = value
	default:
		return fmt.Errorf("%w: %s (use section.key, e.g. jira.email)", ErrUnknownKey, key)
	}

	return nil
}

// MaskToken obscures the middle of a token for display.
func MaskToken(token string) string {
	if token == "" {
		return ""
	}
	head := token
	if len(head) > 4 {
		head = head[:4]
	}
	tail := ""
	if len(token) > 4 {
		tail = token[len(token)-4:]
	}
	return head + "***" + tail
}
