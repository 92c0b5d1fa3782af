// Package jira provides a minimal client for the Jira REST API.
//
// The client covers the operations the tix workflows need: fetching an
// issue, searching with JQL, and transitioning issue status by name. It
// supports Jira Cloud (email + API token as basic auth) and Jira
// Server/Data Center (personal access token as bearer auth); the variant is
// chosen once at construction and applied to every request.
//
// Use errors.Is to classify failures:
//
//	issue, err := client.GetTicket(ctx, "PROJ-123")
//	if errors.Is(err, jira.ErrTicketNotFound) {
//	    // issue doesn't exist or is not visible
//	}
//	if errors.Is(err, jira.ErrAuthFailed) {
//	    // token expired or invalid
//	}
package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// AuthType selects the credential variant.
type AuthType string

// Authentication variants.
const (
	// AuthAPIToken authenticates with email:token basic auth (Cloud).
	AuthAPIToken AuthType = "api_token"

	// AuthPAT authenticates with a bearer token (Server/Data Center).
	AuthPAT AuthType = "pat"
)

// Config holds the client configuration.
type Config struct {
	// URL is the base URL of the Jira instance.
	URL string

	// Email identifies the user for api_token auth.
	Email string

	// AuthType is the credential variant.
	AuthType AuthType

	// Token is the API token or personal access token.
	Token string

	// Timeout is the per-request timeout. Defaults to 30s.
	Timeout time.Duration
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.URL == "" {
		return ErrConfigURLRequired
	}
	if c.Token == "" {
		return ErrConfigTokenRequired
	}
	switch c.AuthType {
	case AuthAPIToken:
		if c.Email == "" {
			return ErrConfigEmailRequired
		}
	case AuthPAT:
	default:
		return ErrConfigAuthTypeInvalid
	}
	return nil
}

// Client provides access to the Jira REST API.
type Client struct {
	cfg        Config
	baseURL    string
	httpClient *http.Client
}

// ClientOption configures the client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new Jira client.
func NewClient(cfg Config, opts ...ClientOption) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	c := &Client{
		cfg:        cfg,
		baseURL:    strings.TrimSuffix(cfg.URL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// BaseURL returns the configured instance URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// BrowseURL returns the web URL for an issue.
func (c *Client) BrowseURL(key string) string {
	return c.baseURL + "/browse/" + key
}

// GetTicket retrieves an issue by key.
func (c *Client) GetTicket(ctx context.Context, key string) (*Ticket, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.apiPath("/issue/"+key), nil)
	if err != nil {
		return nil, err
	}

	var ticket Ticket
	if err := c.do(req, &ticket); err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrTicketNotFound, key)
		}
		return nil, err
	}

	return &ticket, nil
}

// SearchJQL searches for issues using a JQL query.
func (c *Client) SearchJQL(ctx context.Context, jql string, limit int) ([]Ticket, error) {
	if limit <= 0 {
		limit = 50
	}

	body := map[string]any{
		"jql":        jql,
		"fields":     []string{"summary", "description", "status", "assignee"},
		"maxResults": limit,
	}

	req, err := c.newRequest(ctx, http.MethodPost, c.apiPath("/search"), body)
	if err != nil {
		return nil, err
	}

	var result SearchResponse
	if err := c.do(req, &result); err != nil {
		return nil, err
	}

	return result.Issues, nil
}

// GetTransitions lists the transitions currently available for an issue.
func (c *Client) GetTransitions(ctx context.Context, key string) ([]Transition, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.apiPath("/issue/"+key+"/transitions"), nil)
	if err != nil {
		return nil, err
	}

	var result TransitionsResponse
	if err := c.do(req, &result); err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrTicketNotFound, key)
		}
		return nil, err
	}

	return result.Transitions, nil
}

// TransitionByName finds a transition by its display name (case-insensitive)
// and executes it. Returns ErrTransitionNotFound if the named transition is
// not available from the issue's current status.
func (c *Client) TransitionByName(ctx context.Context, key, transitionName string) error {
	transitions, err := c.GetTransitions(ctx, key)
	if err != nil {
		return err
	}

	var transitionID string
	for _, t := range transitions {
		if strings.EqualFold(t.Name, transitionName) {
			transitionID = t.ID
			break
		}
	}
	if transitionID == "" {
		return fmt.Errorf("%w: %q", ErrTransitionNotFound, transitionName)
	}

	body := map[string]any{
		"transition": map[string]string{"id": transitionID},
	}

	req, err := c.newRequest(ctx, http.MethodPost, c.apiPath("/issue/"+key+"/transitions"), body)
	if err != nil {
		return err
	}

	return c.do(req, nil)
}

// TestConnection verifies the credentials by fetching the current user.
func (c *Client) TestConnection(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodGet, c.apiPath("/myself"), nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// apiPath returns the full API path for an endpoint.
func (c *Client) apiPath(endpoint string) string {
	version := os.Getenv("JIRA_API_VERSION")
	if version == "" {
		version = "latest"
	}
	return "/rest/api/" + version + endpoint
}

// newRequest creates an HTTP request with auth and JSON headers applied.
func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.setAuth(req)

	return req, nil
}

// setAuth applies the configured credential variant.
func (c *Client) setAuth(req *http.Request) {
	switch c.cfg.AuthType {
	case AuthPAT:
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	default:
		req.SetBasicAuth(c.cfg.Email, c.cfg.Token)
	}
}

// do executes a request and decodes the response into v (when non-nil).
func (c *Client) do(req *http.Request, v any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("jira request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseAPIError(resp, req.URL.Path)
	}

	if v == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
