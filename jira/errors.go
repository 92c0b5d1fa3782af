package jira

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Configuration errors.
var (
	ErrConfigURLRequired     = errors.New("jira url is required")
	ErrConfigTokenRequired   = errors.New("jira token is required")
	ErrConfigEmailRequired   = errors.New("jira email is required for api_token auth")
	ErrConfigAuthTypeInvalid = errors.New("jira auth type must be api_token or pat")
)

// API errors.
var (
	// ErrTicketNotFound indicates the issue does not exist or is not
	// visible to the authenticated user.
	ErrTicketNotFound = errors.New("jira ticket not found")

	// ErrTransitionNotFound indicates the named transition is not
	// available from the issue's current status.
	ErrTransitionNotFound = errors.New("transition not found for issue")

	// ErrAuthFailed indicates the credentials were rejected.
	ErrAuthFailed = errors.New("jira authentication failed")

	// ErrNotFound is the generic 404 sentinel.
	ErrNotFound = errors.New("jira resource not found")
)

// APIError represents an error response from the Jira API.
type APIError struct {
	StatusCode    int               `json:"-"`
	ErrorMessages []string          `json:"errorMessages,omitempty"`
	Errors        map[string]string `json:"errors,omitempty"`
	Endpoint      string            `json:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if len(e.ErrorMessages) > 0 {
		return fmt.Sprintf("jira api error (%d): %s", e.StatusCode, e.ErrorMessages[0])
	}
	if len(e.Errors) > 0 {
		for field, msg := range e.Errors {
			return fmt.Sprintf("jira api error (%d): %s: %s", e.StatusCode, field, msg)
		}
	}
	return fmt.Sprintf("jira api error (%d) at %s", e.StatusCode, e.Endpoint)
}

// Unwrap returns the sentinel error for the status code.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrAuthFailed
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return nil
	}
}

// parseAPIError parses an error response body into an APIError.
func parseAPIError(resp *http.Response, endpoint string) error {
	body, _ := io.ReadAll(resp.Body)

	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Endpoint:   endpoint,
	}

	if json.Unmarshal(body, apiErr) != nil || (len(apiErr.ErrorMessages) == 0 && len(apiErr.Errors) == 0) {
		apiErr.ErrorMessages = []string{http.StatusText(resp.StatusCode)}
	}

	return apiErr
}

// IsNotFound reports whether the error indicates a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrTicketNotFound)
}

// IsAuthFailed reports whether the error indicates rejected credentials.
func IsAuthFailed(err error) bool {
	return errors.Is(err, ErrAuthFailed)
}
