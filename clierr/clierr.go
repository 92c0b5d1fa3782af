// Package clierr separates error kinds from user-facing presentation.
//
// Collaborator packages (config, branch, jira, git, pr) expose sentinel
// errors for programmatic handling; the command layer wraps them in a
// CLIError carrying a human-readable message, optional details, and an
// actionable suggestion. Workflow code never formats remediation text.
package clierr

import "strings"

// CLIError wraps an error with user-friendly context and a suggestion.
type CLIError struct {
	// Err is the underlying error kind.
	Err error

	// Message is a user-friendly description of what went wrong.
	Message string

	// Details provides additional context (optional).
	Details string

	// Suggestion is an actionable hint for the user.
	Suggestion string
}

func (e *CLIError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)

	if e.Details != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Details)
	}

	if e.Suggestion != "" {
		sb.WriteString("\n\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// New creates a CLIError with a message and suggestion.
func New(err error, message, suggestion string) *CLIError {
	return &CLIError{Err: err, Message: message, Suggestion: suggestion}
}

// WithDetails creates a CLIError that includes a details line.
func WithDetails(err error, message, details, suggestion string) *CLIError {
	return &CLIError{Err: err, Message: message, Details: details, Suggestion: suggestion}
}
