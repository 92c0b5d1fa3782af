package pr

import "errors"

// Provider errors
var (
	// ErrUnknownProvider indicates the git remote uses an unknown provider.
	ErrUnknownProvider = errors.New("unknown git provider")

	// ErrCreateFailed indicates the review request could not be created.
	ErrCreateFailed = errors.New("create review request failed")

	// ErrExists indicates a review request already exists for the branch.
	ErrExists = errors.New("review request already exists for this branch")

	// ErrNotFound indicates the review request does not exist.
	ErrNotFound = errors.New("review request not found")

	// ErrNoChanges indicates there are no commits between branches.
	ErrNoChanges = errors.New("no changes between branches")
)
