// Package git wraps the git CLI for the repository operations tix needs:
// branch inspection and creation, working tree status, commits, and pushes.
//
// Core types:
//   - Context: repository handle that runs git commands in a working directory
//   - CommandRunner: interface for executing git commands (with mock for testing)
//
// Example usage:
//
//	repo, err := git.NewContext(".")
//	branch, err := repo.CurrentBranch()
//	err = repo.CheckoutNew("feat/PROJ-123/add_widget")
package git
