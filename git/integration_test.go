package git_test

import (
	"errors"
	"testing"

	"github.com/tix-cli/tix/git"
	"github.com/tix-cli/tix/testutil"
)

func TestNewContext_NotARepo(t *testing.T) {
	testutil.RequireGit(t)

	_, err := git.NewContext(t.TempDir())
	if !errors.Is(err, git.ErrNotGitRepo) {
		t.Errorf("NewContext error = %v, want ErrNotGitRepo", err)
	}
}

func TestRealRepoWorkflow(t *testing.T) {
	dir := testutil.SetupTestRepo(t)

	repo, err := git.NewContext(dir)
	if err != nil {
		t.Fatalf("NewContext failed: %v", err)
	}

	branch, err := repo.CurrentBranch()
	if err != nil {
		t.Fatalf("CurrentBranch failed: %v", err)
	}
	if branch != "main" {
		t.Errorf("branch = %q, want main", branch)
	}

	clean, err := repo.IsClean()
	if err != nil {
		t.Fatalf("IsClean failed: %v", err)
	}
	if !clean {
		t.Error("fresh repo reported dirty")
	}

	if err := repo.CheckoutNew("feat/WAB-1/add_widget"); err != nil {
		t.Fatalf("CheckoutNew failed: %v", err)
	}
	if got := testutil.CurrentBranch(t, dir); got != "feat/WAB-1/add_widget" {
		t.Errorf("current branch = %q after CheckoutNew", got)
	}

	if err := repo.CheckoutNew("feat/WAB-1/add_widget"); !errors.Is(err, git.ErrBranchExists) {
		t.Errorf("second CheckoutNew error = %v, want ErrBranchExists", err)
	}

	testutil.WriteFile(t, dir, "widget.go", "package widget\n")

	clean, err = repo.IsClean()
	if err != nil {
		t.Fatalf("IsClean failed: %v", err)
	}
	if clean {
		t.Error("repo with untracked file reported clean")
	}

	result, err := repo.CommitAll("WAB-1: add widget")
	if err != nil {
		t.Fatalf("CommitAll failed: %v", err)
	}
	if result.Branch != "feat/WAB-1/add_widget" {
		t.Errorf("commit branch = %q", result.Branch)
	}
	if result.SHA == "" {
		t.Error("commit SHA is empty")
	}

	if _, err := repo.CommitAll("WAB-1: nothing"); !errors.Is(err, git.ErrNothingToCommit) {
		t.Errorf("empty CommitAll error = %v, want ErrNothingToCommit", err)
	}
}
