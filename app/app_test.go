package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tix-cli/tix/config"
	"github.com/tix-cli/tix/git"
	"github.com/tix-cli/tix/jira"
	"github.com/tix-cli/tix/pr"
)

// mockTracker implements Tracker with func fields, like pr.MockProvider.
type mockTracker struct {
	GetTicketFunc        func(ctx context.Context, key string) (*jira.Ticket, error)
	SearchJQLFunc        func(ctx context.Context, jql string, limit int) ([]jira.Ticket, error)
	TransitionByNameFunc func(ctx context.Context, key, name string) error

	GetTicketCalls  int
	TransitionCalls []string
}

func (m *mockTracker) GetTicket(ctx context.Context, key string) (*jira.Ticket, error) {
	m.GetTicketCalls++
	if m.GetTicketFunc != nil {
		return m.GetTicketFunc(ctx, key)
	}
	return &jira.Ticket{
		Key:    key,
		Fields: jira.TicketFields{Summary: "Add user authentication", Status: jira.TicketStatus{Name: "To Do"}},
	}, nil
}

func (m *mockTracker) SearchJQL(ctx context.Context, jql string, limit int) ([]jira.Ticket, error) {
	if m.SearchJQLFunc != nil {
		return m.SearchJQLFunc(ctx, jql, limit)
	}
	return nil, nil
}

func (m *mockTracker) TransitionByName(ctx context.Context, key, name string) error {
	m.TransitionCalls = append(m.TransitionCalls, key+"/"+name)
	if m.TransitionByNameFunc != nil {
		return m.TransitionByNameFunc(ctx, key, name)
	}
	return nil
}

func (m *mockTracker) BrowseURL(key string) string {
	return "https://jira.example.com/browse/" + key
}

// mockRepo implements Repo in memory.
type mockRepo struct {
	Branch      string
	Clean       bool
	Porcelain   string
	CheckoutErr error
	PushErr     error
	CommitErr   error

	CheckedOut []string
	Pushed     int
}

func (m *mockRepo) CurrentBranch() (string, error) {
	if m.Branch == "" {
		return "", git.ErrDetachedHead
	}
	return m.Branch, nil
}

func (m *mockRepo) CheckoutNew(name string) error {
	if m.CheckoutErr != nil {
		return m.CheckoutErr
	}
	m.CheckedOut = append(m.CheckedOut, name)
	m.Branch = name
	return nil
}

func (m *mockRepo) IsClean() (bool, error) {
	return m.Clean, nil
}

func (m *mockRepo) Status() (string, error) {
	return m.Porcelain, nil
}

func (m *mockRepo) CommitAll(message string) (*git.CommitResult, error) {
	if m.CommitErr != nil {
		return nil, m.CommitErr
	}
	return &git.CommitResult{SHA: "abc123", Branch: m.Branch, Message: message}, nil
}

func (m *mockRepo) PushCurrent() (*git.PushResult, error) {
	if m.PushErr != nil {
		return nil, m.PushErr
	}
	m.Pushed++
	return &git.PushResult{Remote: "origin", Branch: m.Branch, SHA: "abc123"}, nil
}

func (m *mockRepo) GetRemoteURL(remote string) (string, error) {
	return "git@github.com:example/widget.git", nil
}

func testSettings() *config.Settings {
	return &config.Settings{
		Jira: config.JiraConfig{
			URL:        "https://jira.example.com",
			Email:      "dev@example.com",
			ProjectKey: "WAB",
			Auth:       config.AuthConfig{Type: config.AuthAPIToken, Token: "t"},
		},
		Git: config.GitConfig{
			Provider: "github",
			Token:    "t",
			Owner:    "example",
			Repo:     "widget",
		},
		Preferences: config.Preferences{
			BranchPrefix:      "feat",
			DefaultTransition: "In Progress",
		},
	}
}

func newTestApp(tracker *mockTracker, repo *mockRepo, reviews pr.Provider) *App {
	if reviews == nil {
		reviews = &pr.MockProvider{}
	}
	return New(testSettings(), tracker, repo, reviews)
}

func TestStartWork(t *testing.T) {
	tracker := &mockTracker{}
	repo := &mockRepo{Branch: "main"}
	a := newTestApp(tracker, repo, nil)

	result, err := a.StartWork(context.Background(), "WAB-1234")
	if err != nil {
		t.Fatalf("StartWork failed: %v", err)
	}

	if result.Branch != "feat/WAB-1234/add_user_authentication" {
		t.Errorf("Branch = %q", result.Branch)
	}
	if result.Existing {
		t.Error("Existing = true for a fresh start")
	}
	if result.Warning != "" {
		t.Errorf("Warning = %q, want empty", result.Warning)
	}
	if len(tracker.TransitionCalls) != 1 || tracker.TransitionCalls[0] != "WAB-1234/In Progress" {
		t.Errorf("TransitionCalls = %v", tracker.TransitionCalls)
	}
}

func TestStartWork_AlreadyOnBranch(t *testing.T) {
	tracker := &mockTracker{}
	repo := &mockRepo{Branch: "feat/WAB-1234/add_user_authentication"}
	a := newTestApp(tracker, repo, nil)

	result, err := a.StartWork(context.Background(), "WAB-1234")
	if err != nil {
		t.Fatalf("StartWork failed: %v", err)
	}

	if !result.Existing {
		t.Error("Existing = false, want true")
	}
	if tracker.GetTicketCalls != 0 {
		t.Errorf("GetTicket called %d times on an idempotent start", tracker.GetTicketCalls)
	}
	if len(repo.CheckedOut) != 0 {
		t.Errorf("branches created on an idempotent start: %v", repo.CheckedOut)
	}
	if len(tracker.TransitionCalls) != 0 {
		t.Errorf("transitions issued on an idempotent start: %v", tracker.TransitionCalls)
	}
}

func TestStartWork_CaseInsensitiveShortCircuit(t *testing.T) {
	tracker := &mockTracker{}
	repo := &mockRepo{Branch: "feat/WAB-1234/add_user_authentication"}
	a := newTestApp(tracker, repo, nil)

	result, err := a.StartWork(context.Background(), "wab-1234")
	if err != nil {
		t.Fatalf("StartWork failed: %v", err)
	}

	if !result.Existing {
		t.Error("Existing = false for a lowercase key on the ticket's branch")
	}
	if len(repo.CheckedOut) != 0 {
		t.Errorf("branches created despite matching branch: %v", repo.CheckedOut)
	}
	if tracker.GetTicketCalls != 0 {
		t.Errorf("GetTicket called %d times on an idempotent start", tracker.GetTicketCalls)
	}
}

func TestStartWork_DetachedHeadProceeds(t *testing.T) {
	tracker := &mockTracker{}
	repo := &mockRepo{} // CurrentBranch fails with ErrDetachedHead
	a := newTestApp(tracker, repo, nil)

	result, err := a.StartWork(context.Background(), "WAB-1234")
	if err != nil {
		t.Fatalf("StartWork failed: %v", err)
	}

	if result.Existing {
		t.Error("Existing = true with no retrievable branch")
	}
	if result.Branch != "feat/WAB-1234/add_user_authentication" {
		t.Errorf("Branch = %q", result.Branch)
	}
	if len(repo.CheckedOut) != 1 {
		t.Errorf("CheckedOut = %v, want one new branch", repo.CheckedOut)
	}
}

func TestStartWork_TicketNotFound(t *testing.T) {
	tracker := &mockTracker{
		GetTicketFunc: func(ctx context.Context, key string) (*jira.Ticket, error) {
			return nil, jira.ErrTicketNotFound
		},
	}
	repo := &mockRepo{Branch: "main"}
	a := newTestApp(tracker, repo, nil)

	_, err := a.StartWork(context.Background(), "WAB-404")
	if !errors.Is(err, jira.ErrTicketNotFound) {
		t.Errorf("StartWork error = %v, want ErrTicketNotFound", err)
	}
	if len(repo.CheckedOut) != 0 {
		t.Errorf("branch created after fatal tracker failure: %v", repo.CheckedOut)
	}
}

func TestStartWork_BranchExists(t *testing.T) {
	tracker := &mockTracker{}
	repo := &mockRepo{Branch: "main", CheckoutErr: git.ErrBranchExists}
	a := newTestApp(tracker, repo, nil)

	_, err := a.StartWork(context.Background(), "WAB-1234")
	if !errors.Is(err, git.ErrBranchExists) {
		t.Errorf("StartWork error = %v, want ErrBranchExists", err)
	}
	if len(tracker.TransitionCalls) != 0 {
		t.Errorf("transition issued after fatal branch failure: %v", tracker.TransitionCalls)
	}
}

func TestStartWork_TransitionFailureIsWarning(t *testing.T) {
	tracker := &mockTracker{
		TransitionByNameFunc: func(ctx context.Context, key, name string) error {
			return jira.ErrTransitionNotFound
		},
	}
	repo := &mockRepo{Branch: "main"}
	a := newTestApp(tracker, repo, nil)

	result, err := a.StartWork(context.Background(), "WAB-1234")
	if err != nil {
		t.Fatalf("StartWork failed: %v", err)
	}
	if result.Warning == "" {
		t.Error("Warning is empty after a transition failure")
	}
	if result.Branch == "" {
		t.Error("Branch is empty; creation should have succeeded")
	}
}

func TestFinishWork(t *testing.T) {
	tracker := &mockTracker{}
	repo := &mockRepo{Branch: "feat/WAB-1234/add_user_authentication", Clean: true}

	var gotOpts pr.Options
	reviews := &pr.MockProvider{
		CreateReviewRequestFunc: func(ctx context.Context, opts pr.Options) (*pr.ReviewRequest, error) {
			gotOpts = opts
			return &pr.ReviewRequest{ID: 7, URL: "https://github.com/example/widget/pull/7", State: pr.StateOpen}, nil
		},
	}
	a := newTestApp(tracker, repo, reviews)

	result, err := a.FinishWork(context.Background())
	if err != nil {
		t.Fatalf("FinishWork failed: %v", err)
	}

	if result.TicketID != "WAB-1234" {
		t.Errorf("TicketID = %q", result.TicketID)
	}
	if result.ReviewURL != "https://github.com/example/widget/pull/7" {
		t.Errorf("ReviewURL = %q", result.ReviewURL)
	}
	if repo.Pushed != 1 {
		t.Errorf("Pushed = %d, want 1", repo.Pushed)
	}

	if gotOpts.Title != "WAB-1234: Add user authentication" {
		t.Errorf("review title = %q", gotOpts.Title)
	}
	wantBody := "Resolves WAB-1234\n\nJira: https://jira.example.com/browse/WAB-1234"
	if gotOpts.Body != wantBody {
		t.Errorf("review body = %q, want %q", gotOpts.Body, wantBody)
	}
	if gotOpts.Base != "main" {
		t.Errorf("review base = %q, want main", gotOpts.Base)
	}
	if gotOpts.Head != repo.Branch {
		t.Errorf("review head = %q, want %q", gotOpts.Head, repo.Branch)
	}

	if len(tracker.TransitionCalls) != 1 || tracker.TransitionCalls[0] != "WAB-1234/In Review" {
		t.Errorf("TransitionCalls = %v", tracker.TransitionCalls)
	}
}

func TestFinishWork_DirtyTree(t *testing.T) {
	repo := &mockRepo{Branch: "feat/WAB-1234/x", Clean: false}
	a := newTestApp(&mockTracker{}, repo, nil)

	_, err := a.FinishWork(context.Background())
	if !errors.Is(err, git.ErrGitDirty) {
		t.Errorf("FinishWork error = %v, want ErrGitDirty", err)
	}
	if repo.Pushed != 0 {
		t.Error("pushed despite a dirty tree")
	}
}

func TestFinishWork_NoTicketInBranch(t *testing.T) {
	repo := &mockRepo{Branch: "main", Clean: true}
	a := newTestApp(&mockTracker{}, repo, nil)

	_, err := a.FinishWork(context.Background())
	if err == nil {
		t.Fatal("FinishWork succeeded on a branch without a ticket")
	}
	if repo.Pushed != 0 {
		t.Error("pushed despite an undecodable branch")
	}
}

func TestFinishWork_CreateFails(t *testing.T) {
	tracker := &mockTracker{}
	repo := &mockRepo{Branch: "feat/WAB-1234/x", Clean: true}
	reviews := &pr.MockProvider{
		CreateReviewRequestFunc: func(ctx context.Context, opts pr.Options) (*pr.ReviewRequest, error) {
			return nil, pr.ErrExists
		},
	}
	a := newTestApp(tracker, repo, reviews)

	_, err := a.FinishWork(context.Background())
	if !errors.Is(err, pr.ErrExists) {
		t.Errorf("FinishWork error = %v, want ErrExists", err)
	}
	if len(tracker.TransitionCalls) != 0 {
		t.Errorf("transition issued after fatal review failure: %v", tracker.TransitionCalls)
	}
}

func TestFinishWork_TransitionFailureIsWarning(t *testing.T) {
	tracker := &mockTracker{
		TransitionByNameFunc: func(ctx context.Context, key, name string) error {
			return errors.New("503 from tracker")
		},
	}
	repo := &mockRepo{Branch: "feat/WAB-1234/x", Clean: true}
	a := newTestApp(tracker, repo, nil)

	result, err := a.FinishWork(context.Background())
	if err != nil {
		t.Fatalf("FinishWork failed: %v", err)
	}
	if result.Warning == "" {
		t.Error("Warning is empty after a transition failure")
	}
	if result.ReviewURL == "" {
		t.Error("ReviewURL is empty; the review request should have been created")
	}
}

func TestCommitWork_AppendsTicketTrailer(t *testing.T) {
	repo := &mockRepo{Branch: "feat/WAB-1234/x"}
	a := newTestApp(&mockTracker{}, repo, nil)

	result, err := a.CommitWork(context.Background(), "add widget wiring")
	if err != nil {
		t.Fatalf("CommitWork failed: %v", err)
	}

	want := "add widget wiring\n\nWAB-1234: https://jira.example.com/browse/WAB-1234"
	if result.Message != want {
		t.Errorf("commit message = %q, want %q", result.Message, want)
	}
}

func TestCommitWork_PlainMessageOffTicketBranch(t *testing.T) {
	repo := &mockRepo{Branch: "main"}
	a := newTestApp(&mockTracker{}, repo, nil)

	result, err := a.CommitWork(context.Background(), "tidy readme")
	if err != nil {
		t.Fatalf("CommitWork failed: %v", err)
	}
	if result.Message != "tidy readme" {
		t.Errorf("commit message = %q", result.Message)
	}
}

func TestStatus(t *testing.T) {
	repo := &mockRepo{Branch: "feat/WAB-1234/x", Porcelain: " M main.go"}
	a := newTestApp(&mockTracker{}, repo, nil)

	result, err := a.Status(context.Background())
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if result.TicketID != "WAB-1234" {
		t.Errorf("TicketID = %q", result.TicketID)
	}
	if result.Ticket == nil {
		t.Error("Ticket = nil, want fetched ticket")
	}
	if result.Changes != " M main.go" {
		t.Errorf("Changes = %q", result.Changes)
	}
}

func TestStatus_TrackerDownDegrades(t *testing.T) {
	tracker := &mockTracker{
		GetTicketFunc: func(ctx context.Context, key string) (*jira.Ticket, error) {
			return nil, jira.ErrAuthFailed
		},
	}
	repo := &mockRepo{Branch: "feat/WAB-1234/x"}
	a := newTestApp(tracker, repo, nil)

	result, err := a.Status(context.Background())
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if result.TicketID != "WAB-1234" {
		t.Errorf("TicketID = %q", result.TicketID)
	}
	if result.Ticket != nil {
		t.Error("Ticket is set despite tracker failure")
	}
}

func TestListJQL(t *testing.T) {
	var gotJQL string
	tracker := &mockTracker{
		SearchJQLFunc: func(ctx context.Context, jql string, limit int) ([]jira.Ticket, error) {
			gotJQL = jql
			return nil, nil
		},
	}
	a := newTestApp(tracker, &mockRepo{Branch: "main"}, nil)

	if _, err := a.List(context.Background(), ListOptions{Status: "In Progress"}); err != nil {
		t.Fatalf("List failed: %v", err)
	}

	want := `assignee = currentUser() AND project = WAB AND status = "In Progress" ORDER BY updated DESC`
	if gotJQL != want {
		t.Errorf("jql = %q, want %q", gotJQL, want)
	}
}

func TestSearchJQL(t *testing.T) {
	var gotJQL string
	var gotLimit int
	tracker := &mockTracker{
		SearchJQLFunc: func(ctx context.Context, jql string, limit int) ([]jira.Ticket, error) {
			gotJQL = jql
			gotLimit = limit
			return nil, nil
		},
	}
	a := newTestApp(tracker, &mockRepo{Branch: "main"}, nil)

	_, err := a.Search(context.Background(), SearchOptions{Query: "login bug", Assignee: "me"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if !strings.Contains(gotJQL, `(summary ~ "login bug" OR description ~ "login bug")`) {
		t.Errorf("jql = %q, missing summary/description clause", gotJQL)
	}
	if !strings.Contains(gotJQL, "assignee = currentUser()") {
		t.Errorf("jql = %q, missing assignee clause", gotJQL)
	}
	if !strings.Contains(gotJQL, "project = WAB") {
		t.Errorf("jql = %q, missing project clause", gotJQL)
	}
	if gotLimit != 10 {
		t.Errorf("limit = %d, want default 10", gotLimit)
	}
}

func TestSearch_NoFilters(t *testing.T) {
	settings := testSettings()
	settings.Jira.ProjectKey = ""
	a := New(settings, &mockTracker{}, &mockRepo{Branch: "main"}, &pr.MockProvider{})

	if _, err := a.Search(context.Background(), SearchOptions{}); err == nil {
		t.Error("Search with no filters succeeded, want error")
	}
}

func TestOpenURL(t *testing.T) {
	repo := &mockRepo{Branch: "feat/WAB-1234/x"}
	reviews := &pr.MockProvider{
		FindForBranchFunc: func(ctx context.Context, b string) (*pr.ReviewRequest, error) {
			return &pr.ReviewRequest{URL: "https://github.com/example/widget/pull/7", Head: b}, nil
		},
	}
	a := newTestApp(&mockTracker{}, repo, reviews)

	tests := []struct {
		name     string
		target   OpenTarget
		ticketID string
		want     string
	}{
		{name: "ticket from branch", target: OpenTicket, want: "https://jira.example.com/browse/WAB-1234"},
		{name: "explicit ticket", target: OpenTicket, ticketID: "WAB-77", want: "https://jira.example.com/browse/WAB-77"},
		{name: "board", target: OpenBoard, want: "https://jira.example.com/jira/software/projects/WAB/boards"},
		{name: "review", target: OpenReview, want: "https://github.com/example/widget/pull/7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.OpenURL(context.Background(), tt.target, tt.ticketID)
			if err != nil {
				t.Fatalf("OpenURL failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("OpenURL = %q, want %q", got, tt.want)
			}
		})
	}
}
