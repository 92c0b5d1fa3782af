package pr

import (
	"errors"
	"testing"
)

func TestDetectProvider(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{name: "github ssh", url: "git@github.com:example/widget.git", want: "github"},
		{name: "github https", url: "https://github.com/example/widget.git", want: "github"},
		{name: "gitlab ssh", url: "git@gitlab.com:example/widget.git", want: "gitlab"},
		{name: "self-hosted gitlab", url: "https://gitlab.corp.example.com/team/widget.git", want: "gitlab"},
		{name: "unknown host", url: "https://git.sr.ht/~example/widget", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectProvider(tt.url)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownProvider) {
					t.Errorf("DetectProvider(%q) error = %v, want ErrUnknownProvider", tt.url, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DetectProvider(%q) failed: %v", tt.url, err)
			}
			if got != tt.want {
				t.Errorf("DetectProvider(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestParseRepoFromURL(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{name: "ssh", url: "git@github.com:example/widget.git", wantOwner: "example", wantRepo: "widget"},
		{name: "https", url: "https://github.com/example/widget.git", wantOwner: "example", wantRepo: "widget"},
		{name: "https without .git", url: "https://gitlab.com/example/widget", wantOwner: "example", wantRepo: "widget"},
		{name: "ssh bad path", url: "git@github.com:widget.git", wantErr: true},
		{name: "not a remote", url: "widget", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, err := ParseRepoFromURL(tt.url)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseRepoFromURL(%q) = %q/%q, want error", tt.url, owner, repo)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRepoFromURL(%q) failed: %v", tt.url, err)
			}
			if owner != tt.wantOwner || repo != tt.wantRepo {
				t.Errorf("ParseRepoFromURL(%q) = %q/%q, want %q/%q", tt.url, owner, repo, tt.wantOwner, tt.wantRepo)
			}
		})
	}
}

func TestNewUnknownProvider(t *testing.T) {
	_, err := New(Config{Provider: "sourcehut", Token: "t", Owner: "o", Repo: "r"})
	if !errors.Is(err, ErrUnknownProvider) {
		t.Errorf("New error = %v, want ErrUnknownProvider", err)
	}
}
