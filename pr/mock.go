package pr

import "context"

// MockProvider is a mock implementation of Provider for testing.
type MockProvider struct {
	CreateReviewRequestFunc func(ctx context.Context, opts Options) (*ReviewRequest, error)
	FindForBranchFunc       func(ctx context.Context, branch string) (*ReviewRequest, error)
}

// CreateReviewRequest implements Provider.
func (m *MockProvider) CreateReviewRequest(ctx context.Context, opts Options) (*ReviewRequest, error) {
	if m.CreateReviewRequestFunc != nil {
		return m.CreateReviewRequestFunc(ctx, opts)
	}
	return &ReviewRequest{ID: 1, URL: "https://example.com/pr/1", State: StateOpen}, nil
}

// FindForBranch implements Provider.
func (m *MockProvider) FindForBranch(ctx context.Context, branch string) (*ReviewRequest, error) {
	if m.FindForBranchFunc != nil {
		return m.FindForBranchFunc(ctx, branch)
	}
	return &ReviewRequest{ID: 1, URL: "https://example.com/pr/1", State: StateOpen, Head: branch}, nil
}
