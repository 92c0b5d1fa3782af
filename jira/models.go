package jira

// Ticket represents a Jira issue with the fields tix cares about.
type Ticket struct {
	Key    string       `json:"key"`
	Fields TicketFields `json:"fields"`
}

// TicketFields holds the issue fields requested by the client.
type TicketFields struct {
	Summary     string       `json:"summary"`
	Description string       `json:"description,omitempty"`
	Status      TicketStatus `json:"status"`
	Assignee    *User        `json:"assignee,omitempty"`
}

// TicketStatus is the current workflow status of an issue.
type TicketStatus struct {
	Name string `json:"name"`
}

// User is a Jira user reference.
type User struct {
	DisplayName string `json:"displayName"`
}

// Transition is a status change available to an issue.
type Transition struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TransitionsResponse is the response from the transitions endpoint.
type TransitionsResponse struct {
	Transitions []Transition `json:"transitions"`
}

// SearchResponse is the response from the search endpoint.
type SearchResponse struct {
	Issues     []Ticket `json:"issues"`
	Total      int      `json:"total"`
	MaxResults int      `json:"maxResults"`
}
