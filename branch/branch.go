// Package branch implements the branch naming convention that links git
// branches to tracker tickets.
//
// A conforming branch has the shape prefix/TICKET-123/short_slug, where the
// slug segment is optional. Format and TicketID are inverses on the ticket
// identifier: TicketID(Format(p, id, s)) == id for any summary s.
package branch

import (
	"strings"
	"unicode"
)

// maxSlugWords is the number of summary words kept in the slug segment.
const maxSlugWords = 5

// Format builds a branch name from a prefix, a ticket identifier, and the
// ticket summary. The summary is reduced to a slug: lowercased, split on
// whitespace and sentence punctuation, stripped of remaining symbols, words
// shorter than two characters dropped, truncated to five words, joined with
// underscores. An empty slug yields prefix/ticketID with no trailing slash.
func Format(prefix, ticketID, summary string) string {
	words := strings.FieldsFunc(strings.ToLower(summary), func(r rune) bool {
		switch r {
		case ' ', ':', '!', '?', ',', ';', '.':
			return true
		}
		return false
	})

	slug := make([]string, 0, maxSlugWords)
	for _, word := range words {
		var b strings.Builder
		for _, r := range word {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				b.WriteRune(r)
			}
		}
		if cleaned := b.String(); len(cleaned) > 1 {
			slug = append(slug, cleaned)
		}
		if len(slug) == maxSlugWords {
			break
		}
	}

	if len(slug) == 0 {
		return prefix + "/" + ticketID
	}
	return prefix + "/" + ticketID + "/" + strings.Join(slug, "_")
}

// TicketID extracts the ticket identifier from a branch name.
//
// The second slash-separated segment is split on hyphens and the first two
// tokens are rejoined, so feat/WAB-3848/some_slug decodes to WAB-3848. The
// tokens are taken positionally and are not validated against a project-key
// grammar; a segment like a-b-c decodes to a-b. Branches without a second
// segment, or whose second segment has no hyphen, return ErrNoTicket.
func TicketID(branchName string) (string, error) {
	parts := strings.Split(branchName, "/")
	if len(parts) < 2 {
		return "", &NoTicketError{Branch: branchName}
	}

	segment := parts[1]
	if !strings.Contains(segment, "-") {
		return "", &NoTicketError{Branch: branchName}
	}

	tokens := strings.Split(segment, "-")
	if len(tokens) < 2 {
		return "", &NoTicketError{Branch: branchName}
	}

	ticketID := strings.Join(tokens[:2], "-")
	if ticketID == "" {
		return "", &NoTicketError{Branch: branchName}
	}

	return ticketID, nil
}
