package branch

import "errors"

// ErrNoTicket indicates a branch name does not encode a ticket identifier.
var ErrNoTicket = errors.New("branch does not contain a ticket id")

// NoTicketError reports which branch failed to decode.
type NoTicketError struct {
	Branch string
}

func (e *NoTicketError) Error() string {
	return "branch '" + e.Branch + "' does not contain a ticket id"
}

func (e *NoTicketError) Unwrap() error {
	return ErrNoTicket
}
