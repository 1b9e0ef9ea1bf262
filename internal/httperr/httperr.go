package httperr

import "errors"

// Error is an error that carries the HTTP status code it should be
// surfaced with. Every layer that produces a client-visible failure
// returns one of these; the boundary has a single rule: if the error
// carries a status, use it, otherwise respond 500.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// New builds an Error with the given status code and message.
func New(statusCode int, message string) *Error {
	return &Error{StatusCode: statusCode, Message: message}
}

// StatusOf extracts the status code carried by err, if any.
func StatusOf(err error) (int, bool) {
	var he *Error
	if errors.As(err, &he) {
		return he.StatusCode, true
	}
	return 0, false
}
