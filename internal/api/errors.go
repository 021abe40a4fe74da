package api

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// Error is a failure the server declared itself. Message comes from the
// response body and is suitable for showing to the user verbatim.
type Error struct {
	Message string
	Status  int
}

func (e *Error) Error() string {
	return e.Message
}
