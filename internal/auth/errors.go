package auth

import (
	"errors"

	"gymcli/internal/api"
)

// Fallback messages shown when a failure carries no server-declared message.
const (
	msgSignInFailed  = "unable to sign in, try again later"
	msgSignUpFailed  = "unable to create the account, try again later"
	msgProfileFailed = "unable to update the profile, try again later"
)

// AuthError is the failure surfaced by SignIn, SignUp and UpdateUserProfile.
// Message is suitable for direct display to the user.
type AuthError struct {
	Message string
	cause   error
}

func (e *AuthError) Error() string {
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.cause
}

// newAuthError wraps err for the consumer layer. A server-declared message
// (*api.Error) passes through verbatim; everything else gets the fallback.
func newAuthError(err error, fallback string) *AuthError {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return &AuthError{Message: apiErr.Message, cause: err}
	}
	return &AuthError{Message: fallback, cause: err}
}
