// Package api contains the client-side building blocks for talking to the
// gym backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) covering
//     sessions, accounts, exercise groups, exercises and workout history.
//  2. A concrete HTTP implementation (see HTTPClient) that owns the default
//     Authorization header for all outbound requests, tags each request with
//     an X-Request-Id, and maps responses to errors.
//
// # Error Handling
//
// A failure the server declared itself (a JSON body with a "message" field)
// becomes *Error, whose Message is displayable to the user verbatim.
// Transport-level conditions are exposed as sentinel errors matchable with
// errors.Is: ErrUnavailable, ErrUnauthorized.
//
// # Credential Injection
//
// SetAuthToken installs a bearer token into the default headers; every
// subsequent request carries "Authorization: Bearer <token>" until
// ClearAuthToken is called. Only the session manager writes through these
// two methods.
package api
