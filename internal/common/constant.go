// Package common holds shared constants and small helpers used across the
// client layers.
package common

// AuthHeaderName is the HTTP header that carries the bearer credential on
// outbound requests.
const AuthHeaderName = "Authorization"

// AuthScheme prefixes the token value in AuthHeaderName.
const AuthScheme = "Bearer"
