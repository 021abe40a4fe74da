// Package credentials persists the signed-in user record and its bearer
// token across process restarts. The two entries live under fixed keys and
// are sealed at rest; both absent means "logged out".
package credentials

import (
	"context"

	"gymcli/internal/models"
)

// Store is the durable home of the (user, token) pair. Absent entries are
// reported as zero values, not errors, so callers can treat "never signed in"
// and "signed out" the same way.
type Store interface {
	// SavePair writes the user record and its token together; a failure
	// leaves neither behind.
	SavePair(ctx context.Context, user models.User, token string) error

	SaveUser(ctx context.Context, user models.User) error
	User(ctx context.Context) (models.User, error)
	RemoveUser(ctx context.Context) error

	SaveToken(ctx context.Context, token string) error
	Token(ctx context.Context) (string, error)
	RemoveToken(ctx context.Context) error
}
