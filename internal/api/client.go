package api

import (
	"context"

	"gymcli/internal/models"
)

// Client is the transport-agnostic contract for the gym backend.
type Client interface {
	Close() error

	// Ping reports whether the backend is reachable. It needs no
	// authentication and carries no payload.
	Ping(ctx context.Context) error

	// SignIn exchanges credentials for the account's user record and a
	// bearer token.
	SignIn(ctx context.Context, email string, password string) (models.User, string, error)

	// SignUp creates a new account. It does not authenticate; callers are
	// expected to sign in afterwards.
	SignUp(ctx context.Context, name string, email string, password string) error

	// UpdateUser changes profile fields on the server. Empty password fields
	// mean "leave the password alone".
	UpdateUser(ctx context.Context, name string, password string, oldPassword string) error

	Groups(ctx context.Context) ([]string, error)
	ExercisesByGroup(ctx context.Context, group string) ([]models.Exercise, error)
	Exercise(ctx context.Context, id string) (models.Exercise, error)

	// RegisterHistory marks an exercise as done now.
	RegisterHistory(ctx context.Context, exerciseID string) error

	// History returns completed exercises grouped by day, newest first.
	History(ctx context.Context) ([]models.HistoryDay, error)
}
