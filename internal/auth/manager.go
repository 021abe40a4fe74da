package auth

import (
	"context"
	"errors"

	"gymcli/internal/logging"
	"gymcli/internal/models"
	"gymcli/internal/repositories/credentials"
)

// IdentityClient is the slice of the backend API the Manager needs: the
// identity endpoints only.
type IdentityClient interface {
	SignIn(ctx context.Context, email string, password string) (models.User, string, error)
	SignUp(ctx context.Context, name string, email string, password string) error
}

// TokenInstaller is the capability to set or clear the default bearer
// credential on outbound requests. The Manager is its only writer.
type TokenInstaller interface {
	SetAuthToken(token string)
	ClearAuthToken()
}

var errIncompleteSession = errors.New("server returned an incomplete session")

// Manager orchestrates the session lifecycle. It is the sole writer of the
// Session, the sole caller of the credential store, and the sole user of the
// TokenInstaller.
type Manager struct {
	id        IdentityClient
	installer TokenInstaller
	store     credentials.Store
	session   *Session
	log       logging.Logger
}

func NewManager(id IdentityClient, installer TokenInstaller, store credentials.Store, session *Session, log logging.Logger) *Manager {
	return &Manager{id: id, installer: installer, store: store, session: session, log: log}
}

// Session returns the state container consumers observe.
func (m *Manager) Session() *Session {
	return m.session
}

// beginLoading raises the rehydrating flag and returns its release. The
// release runs on every exit path of an operation, so the flag can never be
// left stuck.
func (m *Manager) beginLoading() func() {
	m.session.update(func(st *State) { st.Rehydrating = true })
	return func() {
		m.session.update(func(st *State) { st.Rehydrating = false })
	}
}

// SignIn authenticates against the backend and, on success, persists the
// (user, token) pair, installs the token into the outbound headers and
// publishes the user, in that order. On any failure the session is left
// exactly as it was.
func (m *Manager) SignIn(ctx context.Context, email string, password string) error {
	done := m.beginLoading()
	defer done()

	user, token, err := m.id.SignIn(ctx, email, password)
	if err != nil {
		m.log.Warn(ctx, "sign-in failed", "error", err)
		return newAuthError(err, msgSignInFailed)
	}
	if user.IsZero() || token == "" {
		return newAuthError(errIncompleteSession, msgSignInFailed)
	}

	if err := m.store.SavePair(ctx, user, token); err != nil {
		m.log.Error(ctx, "persisting credentials failed", "error", err)
		return newAuthError(err, msgSignInFailed)
	}

	m.installer.SetAuthToken(token)
	m.session.update(func(st *State) { st.User = user })

	m.log.Info(ctx, "signed in", "user", user.ID)
	return nil
}

// SignUp creates the account and then signs in with the same credentials.
func (m *Manager) SignUp(ctx context.Context, name string, email string, password string) error {
	if err := m.id.SignUp(ctx, name, email, password); err != nil {
		m.log.Warn(ctx, "sign-up failed", "error", err)
		return newAuthError(err, msgSignUpFailed)
	}
	return m.SignIn(ctx, email, password)
}

// SignOut clears the session, the outbound credential and both stored
// entries. Removal failures are logged and do not stop the other removal;
// the caller always ends up signed out.
func (m *Manager) SignOut(ctx context.Context) {
	done := m.beginLoading()
	defer done()

	m.session.update(func(st *State) { st.User = models.User{} })
	m.installer.ClearAuthToken()

	if err := m.store.RemoveUser(ctx); err != nil {
		m.log.Warn(ctx, "failed to remove stored user", "error", err)
	}
	if err := m.store.RemoveToken(ctx); err != nil {
		m.log.Warn(ctx, "failed to remove stored token", "error", err)
	}

	m.log.Info(ctx, "signed out")
}

// UpdateUserProfile replaces the in-memory user first, so consumers see the
// change immediately, then persists it. The optimistic replacement is not
// rolled back when persistence fails; the failure is surfaced instead.
// The bearer token is not touched.
func (m *Manager) UpdateUserProfile(ctx context.Context, updated models.User) error {
	m.session.update(func(st *State) { st.User = updated })

	if err := m.store.SaveUser(ctx, updated); err != nil {
		m.log.Error(ctx, "persisting updated profile failed", "error", err)
		return newAuthError(err, msgProfileFailed)
	}
	return nil
}

// Rehydrate restores the session from the credential store. It runs once at
// process start and is the only path besides SignIn that can publish a user.
// Storage failures leave the session anonymous; the loading flag is cleared
// on every path.
func (m *Manager) Rehydrate(ctx context.Context) {
	done := m.beginLoading()
	defer done()

	user, err := m.store.User(ctx)
	if err != nil {
		m.log.Warn(ctx, "failed to read stored user", "error", err)
		return
	}
	token, err := m.store.Token(ctx)
	if err != nil {
		m.log.Warn(ctx, "failed to read stored token", "error", err)
		return
	}

	if user.IsZero() || token == "" {
		return
	}

	m.installer.SetAuthToken(token)
	m.session.update(func(st *State) { st.User = user })

	m.log.Info(ctx, "session rehydrated", "user", user.ID)
}
