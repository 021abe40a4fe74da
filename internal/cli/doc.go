// Package cli provides the interactive gym client.
//
// It wires configuration, the local credential store, the API client and the
// authentication session manager into a REPL. On startup the app rehydrates
// the session from local storage, so a previously signed-in user lands
// directly in the authenticated command set.
//
// Key commands:
//   - register / login / logout
//   - groups, exercises <group>, show <id>
//   - done <id>, history
//   - profile, whoami
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
