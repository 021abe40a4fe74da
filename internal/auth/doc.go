// Package auth owns the client's authentication session.
//
// # Overview
//
// The package provides:
//  1. Session, the in-memory state container holding the current user and
//     the rehydration/loading flag. Consumers read snapshots; only the
//     Manager can mutate it.
//  2. Manager, the orchestrator of SignIn, SignUp, SignOut,
//     UpdateUserProfile and the one-time startup Rehydrate. It is the sole
//     writer of the Session, the sole caller of the credential store and the
//     sole user of the outbound-credential capability.
//
// # Invariants
//
// A user is present in the Session if and only if a bearer token has been
// installed into the request layer by the same operation; the two are never
// observable apart. Every operation clears the loading flag on every exit
// path, success or failure.
//
// # Error Handling
//
// SignIn, SignUp and UpdateUserProfile fail with *AuthError, whose Message
// can be shown to the user as-is: a server-declared message passes through
// verbatim, anything else gets a generic fallback. SignOut and Rehydrate
// treat storage failures as non-fatal and only log them.
package auth
