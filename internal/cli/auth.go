package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"gymcli/internal/auth"
	"gymcli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errPasswordMismatch = errors.New("the password confirmation does not match")

// printErr shows a failure to the user. AuthError messages are displayable
// as-is; anything else gets a terse generic line.
func printErr(err error) {
	var authErr *auth.AuthError
	if errors.As(err, &authErr) {
		printlnFn("Error:", authErr.Message)
		return
	}
	printlnFn("Error:", err.Error())
}

// Login prompts for credentials and signs in through the session manager.
// The password bytes are wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.SignIn(ctx, email, string(password)); err != nil {
		printErr(err)
		return err
	}

	printlnFn(fmt.Sprintf("Signed in as %s", a.auth.Session().User().Name))
	return nil
}

// Register prompts for the new account details, creates the account and
// signs in. Matching password confirmation is checked locally before any
// network call.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(os.Stdout, "Confirm password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if string(password) != string(confirm) {
		printlnFn("Error:", errPasswordMismatch.Error())
		return errPasswordMismatch
	}

	if err := a.auth.SignUp(ctx, name, email, string(password)); err != nil {
		printErr(err)
		return err
	}

	printlnFn("Success!")
	return nil
}

// Logout signs the current user out. It never fails from the user's point
// of view; storage cleanup problems are logged by the manager.
func (a *App) Logout(ctx context.Context) error {
	a.auth.SignOut(ctx)
	printlnFn("Signed out.")
	return nil
}

// Profile updates the display name (and optionally the password) on the
// server, then publishes the new user record through the session manager.
func (a *App) Profile(ctx context.Context) error {
	current := a.auth.Session().User()
	if current.IsZero() {
		printlnFn("Not signed in.")
		return nil
	}

	name, err := getSimpleText(a.reader, fmt.Sprintf("Enter new name (empty keeps %q)", current.Name), os.Stdout)
	if err != nil {
		return err
	}
	if name == "" {
		name = current.Name
	}

	password, err := getPassword(os.Stdout, "Enter new password (empty keeps current)")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	var oldPassword []byte
	if len(password) > 0 {
		oldPassword, err = getPassword(os.Stdout, "Enter current password")
		if err != nil {
			return err
		}
		defer common.WipeByteArray(oldPassword)
	}

	if err := a.apiClient.UpdateUser(ctx, name, string(password), string(oldPassword)); err != nil {
		printErr(err)
		return err
	}

	updated := current
	updated.Name = name
	if err := a.auth.UpdateUserProfile(ctx, updated); err != nil {
		printErr(err)
		return err
	}

	printlnFn("Profile updated.")
	return nil
}

// WhoAmI prints the current identity and, when the bearer token is a JWT,
// its expiry time.
func (a *App) WhoAmI(ctx context.Context) error {
	user := a.auth.Session().User()
	if user.IsZero() {
		printlnFn("Not signed in.")
		return nil
	}

	printlnFn(fmt.Sprintf("%s <%s> (id %s)", user.Name, user.Email, user.ID))
	if exp, ok := auth.TokenExpiry(a.apiClient.AuthToken()); ok {
		printlnFn("Session expires:", exp.Format(time.RFC1123))
	}
	return nil
}
