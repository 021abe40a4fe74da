// Package filex provides small filesystem helpers for client-local data.
package filex

import (
	"os"
	"path/filepath"
)

// EnsureDir creates dir (and parents) if needed and returns it.
func EnsureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}

// DefaultDataDir returns the per-user data directory for the client,
// creating it if necessary. It lives under the OS config dir, e.g.
// ~/.config/gymcli on Linux.
func DefaultDataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return EnsureDir(filepath.Join(base, "gymcli"))
}
