// Package migrations embeds the goose migrations for the credential database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
