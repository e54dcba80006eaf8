// Package migrations embeds the goose SQL migrations for the client's
// local SQLite mirror.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
