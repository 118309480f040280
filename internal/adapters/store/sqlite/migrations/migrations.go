// Package migrations embeds the SQLite schema migrations.
package migrations

import "embed"

// Migrations holds the up/down SQL files in golang-migrate naming.
//
//go:embed *.sql
var Migrations embed.FS
