// Package litemigrations embeds the goose migrations for the local (SQLite)
// backend.
package litemigrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
