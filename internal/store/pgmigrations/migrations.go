// Package pgmigrations embeds the goose migrations for the hosted
// (PostgreSQL) backend.
package pgmigrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
