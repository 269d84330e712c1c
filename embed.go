// Package gemflush exposes embedded assets shared by the application
// commands, currently the database migration files.
package gemflush

import "embed"

// Migrations contains the goose SQL migration files applied by the migrate
// subcommand.
//
//go:embed migrations/*.sql
var Migrations embed.FS
