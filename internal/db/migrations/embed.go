// Package migrations holds the goose migrations of the sessions schema.
// Pass FS to pg.WithMigrationsFS with MigrationsPath set to ".".
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
