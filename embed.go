// Package myblog embeds files that must ship inside the binary.
package myblog

import "embed"

// Migrations holds the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
