// Package db holds the embedded database migrations.
package db

import "embed"

//go:embed migrations
var Migrations embed.FS
