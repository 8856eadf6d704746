// Package migrations embeds the Oracle schema the seeder writes into.
package migrations

import "embed"

//go:embed *.up.sql
var FS embed.FS
