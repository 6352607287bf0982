// Package migrations embeds the browser storage schema.
package migrations

import "embed"

// FS holds the SQL migration files applied in name order.
//
//go:embed *.sql
var FS embed.FS
