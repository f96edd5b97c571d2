// Package migrations embeds goose SQL migrations of the session store.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
