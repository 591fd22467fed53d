// Package migrations embeds the goose SQL migrations so startup and e2e
// setup apply the same schema without a path on disk.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
