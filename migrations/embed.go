// Package migrations embeds the SQL migration files so they can be run
// through the goose programmatic API at server bootstrap and in tests.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
