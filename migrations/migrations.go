// Package migrations embeds the goose SQL migrations so the server, the
// migrate command and the integration tests apply the same schema.
package migrations

import "embed"

// FS holds every *.sql migration in this directory.
//
//go:embed *.sql
var FS embed.FS
