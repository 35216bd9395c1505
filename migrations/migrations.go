package migrations

import "embed"

// FS holds the SQL migrations applied by `doctalk migrate`.
//
//go:embed *.sql
var FS embed.FS
