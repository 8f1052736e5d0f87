// Package migrations embeds the versioned SQL schema, one directory per driver.
package migrations

import "embed"

//go:embed postgres/*.sql mysql/*.sql
var Files embed.FS
