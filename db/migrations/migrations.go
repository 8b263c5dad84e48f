package migrations

import "embed"

// FS embeds the SQL migrations of the simulator schema. golang-migrate
// reads them through the iofs driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version main migrates to.
const Version = 1
