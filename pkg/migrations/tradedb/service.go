// Package tradedb holds all the migrations for the trade server database
package tradedb

import (
	"github.com/uptrace/bun/migrate"
)

// Migrations is the collection of all migrations for the trade server database
var Migrations = migrate.NewMigrations()
