// Package migrations хранит SQL-миграции, вшитые в бинарник
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
