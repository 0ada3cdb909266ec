// Package migrations хранит SQL-миграции схемы и встраивает их в бинарник,
// чтобы сервер не зависел от рабочей директории при старте.
package migrations

import "embed"

// Postgres — миграции для PostgreSQL, каталог postgres/.
//
//go:embed postgres/*.sql
var Postgres embed.FS

// PostgresDir — путь к миграциям внутри Postgres.
const PostgresDir = "postgres"
