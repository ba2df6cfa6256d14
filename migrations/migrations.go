// Package migrations содержит SQL-схему сервиса
package migrations

import (
	"context"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// FS содержит файлы миграций
//
//go:embed *.sql
var FS embed.FS

// InitSchemaUp имя миграции, создающей схему
const InitSchemaUp = "000001_init_schema.up.sql"

// InitSchemaDown имя миграции, удаляющей схему
const InitSchemaDown = "000001_init_schema.down.sql"

// Execer выполняет SQL без результата (pgxpool.Pool, pgx.Conn, pgx.Tx)
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// Apply выполняет миграцию из FS по имени файла
func Apply(ctx context.Context, db Execer, name string) error {
	script, err := FS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read migration %s: %w", name, err)
	}

	if _, err := db.Exec(ctx, string(script)); err != nil {
		return fmt.Errorf("apply migration %s: %w", name, err)
	}
	return nil
}
