package postgres

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

// EnsureSchema cria as tabelas do sistema caso ainda não existam. O DDL é
// idempotente (CREATE ... IF NOT EXISTS), então pode rodar a cada subida.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("criar esquema: %w", err)
	}
	return nil
}
