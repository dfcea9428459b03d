package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/Gunvolt24/dance_center/internal/ports"
	"github.com/Gunvolt24/dance_center/migrations"
)

// Migrate — применяет встроенные миграции goose через соединения пула.
// Возвращает число применённых миграций (0 — схема уже актуальна).
func Migrate(ctx context.Context, pool *pgxpool.Pool, log ports.Logger) (int, error) {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return 0, fmt.Errorf("goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("goose up: %w", err)
	}
	for _, res := range results {
		log.Infof(ctx, "migration applied: %s (%s)", res.Source.Path, res.Duration)
	}
	return len(results), nil
}
