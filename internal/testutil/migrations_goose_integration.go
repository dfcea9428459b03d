//go:build integration

package testutil

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	pgrepo "github.com/Gunvolt24/dance_center/internal/repo/postgres"
	"github.com/Gunvolt24/dance_center/pkg/logger"
)

// ApplyMigrationsGoose — накатывает встроенные миграции (migrations.FS) тем же путём,
// что и сервер при DANCE_POSTGRES_AUTO_MIGRATE=true.
func ApplyMigrationsGoose(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pgrepo.Migrate(ctx, pool, logger.NewNop()); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
