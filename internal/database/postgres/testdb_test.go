package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/AngelosGi/magical-inventory-systemApi/internal/database"
	"github.com/AngelosGi/magical-inventory-systemApi/internal/database/schema"
)

// TestDatabase is a disposable Postgres with the magic_items schema applied.
type TestDatabase struct {
	Pool      *pgxpool.Pool
	ConnStr   string
	container *postgres.PostgresContainer
}

// StartTestDatabase launches a postgres:15-alpine container and migrates it.
// It returns an error rather than panicking when Docker is unavailable.
func StartTestDatabase(ctx context.Context) (tdb *TestDatabase, err error) {
	defer func() {
		if r := recover(); r != nil {
			tdb = nil
			err = fmt.Errorf("container runtime unavailable: %v", r)
		}
	}()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	pool, err := database.NewPool(ctx, connStr, database.PoolOptions{MaxConns: 5, MaxConnIdle: time.Minute, MaxConnLifetime: time.Hour})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	migrator, err := schema.NewMigrator(pool)
	if err != nil {
		pool.Close()
		_ = container.Terminate(ctx)
		return nil, err
	}
	defer migrator.Close()

	if err := migrator.Up(ctx); err != nil {
		pool.Close()
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &TestDatabase{Pool: pool, ConnStr: connStr, container: container}, nil
}

// Truncate empties magic_items and restarts its id sequence.
func (d *TestDatabase) Truncate(ctx context.Context) error {
	_, err := d.Pool.Exec(ctx, "TRUNCATE TABLE "+tableMagicItems+" RESTART IDENTITY")
	return err
}

// Close releases the pool and terminates the container.
func (d *TestDatabase) Close(ctx context.Context) error {
	d.Pool.Close()
	return d.container.Terminate(ctx)
}
