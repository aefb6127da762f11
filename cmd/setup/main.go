// Command setup creates the configured database if it is missing and
// applies all migrations to it.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/AngelosGi/magical-inventory-systemApi/internal/config"
	"github.com/AngelosGi/magical-inventory-systemApi/internal/database"
	"github.com/AngelosGi/magical-inventory-systemApi/internal/database/schema"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	if err := ensureDatabase(ctx, cfg); err != nil {
		log.Fatal(err)
	}
	if err := migrate(ctx, cfg); err != nil {
		log.Fatal(err)
	}

	fmt.Println("Setup completed successfully.")
}

// ensureDatabase connects to the server's maintenance database and creates
// cfg.DBName when it does not exist yet.
func ensureDatabase(ctx context.Context, cfg *config.Config) error {
	conn, err := pgx.Connect(ctx, cfg.GetServerConnString())
	if err != nil {
		return fmt.Errorf("unable to connect to postgres server: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}

	if exists {
		fmt.Printf("Database %s already exists.\n", cfg.DBName)
		return nil
	}

	fmt.Printf("Creating database %s...\n", cfg.DBName)
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.DBName}.Sanitize()); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	return nil
}

func migrate(ctx context.Context, cfg *config.Config) error {
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolOptions{MaxConns: 2, MaxConnIdle: time.Minute, MaxConnLifetime: time.Hour})
	if err != nil {
		return err
	}
	defer pool.Close()

	m, err := schema.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer m.Close()

	fmt.Println("Running migrations...")
	return m.Up(ctx)
}
