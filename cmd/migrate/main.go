// Command migrate applies or inspects the embedded schema migrations.
//
// Usage: migrate [up|down|status|reset|version]
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/AngelosGi/magical-inventory-systemApi/internal/config"
	"github.com/AngelosGi/magical-inventory-systemApi/internal/database"
	"github.com/AngelosGi/magical-inventory-systemApi/internal/database/schema"
)

func main() {
	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	if err := run(context.Background(), cmd); err != nil {
		log.Fatalf("migrate %s: %v", cmd, err)
	}
}

func run(ctx context.Context, cmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBPoolOptions())
	if err != nil {
		return err
	}
	defer pool.Close()

	m, err := schema.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer m.Close()

	switch cmd {
	case "up":
		return m.Up(ctx)
	case "down":
		return m.Down(ctx)
	case "reset":
		return m.Reset(ctx)
	case "version":
		v, err := m.Version(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Current version: %d\n", v)
		return nil
	case "status":
		statuses, err := m.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			applied := "pending"
			if !s.AppliedAt.IsZero() {
				applied = s.AppliedAt.Format("2006-01-02 15:04:05")
			}
			fmt.Printf("%-40s %s\n", s.Source.Path, applied)
		}
		return nil
	default:
		return fmt.Errorf("unknown command %q (want up, down, status, reset or version)", cmd)
	}
}
