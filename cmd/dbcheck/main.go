// Command dbcheck verifies the configured database is reachable.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/AngelosGi/magical-inventory-systemApi/internal/config"
	"github.com/AngelosGi/magical-inventory-systemApi/internal/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolOptions{MaxConns: 1, MaxConnIdle: time.Minute, MaxConnLifetime: time.Minute})
	if err != nil {
		log.Fatalf("Database unreachable: %v", err)
	}
	defer pool.Close()

	result, err := database.CheckConnection(ctx, pool)
	if err != nil {
		log.Fatalf("Database check failed: %v", err)
	}
	fmt.Printf("Database %s@%s:%s/%s OK (probe returned %d)\n", cfg.DBUser, cfg.DBHost, cfg.DBPort, cfg.DBName, result)
}
