// Command app runs the magic items inventory HTTP API.
//
//go:generate swag init -g cmd/app/main.go -d ../../ -o ../../docs
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/AngelosGi/magical-inventory-systemApi/internal/config"
	"github.com/AngelosGi/magical-inventory-systemApi/internal/database"
	"github.com/AngelosGi/magical-inventory-systemApi/internal/database/postgres"
	"github.com/AngelosGi/magical-inventory-systemApi/internal/item"
	"github.com/AngelosGi/magical-inventory-systemApi/internal/server"

	_ "github.com/AngelosGi/magical-inventory-systemApi/docs"
)

const shutdownTimeout = 10 * time.Second

// @title			Magic Items Inventory API
// @version		1.0
// @description	CRUD, stock, search and statistics over a magic items inventory.
// @BasePath		/
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	initLogger(cfg)
	for _, w := range cfg.Warnings() {
		slog.Warn("Configuration warning", "detail", w)
	}

	if err := run(cfg); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBPoolOptions())
	if err != nil {
		return err
	}
	defer pool.Close()

	repo := postgres.NewItemRepository(pool)
	itemService := item.NewService(repo)
	srv := server.NewServer(cfg, pool, itemService)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Stop(shutdownCtx)
	})

	return g.Wait()
}
