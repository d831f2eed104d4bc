// Command migrate applies, rolls back, or reports the embedded schema
// migrations.
//
// Usage:
//
//	migrate [up|down|status]
//
// The command defaults to up. Configuration is read like the server's.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/fpvlvr/esclavizador/internal/adapter/postgres"
	"github.com/fpvlvr/esclavizador/internal/app"
	"github.com/fpvlvr/esclavizador/internal/config"
)

func main() {
	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	m, err := postgres.NewMigrator(cfg.Database.DSN)
	if err != nil {
		logger.Error("open migrator", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer m.Close() //nolint:errcheck

	switch cmd {
	case "up":
		err = m.Up(ctx, logger)
	case "down":
		err = m.Down(ctx, logger)
	case "status":
		err = printStatus(ctx, m)
	default:
		fmt.Fprintln(os.Stderr, "Usage: migrate [up|down|status]")
		os.Exit(2)
	}
	if err != nil {
		logger.Error("migrate "+cmd, slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func printStatus(ctx context.Context, m *postgres.Migrator) error {
	statuses, err := m.Status(ctx)
	if err != nil {
		return err
	}
	for _, s := range statuses {
		applied := "pending"
		if !s.AppliedAt.IsZero() {
			applied = s.AppliedAt.UTC().Format(time.RFC3339)
		}
		fmt.Printf("%05d  %-10s  %s\n", s.Source.Version, s.State, applied)
	}
	return nil
}
