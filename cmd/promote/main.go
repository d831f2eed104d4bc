// Command promote changes the role of a user found by email. Without
// --role it grants boss, which is how an organization gets its first boss.
//
// Usage:
//
//	promote --email=user@example.com [--role=boss|worker]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fpvlvr/esclavizador/internal/adapter/postgres"
	"github.com/fpvlvr/esclavizador/internal/app"
	"github.com/fpvlvr/esclavizador/internal/config"
	"github.com/fpvlvr/esclavizador/internal/domain"
)

const setRoleSQL = `UPDATE users SET role = $2 WHERE lower(email) = lower($1) AND role <> $2`

func main() {
	email := flag.String("email", "", "email of the user to change")
	roleFlag := flag.String("role", string(domain.UserRoleBoss), "new role: boss or worker")
	flag.Parse()

	role := domain.UserRole(strings.ToLower(*roleFlag))
	if strings.TrimSpace(*email) == "" || !role.IsValid() {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com [--role=boss|worker]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	tag, err := pool.Exec(ctx, setRoleSQL, *email, role.String())
	if err != nil {
		logger.Error("update role", slog.String("email", *email), slog.String("error", err.Error()))
		os.Exit(1)
	}

	if tag.RowsAffected() == 0 {
		fmt.Printf("No user found with email %q, or already %s.\n", *email, role)
		os.Exit(1)
	}

	logger.Info("role changed", slog.String("email", *email), slog.String("role", role.String()))
}
