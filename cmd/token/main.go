// Command token mints an access token for an existing, active user. Tokens
// are signed with the server's secret and carry the user's organization and
// role.
//
// Usage:
//
//	token --user=<uuid>
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/fpvlvr/esclavizador/internal/adapter/postgres"
	userrepo "github.com/fpvlvr/esclavizador/internal/adapter/postgres/user"
	"github.com/fpvlvr/esclavizador/internal/app"
	authpkg "github.com/fpvlvr/esclavizador/internal/auth"
	"github.com/fpvlvr/esclavizador/internal/config"
	authsvc "github.com/fpvlvr/esclavizador/internal/service/auth"
)

func main() {
	userFlag := flag.String("user", "", "id of the user to mint a token for")
	flag.Parse()

	userID, err := uuid.Parse(*userFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Usage: token --user=<uuid>")
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

	jwt := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTTL)
	svc := authsvc.NewService(logger, userrepo.New(pool), jwt)

	tok, err := svc.IssueToken(ctx, userID)
	if err != nil {
		logger.Error("issue token", slog.String("user_id", userID.String()), slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Println(tok)
}
