package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
	"github.com/golang-cz/devslog"
	"github.com/joho/godotenv"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/blog-portal/config"
	"github.com/daniilsolovey/blog-portal/internal/app"
	"github.com/daniilsolovey/blog-portal/internal/db"
)

var (
	flConfig      = flag.String("config", "config.toml", "path to TOML configuration file (CONFIG)")
	flDebug       = flag.Bool("debug", false, "enable debug mode (DEBUG)")
	flMigrate     = flag.Bool("migrate", true, "apply database migrations on start (MIGRATE)")
	flDatabaseURL = flag.String("database-url", "", "database connection URL, overrides the config file (DATABASE_URL)")
	cfg           config.Config
	lg            *slog.Logger
)

// @title Blog Portal API
// @version 1.0
// @description Blog publishing backend: blogs, comments, categories and user accounts
// @host localhost:3000
// @BasePath /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization

func main() {
	envErr := godotenv.Load()
	flag.Parse()

	lg = newLogger(*flDebug)
	if envErr != nil {
		lg.Debug("no .env file loaded", "error", envErr)
	}

	_, err := toml.DecodeFile(*flConfig, &cfg)
	if err != nil {
		exitOnError(err)
	}

	if *flDatabaseURL != "" {
		opt, err := pg.ParseURL(*flDatabaseURL)
		if err != nil {
			exitOnError(fmt.Errorf("parse database URL: %w", err))
		}
		cfg.Database = *opt
	}

	ctx := context.Background()
	if *flMigrate {
		if err := db.Migrate(ctx, &cfg.Database); err != nil {
			exitOnError(err)
		}
	}

	dbc := pg.Connect(&cfg.Database)
	if err := dbc.Ping(ctx); err != nil {
		dbc.Close()
		exitOnError(err)
	}
	if cfg.LogQueries {
		dbc.AddQueryHook(db.NewQueryHook(lg))
	}

	service := app.New(&cfg, dbc, lg)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}

	if err := dbc.Close(); err != nil {
		lg.Error("close database failed", "error", err)
	}
}

func newLogger(debug bool) *slog.Logger {
	if debug {
		return slog.New(devslog.NewHandler(os.Stdout, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{
				AddSource: true,
				Level:     slog.LevelDebug,
			},
		}))
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
