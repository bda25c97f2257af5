package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/daniilsolovey/blog-portal/config"
	"github.com/daniilsolovey/blog-portal/internal/auth"
	"github.com/daniilsolovey/blog-portal/internal/blogportal"
	"github.com/daniilsolovey/blog-portal/internal/db"
	"github.com/daniilsolovey/blog-portal/internal/mail"
	"github.com/daniilsolovey/blog-portal/internal/media"
	"github.com/daniilsolovey/blog-portal/internal/rest"
	"github.com/daniilsolovey/blog-portal/internal/rpc"
	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"
)

const rpcPath = "/v1/rpc"

type App struct {
	DB     *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config *config.Config
}

func New(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) *App {
	repo := db.New(dbConnect)
	store := blogportal.NewStore(repo)
	images := media.New(media.Config{Dir: cfg.Media.Dir, BaseURL: cfg.Media.BaseURL})
	tokens := auth.NewTokenService(auth.Config{
		Secret:         cfg.Auth.Secret,
		AccessTokenTTL: cfg.Auth.AccessTokenTTL.Duration,
		ResetTokenTTL:  cfg.Auth.ResetTokenTTL.Duration,
	})
	mailer := mail.New(mail.Config{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
	}, logger)

	managers := rest.Managers{
		Blogs:      blogportal.NewBlogManager(store, images, logger),
		Comments:   blogportal.NewCommentManager(store),
		Categories: blogportal.NewCategoryManager(store),
		Catalog:    blogportal.NewCatalogManager(store),
		Users: blogportal.NewUserManager(store, tokens, mailer, images, blogportal.UserManagerConfig{
			SiteName:    cfg.Site.Name,
			FrontendURL: cfg.Site.FrontendURL,
		}, logger),
	}

	handler := rest.NewHandler(managers, rest.Options{
		MediaDir: images.Dir(),
		MediaURL: images.URL,
		Pinger:   repo,
	}, logger)

	e := echo.New()
	handler.RegisterRoutes(e)

	rpcServer := rpc.New(logger, managers.Blogs, managers.Categories, managers.Catalog, images.URL)
	e.Any(rpcPath, echo.WrapHandler(rpcServer))

	return &App{
		DB:     repo,
		Logger: logger,
		Echo:   e,
		Config: cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", a.Config.App.Host, a.Config.App.Port)
	a.Logger.InfoContext(ctx, "starting server", "addr", addr)

	err := a.Echo.Start(addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
