package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/daniilsolovey/blog-portal/internal/blogportal"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

type Managers struct {
	Blogs      *blogportal.BlogManager
	Comments   *blogportal.CommentManager
	Categories *blogportal.CategoryManager
	Catalog    *blogportal.CatalogManager
	Users      *blogportal.UserManager
}

// Pinger reports whether the storage is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Options struct {
	// MediaDir is served under /media when set.
	MediaDir string
	// MediaURL maps stored file references to public URLs.
	MediaURL func(ref string) string
	Pinger   Pinger
}

type Handler struct {
	blogs      *blogportal.BlogManager
	comments   *blogportal.CommentManager
	categories *blogportal.CategoryManager
	catalog    *blogportal.CatalogManager
	users      *blogportal.UserManager

	media    mediaURL
	mediaDir string
	pinger   Pinger
	metrics  *metrics
	log      *slog.Logger
}

func NewHandler(m Managers, opts Options, log *slog.Logger) *Handler {
	media := mediaURL(opts.MediaURL)
	if media == nil {
		media = func(ref string) string { return ref }
	}

	return &Handler{
		blogs:      m.Blogs,
		comments:   m.Comments,
		categories: m.Categories,
		catalog:    m.Catalog,
		users:      m.Users,
		media:      media,
		mediaDir:   opts.MediaDir,
		pinger:     opts.Pinger,
		metrics:    newMetrics(),
		log:        log,
	}
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name)
	}
	return id, nil
}

// Health handles GET /health
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *Handler) Health(c echo.Context) error {
	if h.pinger != nil {
		if err := h.pinger.Ping(c.Request().Context()); err != nil {
			h.log.ErrorContext(c.Request().Context(), "health check failed", "error", err)
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		}
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// SwaggerDoc serves the generated OpenAPI document.
func (h *Handler) SwaggerDoc(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(doc))
}
