package rest

import (
	"log/slog"

	_ "github.com/daniilsolovey/blog-portal/docs"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	healthPath  = "/health"
	metricsPath = "/metrics"
	swaggerPath = "/swagger/doc.json"
	mediaPrefix = "/media"
)

// RegisterRoutes installs middleware, error handling and every API route on e.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.HideBanner = true
	e.Validator = newRequestValidator()
	e.HTTPErrorHandler = h.httpErrorHandler

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(
		h.loggingMiddleware(),
		middleware.Recover(),
		h.metrics.middleware,
		h.authenticate,
	)

	h.registerSystemRoutes(e)
	h.registerBlogRoutes(e)
	h.registerUserRoutes(e)
}

func (h *Handler) registerSystemRoutes(e *echo.Echo) {
	e.GET(healthPath, h.Health)
	e.GET(metricsPath, echo.WrapHandler(h.metrics.handler()))
	e.GET(swaggerPath, h.SwaggerDoc)

	if h.mediaDir != "" {
		e.Static(mediaPrefix, h.mediaDir)
	}
}

func (h *Handler) registerBlogRoutes(e *echo.Echo) {
	blogs := e.Group("/blogs")
	blogs.GET("", h.Blogs)
	blogs.POST("", h.CreateBlog)

	blogs.GET("/categories", h.Categories)
	blogs.POST("/categories", h.CreateCategory)
	blogs.GET("/categories/:id", h.CategoryByID)
	blogs.DELETE("/categories/:id", h.DeleteCategory)

	blogs.GET("/:id", h.BlogByID)
	blogs.PUT("/:id", h.UpdateBlog)
	blogs.DELETE("/:id", h.DeleteBlog)

	blogs.GET("/:id/comments", h.Comments)
	blogs.POST("/:id/comments", h.CreateComment)
	blogs.PUT("/:id/comments/:commentId", h.UpdateComment)
	blogs.DELETE("/:id/comments/:commentId", h.DeleteComment)
	blogs.POST("/:id/comments/:commentId/like", h.LikeComment)
	blogs.POST("/:id/comments/:commentId/dislike", h.DislikeComment)

	e.GET("/menu", h.Menu)
	e.GET("/tags", h.Tags)
}

func (h *Handler) registerUserRoutes(e *echo.Echo) {
	users := e.Group("/users")
	users.POST("/register", h.Register)
	users.POST("/token", h.Login)
	users.GET("/profile", h.Profile)
	users.PUT("/profile", h.UpdateProfile)
	users.POST("/profile/image", h.UploadProfileImage)
	users.POST("/change-password", h.ChangePassword)
	users.POST("/reset-password", h.ResetPassword)
	users.POST("/reset-password/confirm", h.ConfirmResetPassword)
}

func (h *Handler) loggingMiddleware() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= 500 {
				level = slog.LevelError
			}

			h.log.Log(c.Request().Context(), level, "HTTP request",
				"method", v.Method,
				"path", v.URI,
				"status", v.Status,
				"duration_ms", v.Latency.Milliseconds(),
				"remote_addr", v.RemoteIP,
			)
			return nil
		},
	})
}
