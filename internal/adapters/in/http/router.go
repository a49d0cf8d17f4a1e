package http

import (
	"context"
	"log/slog"
	"net/http"

	"restaurant/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig carries everything NewRouter wires into the echo instance.
type RouterConfig struct {
	Server   *Server
	OpenAPI  *OpenAPI
	Token    TokenConfig
	Resolver CallerResolver
	Ensurer  PrincipalEnsurer
	Logger   *slog.Logger

	// Ping reports storage health for GET /health. Optional.
	Ping func(ctx context.Context) error
}

// NewRouter builds the echo instance serving the API, its documentation and
// the health probe.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(cfg.Logger)

	e.Use(middleware.Recover())
	e.Use(requestLogger(cfg.Logger))
	e.Use(Trace())

	e.GET("/health", func(c echo.Context) error {
		if cfg.Ping != nil {
			if err := cfg.Ping(c.Request().Context()); err != nil {
				return c.String(http.StatusServiceUnavailable, "Unhealthy")
			}
		}
		return c.String(http.StatusOK, "Healthy")
	})

	cfg.OpenAPI.RegisterSwagger()
	e.GET("/api/openapi.json", cfg.OpenAPI.ServeJSON)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("",
		Authenticate(cfg.Token, cfg.Resolver, cfg.Ensurer),
		cfg.OpenAPI.Validator(),
	)
	servers.RegisterHandlers(api, cfg.Server)

	return e
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}
