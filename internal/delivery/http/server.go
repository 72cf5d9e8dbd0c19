package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"userauth/config"
	"userauth/internal/delivery"
	httpmiddleware "userauth/internal/delivery/http/middleware"
	"userauth/internal/delivery/http/router"
	"userauth/internal/delivery/http/validator"
	"userauth/internal/delivery/middleware"
	"userauth/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc              fx.Lifecycle
	Cfg             *config.Config
	Logger          *slog.Logger
	ErrorMiddleware *httpmiddleware.ErrorMiddleware
	RouterParams    router.RouterParams
}

// NewServer builds the echo instance and registers its shutdown on the fx lifecycle.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer := NewEcho(params.Cfg, params.Logger, params.ErrorMiddleware)

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(echoServer)

	srv := &httpServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho returns an echo instance with the middleware chain, error handler and validator installed.
func NewEcho(cfg *config.Config, logger *slog.Logger, errorMiddleware *httpmiddleware.ErrorMiddleware) *echo.Echo {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// 1. Recover middleware first (to catch panics early)
	echoServer.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	echoServer.Use(middleware.NewRequestIDMiddleware(logger).Process)

	// 3. Logger middleware
	echoServer.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)

	// 4. CORS middleware
	echoServer.Use(echomiddleware.CORSWithConfig(corsConfig(cfg.CORS)))

	// 5. Request body size limit
	if cfg.HTTP.MaxRequestBodySize != "" {
		echoServer.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))
	}

	echoServer.HTTPErrorHandler = errorMiddleware.HandleHTTPError
	echoServer.Validator = validator.New()

	return echoServer
}

func corsConfig(cfg *config.CORSConfig) echomiddleware.CORSConfig {
	if cfg == nil || cfg.AllowOrigin == "" {
		return echomiddleware.DefaultCORSConfig
	}

	return echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.AllowOrigin},
		AllowMethods:     cfg.AllowMethods,
		AllowCredentials: cfg.AllowCredentials,
		ExposeHeaders:    []string{echo.HeaderXRequestID},
	}
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
