package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"pokerhands/config"
	"pokerhands/routes"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// ServeCmd runs the HTTP API.
type ServeCmd struct {
	Config   string `short:"c" default:"${config_file}" help:"Path to HCL configuration file"`
	EnvFile  string `default:".env" help:"Dotenv file loaded before reading the environment"`
	Addr     string `short:"a" help:"Address to bind, host:port (overrides config)"`
	LogLevel string `short:"l" help:"Log level: debug, info, warn, error (overrides config)"`
	Release  bool   `help:"Run gin in release mode"`
}

func (c *ServeCmd) Run() error {
	cfg, err := c.resolveConfig(os.Getenv)
	if err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           cfg.Level(),
		Prefix:          "pokerhands",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serve(ctx, cfg, logger)
}

// resolveConfig layers defaults, the HCL file, the environment and flags.
func (c *ServeCmd) resolveConfig(getenv func(string) string) (*config.Config, error) {
	if err := config.LoadDotEnv(c.EnvFile); err != nil {
		return nil, err
	}

	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.ApplyEnv(getenv); err != nil {
		return nil, err
	}

	if c.Addr != "" {
		host, port, err := net.SplitHostPort(c.Addr)
		if err != nil {
			return nil, fmt.Errorf("invalid --addr %q: %w", c.Addr, err)
		}
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid --addr port %q: %w", port, err)
		}
		cfg.Address, cfg.Port = host, p
	}
	if c.LogLevel != "" {
		cfg.LogLevel = c.LogLevel
	}
	if c.Release {
		cfg.Release = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newRouter(cfg *config.Config, logger *log.Logger, clock quartz.Clock) *gin.Engine {
	if cfg.Release {
		gin.SetMode(gin.ReleaseMode)
	}
	useLoggerForGinDebug(logger)

	r := gin.New()
	routes.SetupRoutes(r, routes.Options{
		Logger:       logger,
		Clock:        clock,
		AllowOrigins: cfg.AllowOrigins,
		Version:      version,
	})
	return r
}

// useLoggerForGinDebug sends gin's debug-mode messages and route table to
// logger at debug level. Must run before gin.New.
func useLoggerForGinDebug(logger *log.Logger) {
	gin.DebugPrintRouteFunc = func(method, path, handler string, handlers int) {
		logger.Debug("route", "method", method, "path", path, "handler", handler, "handlers", handlers)
	}
	gin.DebugPrintFunc = func(format string, values ...interface{}) {
		logger.Debug(strings.TrimSpace(fmt.Sprintf(format, values...)))
	}
}

// serve blocks until ctx is done, then drains in-flight requests.
func serve(ctx context.Context, cfg *config.Config, logger *log.Logger) error {
	srv := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           newRouter(cfg, logger, quartz.NewReal()),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Server started", "addr", srv.Addr, "release", cfg.Release)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
