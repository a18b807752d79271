package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/amirasaad/user-management/cmd/server/swagger"
	"github.com/amirasaad/user-management/infra/initializer"
	"github.com/amirasaad/user-management/pkg/app"
	"github.com/amirasaad/user-management/pkg/config"
	"github.com/amirasaad/user-management/webapi"
	log "github.com/charmbracelet/log"
)

const shutdownTimeout = 10 * time.Second

// @title User Management API
// @version 1.0.0
// @description CRUD API for users protected by HTTP Basic authentication
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @host localhost:8080
// @BasePath /
//
// @securityDefinitions.basic BasicAuth
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	// Initialize all dependencies
	deps, closeDB, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := closeDB(); err != nil {
			deps.Logger.Error("Failed to close database", "error", err)
		}
	}()
	logger := deps.Logger

	application, err := app.New(deps, cfg)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	// Setup Fiber app with all routes and middleware
	fiberApp := webapi.SetupApp(application)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server",
			"env", cfg.Env,
			"address", addr,
			"scheme", cfg.Server.Scheme,
		)
		errCh <- fiberApp.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("Shutting down server")
		return fiberApp.ShutdownWithTimeout(shutdownTimeout)
	}
}
