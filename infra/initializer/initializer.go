package initializer

import (
	"fmt"

	"github.com/amirasaad/user-management/infra"
	infrauser "github.com/amirasaad/user-management/infra/repository/user"
	"github.com/amirasaad/user-management/internal/migrations"
	"github.com/amirasaad/user-management/pkg/app"
	"github.com/amirasaad/user-management/pkg/config"
)

// InitializeDependencies initializes all the application dependencies.
// The returned close function releases the database pool.
func InitializeDependencies(cfg *config.App) (
	deps *app.Deps,
	closeFn func() error,
	err error,
) {
	deps = &app.Deps{}
	logger := setupLogger(cfg.Log)
	deps.Logger = logger

	// Initialize database
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get database handle: %w", err)
	}

	if cfg.DB.Migrate {
		logger.Info("Applying database migrations")
		if err := migrations.Up(sqlDB); err != nil {
			_ = sqlDB.Close()
			return nil, nil, fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	deps.UserRepository = infrauser.New(db)
	return deps, sqlDB.Close, nil
}
