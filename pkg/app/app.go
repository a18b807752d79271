package app

import (
	"log/slog"

	"github.com/amirasaad/user-management/pkg/config"
	userrepo "github.com/amirasaad/user-management/pkg/repository/user"
	"github.com/amirasaad/user-management/pkg/service/auth"
	"github.com/amirasaad/user-management/pkg/service/user"
)

// Deps contains the infrastructure the services are built on
type Deps struct {
	UserRepository userrepo.Repository
	Logger         *slog.Logger
}

type App struct {
	Deps        *Deps
	Config      *config.App
	AuthService *auth.Service
	UserService *user.Service
}

func New(deps *Deps, cfg *config.App) (*App, error) {
	authSvc, err := auth.NewWithStatic(cfg.Auth, deps.Logger)
	if err != nil {
		return nil, err
	}
	return &App{
		Deps:        deps,
		Config:      cfg,
		AuthService: authSvc,
		UserService: user.New(deps.UserRepository, deps.Logger),
	}, nil
}
