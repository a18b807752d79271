package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/user-management/pkg/config"
	"github.com/amirasaad/user-management/pkg/utils"
)

// ErrInvalidCredentials is returned when a username/password pair is rejected.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Strategy checks a username/password pair taken from a request.
type Strategy interface {
	Authenticate(ctx context.Context, username, password string) error
}

type Service struct {
	strategy Strategy
	logger   *slog.Logger
}

func New(
	strategy Strategy,
	logger *slog.Logger,
) *Service {
	return &Service{strategy: strategy, logger: logger}
}

// NewWithStatic builds a Service backed by the single account in cfg.
func NewWithStatic(
	cfg *config.Auth,
	logger *slog.Logger,
) (*Service, error) {
	strategy, err := NewStaticStrategy(cfg, logger)
	if err != nil {
		return nil, err
	}
	return New(strategy, logger), nil
}

// Authenticate reports whether username/password may access the API.
func (s *Service) Authenticate(
	ctx context.Context,
	username, password string,
) bool {
	log := s.logger.With("context", "Authenticate", "username", username)
	log.Debug("Authenticate called")
	if err := s.strategy.Authenticate(ctx, username, password); err != nil {
		log.Warn("Authentication failed", "error", err)
		return false
	}
	log.Debug("Authentication successful")
	return true
}

// StaticStrategy accepts exactly one configured account.
// The password is only ever held as a bcrypt hash.
type StaticStrategy struct {
	username     string
	passwordHash string
	logger       *slog.Logger
}

// NewStaticStrategy uses cfg.PasswordHash when set and hashes cfg.Password otherwise.
func NewStaticStrategy(
	cfg *config.Auth,
	logger *slog.Logger,
) (*StaticStrategy, error) {
	if cfg.Username == "" {
		return nil, errors.New("auth username must not be empty")
	}
	hash := cfg.PasswordHash
	if hash == "" {
		if cfg.Password == "" {
			return nil, errors.New("auth password or password hash must be set")
		}
		var err error
		hash, err = utils.HashPassword(cfg.Password)
		if err != nil {
			return nil, fmt.Errorf("hash auth password: %w", err)
		}
	}
	return &StaticStrategy{
		username:     cfg.Username,
		passwordHash: hash,
		logger:       logger,
	}, nil
}

func (s *StaticStrategy) Authenticate(
	_ context.Context,
	username, password string,
) error {
	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passwordOK := utils.CheckPasswordHash(password, s.passwordHash)
	if !usernameOK || !passwordOK {
		s.logger.Debug("Credentials rejected", "usernameOK", usernameOK)
		return ErrInvalidCredentials
	}
	return nil
}
