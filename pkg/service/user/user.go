// Package user provides the business logic for the user resource.
// Every operation that targets an existing row loads it by primary key once;
// that load is the only source of "not found".
package user

import (
	"context"
	"log/slog"

	"github.com/amirasaad/user-management/pkg/domain/user"
	"github.com/amirasaad/user-management/pkg/dto"
	"github.com/amirasaad/user-management/pkg/mapper"
	userrepo "github.com/amirasaad/user-management/pkg/repository/user"
)

// Service orchestrates fetch, map, mutate and persist for users.
type Service struct {
	repo   userrepo.Repository
	logger *slog.Logger
}

// New creates a new Service with a repository and logger.
func New(
	repo userrepo.Repository,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListAll returns every user in repository order.
func (s *Service) ListAll(ctx context.Context) ([]*dto.UserDTO, error) {
	log := s.logger.With("context", "ListAll")
	log.Debug("ListAll called")
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		log.Error("Failed to load users", "error", err)
		return nil, err
	}
	log.Info("Users loaded", "count", len(users))
	return mapper.ToDTOs(users), nil
}

// GetByID returns the user with the given id.
func (s *Service) GetByID(ctx context.Context, id int64) (*dto.UserDTO, error) {
	u, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapper.ToDTO(u), nil
}

// GetByUsername returns the user with the given username.
func (s *Service) GetByUsername(ctx context.Context, username string) (*dto.UserDTO, error) {
	log := s.logger.With("context", "GetByUsername", "username", username)
	log.Debug("GetByUsername called")
	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		log.Error("Failed to load user", "error", err)
		return nil, err
	}
	if u == nil {
		log.Info("User not found")
		return nil, user.NotFoundByUsername(username)
	}
	return mapper.ToDTO(u), nil
}

// Create persists a new user built from in. Client supplied userId and
// createdAt are ignored. Store rejections, uniqueness included, are returned as is.
func (s *Service) Create(ctx context.Context, in *dto.UserDTO) (*dto.UserDTO, error) {
	log := s.logger.With("context", "Create", "username", in.Username)
	log.Debug("Create called")
	fields := mapper.ToEntity(in)
	u := user.New(fields.Username, fields.Email, fields.FirstName, fields.LastName)
	saved, err := s.repo.Save(ctx, u)
	if err != nil {
		log.Error("Failed to create user", "error", err)
		return nil, err
	}
	log.Info("User created", "userID", saved.ID)
	return mapper.ToDTO(saved), nil
}

// Update replaces username, email, firstName and lastName of an existing user.
// Absent optional fields in in clear the stored value.
func (s *Service) Update(ctx context.Context, id int64, in *dto.UserDTO) (*dto.UserDTO, error) {
	log := s.logger.With("context", "Update", "userID", id)
	log.Debug("Update called")
	existing, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Overwrite(mapper.ToEntity(in))
	saved, err := s.repo.Save(ctx, existing)
	if err != nil {
		log.Error("Failed to update user", "error", err)
		return nil, err
	}
	log.Info("User updated")
	return mapper.ToDTO(saved), nil
}

// Delete removes an existing user.
func (s *Service) Delete(ctx context.Context, id int64) error {
	log := s.logger.With("context", "Delete", "userID", id)
	log.Debug("Delete called")
	existing, err := s.findByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, existing); err != nil {
		log.Error("Failed to delete user", "error", err)
		return err
	}
	log.Info("User deleted")
	return nil
}

func (s *Service) findByID(ctx context.Context, id int64) (*user.User, error) {
	log := s.logger.With("context", "findByID", "userID", id)
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.Error("Failed to load user", "error", err)
		return nil, err
	}
	if u == nil {
		log.Info("User not found")
		return nil, user.NotFoundByID(id)
	}
	return u, nil
}
