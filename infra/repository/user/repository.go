package user

import (
	"context"
	"errors"

	"github.com/amirasaad/user-management/infra/repository"
	domain "github.com/amirasaad/user-management/pkg/domain/user"
	userrepo "github.com/amirasaad/user-management/pkg/repository/user"
	"gorm.io/gorm"
)

type gormRepository struct {
	db *gorm.DB
}

// New returns a gorm backed user repository.
func New(db *gorm.DB) userrepo.Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) FindAll(
	ctx context.Context,
) ([]*domain.User, error) {
	var models []User
	if err := r.db.WithContext(
		ctx,
	).Find(&models).Error; err != nil {
		return nil, repository.MapGormErrorToDomain(err)
	}

	result := make([]*domain.User, 0, len(models))
	for i := range models {
		result = append(result, mapModelToDomain(&models[i]))
	}
	return result, nil
}

func (r *gormRepository) FindByID(
	ctx context.Context,
	id int64,
) (*domain.User, error) {
	var m User
	if err := r.db.WithContext(
		ctx,
	).First(&m, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, repository.MapGormErrorToDomain(err)
	}
	return mapModelToDomain(&m), nil
}

func (r *gormRepository) FindByUsername(
	ctx context.Context,
	username string,
) (*domain.User, error) {
	var m User
	if err := r.db.WithContext(
		ctx,
	).Where("username = ?", username).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, repository.MapGormErrorToDomain(err)
	}
	return mapModelToDomain(&m), nil
}

func (r *gormRepository) Save(
	ctx context.Context,
	u *domain.User,
) (*domain.User, error) {
	m := mapDomainToModel(u)
	if err := repository.WrapError(func() error {
		return r.db.WithContext(ctx).Save(m).Error
	}); err != nil {
		return nil, err
	}
	u.ID = m.ID
	return mapModelToDomain(m), nil
}

func (r *gormRepository) Delete(
	ctx context.Context,
	u *domain.User,
) error {
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Delete(&User{}, u.ID).Error
	})
}

var _ userrepo.Repository = (*gormRepository)(nil)
