// Package repository holds the gorm adapters behind the repository contracts
// and the translation of gorm errors into domain errors.
package repository

import (
	"errors"

	"github.com/amirasaad/user-management/pkg/domain/user"
	"gorm.io/gorm"
)

// MapGormErrorToDomain converts GORM errors to domain errors.
// Traverses the error chain to find GORM errors and maps them to the matching domain error.
// Unique constraint violations only surface as gorm.ErrDuplicatedKey when the
// connection is opened with TranslateError.
func MapGormErrorToDomain(err error) error {
	if err == nil {
		return nil
	}

	currentErr := err
	for currentErr != nil {
		switch {
		case errors.Is(currentErr, gorm.ErrDuplicatedKey):
			return user.ErrAlreadyExists
		case errors.Is(currentErr, gorm.ErrRecordNotFound):
			return user.ErrUserNotFound
		}

		currentErr = errors.Unwrap(currentErr)
	}

	// Return original error if no mapping found
	return err
}

// WrapError runs a GORM operation and maps its error.
//
// Usage:
//
//	err := WrapError(func() error {
//	    return r.db.WithContext(ctx).Save(m).Error
//	})
func WrapError(op func() error) error {
	return MapGormErrorToDomain(op())
}
