package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/amirasaad/user-management/pkg/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMapGormErrorToDomain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "duplicate key maps to ErrAlreadyExists",
			input:    gorm.ErrDuplicatedKey,
			expected: user.ErrAlreadyExists,
		},
		{
			name:     "record not found maps to ErrUserNotFound",
			input:    gorm.ErrRecordNotFound,
			expected: user.ErrUserNotFound,
		},
		{
			name:     "joined duplicate key",
			input:    errors.Join(errors.New("outer error"), gorm.ErrDuplicatedKey),
			expected: user.ErrAlreadyExists,
		},
		{
			name:     "wrapped record not found",
			input:    fmt.Errorf("find: %w", gorm.ErrRecordNotFound),
			expected: user.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := MapGormErrorToDomain(tt.input)
			require.Error(t, result)
			assert.ErrorIs(t, result, tt.expected)
		})
	}
}

func TestMapGormErrorToDomain_Passthrough(t *testing.T) {
	t.Parallel()

	assert.NoError(t, MapGormErrorToDomain(nil))

	other := errors.New("connection refused")
	assert.Equal(t, other, MapGormErrorToDomain(other))
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, WrapError(func() error { return nil }))
	})

	t.Run("maps gorm errors", func(t *testing.T) {
		t.Parallel()
		err := WrapError(func() error { return gorm.ErrDuplicatedKey })
		assert.ErrorIs(t, err, user.ErrAlreadyExists)
	})

	t.Run("keeps custom errors", func(t *testing.T) {
		t.Parallel()
		err := WrapError(func() error { return errors.New("custom error") })
		require.Error(t, err)
		assert.Equal(t, "custom error", err.Error())
	})

	t.Run("does not catch panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			_ = WrapError(func() error { panic("test panic") })
		})
	})
}
