package user

import (
	"context"

	"github.com/amirasaad/user-management/pkg/domain/user"
)

// Repository defines the persistence boundary for users.
// Id generation and username/email uniqueness belong to the implementation.
type Repository interface {
	// FindAll returns every user in store order.
	FindAll(ctx context.Context) ([]*user.User, error)

	// FindByID returns the user with the given id, or nil when there is none.
	FindByID(ctx context.Context, id int64) (*user.User, error)

	// FindByUsername returns the user with the given username, or nil when there is none.
	FindByUsername(ctx context.Context, username string) (*user.User, error)

	// Save inserts u when its ID is zero and updates it otherwise.
	// On insert the generated ID is written back to u.
	Save(ctx context.Context, u *user.User) (*user.User, error)

	// Delete removes u from the store.
	Delete(ctx context.Context, u *user.User) error
}
