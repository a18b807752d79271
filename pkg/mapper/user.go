// Package mapper converts between domain entities and their wire DTOs.
package mapper

import (
	"github.com/amirasaad/user-management/pkg/domain/user"
	"github.com/amirasaad/user-management/pkg/dto"
)

// ToDTO copies an entity into its wire form.
func ToDTO(u *user.User) *dto.UserDTO {
	if u == nil {
		return nil
	}
	out := &dto.UserDTO{
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
	if u.ID != 0 {
		id := u.ID
		out.UserID = &id
	}
	if !u.CreatedAt.IsZero() {
		createdAt := u.CreatedAt
		out.CreatedAt = &createdAt
	}
	return out
}

// ToEntity copies the client-writable fields of d into a new entity.
// UserID and CreatedAt are never taken from the wire.
func ToEntity(d *dto.UserDTO) *user.User {
	if d == nil {
		return nil
	}
	return &user.User{
		Username:  d.Username,
		Email:     d.Email,
		FirstName: d.FirstName,
		LastName:  d.LastName,
	}
}

// ToDTOs maps a slice of entities, preserving order. The result is never nil.
func ToDTOs(users []*user.User) []*dto.UserDTO {
	out := make([]*dto.UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, ToDTO(u))
	}
	return out
}
