// Package user holds the User entity and the errors raised about it.
package user

import (
	"time"
)

// User is the persisted user record.
type User struct {
	ID        int64
	Username  string
	Email     string
	FirstName *string
	LastName  *string
	CreatedAt time.Time
}

// New returns a user with CreatedAt stamped to the current instant, truncated
// to the microsecond precision of the created_at column.
// ID stays zero until the store assigns one.
func New(username, email string, firstName, lastName *string) *User {
	return &User{
		Username:  username,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

// Overwrite replaces the mutable fields of u with those of other.
// ID and CreatedAt are left untouched.
func (u *User) Overwrite(other *User) {
	u.Username = other.Username
	u.Email = other.Email
	u.FirstName = other.FirstName
	u.LastName = other.LastName
}
