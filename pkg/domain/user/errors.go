package user

import (
	"errors"
	"fmt"
)

var (
	// ErrUserNotFound is matched by every NotFoundError.
	ErrUserNotFound = errors.New("user not found")
	// ErrAlreadyExists is returned when the store rejects a duplicate username or email.
	ErrAlreadyExists = errors.New("user already exists")
)

// NotFoundError reports a lookup by a unique key that yielded no row.
type NotFoundError struct {
	Key   string
	Value any
}

// NotFoundByID builds the error raised when no user has the given id.
func NotFoundByID(id int64) *NotFoundError {
	return &NotFoundError{Key: "ID", Value: id}
}

// NotFoundByUsername builds the error raised when no user has the given username.
func NotFoundByUsername(username string) *NotFoundError {
	return &NotFoundError{Key: "username", Value: username}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("User with %s %v not found", e.Key, e.Value)
}

// Is lets errors.Is(err, ErrUserNotFound) match any NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrUserNotFound
}
