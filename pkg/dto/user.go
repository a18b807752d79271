package dto

import (
	"time"
)

// UserDTO is the wire representation of a user.
// UserID and CreatedAt are set by the server and ignored on writes.
type UserDTO struct {
	UserID    *int64     `json:"userId" example:"1"`
	Username  string     `json:"username" validate:"notblank,min=3,max=50" example:"alice"`
	Email     string     `json:"email" validate:"notblank,email" example:"alice@example.com"`
	FirstName *string    `json:"firstName" validate:"omitempty,max=50" example:"Alice"`
	LastName  *string    `json:"lastName" validate:"omitempty,max=50" example:"Liddell"`
	CreatedAt *time.Time `json:"createdAt"`
}

var userMessages = map[string]string{
	"username.notblank": "Username is required",
	"username.min":      "Username must be between 3 and 50 characters",
	"username.max":      "Username must be between 3 and 50 characters",
	"email.notblank":    "Email is required",
	"email.email":       "Email must be a valid email address",
	"firstName.max":     "First name must not be greater than 50 characters",
	"lastName.max":      "Last name must not be greater than 50 characters",
}

// ValidationMessages maps "<json field>.<rule>" to the message reported to clients.
func (UserDTO) ValidationMessages() map[string]string {
	return userMessages
}
