package common

import (
	"strings"
	"testing"

	"github.com/amirasaad/user-management/pkg/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestValidate_UserDTO(t *testing.T) {
	long := strings.Repeat("a", 51)
	tests := []struct {
		name string
		in   dto.UserDTO
		want ValidationErrors
	}{
		{
			name: "valid",
			in:   dto.UserDTO{Username: "alice", Email: "alice@example.com"},
			want: nil,
		},
		{
			name: "valid with optional names",
			in: dto.UserDTO{
				Username:  "alice",
				Email:     "alice@example.com",
				FirstName: strPtr(strings.Repeat("a", 50)),
				LastName:  strPtr(""),
			},
			want: nil,
		},
		{
			name: "empty username and email report required",
			in:   dto.UserDTO{},
			want: ValidationErrors{
				"username": "Username is required",
				"email":    "Email is required",
			},
		},
		{
			name: "blank username reports required",
			in:   dto.UserDTO{Username: "     ", Email: "alice@example.com"},
			want: ValidationErrors{"username": "Username is required"},
		},
		{
			name: "short username",
			in:   dto.UserDTO{Username: "ab", Email: "alice@example.com"},
			want: ValidationErrors{"username": "Username must be between 3 and 50 characters"},
		},
		{
			name: "long username",
			in:   dto.UserDTO{Username: long, Email: "alice@example.com"},
			want: ValidationErrors{"username": "Username must be between 3 and 50 characters"},
		},
		{
			name: "bad email",
			in:   dto.UserDTO{Username: "alice", Email: "not-an-email"},
			want: ValidationErrors{"email": "Email must be a valid email address"},
		},
		{
			name: "long names",
			in: dto.UserDTO{
				Username:  "alice",
				Email:     "alice@example.com",
				FirstName: strPtr(long),
				LastName:  strPtr(long),
			},
			want: ValidationErrors{
				"firstName": "First name must not be greater than 50 characters",
				"lastName":  "Last name must not be greater than 50 characters",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.in
			err := Validate(&in)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			var got ValidationErrors
			require.ErrorAs(t, err, &got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate_FallbackMessage(t *testing.T) {
	type input struct {
		Name string `json:"name" validate:"required"`
	}
	err := Validate(&input{})
	var got ValidationErrors
	require.ErrorAs(t, err, &got)
	assert.Equal(t, "name failed on the 'required' rule", got["name"])
}

func TestValidationErrors_Error(t *testing.T) {
	err := ValidationErrors{"username": "b", "email": "a"}
	assert.Equal(t, "validation failed: email: a; username: b", err.Error())
}
