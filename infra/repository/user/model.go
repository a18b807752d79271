package user

import (
	"time"

	domain "github.com/amirasaad/user-management/pkg/domain/user"
)

// User represents a user record in the database.
type User struct {
	ID        int64     `gorm:"column:user_id;primaryKey;autoIncrement"`
	Username  string    `gorm:"uniqueIndex;not null;size:50"`
	Email     string    `gorm:"uniqueIndex;not null;size:255"`
	FirstName *string   `gorm:"size:50"`
	LastName  *string   `gorm:"size:50"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}

func mapDomainToModel(u *domain.User) *User {
	return &User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
	}
}

func mapModelToDomain(m *User) *domain.User {
	return &domain.User{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		CreatedAt: m.CreatedAt.UTC(),
	}
}
