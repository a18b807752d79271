// Package fixtures holds test doubles shared across packages.
package fixtures

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/amirasaad/user-management/pkg/domain/user"
	userrepo "github.com/amirasaad/user-management/pkg/repository/user"
)

var _ userrepo.Repository = (*UserStore)(nil)

// UserStore is an in-memory user repository. It generates ids, enforces
// username and email uniqueness and keeps created_at at microsecond
// precision like the users table does.
type UserStore struct {
	mu     sync.Mutex
	rows   map[int64]user.User
	nextID int64
}

// NewUserStore returns an empty store whose first generated id is 1.
func NewUserStore() *UserStore {
	return &UserStore{rows: make(map[int64]user.User), nextID: 1}
}

func (s *UserStore) FindAll(_ context.Context) ([]*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*user.User, 0, len(s.rows))
	for _, row := range s.rows {
		out = append(out, clone(row))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *UserStore) FindByID(_ context.Context, id int64) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	if !ok {
		return nil, nil
	}
	return clone(row), nil
}

func (s *UserStore) FindByUsername(_ context.Context, username string) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range s.rows {
		if row.Username == username {
			return clone(row), nil
		}
	}
	return nil, nil
}

func (s *UserStore) Save(_ context.Context, u *user.User) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, row := range s.rows {
		if id == u.ID {
			continue
		}
		if row.Username == u.Username || row.Email == u.Email {
			return nil, fmt.Errorf("save user: %w", user.ErrAlreadyExists)
		}
	}
	if u.ID == 0 {
		u.ID = s.nextID
		s.nextID++
	} else if u.ID >= s.nextID {
		s.nextID = u.ID + 1
	}
	row := *clone(*u)
	row.CreatedAt = row.CreatedAt.UTC().Truncate(time.Microsecond)
	s.rows[u.ID] = row
	return clone(row), nil
}

func (s *UserStore) Delete(_ context.Context, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rows, u.ID)
	return nil
}

// Len reports the number of stored users.
func (s *UserStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

func clone(u user.User) *user.User {
	if u.FirstName != nil {
		v := *u.FirstName
		u.FirstName = &v
	}
	if u.LastName != nil {
		v := *u.LastName
		u.LastName = &v
	}
	return &u
}
