package memory

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/medicore/hospital-system/internal/core/domain"
)

// UserStore is the fixed in-memory credential table. It is fully populated at
// construction and never mutated afterwards, so lookups need no locking.
type UserStore struct {
	byEmail map[string]*domain.User
}

// NewUserStore builds a store from pre-hashed accounts.
func NewUserStore(users []domain.User) *UserStore {
	byEmail := make(map[string]*domain.User, len(users))
	for i := range users {
		u := users[i]
		byEmail[u.Email] = &u
	}
	return &UserStore{byEmail: byEmail}
}

// NewSeededUserStore returns the store preloaded with the three demo hospital
// accounts. Password digests are computed with bcrypt at startup.
func NewSeededUserStore() (*UserStore, error) {
	seed := []struct {
		id       int
		email    string
		password string
		role     domain.Role
		name     string
	}{
		{1, "admin@hospital.com", "admin123", domain.RoleAdmin, "Admin User"},
		{2, "doctor@hospital.com", "doctor123", domain.RoleDoctor, "Dr. Smith"},
		{3, "patient@hospital.com", "patient123", domain.RolePatient, "John Doe"},
	}

	users := make([]domain.User, 0, len(seed))
	for _, s := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash seed password for %s: %w", s.email, err)
		}
		users = append(users, domain.User{
			ID:           s.id,
			Email:        s.email,
			PasswordHash: string(hash),
			Role:         s.role,
			Name:         s.name,
		})
	}
	return NewUserStore(users), nil
}

func (s *UserStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := s.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (s *UserStore) Count() int {
	return len(s.byEmail)
}

func (s *UserStore) CountByRole(role domain.Role) int {
	n := 0
	for _, u := range s.byEmail {
		if u.Role == role {
			n++
		}
	}
	return n
}
