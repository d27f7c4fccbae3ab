package ports

import (
	"context"

	"github.com/medicore/hospital-system/internal/core/domain"
)

// CredentialStore is the read-only account table. Accounts are seeded at
// process start and never mutated, so implementations need no locking for
// reads once constructed.
type CredentialStore interface {
	// FindByEmail looks up an account by exact, case-sensitive email match.
	// Returns domain.ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Count() int
	CountByRole(role domain.Role) int
}
