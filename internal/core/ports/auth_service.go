package ports

import (
	"context"

	"github.com/medicore/hospital-system/internal/core/domain"
)

type AuthService interface {
	// Login authenticates email+password and returns a signed access token
	// along with the matching account. All failures surface as
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
