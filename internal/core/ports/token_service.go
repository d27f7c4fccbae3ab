package ports

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/medicore/hospital-system/internal/core/domain"
)

// Claims is the decoded payload of a signed access token. Subject carries the
// account email; expiry lives in the embedded RegisteredClaims.
type Claims struct {
	UserID int         `json:"user_id"`
	Role   domain.Role `json:"role"`
	Name   string      `json:"name"`
	jwt.RegisteredClaims
}

// TokenService mints and verifies signed, time-bound access tokens.
// Both operations are pure functions of the input and the process secret;
// safe for concurrent use without locking.
type TokenService interface {
	// Issue signs a token for the user expiring at now+ttl. A non-positive
	// ttl produces an already-expired token.
	Issue(user *domain.User, ttl time.Duration) (string, error)
	// Verify parses and checks the token. Fails with domain.ErrTokenExpired
	// when past expiry, domain.ErrTokenInvalid for anything else wrong.
	Verify(token string) (*Claims, error)
}
