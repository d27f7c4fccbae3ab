package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/medicore/hospital-system/internal/core/domain"
	"github.com/medicore/hospital-system/internal/core/ports"
)

// dummyHash equalizes the cost of "unknown email" and "wrong password" so the
// two failure paths cannot be told apart by timing.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)

// AuthService implements login against the read-only credential store.
type AuthService struct {
	store    ports.CredentialStore
	tokens   ports.TokenService
	tokenTTL time.Duration
	log      zerolog.Logger
}

func NewAuthService(store ports.CredentialStore, tokens ports.TokenService, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &AuthService{store: store, tokens: tokens, tokenTTL: tokenTTL, log: log}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user, s.tokenTTL)
	if err != nil {
		s.log.Error().Err(err).Str("email", email).Msg("token issuance failed")
		return "", nil, err
	}

	s.log.Info().Str("email", email).Str("role", string(user.Role)).Msg("login succeeded")
	return token, user, nil
}
