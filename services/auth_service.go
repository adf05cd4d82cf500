package services

import (
	"context"

	"notetaker/apperror"
	"notetaker/identity"
	"notetaker/models"
)

// TokenVerifier validates an opaque ID token against the identity provider.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*identity.Claims, error)
}

// UserStore persists user records.
type UserStore interface {
	Upsert(ctx context.Context, user *models.User) error
}

type AuthService struct {
	verifier TokenVerifier
	users    UserStore
}

func NewAuthService(verifier TokenVerifier, users UserStore) *AuthService {
	return &AuthService{
		verifier: verifier,
		users:    users,
	}
}

// Login verifies the token and creates or fully overwrites the user record.
// The username falls back to the email when the token carries no display
// name. Any failure after receiving the token surfaces as unauthorized with
// the underlying reason embedded.
func (s *AuthService) Login(ctx context.Context, idToken string) (*models.User, error) {
	claims, err := s.verifier.Verify(ctx, idToken)
	if err != nil {
		return nil, apperror.Unauthorized("Invalid token", err)
	}

	username := claims.Name
	if username == "" {
		username = claims.Email
	}

	user := &models.User{
		UID:       claims.UID,
		Username:  username,
		Email:     claims.Email,
		AvatarURL: claims.Picture,
	}
	if err := s.users.Upsert(ctx, user); err != nil {
		return nil, apperror.Unauthorized("Invalid token", err)
	}

	return user, nil
}
