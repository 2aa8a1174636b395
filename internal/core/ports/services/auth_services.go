package services

import (
	"context"
	"time"

	"github.com/ecovault/eco_finance_app/internal/core/domain"
)

// TokenSvcFacade handles JWT access tokens and opaque refresh tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT for the user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken creates an opaque refresh token and its expiry.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateAndParseRefreshToken checks a presented refresh token against
	// the stored hash and returns the user on success.
	ValidateAndParseRefreshToken(ctx context.Context, userID int64, refreshToken string) (*domain.User, error)
}

// GoogleOAuthSvcFacade handles the Google sign-in flow.
type GoogleOAuthSvcFacade interface {
	// AuthCodeURL builds the consent screen redirect with the given state.
	AuthCodeURL(state string) string

	// HandleCallback exchanges the code, validates the ID token and returns
	// (creating if necessary) the matching user.
	HandleCallback(ctx context.Context, code string) (*domain.User, error)
}
