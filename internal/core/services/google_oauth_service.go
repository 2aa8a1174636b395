package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ecovault/eco_finance_app/internal/apperrors"
	"github.com/ecovault/eco_finance_app/internal/core/domain"
	portsrepo "github.com/ecovault/eco_finance_app/internal/core/ports/repositories"
	portssvc "github.com/ecovault/eco_finance_app/internal/core/ports/services"
	"github.com/ecovault/eco_finance_app/internal/platform/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// googleOAuthService implements the Google sign-in flow: consent redirect,
// code exchange, ID token validation and find-or-create of the local user.
type googleOAuthService struct {
	oauthConfig *oauth2.Config
	userRepo    portsrepo.UserRepositoryFacade
}

// NewGoogleOAuthService creates the Google OAuth service.
func NewGoogleOAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		userRepo: userRepo,
	}
}

var _ portssvc.GoogleOAuthSvcFacade = (*googleOAuthService)(nil)

func (s *googleOAuthService) AuthCodeURL(state string) string {
	return s.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (s *googleOAuthService) HandleCallback(ctx context.Context, code string) (*domain.User, error) {
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, errors.New("token response is missing id_token")
	}

	payload, err := idtoken.Validate(ctx, rawIDToken, s.oauthConfig.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate ID token: %w", err)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, errors.New("ID token is missing the email claim")
	}
	name, _ := payload.Claims["name"].(string)
	if name == "" {
		name = email
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	// First sign-in for this Google identity; no local password.
	now := time.Now()
	newUser := domain.User{
		Username: usernameFromEmail(email),
		Name:     name,
		Email:    email,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	userID, err := s.userRepo.CreateUser(ctx, newUser)
	if err != nil {
		return nil, fmt.Errorf("failed to create user from Google identity: %w", err)
	}
	newUser.UserID = userID
	return &newUser, nil
}

func usernameFromEmail(email string) string {
	if idx := strings.IndexByte(email, '@'); idx > 0 {
		return email[:idx]
	}
	return email
}
