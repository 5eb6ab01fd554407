package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lokalin/models"
	"lokalin/repositories"
	"lokalin/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type AuthService struct {
	profiles ProfileStore
	denylist TokenDenylist
}

func NewAuthService(profiles ProfileStore, denylist TokenDenylist) *AuthService {
	return &AuthService{profiles: profiles, denylist: denylist}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.Profile, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.ToLower(strings.TrimSpace(req.Username))

	if len(username) < 3 {
		return nil, invalid("Username terlalu pendek, gunakan minimal 3 karakter")
	}
	if strings.Contains(username, "@") {
		return nil, invalid("Username tidak boleh mengandung '@'")
	}
	if len(req.Password) < utils.MinPasswordLength {
		return nil, invalid("Password lemah, gunakan minimal 6 karakter")
	}
	if req.Password != req.ConfirmPassword {
		return nil, invalid("Konfirmasi password tidak cocok")
	}

	if _, err := s.profiles.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	if _, err := s.profiles.FindByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	profile := &models.Profile{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		FullName:     strings.TrimSpace(req.Username),
		Role:         models.RoleBuyer,
	}

	if err := s.profiles.Create(ctx, profile); err != nil {
		switch {
		case errors.Is(err, repositories.ErrUsernameExists):
			return nil, ErrUsernameTaken
		case errors.Is(err, repositories.ErrAlreadyExists):
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	log.Info().Str("user_id", profile.ID.String()).Msg("profile registered")
	return profile, nil
}

// Login accepts an e-mail address or a username as identifier.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	identifier := strings.TrimSpace(req.Identifier)

	var (
		profile *models.Profile
		err     error
	)
	if strings.Contains(identifier, "@") {
		profile, err = s.profiles.FindByEmail(ctx, identifier)
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
	} else {
		profile, err = s.profiles.FindByUsername(ctx, identifier)
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUsernameNotFound
		}
	}
	if err != nil {
		return nil, err
	}

	valid, err := utils.VerifyPassword(profile.PasswordHash, req.Password)
	if err != nil || !valid {
		return nil, ErrInvalidCredentials
	}

	token, claims, err := utils.GenerateToken(profile.ID, profile.Email, profile.Role)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &models.LoginResponse{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Unix(),
		User:      *profile,
	}, nil
}

// Logout revokes the token id until the token's own expiry.
func (s *AuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	return s.denylist.Revoke(ctx, tokenID, expiresAt)
}

func (s *AuthService) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return s.denylist.IsRevoked(ctx, tokenID)
}
