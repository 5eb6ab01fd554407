package services

import (
	"context"
	"errors"
	"strings"

	"lokalin/models"
	"lokalin/repositories"

	"github.com/google/uuid"
)

type ProfileService struct {
	profiles     ProfileStore
	applications SellerApplicationStore
	media        *MediaService
}

func NewProfileService(profiles ProfileStore, applications SellerApplicationStore, media *MediaService) *ProfileService {
	return &ProfileService{profiles: profiles, applications: applications, media: media}
}

func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.ProfileResponse, error) {
	profile, err := s.profiles.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	resp := &models.ProfileResponse{Profile: *profile}

	app, err := s.applications.FindLatestByUser(ctx, userID)
	switch {
	case err == nil:
		resp.ApplicationStatus = &app.Status
	case !errors.Is(err, repositories.ErrNotFound):
		return nil, err
	}

	return resp, nil
}

// UpdateProfile overwrites the editable fields. An empty username keeps
// the current one.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req models.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.profiles.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	if username != "" && username != profile.Username {
		if strings.Contains(username, "@") {
			return nil, invalid("Username tidak boleh mengandung '@'")
		}
		existing, err := s.profiles.FindByUsername(ctx, username)
		if err == nil && existing.ID != profile.ID {
			return nil, ErrUsernameTaken
		}
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
		profile.Username = username
	}

	profile.FullName = strings.TrimSpace(req.FullName)
	profile.Phone = strings.TrimSpace(req.Phone)
	profile.Address = strings.TrimSpace(req.Address)
	profile.Gender = strings.TrimSpace(req.Gender)

	if err := s.profiles.Update(ctx, profile); err != nil {
		if errors.Is(err, repositories.ErrAlreadyExists) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) UpdateAvatar(ctx context.Context, userID uuid.UUID, file UploadFile) (string, error) {
	urls, err := s.media.Upload(ctx, []UploadFile{file}, "avatars/"+userID.String())
	if err != nil {
		return "", err
	}

	if err := s.profiles.UpdateAvatar(ctx, userID, urls[0]); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return urls[0], nil
}
