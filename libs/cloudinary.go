package libs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"lokalin/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/rs/zerolog/log"
)

var ErrStorageNotConfigured = errors.New("cloudinary credentials not configured")

// ImageStorage uploads pictures to Cloudinary and hands back public URLs.
type ImageStorage struct {
	cld *cloudinary.Cloudinary
}

// NewImageStorage prefers the separate credential variables and falls
// back to CLOUDINARY_URL.
func NewImageStorage(cfg *config.Config) (*ImageStorage, error) {
	var (
		cld *cloudinary.Cloudinary
		err error
	)

	switch {
	case cfg.CloudName != "" && cfg.CloudAPIKey != "" && cfg.CloudAPISecret != "":
		cld, err = cloudinary.NewFromParams(cfg.CloudName, cfg.CloudAPIKey, cfg.CloudAPISecret)
	case cfg.CloudinaryURL != "":
		cld, err = cloudinary.NewFromURL(cfg.CloudinaryURL)
	default:
		return nil, ErrStorageNotConfigured
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}

	return &ImageStorage{cld: cld}, nil
}

func (s *ImageStorage) UploadImage(ctx context.Context, file io.Reader, filename, folder string) (string, string, error) {
	publicID := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filename)

	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       publicID,
		Folder:         folder,
		ResourceType:   "image",
		Transformation: "q_auto,f_auto",
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload to cloudinary: %w", err)
	}
	if result == nil {
		return "", "", errors.New("cloudinary response is nil")
	}

	url := result.SecureURL
	if url == "" {
		url = result.URL
	}
	if url == "" {
		return "", "", errors.New("cloudinary returned no URL")
	}

	log.Debug().Str("public_id", result.PublicID).Str("folder", folder).Msg("image uploaded")
	return url, result.PublicID, nil
}

func (s *ImageStorage) DeleteImage(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}

	result, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return fmt.Errorf("failed to delete from cloudinary: %w", err)
	}
	if result != nil && result.Result != "ok" && result.Result != "not found" {
		return fmt.Errorf("cloudinary deletion failed: %s", result.Result)
	}
	return nil
}
