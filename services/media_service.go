package services

import (
	"context"
	"io"

	"lokalin/utils"

	"github.com/rs/zerolog/log"
)

// UploadFile is an opened upload with the name the client sent.
type UploadFile struct {
	Name   string
	Reader io.Reader
}

type MediaService struct {
	uploader ImageUploader
}

// NewMediaService accepts a nil uploader; uploads then fail with
// ErrUploadNotConfigured.
func NewMediaService(uploader ImageUploader) *MediaService {
	return &MediaService{uploader: uploader}
}

// Upload stores every file under folder and returns their URLs in order.
// If one upload fails, the ones already stored are deleted again.
func (s *MediaService) Upload(ctx context.Context, files []UploadFile, folder string) ([]string, error) {
	if s.uploader == nil {
		return nil, ErrUploadNotConfigured
	}
	if len(files) == 0 {
		return nil, invalid("Minimal satu gambar wajib diunggah")
	}

	urls := make([]string, 0, len(files))
	publicIDs := make([]string, 0, len(files))

	for _, f := range files {
		url, publicID, err := s.uploader.UploadImage(ctx, f.Reader, utils.SafeFilename(f.Name), folder)
		if err != nil {
			for _, id := range publicIDs {
				if delErr := s.uploader.DeleteImage(ctx, id); delErr != nil {
					log.Warn().Err(delErr).Str("public_id", id).Msg("rollback of uploaded image failed")
				}
			}
			return nil, err
		}
		urls = append(urls, url)
		publicIDs = append(publicIDs, publicID)
	}

	return urls, nil
}
