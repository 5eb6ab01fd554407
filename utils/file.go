package utils

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"

	"lokalin/config"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var (
	ErrFileTooLarge     = errors.New("file size exceeds maximum allowed size")
	ErrInvalidImageType = errors.New("invalid file type. Only jpg, jpeg, png, gif, webp allowed")
)

func ValidateImage(fileHeader *multipart.FileHeader) error {
	if fileHeader.Size > config.AppConfig.MaxUploadSize {
		return ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		return ErrInvalidImageType
	}
	return nil
}

// SafeFilename drops the extension and replaces spaces so the name can be
// used as part of a storage public id.
func SafeFilename(name string) string {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	return strings.ReplaceAll(base, " ", "_")
}
