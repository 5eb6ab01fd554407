package services

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrForbidden           = errors.New("access denied")
	ErrInvalidCredentials  = errors.New("password salah atau akun tidak terdaftar")
	ErrUsernameNotFound    = errors.New("username tersebut tidak ditemukan")
	ErrEmailTaken          = errors.New("email sudah digunakan")
	ErrUsernameTaken       = errors.New("username sudah digunakan")
	ErrApplicationPending  = errors.New("pengajuan Anda sedang diproses. Mohon tunggu konfirmasi admin")
	ErrAlreadySeller       = errors.New("anda sudah terdaftar sebagai seller")
	ErrApplicationDecided  = errors.New("pengajuan sudah diputuskan")
	ErrStorageUnavailable  = errors.New("penyimpanan tidak tersedia")
	ErrUnknownCatalogItem  = errors.New("menu tidak ada di katalog")
	ErrNoWhatsApp          = errors.New("nomor WhatsApp tidak tersedia")
	ErrUploadNotConfigured = errors.New("penyimpanan gambar belum dikonfigurasi")
)

// ValidationError carries a message that can be shown to the user as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}
