package controllers

import (
	"errors"
	"net/http"

	"lokalin/middleware"
	"lokalin/models"
	"lokalin/services"
	"lokalin/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

func respondOK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, models.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func respondFail(c *gin.Context, status int, message string, err error) {
	resp := models.ErrorResponse{Success: false, Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(status, resp)
}

// respondError maps service errors to a status code. Unknown errors are
// logged and hidden behind fallback.
func respondError(c *gin.Context, err error, fallback string) {
	var validation *services.ValidationError
	switch {
	case errors.As(err, &validation):
		respondFail(c, http.StatusBadRequest, validation.Message, nil)
	case errors.Is(err, services.ErrNotFound):
		respondFail(c, http.StatusNotFound, "Data tidak ditemukan", err)
	case errors.Is(err, services.ErrUsernameNotFound):
		respondFail(c, http.StatusNotFound, "Username tersebut tidak ditemukan", err)
	case errors.Is(err, services.ErrInvalidCredentials):
		respondFail(c, http.StatusUnauthorized, "Password salah atau akun tidak terdaftar", err)
	case errors.Is(err, services.ErrForbidden):
		respondFail(c, http.StatusForbidden, "Akses ditolak", err)
	case errors.Is(err, services.ErrEmailTaken):
		respondFail(c, http.StatusConflict, "Email sudah digunakan", err)
	case errors.Is(err, services.ErrUsernameTaken):
		respondFail(c, http.StatusConflict, "Username sudah digunakan", err)
	case errors.Is(err, services.ErrApplicationPending):
		respondFail(c, http.StatusConflict, "Pengajuan Anda sedang diproses. Mohon tunggu konfirmasi admin.", err)
	case errors.Is(err, services.ErrAlreadySeller):
		respondFail(c, http.StatusConflict, "Anda sudah terdaftar sebagai seller.", err)
	case errors.Is(err, services.ErrApplicationDecided):
		respondFail(c, http.StatusConflict, "Pengajuan sudah diputuskan", err)
	case errors.Is(err, services.ErrUnknownCatalogItem):
		respondFail(c, http.StatusBadRequest, "Menu tidak ada di katalog", err)
	case errors.Is(err, services.ErrNoWhatsApp):
		respondFail(c, http.StatusUnprocessableEntity, "Nomor WhatsApp penjual tidak tersedia", err)
	case errors.Is(err, utils.ErrFileTooLarge), errors.Is(err, utils.ErrInvalidImageType):
		respondFail(c, http.StatusBadRequest, "Gambar tidak valid", err)
	case errors.Is(err, services.ErrStorageUnavailable), errors.Is(err, services.ErrUploadNotConfigured):
		respondFail(c, http.StatusServiceUnavailable, "Layanan sedang tidak tersedia", err)
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg(fallback)
		respondFail(c, http.StatusInternalServerError, fallback, nil)
	}
}

func requireActor(c *gin.Context) (*models.Actor, bool) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		respondFail(c, http.StatusUnauthorized, "Unauthorized", nil)
		return nil, false
	}
	return actor, true
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid "+name, err)
		return uuid.Nil, false
	}
	return id, true
}
