package controllers

import (
	"net/http"

	"lokalin/models"
	"lokalin/services"
	"lokalin/utils"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	profileService *services.ProfileService
}

func NewProfileController(profileService *services.ProfileService) *ProfileController {
	return &ProfileController{profileService: profileService}
}

// @Summary Get user profile
// @Description Get current user profile with the latest seller application status
// @Tags Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response{data=models.ProfileResponse}
// @Router /profile [get]
func (ctrl *ProfileController) GetProfile(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	profile, err := ctrl.profileService.GetProfile(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, err, "Failed to retrieve profile")
		return
	}

	respondOK(c, http.StatusOK, "Profile retrieved successfully", profile)
}

// @Summary Update user profile
// @Tags Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateProfileRequest true "Profile"
// @Success 200 {object} models.Response{data=models.Profile}
// @Failure 409 {object} models.ErrorResponse
// @Router /profile [patch]
func (ctrl *ProfileController) UpdateProfile(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	profile, err := ctrl.profileService.UpdateProfile(c.Request.Context(), actor.ID, req)
	if err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}

	respondOK(c, http.StatusOK, "Profile updated successfully", profile)
}

// @Summary Upload avatar
// @Tags Profile
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /profile/avatar [post]
func (ctrl *ProfileController) UploadAvatar(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		respondFail(c, http.StatusBadRequest, "Avatar file is required", err)
		return
	}
	if err := utils.ValidateImage(fileHeader); err != nil {
		respondError(c, err, "Invalid avatar")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondFail(c, http.StatusBadRequest, "Failed to read avatar", err)
		return
	}
	defer file.Close()

	url, err := ctrl.profileService.UpdateAvatar(c.Request.Context(), actor.ID, services.UploadFile{
		Name:   fileHeader.Filename,
		Reader: file,
	})
	if err != nil {
		respondError(c, err, "Failed to upload avatar")
		return
	}

	respondOK(c, http.StatusOK, "Avatar updated successfully", gin.H{"avatar_url": url})
}
