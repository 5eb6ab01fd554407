package controllers

import (
	"net/http"
	"time"

	"lokalin/middleware"
	"lokalin/models"
	"lokalin/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService    *services.AuthService
	profileService *services.ProfileService
}

func NewAuthController(authService *services.AuthService, profileService *services.ProfileService) *AuthController {
	return &AuthController{authService: authService, profileService: profileService}
}

// Register godoc
// @Summary Register new user
// @Description Register a buyer account. The client logs in afterwards.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	profile, err := ctrl.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Registration failed")
		return
	}

	respondOK(c, http.StatusCreated, "Registration successful", profile)
}

// Login godoc
// @Summary User login
// @Description Login with e-mail or username and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response{data=models.LoginResponse}
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, err := ctrl.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Login failed")
		return
	}

	respondOK(c, http.StatusOK, "Login successful", resp)
}

// Logout godoc
// @Summary Logout
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	tokenID := c.GetString(middleware.ContextTokenID)
	expiry, _ := c.Get(middleware.ContextTokenExpiry)
	until, _ := expiry.(time.Time)

	if err := ctrl.authService.Logout(c.Request.Context(), tokenID, until); err != nil {
		respondError(c, err, "Logout failed")
		return
	}

	respondOK(c, http.StatusOK, "Logout successful", nil)
}

// Session godoc
// @Summary Current session
// @Description Returns the profile behind the bearer token
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response{data=models.ProfileResponse}
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/session [get]
func (ctrl *AuthController) Session(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	profile, err := ctrl.profileService.GetProfile(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, err, "Failed to load session")
		return
	}

	respondOK(c, http.StatusOK, "Session retrieved", profile)
}
