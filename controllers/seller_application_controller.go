package controllers

import (
	"net/http"

	"lokalin/models"
	"lokalin/services"

	"github.com/gin-gonic/gin"
)

type SellerApplicationController struct {
	applicationService *services.SellerApplicationService
}

func NewSellerApplicationController(applicationService *services.SellerApplicationService) *SellerApplicationController {
	return &SellerApplicationController{applicationService: applicationService}
}

// @Summary Apply as seller
// @Tags Seller Applications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.SellerApplicationRequest true "Application"
// @Success 201 {object} models.Response{data=models.SellerApplication}
// @Failure 409 {object} models.ErrorResponse
// @Router /seller-applications [post]
func (ctrl *SellerApplicationController) Apply(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req models.SellerApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "Mohon lengkapi semua data pengajuan", err)
		return
	}

	app, err := ctrl.applicationService.Apply(c.Request.Context(), actor.ID, req)
	if err != nil {
		respondError(c, err, "Failed to submit application")
		return
	}

	respondOK(c, http.StatusCreated, "Pengajuan berhasil dikirim", app)
}

// @Summary Get my seller application
// @Tags Seller Applications
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response{data=models.SellerApplication}
// @Failure 404 {object} models.ErrorResponse
// @Router /seller-applications/me [get]
func (ctrl *SellerApplicationController) GetMine(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	app, err := ctrl.applicationService.Mine(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, err, "Failed to retrieve application")
		return
	}

	respondOK(c, http.StatusOK, "Application retrieved successfully", app)
}

// @Summary List seller applications
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param status query string false "pending, approved or rejected" default(pending)
// @Success 200 {object} models.Response{data=[]models.SellerApplicationWithApplicant}
// @Router /admin/seller-applications [get]
func (ctrl *SellerApplicationController) GetAll(c *gin.Context) {
	apps, err := ctrl.applicationService.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, err, "Failed to retrieve applications")
		return
	}

	respondOK(c, http.StatusOK, "Applications retrieved successfully", apps)
}

// @Summary Decide seller application
// @Description Approval promotes the applicant to seller
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param request body models.DecideApplicationRequest true "Decision"
// @Success 200 {object} models.Response{data=models.SellerApplication}
// @Failure 409 {object} models.ErrorResponse
// @Router /admin/seller-applications/{id} [patch]
func (ctrl *SellerApplicationController) Decide(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req models.DecideApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	app, err := ctrl.applicationService.Decide(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err, "Failed to update application")
		return
	}

	message := "Pengajuan ditolak"
	if app.Status == models.ApplicationApproved {
		message = "Pengajuan disetujui"
	}
	respondOK(c, http.StatusOK, message, app)
}
