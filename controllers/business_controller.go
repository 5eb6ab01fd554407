package controllers

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"lokalin/middleware"
	"lokalin/models"
	"lokalin/services"
	"lokalin/utils"

	"github.com/gin-gonic/gin"
)

type BusinessController struct {
	businessService *services.BusinessService
}

func NewBusinessController(businessService *services.BusinessService) *BusinessController {
	return &BusinessController{businessService: businessService}
}

// @Summary Get all businesses
// @Description Search, filter and rank businesses by distance from lat/lon
// @Tags Businesses
// @Produce json
// @Param q query string false "Name or category"
// @Param category query string false "Category, Semua for all"
// @Param lat query number false "Caller latitude"
// @Param lon query number false "Caller longitude"
// @Success 200 {object} models.Response{data=[]models.BusinessListItem}
// @Router /businesses [get]
func (ctrl *BusinessController) GetAllBusinesses(c *gin.Context) {
	query := models.BusinessQuery{
		Search:   c.Query("q"),
		Category: c.Query("category"),
	}

	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr == nil && lonErr == nil {
		query.Origin = utils.NewCoordinate(&lat, &lon)
	}

	businesses, err := ctrl.businessService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err, "Failed to retrieve businesses")
		return
	}

	respondOK(c, http.StatusOK, "Businesses retrieved successfully", businesses)
}

// @Summary Get business detail
// @Tags Businesses
// @Produce json
// @Param id path string true "Business ID"
// @Success 200 {object} models.Response{data=models.BusinessDetail}
// @Failure 404 {object} models.ErrorResponse
// @Router /businesses/{id} [get]
func (ctrl *BusinessController) GetBusinessByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	actor, _ := middleware.CurrentActor(c)
	detail, err := ctrl.businessService.Detail(c.Request.Context(), id, actor)
	if err != nil {
		respondError(c, err, "Failed to retrieve business")
		return
	}

	respondOK(c, http.StatusOK, "Business retrieved successfully", detail)
}

// @Summary Get my businesses
// @Tags Businesses
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response{data=[]models.BusinessListItem}
// @Router /businesses/mine [get]
func (ctrl *BusinessController) GetMyBusinesses(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	businesses, err := ctrl.businessService.Mine(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, err, "Failed to retrieve businesses")
		return
	}

	respondOK(c, http.StatusOK, "Businesses retrieved successfully", businesses)
}

// @Summary Create business
// @Description Sellers and admins only
// @Tags Businesses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.BusinessRequest true "Business"
// @Success 201 {object} models.Response{data=models.Business}
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /businesses [post]
func (ctrl *BusinessController) CreateBusiness(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req models.BusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	business, err := ctrl.businessService.Create(c.Request.Context(), *actor, req)
	if err != nil {
		respondError(c, err, "Failed to create business")
		return
	}

	respondOK(c, http.StatusCreated, "UMKM berhasil didaftarkan", business)
}

// @Summary Update business
// @Description Owner or admin only
// @Tags Businesses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Business ID"
// @Param request body models.BusinessRequest true "Business"
// @Success 200 {object} models.Response{data=models.Business}
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /businesses/{id} [patch]
func (ctrl *BusinessController) UpdateBusiness(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req models.BusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	business, err := ctrl.businessService.Update(c.Request.Context(), *actor, id, req)
	if err != nil {
		respondError(c, err, "Failed to update business")
		return
	}

	respondOK(c, http.StatusOK, "UMKM berhasil diperbarui", business)
}

// @Summary Delete business
// @Description Owner or admin only
// @Tags Businesses
// @Security BearerAuth
// @Produce json
// @Param id path string true "Business ID"
// @Success 200 {object} models.Response
// @Failure 403 {object} models.ErrorResponse
// @Router /businesses/{id} [delete]
func (ctrl *BusinessController) DeleteBusiness(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.businessService.Delete(c.Request.Context(), *actor, id); err != nil {
		respondError(c, err, "Failed to delete business")
		return
	}

	respondOK(c, http.StatusOK, "UMKM berhasil dihapus", nil)
}

// @Summary Upload business images
// @Description Returns the hosted URLs to use in the images field
// @Tags Businesses
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param images formData file true "Images"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /businesses/images [post]
func (ctrl *BusinessController) UploadImages(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid multipart form", err)
		return
	}

	headers := form.File["images"]
	if len(headers) == 0 {
		respondFail(c, http.StatusBadRequest, "Minimal satu gambar wajib diunggah", nil)
		return
	}

	files := make([]services.UploadFile, 0, len(headers))
	opened := make([]multipart.File, 0, len(headers))
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()

	for _, header := range headers {
		if err := utils.ValidateImage(header); err != nil {
			respondError(c, err, "Invalid image")
			return
		}
		f, err := header.Open()
		if err != nil {
			respondFail(c, http.StatusBadRequest, "Failed to read image", err)
			return
		}
		opened = append(opened, f)
		files = append(files, services.UploadFile{Name: header.Filename, Reader: f})
	}

	urls, err := ctrl.businessService.UploadImages(c.Request.Context(), actor.ID, files)
	if err != nil {
		respondError(c, err, "Failed to upload images")
		return
	}

	respondOK(c, http.StatusCreated, "Images uploaded successfully", gin.H{"urls": urls})
}

// @Summary Share business
// @Description Share text and a maps search link
// @Tags Businesses
// @Produce json
// @Param id path string true "Business ID"
// @Success 200 {object} models.Response{data=models.ShareInfo}
// @Router /businesses/{id}/share [get]
func (ctrl *BusinessController) ShareBusiness(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	share, err := ctrl.businessService.Share(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to share business")
		return
	}

	respondOK(c, http.StatusOK, "Share info retrieved", share)
}

// @Summary Get categories
// @Tags Businesses
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *BusinessController) GetCategories(c *gin.Context) {
	categories := append([]string{models.AllCategories}, models.Categories...)
	respondOK(c, http.StatusOK, "Categories retrieved", categories)
}
