package controllers

import (
	"net/http"

	"lokalin/models"
	"lokalin/services"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	reviewService *services.ReviewService
}

func NewReviewController(reviewService *services.ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// @Summary Get business reviews
// @Tags Reviews
// @Produce json
// @Param id path string true "Business ID"
// @Success 200 {object} models.Response{data=[]models.Review}
// @Router /businesses/{id}/reviews [get]
func (ctrl *ReviewController) GetReviews(c *gin.Context) {
	businessID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	reviews, err := ctrl.reviewService.List(c.Request.Context(), businessID)
	if err != nil {
		respondError(c, err, "Failed to retrieve reviews")
		return
	}

	respondOK(c, http.StatusOK, "Reviews retrieved successfully", gin.H{
		"reviews":        reviews,
		"average_rating": services.AverageRating(reviews),
		"review_count":   len(reviews),
	})
}

// @Summary Create review
// @Tags Reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Business ID"
// @Param request body models.ReviewRequest true "Review"
// @Success 201 {object} models.Response{data=models.Review}
// @Failure 400 {object} models.ErrorResponse
// @Router /businesses/{id}/reviews [post]
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	businessID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req models.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	review, err := ctrl.reviewService.Create(c.Request.Context(), actor.ID, businessID, req)
	if err != nil {
		respondError(c, err, "Failed to create review")
		return
	}

	respondOK(c, http.StatusCreated, "Ulasan berhasil dikirim", review)
}
