package controllers

import (
	"net/http"

	"lokalin/services"

	"github.com/gin-gonic/gin"
)

type FavoriteController struct {
	favoriteService *services.FavoriteService
}

func NewFavoriteController(favoriteService *services.FavoriteService) *FavoriteController {
	return &FavoriteController{favoriteService: favoriteService}
}

// @Summary Get favorites
// @Tags Favorites
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response{data=[]models.BusinessListItem}
// @Router /favorites [get]
func (ctrl *FavoriteController) GetFavorites(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	favorites, err := ctrl.favoriteService.List(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, err, "Failed to retrieve favorites")
		return
	}

	respondOK(c, http.StatusOK, "Favorites retrieved successfully", favorites)
}

// @Summary Check favorite
// @Tags Favorites
// @Security BearerAuth
// @Produce json
// @Param business_id path string true "Business ID"
// @Success 200 {object} models.Response
// @Router /favorites/{business_id} [get]
func (ctrl *FavoriteController) CheckFavorite(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	businessID, ok := parseUUIDParam(c, "business_id")
	if !ok {
		return
	}

	isFavorite, err := ctrl.favoriteService.IsFavorite(c.Request.Context(), actor.ID, businessID)
	if err != nil {
		respondError(c, err, "Failed to check favorite")
		return
	}

	respondOK(c, http.StatusOK, "Favorite status retrieved", gin.H{"is_favorite": isFavorite})
}

// @Summary Toggle favorite
// @Tags Favorites
// @Security BearerAuth
// @Produce json
// @Param business_id path string true "Business ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /favorites/{business_id}/toggle [post]
func (ctrl *FavoriteController) ToggleFavorite(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	businessID, ok := parseUUIDParam(c, "business_id")
	if !ok {
		return
	}

	isFavorite, err := ctrl.favoriteService.Toggle(c.Request.Context(), actor.ID, businessID)
	if err != nil {
		respondError(c, err, "Failed to update favorite")
		return
	}

	message := "Dihapus dari favorit"
	if isFavorite {
		message = "Disimpan ke favorit"
	}
	respondOK(c, http.StatusOK, message, gin.H{"is_favorite": isFavorite})
}
