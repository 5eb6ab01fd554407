package controllers

import (
	"errors"
	"io"
	"net/http"

	"lokalin/models"
	"lokalin/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orderService *services.OrderService
}

func NewOrderController(orderService *services.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// @Summary Get cart
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Business ID"
// @Success 200 {object} models.Response{data=models.CartResponse}
// @Router /businesses/{id}/cart [get]
func (ctrl *OrderController) GetCart(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	businessID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	cart, err := ctrl.orderService.GetCart(c.Request.Context(), actor.ID, businessID)
	if err != nil {
		respondError(c, err, "Failed to retrieve cart")
		return
	}

	respondOK(c, http.StatusOK, "Cart retrieved", cart)
}

// @Summary Add cart item
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Business ID"
// @Param request body models.CartItemRequest true "Item"
// @Success 200 {object} models.Response{data=models.CartResponse}
// @Failure 400 {object} models.ErrorResponse
// @Router /businesses/{id}/cart/items [post]
func (ctrl *OrderController) AddItem(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	businessID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req models.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	cart, err := ctrl.orderService.AddItem(c.Request.Context(), actor.ID, businessID, req.Name)
	if err != nil {
		respondError(c, err, "Failed to add item")
		return
	}

	respondOK(c, http.StatusOK, "Item added", cart)
}

// @Summary Remove one unit of a cart item
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Business ID"
// @Param name query string true "Item name"
// @Success 200 {object} models.Response{data=models.CartResponse}
// @Failure 400 {object} models.ErrorResponse
// @Router /businesses/{id}/cart/items [delete]
func (ctrl *OrderController) RemoveItem(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	businessID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req models.CartItemRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "Item name is required", err)
		return
	}

	cart, err := ctrl.orderService.RemoveItem(c.Request.Context(), actor.ID, businessID, req.Name)
	if err != nil {
		respondError(c, err, "Failed to remove item")
		return
	}

	respondOK(c, http.StatusOK, "Item removed", cart)
}

// @Summary Clear cart
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Business ID"
// @Success 200 {object} models.Response
// @Router /businesses/{id}/cart [delete]
func (ctrl *OrderController) ClearCart(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	businessID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.orderService.ClearCart(c.Request.Context(), actor.ID, businessID); err != nil {
		respondError(c, err, "Failed to clear cart")
		return
	}

	respondOK(c, http.StatusOK, "Cart cleared", nil)
}

// @Summary Checkout via WhatsApp
// @Description Builds the order message and wa.me link. Body items override the stored cart.
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Business ID"
// @Param request body models.CheckoutRequest false "Items"
// @Success 200 {object} models.Response{data=models.CheckoutResponse}
// @Failure 422 {object} models.ErrorResponse
// @Router /businesses/{id}/checkout [post]
func (ctrl *OrderController) Checkout(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	businessID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondFail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	order, err := ctrl.orderService.Checkout(c.Request.Context(), actor.ID, businessID, req.Items)
	if err != nil {
		respondError(c, err, "Failed to checkout")
		return
	}

	respondOK(c, http.StatusOK, "Order ready", order)
}
