package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lokalin/models"
	"lokalin/repositories"
	"lokalin/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// OrderService keeps a per-business cart and turns it into a WhatsApp
// order message. Nothing is persisted beyond the cart's TTL.
type OrderService struct {
	carts      CartStore
	businesses *BusinessService
}

func NewOrderService(carts CartStore, businesses *BusinessService) *OrderService {
	return &OrderService{carts: carts, businesses: businesses}
}

func (s *OrderService) GetCart(ctx context.Context, userID, businessID uuid.UUID) (*models.CartResponse, error) {
	cart, err := s.carts.Load(ctx, userID, businessID)
	if err != nil {
		return nil, storageError(err)
	}
	return cartResponse(businessID, cart), nil
}

// AddItem increments name by one. The name must be on the business catalog.
func (s *OrderService) AddItem(ctx context.Context, userID, businessID uuid.UUID, name string) (*models.CartResponse, error) {
	b, err := s.businesses.find(ctx, businessID)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if !catalogHasName(b.Catalog, name) {
		return nil, ErrUnknownCatalogItem
	}

	cart, err := s.carts.Load(ctx, userID, businessID)
	if err != nil {
		return nil, storageError(err)
	}
	if cart[name] >= utils.MaxOrderQuantity {
		return nil, invalid(fmt.Sprintf("Maximum %d per item", utils.MaxOrderQuantity))
	}
	cart.Add(name)

	if err := s.carts.Save(ctx, userID, businessID, cart); err != nil {
		return nil, storageError(err)
	}
	return cartResponse(businessID, cart), nil
}

// RemoveItem decrements name by one; unknown names are a no-op.
func (s *OrderService) RemoveItem(ctx context.Context, userID, businessID uuid.UUID, name string) (*models.CartResponse, error) {
	cart, err := s.carts.Load(ctx, userID, businessID)
	if err != nil {
		return nil, storageError(err)
	}

	name = strings.TrimSpace(name)
	if _, ok := cart[name]; !ok {
		return cartResponse(businessID, cart), nil
	}
	cart.Remove(name)

	if err := s.carts.Save(ctx, userID, businessID, cart); err != nil {
		return nil, storageError(err)
	}
	return cartResponse(businessID, cart), nil
}

func (s *OrderService) ClearCart(ctx context.Context, userID, businessID uuid.UUID) error {
	return storageError(s.carts.Clear(ctx, userID, businessID))
}

// Checkout builds the order message and WhatsApp link. Items from the
// request, when present, take precedence over the stored cart. The stored
// cart is cleared afterwards.
func (s *OrderService) Checkout(ctx context.Context, userID, businessID uuid.UUID, items map[string]int) (*models.CheckoutResponse, error) {
	b, err := s.businesses.find(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if utils.CleanPhone(b.WhatsappNumber) == "" {
		return nil, ErrNoWhatsApp
	}

	cart := models.Cart{}
	if len(items) > 0 {
		for name, qty := range items {
			if qty > utils.MaxOrderQuantity {
				return nil, invalid(fmt.Sprintf("Maximum %d per item", utils.MaxOrderQuantity))
			}
			if qty > 0 {
				cart[strings.TrimSpace(name)] = qty
			}
		}
	} else {
		cart, err = s.carts.Load(ctx, userID, businessID)
		if err != nil {
			return nil, storageError(err)
		}
	}

	for name := range cart {
		if !catalogHasName(b.Catalog, name) {
			return nil, ErrUnknownCatalogItem
		}
	}

	prices := utils.CatalogPrices(utils.ParseCatalog(b.Catalog))
	summary := utils.BuildOrder(b.Name, cart, prices)

	if err := s.carts.Clear(ctx, userID, businessID); err != nil {
		log.Warn().Err(err).Str("business_id", businessID.String()).Msg("failed to clear cart after checkout")
	}

	return &models.CheckoutResponse{
		OrderSummary: summary,
		WhatsAppURL:  utils.WhatsAppURL(b.WhatsappNumber, summary.Message),
	}, nil
}

func catalogHasName(catalog, name string) bool {
	for _, item := range utils.ParseCatalog(catalog) {
		if item.Name == name {
			return true
		}
	}
	return false
}

func cartResponse(businessID uuid.UUID, cart models.Cart) *models.CartResponse {
	return &models.CartResponse{
		BusinessID: businessID.String(),
		Items:      cart,
		ItemCount:  cart.Count(),
	}
}

func storageError(err error) error {
	if errors.Is(err, repositories.ErrUnavailable) {
		return ErrStorageUnavailable
	}
	return err
}
