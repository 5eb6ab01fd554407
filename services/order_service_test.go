package services

import (
	"context"
	"testing"

	"lokalin/models"
	"lokalin/repositories"
	"lokalin/services/mocks"
	"lokalin/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newOrderService(t *testing.T) (*OrderService, *mocks.MockCartStore, businessMocks) {
	businesses, m := newBusinessService(t)
	carts := mocks.NewMockCartStore(gomock.NewController(t))
	return NewOrderService(carts, businesses), carts, m
}

func warung() models.Business {
	return models.Business{
		ID:             uuid.New(),
		Name:           "Warung Bu Sri",
		Catalog:        "Nasi Goreng:18000,Teh Manis:5000",
		WhatsappNumber: "0812-3456-789",
	}
}

func TestOrderServiceAddItem(t *testing.T) {
	ctx := context.Background()
	user := uuid.New()
	b := warung()

	t.Run("increments existing quantity", func(t *testing.T) {
		svc, carts, m := newOrderService(t)
		m.businesses.EXPECT().FindByID(ctx, b.ID).Return(&b, nil)
		carts.EXPECT().Load(ctx, user, b.ID).Return(models.Cart{"Teh Manis": 1}, nil)
		carts.EXPECT().Save(ctx, user, b.ID, models.Cart{"Teh Manis": 2}).Return(nil)

		resp, err := svc.AddItem(ctx, user, b.ID, "Teh Manis")
		require.NoError(t, err)
		assert.Equal(t, 2, resp.ItemCount)
	})

	t.Run("rejects item outside catalog", func(t *testing.T) {
		svc, _, m := newOrderService(t)
		m.businesses.EXPECT().FindByID(ctx, b.ID).Return(&b, nil)

		_, err := svc.AddItem(ctx, user, b.ID, "Sate")
		assert.ErrorIs(t, err, ErrUnknownCatalogItem)
	})

	t.Run("line already at the cap", func(t *testing.T) {
		svc, carts, m := newOrderService(t)
		m.businesses.EXPECT().FindByID(ctx, b.ID).Return(&b, nil)
		carts.EXPECT().Load(ctx, user, b.ID).Return(models.Cart{"Teh Manis": utils.MaxOrderQuantity}, nil)

		_, err := svc.AddItem(ctx, user, b.ID, "Teh Manis")
		var validation *ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, "Maximum 999 per item", validation.Message)
	})

	t.Run("no redis", func(t *testing.T) {
		svc, carts, m := newOrderService(t)
		m.businesses.EXPECT().FindByID(ctx, b.ID).Return(&b, nil)
		carts.EXPECT().Load(ctx, user, b.ID).Return(models.Cart{}, nil)
		carts.EXPECT().Save(ctx, user, b.ID, gomock.Any()).Return(repositories.ErrUnavailable)

		_, err := svc.AddItem(ctx, user, b.ID, "Teh Manis")
		assert.ErrorIs(t, err, ErrStorageUnavailable)
	})
}

func TestOrderServiceRemoveItem(t *testing.T) {
	ctx := context.Background()
	user, businessID := uuid.New(), uuid.New()
	svc, carts, _ := newOrderService(t)

	carts.EXPECT().Load(ctx, user, businessID).Return(models.Cart{"Teh Manis": 1, "Nasi Goreng": 2}, nil)
	carts.EXPECT().Save(ctx, user, businessID, models.Cart{"Nasi Goreng": 2}).Return(nil)

	resp, err := svc.RemoveItem(ctx, user, businessID, "Teh Manis")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.ItemCount)
}

func TestOrderServiceCheckout(t *testing.T) {
	ctx := context.Background()
	user := uuid.New()
	b := warung()

	t.Run("stored cart", func(t *testing.T) {
		svc, carts, m := newOrderService(t)
		m.businesses.EXPECT().FindByID(ctx, b.ID).Return(&b, nil)
		carts.EXPECT().Load(ctx, user, b.ID).Return(models.Cart{"Teh Manis": 2, "Nasi Goreng": 1}, nil)
		carts.EXPECT().Clear(ctx, user, b.ID).Return(nil)

		order, err := svc.Checkout(ctx, user, b.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, 28000, order.Total)
		assert.Equal(t, 3, order.ItemCount)
		assert.Contains(t, order.Message, "- Nasi Goreng (1x)\n- Teh Manis (2x)\n")
		assert.Contains(t, order.Message, "Total Estimasi: Rp28.000")
		assert.Contains(t, order.WhatsAppURL, "https://wa.me/08123456789?text=Halo%20Warung%20Bu%20Sri%2C%0A")
	})

	t.Run("body items override stored cart", func(t *testing.T) {
		svc, carts, m := newOrderService(t)
		m.businesses.EXPECT().FindByID(ctx, b.ID).Return(&b, nil)
		carts.EXPECT().Clear(ctx, user, b.ID).Return(nil)

		order, err := svc.Checkout(ctx, user, b.ID, map[string]int{"Teh Manis": 3, "Nasi Goreng": 0})
		require.NoError(t, err)
		assert.Equal(t, 15000, order.Total)
		assert.Len(t, order.Lines, 1)
	})

	t.Run("quantity above cap", func(t *testing.T) {
		svc, _, m := newOrderService(t)
		m.businesses.EXPECT().FindByID(ctx, b.ID).Return(&b, nil)

		_, err := svc.Checkout(ctx, user, b.ID, map[string]int{"Teh Manis": utils.MaxOrderQuantity + 1})
		var validation *ValidationError
		require.ErrorAs(t, err, &validation)
	})

	t.Run("empty cart greets", func(t *testing.T) {
		svc, carts, m := newOrderService(t)
		m.businesses.EXPECT().FindByID(ctx, b.ID).Return(&b, nil)
		carts.EXPECT().Load(ctx, user, b.ID).Return(models.Cart{}, nil)
		carts.EXPECT().Clear(ctx, user, b.ID).Return(nil)

		order, err := svc.Checkout(ctx, user, b.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, "Halo Warung Bu Sri, saya menemukan UMKM Anda di Lokal.in...", order.Message)
	})

	t.Run("no whatsapp number", func(t *testing.T) {
		svc, _, m := newOrderService(t)
		noPhone := warung()
		noPhone.WhatsappNumber = ""
		m.businesses.EXPECT().FindByID(ctx, noPhone.ID).Return(&noPhone, nil)

		_, err := svc.Checkout(ctx, user, noPhone.ID, nil)
		assert.ErrorIs(t, err, ErrNoWhatsApp)
	})
}
