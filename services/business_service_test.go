package services

import (
	"context"
	"testing"
	"time"

	"lokalin/models"
	"lokalin/repositories"
	"lokalin/services/mocks"
	"lokalin/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type businessMocks struct {
	businesses *mocks.MockBusinessStore
	cache      *mocks.MockBusinessCache
	profiles   *mocks.MockProfileStore
	reviews    *mocks.MockReviewStore
	favorites  *mocks.MockFavoriteStore
	uploader   *mocks.MockImageUploader
}

func newBusinessService(t *testing.T) (*BusinessService, businessMocks) {
	ctrl := gomock.NewController(t)
	m := businessMocks{
		businesses: mocks.NewMockBusinessStore(ctrl),
		cache:      mocks.NewMockBusinessCache(ctrl),
		profiles:   mocks.NewMockProfileStore(ctrl),
		reviews:    mocks.NewMockReviewStore(ctrl),
		favorites:  mocks.NewMockFavoriteStore(ctrl),
		uploader:   mocks.NewMockImageUploader(ctrl),
	}
	svc := NewBusinessService(m.businesses, m.cache, m.profiles, m.reviews, m.favorites, NewMediaService(m.uploader))
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local) }
	return svc, m
}

func f64(v float64) *float64 { return &v }

func sampleBusinesses() []models.Business {
	return []models.Business{
		{ID: uuid.New(), Name: "Kopi Jauh", Category: "Minuman", Latitude: f64(-6.90), Longitude: f64(107.60),
			OpeningHour: "08:00", ClosingHour: "21:00", ImageURL: "a.jpg|b.jpg"},
		{ID: uuid.New(), Name: "Batik Tanpa Lokasi", Category: "Fashion",
			OpeningHour: "08:00", ClosingHour: "10:00"},
		{ID: uuid.New(), Name: "Warung Dekat", Category: "Makanan", Latitude: f64(-6.2001), Longitude: f64(106.8001),
			OpeningHour: "08:00", ClosingHour: "21:00"},
	}
}

func TestBusinessServiceListRanksByDistance(t *testing.T) {
	svc, m := newBusinessService(t)
	ctx := context.Background()

	m.cache.EXPECT().Get(ctx).Return(nil, false)
	m.businesses.EXPECT().FindAll(ctx).Return(sampleBusinesses(), nil)
	m.cache.EXPECT().Set(ctx, gomock.Any())

	items, err := svc.List(ctx, models.BusinessQuery{Origin: &utils.Coordinate{Latitude: -6.2, Longitude: 106.8}})
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "Warung Dekat", items[0].Name)
	assert.Equal(t, "Kopi Jauh", items[1].Name)
	assert.Equal(t, "Batik Tanpa Lokasi", items[2].Name)
	assert.Nil(t, items[2].DistanceKm)

	assert.Equal(t, utils.StatusOpen, items[0].OpenStatus)
	assert.Equal(t, utils.StatusClosed, items[2].OpenStatus)
	assert.Equal(t, "a.jpg", items[1].CoverImage)
}

func TestBusinessServiceListFilters(t *testing.T) {
	svc, m := newBusinessService(t)
	ctx := context.Background()

	m.cache.EXPECT().Get(ctx).Return(sampleBusinesses(), true).Times(3)

	items, err := svc.List(ctx, models.BusinessQuery{Search: "kopi"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Kopi Jauh", items[0].Name)

	items, err = svc.List(ctx, models.BusinessQuery{Category: "Fashion"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Batik Tanpa Lokasi", items[0].Name)

	items, err = svc.List(ctx, models.BusinessQuery{Category: models.AllCategories})
	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, "Kopi Jauh", items[0].Name, "storage order kept without origin")
}

func TestBusinessServiceDetail(t *testing.T) {
	svc, m := newBusinessService(t)
	ctx := context.Background()

	owner := uuid.New()
	b := models.Business{ID: uuid.New(), UserID: owner, Name: "Kopi", Catalog: "Kopi Susu:15000,Teh:5000",
		OpeningHour: "08:00", ClosingHour: "21:00"}
	actor := &models.Actor{ID: owner}

	m.businesses.EXPECT().FindByID(ctx, b.ID).Return(&b, nil)
	m.reviews.EXPECT().ListByBusiness(ctx, b.ID).Return([]models.Review{{Rating: 5}, {Rating: 4}, {Rating: 4}}, nil)
	m.profiles.EXPECT().FindByID(ctx, owner).Return(&models.Profile{ID: owner, Username: "sri"}, nil)
	m.favorites.EXPECT().Exists(ctx, owner, b.ID).Return(true, nil)

	detail, err := svc.Detail(ctx, b.ID, actor)
	require.NoError(t, err)
	assert.Equal(t, 4.3, detail.AverageRating)
	assert.Equal(t, 3, detail.ReviewCount)
	assert.Len(t, detail.CatalogItems, 2)
	assert.True(t, detail.IsFavorite)
	assert.True(t, detail.CanManage)
	require.NotNil(t, detail.Owner)
	assert.Equal(t, "sri", detail.Owner.Username)
}

func TestBusinessServiceDetailNotFound(t *testing.T) {
	svc, m := newBusinessService(t)
	id := uuid.New()
	m.businesses.EXPECT().FindByID(gomock.Any(), id).Return(nil, repositories.ErrNotFound)

	_, err := svc.Detail(context.Background(), id, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBusinessServiceCreate(t *testing.T) {
	ctx := context.Background()
	validReq := models.BusinessRequest{
		Name:      "Warung Bu Sri",
		Category:  "Makanan",
		Latitude:  f64(-6.2),
		Longitude: f64(106.8),
		Images:    []string{"https://img/a.jpg"},
		Catalog:   []utils.CatalogItem{{Name: "Nasi Goreng", Price: func() *string { s := "18000"; return &s }()}},
	}

	t.Run("seller creates with default hours", func(t *testing.T) {
		svc, m := newBusinessService(t)
		actor := models.Actor{ID: uuid.New()}

		m.profiles.EXPECT().FindByID(ctx, actor.ID).Return(&models.Profile{Role: models.RoleSeller}, nil)
		m.businesses.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		m.cache.EXPECT().Invalidate(ctx)

		b, err := svc.Create(ctx, actor, validReq)
		require.NoError(t, err)
		assert.Equal(t, actor.ID, b.UserID)
		assert.Equal(t, utils.DefaultOpeningHour, b.OpeningHour)
		assert.Equal(t, utils.DefaultClosingHour, b.ClosingHour)
		assert.Equal(t, "Nasi Goreng:18000", b.Catalog)
	})

	t.Run("buyer is forbidden", func(t *testing.T) {
		svc, m := newBusinessService(t)
		actor := models.Actor{ID: uuid.New()}
		m.profiles.EXPECT().FindByID(ctx, actor.ID).Return(&models.Profile{Role: models.RoleBuyer}, nil)

		_, err := svc.Create(ctx, actor, validReq)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("admin skips role lookup", func(t *testing.T) {
		svc, m := newBusinessService(t)
		m.businesses.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		m.cache.EXPECT().Invalidate(ctx)

		_, err := svc.Create(ctx, models.Actor{ID: uuid.New(), IsAdmin: true}, validReq)
		assert.NoError(t, err)
	})

	t.Run("missing image", func(t *testing.T) {
		svc, m := newBusinessService(t)
		actor := models.Actor{ID: uuid.New()}
		m.profiles.EXPECT().FindByID(ctx, actor.ID).Return(&models.Profile{Role: models.RoleSeller}, nil)

		req := validReq
		req.Images = nil
		_, err := svc.Create(ctx, actor, req)

		var validation *ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, "Nama, Foto, dan Lokasi wajib diisi", validation.Message)
	})
}

func TestBusinessServiceUpdateAndDeleteRequireOwner(t *testing.T) {
	ctx := context.Background()
	b := models.Business{ID: uuid.New(), UserID: uuid.New(), Name: "Kopi", ImageURL: "a.jpg",
		Latitude: f64(-6.2), Longitude: f64(106.8), OpeningHour: "08:00", ClosingHour: "21:00"}

	t.Run("stranger", func(t *testing.T) {
		svc, m := newBusinessService(t)
		m.businesses.EXPECT().FindByID(ctx, b.ID).Return(&b, nil).Times(2)

		stranger := models.Actor{ID: uuid.New()}
		_, err := svc.Update(ctx, stranger, b.ID, models.BusinessRequest{Name: "Baru"})
		assert.ErrorIs(t, err, ErrForbidden)
		assert.ErrorIs(t, svc.Delete(ctx, stranger, b.ID), ErrForbidden)
	})

	t.Run("admin deletes", func(t *testing.T) {
		svc, m := newBusinessService(t)
		m.businesses.EXPECT().FindByID(ctx, b.ID).Return(&b, nil)
		m.businesses.EXPECT().Delete(ctx, b.ID).Return(nil)
		m.cache.EXPECT().Invalidate(ctx)

		assert.NoError(t, svc.Delete(ctx, models.Actor{ID: uuid.New(), IsAdmin: true}, b.ID))
	})

	t.Run("owner renames", func(t *testing.T) {
		svc, m := newBusinessService(t)
		copyB := b
		m.businesses.EXPECT().FindByID(ctx, b.ID).Return(&copyB, nil)
		m.businesses.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		m.cache.EXPECT().Invalidate(ctx)

		updated, err := svc.Update(ctx, models.Actor{ID: b.UserID}, b.ID, models.BusinessRequest{Name: "Kopi Baru"})
		require.NoError(t, err)
		assert.Equal(t, "Kopi Baru", updated.Name)
		assert.Equal(t, "a.jpg", updated.ImageURL)
	})
}

func TestBusinessServiceShare(t *testing.T) {
	svc, m := newBusinessService(t)
	b := models.Business{ID: uuid.New(), Name: "Kopi Kita", Address: "Jl. Merdeka 1"}
	m.businesses.EXPECT().FindByID(gomock.Any(), b.ID).Return(&b, nil)

	share, err := svc.Share(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cek UMKM Kopi Kita di Lokal.in!\n📍 Jl. Merdeka 1", share.Message)
}

func TestAverageRating(t *testing.T) {
	assert.Zero(t, AverageRating(nil))
	assert.Equal(t, 4.5, AverageRating([]models.Review{{Rating: 4}, {Rating: 5}}))
	assert.Equal(t, 3.7, AverageRating([]models.Review{{Rating: 5}, {Rating: 5}, {Rating: 1}}))
}
