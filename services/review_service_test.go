package services

import (
	"context"
	"testing"

	"lokalin/models"
	"lokalin/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReviewServiceCreate(t *testing.T) {
	ctx := context.Background()
	user := uuid.New()
	b := models.Business{ID: uuid.New()}

	t.Run("defaults rating and snapshots username", func(t *testing.T) {
		businesses, m := newBusinessService(t)
		svc := NewReviewService(m.reviews, m.profiles, businesses)

		m.businesses.EXPECT().FindByID(ctx, b.ID).Return(&b, nil)
		m.profiles.EXPECT().FindByID(ctx, user).Return(&models.Profile{Username: "sri"}, nil)
		m.reviews.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		review, err := svc.Create(ctx, user, b.ID, models.ReviewRequest{Comment: "  Enak!  "})
		require.NoError(t, err)
		assert.Equal(t, 5, review.Rating)
		assert.Equal(t, "Enak!", review.Comment)
		assert.Equal(t, "sri", review.UserName)
	})

	t.Run("falls back to Pengguna", func(t *testing.T) {
		businesses, m := newBusinessService(t)
		svc := NewReviewService(m.reviews, m.profiles, businesses)

		m.businesses.EXPECT().FindByID(ctx, b.ID).Return(&b, nil)
		m.profiles.EXPECT().FindByID(ctx, user).Return(nil, repositories.ErrNotFound)
		m.reviews.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		review, err := svc.Create(ctx, user, b.ID, models.ReviewRequest{Rating: 3, Comment: "Lumayan"})
		require.NoError(t, err)
		assert.Equal(t, models.DefaultReviewerName, review.UserName)
	})

	t.Run("blank comment", func(t *testing.T) {
		businesses, m := newBusinessService(t)
		svc := NewReviewService(m.reviews, m.profiles, businesses)

		_, err := svc.Create(ctx, user, b.ID, models.ReviewRequest{Comment: "   "})
		var validation *ValidationError
		assert.ErrorAs(t, err, &validation)
	})
}

func TestFavoriteServiceToggle(t *testing.T) {
	ctx := context.Background()
	user := uuid.New()
	b := models.Business{ID: uuid.New(), Name: "Kopi"}

	t.Run("adds when absent", func(t *testing.T) {
		businesses, m := newBusinessService(t)
		svc := NewFavoriteService(m.favorites, businesses)

		m.businesses.EXPECT().FindByID(ctx, b.ID).Return(&b, nil)
		m.favorites.EXPECT().Exists(ctx, user, b.ID).Return(false, nil)
		m.favorites.EXPECT().Add(ctx, user, b.ID).Return(nil)

		state, err := svc.Toggle(ctx, user, b.ID)
		require.NoError(t, err)
		assert.True(t, state)
	})

	t.Run("removes when present", func(t *testing.T) {
		businesses, m := newBusinessService(t)
		svc := NewFavoriteService(m.favorites, businesses)

		m.businesses.EXPECT().FindByID(ctx, b.ID).Return(&b, nil)
		m.favorites.EXPECT().Exists(ctx, user, b.ID).Return(true, nil)
		m.favorites.EXPECT().Remove(ctx, user, b.ID).Return(nil)

		state, err := svc.Toggle(ctx, user, b.ID)
		require.NoError(t, err)
		assert.False(t, state)
	})

	t.Run("unknown business", func(t *testing.T) {
		businesses, m := newBusinessService(t)
		svc := NewFavoriteService(m.favorites, businesses)

		m.businesses.EXPECT().FindByID(ctx, b.ID).Return(nil, repositories.ErrNotFound)

		_, err := svc.Toggle(ctx, user, b.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
