package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"lokalin/services/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMediaServiceUpload(t *testing.T) {
	ctx := context.Background()
	files := []UploadFile{
		{Name: "depan toko.jpg", Reader: strings.NewReader("a")},
		{Name: "menu.png", Reader: strings.NewReader("b")},
	}

	t.Run("returns urls in order", func(t *testing.T) {
		uploader := mocks.NewMockImageUploader(gomock.NewController(t))
		svc := NewMediaService(uploader)

		gomock.InOrder(
			uploader.EXPECT().UploadImage(ctx, gomock.Any(), "depan_toko", "businesses").Return("https://img/1", "p1", nil),
			uploader.EXPECT().UploadImage(ctx, gomock.Any(), "menu", "businesses").Return("https://img/2", "p2", nil),
		)

		urls, err := svc.Upload(ctx, files, "businesses")
		require.NoError(t, err)
		assert.Equal(t, []string{"https://img/1", "https://img/2"}, urls)
	})

	t.Run("rolls back on failure", func(t *testing.T) {
		uploader := mocks.NewMockImageUploader(gomock.NewController(t))
		svc := NewMediaService(uploader)

		uploader.EXPECT().UploadImage(ctx, gomock.Any(), "depan_toko", "x").Return("https://img/1", "p1", nil)
		uploader.EXPECT().UploadImage(ctx, gomock.Any(), "menu", "x").Return("", "", errors.New("quota"))
		uploader.EXPECT().DeleteImage(ctx, "p1").Return(nil)

		_, err := svc.Upload(ctx, files, "x")
		assert.Error(t, err)
	})

	t.Run("not configured", func(t *testing.T) {
		_, err := NewMediaService(nil).Upload(ctx, files, "x")
		assert.ErrorIs(t, err, ErrUploadNotConfigured)
	})
}
