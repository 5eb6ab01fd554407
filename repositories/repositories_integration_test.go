package repositories

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"lokalin/config"
	"lokalin/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRepositoriesIntegration runs against a real Postgres.
func TestRepositoriesIntegration(t *testing.T) {
	if os.Getenv("RUN_DB_INTEGRATION") != "true" {
		t.Skip("set RUN_DB_INTEGRATION=true to run this integration test")
	}

	_ = godotenv.Load("../.env")
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Fatal("DATABASE_URL is required")
	}
	require.NoError(t, config.RunMigrations(dsn, "../database/migration"))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	profiles := NewProfileRepository(pool)
	businesses := NewBusinessRepository(pool)
	favorites := NewFavoriteRepository(pool)
	reviews := NewReviewRepository(pool)
	applications := NewSellerApplicationRepository(pool)

	suffix := time.Now().UnixNano()
	owner := &models.Profile{
		ID:           uuid.New(),
		Username:     fmt.Sprintf("it_%d", suffix),
		Email:        fmt.Sprintf("it_%d@example.com", suffix),
		PasswordHash: "x",
		Role:         models.RoleBuyer,
	}
	require.NoError(t, profiles.Create(ctx, owner))

	dup := *owner
	dup.ID = uuid.New()
	assert.ErrorIs(t, profiles.Create(ctx, &dup), ErrAlreadyExists)

	found, err := profiles.FindByUsername(ctx, owner.Username)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, found.ID)

	app := &models.SellerApplication{
		ID: uuid.New(), UserID: owner.ID, FullName: "IT", PhoneNumber: "0812",
		StoreName: "Toko IT", BusinessAddress: "Jl. Uji", StoreDescription: "uji", Status: models.ApplicationPending,
	}
	require.NoError(t, applications.Create(ctx, app))
	require.NoError(t, applications.Decide(ctx, app.ID, models.ApplicationApproved))
	assert.ErrorIs(t, applications.Decide(ctx, app.ID, models.ApplicationRejected), ErrNotFound)

	promoted, err := profiles.FindByID(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleSeller, promoted.Role)

	lat, lon := -6.2, 106.8
	b := &models.Business{
		ID: uuid.New(), UserID: owner.ID, Name: "Warung IT", Category: "Makanan",
		Latitude: &lat, Longitude: &lon, OpeningHour: "08:00", ClosingHour: "21:00",
		ImageURL: "https://img/a.jpg", Catalog: "Teh:5000",
	}
	require.NoError(t, businesses.Create(ctx, b))
	t.Cleanup(func() { _ = businesses.Delete(context.Background(), b.ID) })

	require.NoError(t, favorites.Add(ctx, owner.ID, b.ID))
	require.NoError(t, favorites.Add(ctx, owner.ID, b.ID))
	favs, err := favorites.ListBusinesses(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, favs, 1)

	require.NoError(t, reviews.Create(ctx, &models.Review{
		ID: uuid.New(), BusinessID: b.ID, UserID: owner.ID, UserName: owner.Username, Rating: 5, Comment: "Mantap",
	}))
	list, err := reviews.ListByBusiness(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Mantap", list[0].Comment)
}
