package services

//go:generate mockgen -source=stores.go -destination=mocks/mock_stores.go -package=mocks

import (
	"context"
	"io"
	"time"

	"lokalin/models"

	"github.com/google/uuid"
)

type ProfileStore interface {
	Create(ctx context.Context, p *models.Profile) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	FindByEmail(ctx context.Context, email string) (*models.Profile, error)
	FindByUsername(ctx context.Context, username string) (*models.Profile, error)
	Update(ctx context.Context, p *models.Profile) error
	UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) error
}

type BusinessStore interface {
	FindAll(ctx context.Context) ([]models.Business, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Business, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Business, error)
	Create(ctx context.Context, b *models.Business) error
	Update(ctx context.Context, b *models.Business) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type BusinessCache interface {
	Get(ctx context.Context) ([]models.Business, bool)
	Set(ctx context.Context, businesses []models.Business)
	Invalidate(ctx context.Context)
}

type FavoriteStore interface {
	Exists(ctx context.Context, userID, businessID uuid.UUID) (bool, error)
	Add(ctx context.Context, userID, businessID uuid.UUID) error
	Remove(ctx context.Context, userID, businessID uuid.UUID) error
	ListBusinesses(ctx context.Context, userID uuid.UUID) ([]models.Business, error)
}

type ReviewStore interface {
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]models.Review, error)
	Create(ctx context.Context, r *models.Review) error
}

type SellerApplicationStore interface {
	Create(ctx context.Context, a *models.SellerApplication) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.SellerApplication, error)
	FindActiveByUser(ctx context.Context, userID uuid.UUID) (*models.SellerApplication, error)
	FindLatestByUser(ctx context.Context, userID uuid.UUID) (*models.SellerApplication, error)
	ListByStatus(ctx context.Context, status string) ([]models.SellerApplicationWithApplicant, error)
	Decide(ctx context.Context, id uuid.UUID, status string) error
}

type CartStore interface {
	Load(ctx context.Context, userID, businessID uuid.UUID) (models.Cart, error)
	Save(ctx context.Context, userID, businessID uuid.UUID, cart models.Cart) error
	Clear(ctx context.Context, userID, businessID uuid.UUID) error
}

type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type ImageUploader interface {
	UploadImage(ctx context.Context, file io.Reader, filename, folder string) (string, string, error)
	DeleteImage(ctx context.Context, publicID string) error
}

type Notifier interface {
	SendApplicationDecision(toEmail, name, storeName, status string) error
}
