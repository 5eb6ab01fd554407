package repositories

import (
	"context"

	"lokalin/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FavoriteRepository struct {
	db *pgxpool.Pool
}

func NewFavoriteRepository(db *pgxpool.Pool) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) Exists(ctx context.Context, userID, businessID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id = $1 AND business_id = $2)`,
		userID, businessID).Scan(&exists)
	return exists, mapError(err)
}

func (r *FavoriteRepository) Add(ctx context.Context, userID, businessID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO favorites (user_id, business_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		userID, businessID)
	return mapError(err)
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID, businessID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM favorites WHERE user_id = $1 AND business_id = $2`,
		userID, businessID)
	return mapError(err)
}

// ListBusinesses joins favorites with businesses; rows whose business is
// gone never appear.
func (r *FavoriteRepository) ListBusinesses(ctx context.Context, userID uuid.UUID) ([]models.Business, error) {
	query := `
		SELECT b.id, b.user_id, b.name, COALESCE(b.category, ''), COALESCE(b.address, ''),
			COALESCE(b.description, ''), b.latitude, b.longitude, COALESCE(b.opening_hour, ''),
			COALESCE(b.closing_hour, ''), COALESCE(b.image_url, ''), COALESCE(b.catalog, ''),
			COALESCE(b.whatsapp_number, ''), b.created_at, b.updated_at
		FROM favorites f
		JOIN businesses b ON b.id = f.business_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return collectBusinesses(rows)
}
