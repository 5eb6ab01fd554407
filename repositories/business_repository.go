package repositories

import (
	"context"
	"time"

	"lokalin/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const businessColumns = `id, user_id, name, COALESCE(category, ''), COALESCE(address, ''),
	COALESCE(description, ''), latitude, longitude, COALESCE(opening_hour, ''),
	COALESCE(closing_hour, ''), COALESCE(image_url, ''), COALESCE(catalog, ''),
	COALESCE(whatsapp_number, ''), created_at, updated_at`

type BusinessRepository struct {
	db *pgxpool.Pool
}

func NewBusinessRepository(db *pgxpool.Pool) *BusinessRepository {
	return &BusinessRepository{db: db}
}

func scanBusiness(row pgx.Row) (*models.Business, error) {
	b := &models.Business{}
	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.Name,
		&b.Category,
		&b.Address,
		&b.Description,
		&b.Latitude,
		&b.Longitude,
		&b.OpeningHour,
		&b.ClosingHour,
		&b.ImageURL,
		&b.Catalog,
		&b.WhatsappNumber,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return b, nil
}

func collectBusinesses(rows pgx.Rows) ([]models.Business, error) {
	defer rows.Close()

	businesses := []models.Business{}
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, err
		}
		businesses = append(businesses, *b)
	}
	return businesses, rows.Err()
}

// FindAll returns every business, newest first.
func (r *BusinessRepository) FindAll(ctx context.Context) ([]models.Business, error) {
	rows, err := r.db.Query(ctx, `SELECT `+businessColumns+` FROM businesses ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return collectBusinesses(rows)
}

func (r *BusinessRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Business, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+businessColumns+` FROM businesses WHERE user_id = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	return collectBusinesses(rows)
}

func (r *BusinessRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Business, error) {
	return scanBusiness(r.db.QueryRow(ctx, `SELECT `+businessColumns+` FROM businesses WHERE id = $1`, id))
}

func (r *BusinessRepository) Create(ctx context.Context, b *models.Business) error {
	query := `
		INSERT INTO businesses (id, user_id, name, category, address, description, latitude, longitude,
			opening_hour, closing_hour, image_url, catalog, whatsapp_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	now := time.Now()
	_, err := r.db.Exec(ctx, query,
		b.ID, b.UserID, b.Name, b.Category, b.Address, b.Description, b.Latitude, b.Longitude,
		b.OpeningHour, b.ClosingHour, b.ImageURL, b.Catalog, b.WhatsappNumber, now, now,
	)
	if err != nil {
		return mapError(err)
	}

	b.CreatedAt = now
	b.UpdatedAt = now
	return nil
}

func (r *BusinessRepository) Update(ctx context.Context, b *models.Business) error {
	query := `
		UPDATE businesses
		SET name = $1, category = $2, address = $3, description = $4, latitude = $5, longitude = $6,
			opening_hour = $7, closing_hour = $8, image_url = $9, catalog = $10, whatsapp_number = $11,
			updated_at = $12
		WHERE id = $13
	`
	now := time.Now()
	result, err := r.db.Exec(ctx, query,
		b.Name, b.Category, b.Address, b.Description, b.Latitude, b.Longitude,
		b.OpeningHour, b.ClosingHour, b.ImageURL, b.Catalog, b.WhatsappNumber, now, b.ID,
	)
	if err != nil {
		return mapError(err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	b.UpdatedAt = now
	return nil
}

func (r *BusinessRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM businesses WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
