package repositories

import (
	"context"
	"time"

	"lokalin/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewRepository struct {
	db *pgxpool.Pool
}

func NewReviewRepository(db *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]models.Review, error) {
	query := `
		SELECT id, business_id, user_id, user_name, rating, comment, created_at
		FROM reviews
		WHERE business_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var rev models.Review
		if err := rows.Scan(&rev.ID, &rev.BusinessID, &rev.UserID, &rev.UserName,
			&rev.Rating, &rev.Comment, &rev.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

func (r *ReviewRepository) Create(ctx context.Context, rev *models.Review) error {
	rev.CreatedAt = time.Now()
	_, err := r.db.Exec(ctx, `
		INSERT INTO reviews (id, business_id, user_id, user_name, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rev.ID, rev.BusinessID, rev.UserID, rev.UserName, rev.Rating, rev.Comment, rev.CreatedAt)
	return mapError(err)
}
