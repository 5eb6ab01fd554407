package repositories

import (
	"context"
	"time"

	"lokalin/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const applicationColumns = `id, user_id, full_name, phone_number, store_name, business_address,
	store_description, status, created_at, updated_at`

type SellerApplicationRepository struct {
	db *pgxpool.Pool
}

func NewSellerApplicationRepository(db *pgxpool.Pool) *SellerApplicationRepository {
	return &SellerApplicationRepository{db: db}
}

func scanApplication(row pgx.Row, extra ...any) (*models.SellerApplication, error) {
	a := &models.SellerApplication{}
	dest := []any{
		&a.ID,
		&a.UserID,
		&a.FullName,
		&a.PhoneNumber,
		&a.StoreName,
		&a.BusinessAddress,
		&a.StoreDescription,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, mapError(err)
	}
	return a, nil
}

func (r *SellerApplicationRepository) Create(ctx context.Context, a *models.SellerApplication) error {
	query := `
		INSERT INTO seller_applications (id, user_id, full_name, phone_number, store_name,
			business_address, store_description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	now := time.Now()
	_, err := r.db.Exec(ctx, query,
		a.ID, a.UserID, a.FullName, a.PhoneNumber, a.StoreName,
		a.BusinessAddress, a.StoreDescription, a.Status, now, now,
	)
	if err != nil {
		return mapError(err)
	}

	a.CreatedAt = now
	a.UpdatedAt = now
	return nil
}

func (r *SellerApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.SellerApplication, error) {
	return scanApplication(r.db.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM seller_applications WHERE id = $1`, id))
}

// FindActiveByUser returns the newest pending or approved application.
func (r *SellerApplicationRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) (*models.SellerApplication, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM seller_applications
		WHERE user_id = $1 AND status IN ('pending', 'approved')
		ORDER BY created_at DESC
		LIMIT 1
	`
	return scanApplication(r.db.QueryRow(ctx, query, userID))
}

func (r *SellerApplicationRepository) FindLatestByUser(ctx context.Context, userID uuid.UUID) (*models.SellerApplication, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM seller_applications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	return scanApplication(r.db.QueryRow(ctx, query, userID))
}

func (r *SellerApplicationRepository) ListByStatus(ctx context.Context, status string) ([]models.SellerApplicationWithApplicant, error) {
	query := `
		SELECT a.id, a.user_id, a.full_name, a.phone_number, a.store_name, a.business_address,
			a.store_description, a.status, a.created_at, a.updated_at,
			COALESCE(p.username, ''), COALESCE(p.email, '')
		FROM seller_applications a
		LEFT JOIN profiles p ON p.id = a.user_id
		WHERE a.status = $1
		ORDER BY a.created_at ASC
	`
	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applications := []models.SellerApplicationWithApplicant{}
	for rows.Next() {
		var username, email string
		a, err := scanApplication(rows, &username, &email)
		if err != nil {
			return nil, err
		}
		applications = append(applications, models.SellerApplicationWithApplicant{
			SellerApplication: *a,
			Username:          username,
			Email:             email,
		})
	}
	return applications, rows.Err()
}

// Decide records the admin decision. Approval promotes the applicant to
// seller in the same transaction; only pending applications are changed.
func (r *SellerApplicationRepository) Decide(ctx context.Context, id uuid.UUID, status string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var userID uuid.UUID
	err = tx.QueryRow(ctx, `
		UPDATE seller_applications SET status = $1, updated_at = $2
		WHERE id = $3 AND status = 'pending'
		RETURNING user_id`,
		status, time.Now(), id).Scan(&userID)
	if err != nil {
		return mapError(err)
	}

	if status == models.ApplicationApproved {
		_, err = tx.Exec(ctx,
			`UPDATE profiles SET role = $1, updated_at = $2 WHERE id = $3 AND role = $4`,
			models.RoleSeller, time.Now(), userID, models.RoleBuyer)
		if err != nil {
			return mapError(err)
		}
	}

	return tx.Commit(ctx)
}
