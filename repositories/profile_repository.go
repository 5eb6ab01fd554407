package repositories

import (
	"context"
	"time"

	"lokalin/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const profileColumns = `id, username, email, password_hash, COALESCE(full_name, ''), role,
	COALESCE(avatar_url, ''), COALESCE(phone, ''), COALESCE(address, ''), COALESCE(gender, ''),
	created_at, updated_at`

type ProfileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func scanProfile(row pgx.Row) (*models.Profile, error) {
	p := &models.Profile{}
	err := row.Scan(
		&p.ID,
		&p.Username,
		&p.Email,
		&p.PasswordHash,
		&p.FullName,
		&p.Role,
		&p.AvatarURL,
		&p.Phone,
		&p.Address,
		&p.Gender,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return p, nil
}

func (r *ProfileRepository) Create(ctx context.Context, p *models.Profile) error {
	query := `
		INSERT INTO profiles (id, username, email, password_hash, full_name, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`
	now := time.Now()
	err := r.db.QueryRow(ctx, query,
		p.ID,
		p.Username,
		p.Email,
		p.PasswordHash,
		p.FullName,
		p.Role,
		now,
		now,
	).Scan(&p.CreatedAt, &p.UpdatedAt)

	return mapError(err)
}

func (r *ProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	return scanProfile(r.db.QueryRow(ctx, query, id))
}

func (r *ProfileRepository) FindByEmail(ctx context.Context, email string) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE LOWER(email) = LOWER($1)`
	return scanProfile(r.db.QueryRow(ctx, query, email))
}

func (r *ProfileRepository) FindByUsername(ctx context.Context, username string) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE LOWER(username) = LOWER($1)`
	return scanProfile(r.db.QueryRow(ctx, query, username))
}

func (r *ProfileRepository) Update(ctx context.Context, p *models.Profile) error {
	query := `
		UPDATE profiles
		SET username = $1, full_name = $2, phone = $3, address = $4, gender = $5, updated_at = $6
		WHERE id = $7
		RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, query,
		p.Username,
		p.FullName,
		p.Phone,
		p.Address,
		p.Gender,
		time.Now(),
		p.ID,
	).Scan(&p.UpdatedAt)

	return mapError(err)
}

func (r *ProfileRepository) UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE profiles SET avatar_url = $1, updated_at = $2 WHERE id = $3`,
		avatarURL, time.Now(), id)
	if err != nil {
		return mapError(err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
