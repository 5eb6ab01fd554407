package repositories

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
	// ErrUnavailable is returned by Redis-backed stores running without Redis.
	ErrUnavailable = errors.New("storage unavailable")

	ErrEmailExists    = fmt.Errorf("%w: email", ErrAlreadyExists)
	ErrUsernameExists = fmt.Errorf("%w: username", ErrAlreadyExists)
)

const (
	uniqueViolation = "23505"

	profilesEmailKey    = "profiles_email_key"
	profilesUsernameKey = "profiles_username_key"
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		switch pgErr.ConstraintName {
		case profilesEmailKey:
			return ErrEmailExists
		case profilesUsernameKey:
			return ErrUsernameExists
		}
		return ErrAlreadyExists
	}
	return err
}
