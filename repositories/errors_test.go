package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	other := errors.New("conn closed")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"no rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), ErrNotFound},
		{"email key", &pgconn.PgError{Code: "23505", ConstraintName: "profiles_email_key"}, ErrEmailExists},
		{"username key", &pgconn.PgError{Code: "23505", ConstraintName: "profiles_username_key"}, ErrUsernameExists},
		{"other unique key", &pgconn.PgError{Code: "23505", ConstraintName: "favorites_pkey"}, ErrAlreadyExists},
		{"foreign key", &pgconn.PgError{Code: "23503"}, nil},
		{"passthrough", other, other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(tt.in)
			if tt.want == nil {
				if tt.in == nil {
					assert.NoError(t, got)
					return
				}
				assert.Same(t, tt.in, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestConstraintErrorsAreAlreadyExists(t *testing.T) {
	assert.ErrorIs(t, ErrEmailExists, ErrAlreadyExists)
	assert.ErrorIs(t, ErrUsernameExists, ErrAlreadyExists)
	assert.NotErrorIs(t, ErrEmailExists, ErrUsernameExists)
}
