package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

type Profile struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	Role         string    `json:"role"`
	AvatarURL    string    `json:"avatar_url"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Gender       string    `json:"gender"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DisplayName prefers the username, then the full name, then the part of
// the e-mail before '@'.
func (p *Profile) DisplayName() string {
	if p.Username != "" {
		return p.Username
	}
	if p.FullName != "" {
		return p.FullName
	}
	for i, r := range p.Email {
		if r == '@' {
			return p.Email[:i]
		}
	}
	return "Pelanggan"
}

// OwnerProfile is the public slice of a profile shown on a business page.
type OwnerProfile struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	AvatarURL string    `json:"avatar_url"`
}

type ProfileResponse struct {
	Profile
	ApplicationStatus *string `json:"application_status"`
}

// Actor is the authenticated caller as seen by services.
type Actor struct {
	ID      uuid.UUID
	Email   string
	Role    string
	IsAdmin bool
}
