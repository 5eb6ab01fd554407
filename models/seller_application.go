package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ApplicationPending  = "pending"
	ApplicationApproved = "approved"
	ApplicationRejected = "rejected"
)

type SellerApplication struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	FullName         string    `json:"full_name"`
	PhoneNumber      string    `json:"phone_number"`
	StoreName        string    `json:"store_name"`
	BusinessAddress  string    `json:"business_address"`
	StoreDescription string    `json:"store_description"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// SellerApplicationWithApplicant is what the admin panel lists.
type SellerApplicationWithApplicant struct {
	SellerApplication
	Username string `json:"username"`
	Email    string `json:"email"`
}
