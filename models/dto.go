package models

import "lokalin/utils"

type RegisterRequest struct {
	Username        string `json:"username" form:"username" binding:"required,min=3,max=50"`
	Email           string `json:"email" form:"email" binding:"required,email"`
	Password        string `json:"password" form:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" binding:"required,eqfield=Password"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" form:"identifier" binding:"required"`
	Password   string `json:"password" form:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name" form:"full_name" binding:"omitempty,max=150"`
	Username string `json:"username" form:"username" binding:"omitempty,min=3,max=50"`
	Phone    string `json:"phone" form:"phone" binding:"omitempty,max=30"`
	Address  string `json:"address" form:"address"`
	Gender   string `json:"gender" form:"gender" binding:"omitempty,max=20"`
}

type BusinessRequest struct {
	Name           string              `json:"name" binding:"omitempty,max=150"`
	Category       string              `json:"category" binding:"omitempty,max=50"`
	Address        string              `json:"address"`
	Description    string              `json:"description"`
	WhatsappNumber string              `json:"whatsapp_number" binding:"omitempty,max=30"`
	Latitude       *float64            `json:"latitude" binding:"omitempty,latitude"`
	Longitude      *float64            `json:"longitude" binding:"omitempty,longitude"`
	OpeningHour    string              `json:"opening_hour" binding:"omitempty,clock"`
	ClosingHour    string              `json:"closing_hour" binding:"omitempty,clock"`
	Images         []string            `json:"images" binding:"omitempty,dive,url"`
	Catalog        []utils.CatalogItem `json:"catalog"`
}

type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
}

type SellerApplicationRequest struct {
	FullName         string `json:"full_name" binding:"required"`
	PhoneNumber      string `json:"phone_number" binding:"required"`
	StoreName        string `json:"store_name" binding:"required"`
	BusinessAddress  string `json:"business_address" binding:"required"`
	StoreDescription string `json:"store_description" binding:"required"`
}

type DecideApplicationRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

type CartItemRequest struct {
	Name string `json:"name" form:"name" binding:"required"`
}

// CheckoutRequest quantities are capped at utils.MaxOrderQuantity.
type CheckoutRequest struct {
	Items map[string]int `json:"items" binding:"omitempty,dive,max=999"`
}
