package models

import (
	"time"

	"lokalin/utils"

	"github.com/google/uuid"
)

const AllCategories = "Semua"

var Categories = []string{"Makanan", "Minuman", "Fashion", "Jasa", "Kriya"}

type Business struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	Address        string    `json:"address"`
	Description    string    `json:"description"`
	Latitude       *float64  `json:"latitude"`
	Longitude      *float64  `json:"longitude"`
	OpeningHour    string    `json:"opening_hour"`
	ClosingHour    string    `json:"closing_hour"`
	ImageURL       string    `json:"image_url"`
	Catalog        string    `json:"catalog"`
	WhatsappNumber string    `json:"whatsapp_number"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (b *Business) Coordinate() *utils.Coordinate {
	return utils.NewCoordinate(b.Latitude, b.Longitude)
}

type BusinessListItem struct {
	Business
	Images     []string `json:"images"`
	CoverImage string   `json:"cover_image"`
	DistanceKm *float64 `json:"distance_km"`
	OpenStatus string   `json:"open_status"`
}

type BusinessDetail struct {
	BusinessListItem
	CatalogItems  []utils.CatalogItem `json:"catalog_items"`
	Owner         *OwnerProfile       `json:"owner"`
	Reviews       []Review            `json:"reviews"`
	ReviewCount   int                 `json:"review_count"`
	AverageRating float64             `json:"average_rating"`
	IsFavorite    bool                `json:"is_favorite"`
	CanManage     bool                `json:"can_manage"`
}

// BusinessQuery carries the listing filters. Origin is the caller's
// location; nil keeps storage order.
type BusinessQuery struct {
	Search   string
	Category string
	Origin   *utils.Coordinate
}

type ShareInfo struct {
	Message string `json:"message"`
	MapsURL string `json:"maps_url"`
}
