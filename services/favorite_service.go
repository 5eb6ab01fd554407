package services

import (
	"context"

	"lokalin/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type FavoriteService struct {
	favorites  FavoriteStore
	businesses *BusinessService
}

func NewFavoriteService(favorites FavoriteStore, businesses *BusinessService) *FavoriteService {
	return &FavoriteService{favorites: favorites, businesses: businesses}
}

func (s *FavoriteService) List(ctx context.Context, userID uuid.UUID) ([]models.BusinessListItem, error) {
	businesses, err := s.favorites.ListBusinesses(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]models.BusinessListItem, 0, len(businesses))
	for _, b := range businesses {
		items = append(items, s.businesses.toListItem(b, nil))
	}
	return items, nil
}

func (s *FavoriteService) IsFavorite(ctx context.Context, userID, businessID uuid.UUID) (bool, error) {
	return s.favorites.Exists(ctx, userID, businessID)
}

// Toggle flips the bookmark and returns the new state.
func (s *FavoriteService) Toggle(ctx context.Context, userID, businessID uuid.UUID) (bool, error) {
	b, err := s.businesses.find(ctx, businessID)
	if err != nil {
		return false, err
	}

	exists, err := s.favorites.Exists(ctx, userID, businessID)
	if err != nil {
		return false, err
	}

	if exists {
		if err := s.favorites.Remove(ctx, userID, businessID); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := s.favorites.Add(ctx, userID, businessID); err != nil {
		return false, err
	}
	log.Info().
		Str("user_id", userID.String()).
		Str("business", b.Name).
		Msg("favorite saved")
	return true, nil
}
