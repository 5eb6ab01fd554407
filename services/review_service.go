package services

import (
	"context"
	"errors"
	"strings"

	"lokalin/models"
	"lokalin/repositories"

	"github.com/google/uuid"
)

const defaultRating = 5

type ReviewService struct {
	reviews    ReviewStore
	profiles   ProfileStore
	businesses *BusinessService
}

func NewReviewService(reviews ReviewStore, profiles ProfileStore, businesses *BusinessService) *ReviewService {
	return &ReviewService{reviews: reviews, profiles: profiles, businesses: businesses}
}

func (s *ReviewService) List(ctx context.Context, businessID uuid.UUID) ([]models.Review, error) {
	if _, err := s.businesses.find(ctx, businessID); err != nil {
		return nil, err
	}
	return s.reviews.ListByBusiness(ctx, businessID)
}

// Create stores a review. The reviewer name is a snapshot of the current
// username so later renames do not rewrite old reviews.
func (s *ReviewService) Create(ctx context.Context, userID, businessID uuid.UUID, req models.ReviewRequest) (*models.Review, error) {
	comment := strings.TrimSpace(req.Comment)
	if comment == "" {
		return nil, invalid("Komentar tidak boleh kosong")
	}

	rating := req.Rating
	if rating == 0 {
		rating = defaultRating
	}
	if rating < 1 || rating > 5 {
		return nil, invalid("Rating harus antara 1 dan 5")
	}

	if _, err := s.businesses.find(ctx, businessID); err != nil {
		return nil, err
	}

	userName := models.DefaultReviewerName
	profile, err := s.profiles.FindByID(ctx, userID)
	switch {
	case err == nil && profile.Username != "":
		userName = profile.Username
	case err != nil && !errors.Is(err, repositories.ErrNotFound):
		return nil, err
	}

	review := &models.Review{
		ID:         uuid.New(),
		BusinessID: businessID,
		UserID:     userID,
		UserName:   userName,
		Rating:     rating,
		Comment:    comment,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}
