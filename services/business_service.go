package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"lokalin/models"
	"lokalin/repositories"
	"lokalin/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type BusinessService struct {
	businesses BusinessStore
	cache      BusinessCache
	profiles   ProfileStore
	reviews    ReviewStore
	favorites  FavoriteStore
	media      *MediaService
	now        func() time.Time
}

func NewBusinessService(
	businesses BusinessStore,
	cache BusinessCache,
	profiles ProfileStore,
	reviews ReviewStore,
	favorites FavoriteStore,
	media *MediaService,
) *BusinessService {
	return &BusinessService{
		businesses: businesses,
		cache:      cache,
		profiles:   profiles,
		reviews:    reviews,
		favorites:  favorites,
		media:      media,
		now:        time.Now,
	}
}

// List filters by search text and category, then ranks by distance from
// query.Origin when it is set. Without an origin the newest-first storage
// order is kept.
func (s *BusinessService) List(ctx context.Context, query models.BusinessQuery) ([]models.BusinessListItem, error) {
	all, err := s.allBusinesses(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(query.Search))
	category := strings.TrimSpace(query.Category)

	items := []models.BusinessListItem{}
	for _, b := range all {
		if search != "" &&
			!strings.Contains(strings.ToLower(b.Name), search) &&
			!strings.Contains(strings.ToLower(b.Category), search) {
			continue
		}
		if category != "" && category != models.AllCategories && b.Category != category {
			continue
		}
		items = append(items, s.toListItem(b, query.Origin))
	}

	if query.Origin != nil {
		utils.SortByDistance(items, func(item models.BusinessListItem) *float64 {
			return item.DistanceKm
		})
	}

	return items, nil
}

func (s *BusinessService) allBusinesses(ctx context.Context) ([]models.Business, error) {
	if cached, ok := s.cache.Get(ctx); ok {
		return cached, nil
	}

	businesses, err := s.businesses.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, businesses)
	return businesses, nil
}

func (s *BusinessService) toListItem(b models.Business, origin *utils.Coordinate) models.BusinessListItem {
	item := models.BusinessListItem{
		Business:   b,
		Images:     utils.SplitImages(b.ImageURL),
		OpenStatus: utils.OpenStatus(b.OpeningHour, b.ClosingHour, s.now()),
	}
	if len(item.Images) > 0 {
		item.CoverImage = item.Images[0]
	}
	if km, ok := utils.Distance(origin, b.Coordinate()); ok {
		item.DistanceKm = &km
	}
	return item
}

func (s *BusinessService) find(ctx context.Context, id uuid.UUID) (*models.Business, error) {
	b, err := s.businesses.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// Detail assembles the business page. actor may be nil for anonymous
// callers.
func (s *BusinessService) Detail(ctx context.Context, id uuid.UUID, actor *models.Actor) (*models.BusinessDetail, error) {
	b, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews.ListByBusiness(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &models.BusinessDetail{
		BusinessListItem: s.toListItem(*b, nil),
		CatalogItems:     utils.ParseCatalog(b.Catalog),
		Reviews:          reviews,
		ReviewCount:      len(reviews),
		AverageRating:    AverageRating(reviews),
	}

	owner, err := s.profiles.FindByID(ctx, b.UserID)
	switch {
	case err == nil:
		detail.Owner = &models.OwnerProfile{
			ID:        owner.ID,
			Username:  owner.Username,
			FullName:  owner.FullName,
			AvatarURL: owner.AvatarURL,
		}
	case !errors.Is(err, repositories.ErrNotFound):
		return nil, err
	}

	if actor != nil {
		detail.CanManage = canManage(actor, b)
		detail.IsFavorite, err = s.favorites.Exists(ctx, actor.ID, id)
		if err != nil {
			return nil, err
		}
	}

	return detail, nil
}

func (s *BusinessService) Mine(ctx context.Context, ownerID uuid.UUID) ([]models.BusinessListItem, error) {
	businesses, err := s.businesses.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	items := make([]models.BusinessListItem, 0, len(businesses))
	for _, b := range businesses {
		items = append(items, s.toListItem(b, nil))
	}
	return items, nil
}

// Create lists a new business for a seller or an admin. The role is read
// from storage so a freshly approved seller does not need a new token.
func (s *BusinessService) Create(ctx context.Context, actor models.Actor, req models.BusinessRequest) (*models.Business, error) {
	if !actor.IsAdmin {
		profile, err := s.profiles.FindByID(ctx, actor.ID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, ErrForbidden
			}
			return nil, err
		}
		if profile.Role != models.RoleSeller && profile.Role != models.RoleAdmin {
			return nil, ErrForbidden
		}
	}

	b := &models.Business{
		ID:          uuid.New(),
		UserID:      actor.ID,
		OpeningHour: utils.DefaultOpeningHour,
		ClosingHour: utils.DefaultClosingHour,
	}
	if err := applyBusinessRequest(b, req); err != nil {
		return nil, err
	}
	if err := validateBusiness(b); err != nil {
		return nil, err
	}

	if err := s.businesses.Create(ctx, b); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)

	log.Info().Str("business_id", b.ID.String()).Str("owner_id", actor.ID.String()).Msg("business created")
	return b, nil
}

// Update applies the non-empty fields of req. Only the owner or an admin
// may change a business.
func (s *BusinessService) Update(ctx context.Context, actor models.Actor, id uuid.UUID, req models.BusinessRequest) (*models.Business, error) {
	b, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canManage(&actor, b) {
		return nil, ErrForbidden
	}

	if err := applyBusinessRequest(b, req); err != nil {
		return nil, err
	}
	if err := validateBusiness(b); err != nil {
		return nil, err
	}

	if err := s.businesses.Update(ctx, b); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return b, nil
}

func (s *BusinessService) Delete(ctx context.Context, actor models.Actor, id uuid.UUID) error {
	b, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if !canManage(&actor, b) {
		return ErrForbidden
	}

	if err := s.businesses.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.cache.Invalidate(ctx)

	log.Info().Str("business_id", id.String()).Str("by", actor.ID.String()).Msg("business deleted")
	return nil
}

// UploadImages stores business photos for a later Create or Update call.
func (s *BusinessService) UploadImages(ctx context.Context, ownerID uuid.UUID, files []UploadFile) ([]string, error) {
	return s.media.Upload(ctx, files, "businesses/"+ownerID.String())
}

func (s *BusinessService) Share(ctx context.Context, id uuid.UUID) (*models.ShareInfo, error) {
	b, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.ShareInfo{
		Message: utils.ShareMessage(b.Name, b.Address),
		MapsURL: utils.MapsSearchURL(b.Name, b.Address),
	}, nil
}

func canManage(actor *models.Actor, b *models.Business) bool {
	return actor.IsAdmin || actor.ID == b.UserID
}

func applyBusinessRequest(b *models.Business, req models.BusinessRequest) error {
	if v := strings.TrimSpace(req.Name); v != "" {
		b.Name = v
	}
	if v := strings.TrimSpace(req.Category); v != "" {
		b.Category = v
	}
	if v := strings.TrimSpace(req.Address); v != "" {
		b.Address = v
	}
	if v := strings.TrimSpace(req.Description); v != "" {
		b.Description = v
	}
	if v := strings.TrimSpace(req.WhatsappNumber); v != "" {
		b.WhatsappNumber = v
	}
	if req.Latitude != nil && req.Longitude != nil {
		b.Latitude = req.Latitude
		b.Longitude = req.Longitude
	}
	if req.OpeningHour != "" {
		b.OpeningHour = req.OpeningHour
	}
	if req.ClosingHour != "" {
		b.ClosingHour = req.ClosingHour
	}
	if len(req.Images) > 0 {
		b.ImageURL = utils.JoinImages(req.Images)
	}
	if req.Catalog != nil {
		catalog, err := utils.EncodeCatalog(req.Catalog)
		if err != nil {
			return invalid("Nama menu dan harga tidak boleh mengandung ',' atau ':'")
		}
		b.Catalog = catalog
	}
	return nil
}

func validateBusiness(b *models.Business) error {
	if b.Name == "" || b.ImageURL == "" || b.Latitude == nil {
		return invalid("Nama, Foto, dan Lokasi wajib diisi")
	}
	if !utils.ValidClock(utils.ShortClock(b.OpeningHour)) || !utils.ValidClock(utils.ShortClock(b.ClosingHour)) {
		return invalid("Format jam harus HH:MM")
	}
	return nil
}

// AverageRating rounds to one decimal; no reviews means zero.
func AverageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	return math.Round(avg*10) / 10
}
