package services

import (
	"context"
	"errors"
	"strings"

	"lokalin/models"
	"lokalin/repositories"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type SellerApplicationService struct {
	applications SellerApplicationStore
	profiles     ProfileStore
	notifier     Notifier
}

// NewSellerApplicationService accepts a nil notifier; decisions are then
// only logged.
func NewSellerApplicationService(applications SellerApplicationStore, profiles ProfileStore, notifier Notifier) *SellerApplicationService {
	return &SellerApplicationService{applications: applications, profiles: profiles, notifier: notifier}
}

func (s *SellerApplicationService) Apply(ctx context.Context, userID uuid.UUID, req models.SellerApplicationRequest) (*models.SellerApplication, error) {
	active, err := s.applications.FindActiveByUser(ctx, userID)
	switch {
	case err == nil && active.Status == models.ApplicationApproved:
		return nil, ErrAlreadySeller
	case err == nil:
		return nil, ErrApplicationPending
	case !errors.Is(err, repositories.ErrNotFound):
		return nil, err
	}

	profile, err := s.profiles.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if profile.Role == models.RoleSeller || profile.Role == models.RoleAdmin {
		return nil, ErrAlreadySeller
	}

	app := &models.SellerApplication{
		ID:               uuid.New(),
		UserID:           userID,
		FullName:         strings.TrimSpace(req.FullName),
		PhoneNumber:      strings.TrimSpace(req.PhoneNumber),
		StoreName:        strings.TrimSpace(req.StoreName),
		BusinessAddress:  strings.TrimSpace(req.BusinessAddress),
		StoreDescription: strings.TrimSpace(req.StoreDescription),
		Status:           models.ApplicationPending,
	}
	if app.FullName == "" || app.PhoneNumber == "" || app.StoreName == "" ||
		app.BusinessAddress == "" || app.StoreDescription == "" {
		return nil, invalid("Mohon lengkapi semua data pengajuan")
	}

	if err := s.applications.Create(ctx, app); err != nil {
		return nil, err
	}

	log.Info().Str("application_id", app.ID.String()).Str("user_id", userID.String()).Msg("seller application submitted")
	return app, nil
}

func (s *SellerApplicationService) Mine(ctx context.Context, userID uuid.UUID) (*models.SellerApplication, error) {
	app, err := s.applications.FindLatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return app, nil
}

// List returns applications in the given status, pending when empty.
func (s *SellerApplicationService) List(ctx context.Context, status string) ([]models.SellerApplicationWithApplicant, error) {
	switch status {
	case "":
		status = models.ApplicationPending
	case models.ApplicationPending, models.ApplicationApproved, models.ApplicationRejected:
	default:
		return nil, invalid("Status tidak dikenal")
	}
	return s.applications.ListByStatus(ctx, status)
}

// Decide approves or rejects a pending application. Approval promotes the
// applicant to seller in the same transaction.
func (s *SellerApplicationService) Decide(ctx context.Context, id uuid.UUID, status string) (*models.SellerApplication, error) {
	if status != models.ApplicationApproved && status != models.ApplicationRejected {
		return nil, invalid("Status harus approved atau rejected")
	}

	app, err := s.applications.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if app.Status != models.ApplicationPending {
		return nil, ErrApplicationDecided
	}

	if err := s.applications.Decide(ctx, id, status); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrApplicationDecided
		}
		return nil, err
	}
	app.Status = status

	log.Info().Str("application_id", id.String()).Str("status", status).Msg("seller application decided")
	s.notify(ctx, app)
	return app, nil
}

func (s *SellerApplicationService) notify(ctx context.Context, app *models.SellerApplication) {
	if s.notifier == nil {
		return
	}

	profile, err := s.profiles.FindByID(ctx, app.UserID)
	if err != nil {
		log.Warn().Err(err).Str("user_id", app.UserID.String()).Msg("applicant lookup for notification failed")
		return
	}

	if err := s.notifier.SendApplicationDecision(profile.Email, app.FullName, app.StoreName, app.Status); err != nil {
		log.Error().Err(err).Str("application_id", app.ID.String()).Msg("failed to send decision email")
	}
}
