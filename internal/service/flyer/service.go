package flyer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lezerquera/apk-ZIMI/internal/model"
	"github.com/lezerquera/apk-ZIMI/internal/repository"
	apperrors "github.com/lezerquera/apk-ZIMI/pkg/errors"
)

type Service struct {
	repo   repository.FlyerRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewService(repo repository.FlyerRepository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]*model.Flyer, error) {
	flyers, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list flyers: %w", err)
	}
	return flyers, nil
}

// GetByService returns the stored flyer or, when none exists, a default that
// is never persisted.
func (s *Service) GetByService(ctx context.Context, serviceID model.ServiceID) (*model.Flyer, error) {
	f, err := s.repo.GetByServiceID(ctx, serviceID)
	if err == nil {
		return f, nil
	}
	if !apperrors.IsNotFound(err) {
		return nil, fmt.Errorf("failed to get flyer: %w", err)
	}

	def := defaultFlyer(serviceID)
	now := s.now().UTC()
	def.ID = uuid.NewString()
	def.CreatedAt = now
	def.UpdatedAt = now
	return &def, nil
}

func (s *Service) Create(ctx context.Context, req *model.CreateFlyerRequest) (*model.Flyer, error) {
	now := s.now().UTC()
	f := &model.Flyer{
		ID:                 uuid.NewString(),
		ServiceID:          req.ServiceID,
		Title:              req.Title,
		ImageURL:           req.ImageURL,
		Benefits:           nonNil(req.Benefits),
		Conditions:         nonNil(req.Conditions),
		Process:            nonNil(req.Process),
		Safety:             req.Safety,
		Duration:           req.Duration,
		Frequency:          req.Frequency,
		Location:           req.Location,
		ContactPhone:       req.ContactPhone,
		ContactWebsite:     req.ContactWebsite,
		OfferTitle:         req.OfferTitle,
		OfferPrice:         req.OfferPrice,
		OfferOriginalPrice: req.OfferOriginalPrice,
		OfferSavings:       req.OfferSavings,
		OfferDescription:   req.OfferDescription,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	// the store's unique key on service_id turns a duplicate into Conflict
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, fmt.Errorf("failed to create flyer: %w", err)
	}
	s.logger.Info().Str("service_id", string(f.ServiceID)).Msg("flyer created")
	return f, nil
}

// Update merges the non-nil fields of req into the stored flyer, creating it
// when absent.
func (s *Service) Update(ctx context.Context, serviceID model.ServiceID, req *model.UpdateFlyerRequest) (*model.Flyer, error) {
	now := s.now().UTC()

	f, err := s.repo.GetByServiceID(ctx, serviceID)
	switch {
	case err == nil:
	case apperrors.IsNotFound(err):
		f = &model.Flyer{
			ID:         uuid.NewString(),
			ServiceID:  serviceID,
			Benefits:   []string{},
			Conditions: []string{},
			Process:    []string{},
			CreatedAt:  now,
		}
	default:
		return nil, fmt.Errorf("failed to get flyer: %w", err)
	}

	applyPatch(f, req)
	f.UpdatedAt = now

	if err := s.repo.Upsert(ctx, f); err != nil {
		return nil, fmt.Errorf("failed to update flyer: %w", err)
	}
	return f, nil
}

func (s *Service) Delete(ctx context.Context, serviceID model.ServiceID) error {
	if err := s.repo.DeleteByServiceID(ctx, serviceID); err != nil {
		return fmt.Errorf("failed to delete flyer: %w", err)
	}
	s.logger.Info().Str("service_id", string(serviceID)).Msg("flyer deleted")
	return nil
}

func applyPatch(f *model.Flyer, req *model.UpdateFlyerRequest) {
	setString(&f.Title, req.Title)
	setString(&f.ImageURL, req.ImageURL)
	setList(&f.Benefits, req.Benefits)
	setList(&f.Conditions, req.Conditions)
	setList(&f.Process, req.Process)
	setString(&f.Safety, req.Safety)
	setString(&f.Duration, req.Duration)
	setString(&f.Frequency, req.Frequency)
	setString(&f.Location, req.Location)
	setString(&f.ContactPhone, req.ContactPhone)
	setString(&f.ContactWebsite, req.ContactWebsite)
	setOptional(&f.OfferTitle, req.OfferTitle)
	setOptional(&f.OfferPrice, req.OfferPrice)
	setOptional(&f.OfferOriginalPrice, req.OfferOriginalPrice)
	setOptional(&f.OfferSavings, req.OfferSavings)
	setOptional(&f.OfferDescription, req.OfferDescription)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setOptional(dst **string, v *string) {
	if v != nil {
		val := *v
		*dst = &val
	}
}

func setList(dst *[]string, v *[]string) {
	if v != nil {
		*dst = nonNil(*v)
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return append([]string(nil), s...)
}
