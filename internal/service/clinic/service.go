package clinic

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/lezerquera/apk-ZIMI/internal/model"
	"github.com/lezerquera/apk-ZIMI/internal/repository"
	apperrors "github.com/lezerquera/apk-ZIMI/pkg/errors"
)

// Service serves the static clinic data plus the one mutable setting, the
// doctor's profile image.
type Service struct {
	settings repository.SettingRepository
	cache    *gocache.Cache
	logger   zerolog.Logger
	now      func() time.Time
}

func NewService(settings repository.SettingRepository, ttl, cleanup time.Duration, logger zerolog.Logger) *Service {
	return &Service{
		settings: settings,
		cache:    gocache.New(ttl, cleanup),
		logger:   logger,
		now:      time.Now,
	}
}

func (s *Service) Services() []model.ClinicService { return Services() }
func (s *Service) Team() []model.TeamMember { return Team() }
func (s *Service) Insurance() *model.InsuranceInfo { return Insurance() }
func (s *Service) ContactInfo() *model.ContactInfo { return ContactInfo() }
func (s *Service) Testimonials() []model.Testimonial { return Testimonials() }

// DoctorInfo embeds the current doctor image.
func (s *Service) DoctorInfo(ctx context.Context) (*model.DoctorInfo, error) {
	img, err := s.DoctorImage(ctx)
	if err != nil {
		return nil, err
	}
	return doctorInfo(img.ImageURL), nil
}

// DoctorImage returns the stored image, or the built-in one when none was set.
func (s *Service) DoctorImage(ctx context.Context) (*model.DoctorImage, error) {
	if cached, ok := s.cache.Get(model.SettingDoctorImage); ok {
		img := cached.(model.DoctorImage)
		return &img, nil
	}

	setting, err := s.settings.Get(ctx, model.SettingDoctorImage)
	var img model.DoctorImage
	switch {
	case err == nil:
		updated := setting.UpdatedAt
		img = model.DoctorImage{ImageURL: setting.Value, UpdatedAt: &updated}
	case apperrors.IsNotFound(err):
		img = model.DoctorImage{ImageURL: DefaultDoctorImage}
	default:
		return nil, fmt.Errorf("failed to load doctor image: %w", err)
	}

	s.cache.SetDefault(model.SettingDoctorImage, img)
	return &img, nil
}

// UpdateDoctorImage replaces the image. Last writer wins.
func (s *Service) UpdateDoctorImage(ctx context.Context, imageURL string) (*model.DoctorImage, error) {
	setting := &model.Setting{
		Key:       model.SettingDoctorImage,
		Value:     imageURL,
		UpdatedAt: s.now().UTC(),
	}
	if err := s.settings.Put(ctx, setting); err != nil {
		return nil, fmt.Errorf("failed to store doctor image: %w", err)
	}
	s.cache.Delete(model.SettingDoctorImage)

	s.logger.Info().Str("image_url", imageURL).Msg("doctor image updated")
	return &model.DoctorImage{ImageURL: setting.Value, UpdatedAt: &setting.UpdatedAt}, nil
}
