package patient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lezerquera/apk-ZIMI/internal/model"
	"github.com/lezerquera/apk-ZIMI/internal/repository"
	apperrors "github.com/lezerquera/apk-ZIMI/pkg/errors"
)

const (
	msgRegistered   = "Paciente registrado exitosamente"
	msgLoggedIn     = "Login exitoso"
	msgEmailTaken   = "Email ya registrado"
	msgNotFound     = "Paciente no encontrado"
)

type Service struct {
	repo   repository.PatientRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewService(repo repository.PatientRepository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// Register stores a new patient. The email pre-check gives the friendly
// error; the store's unique key on email catches concurrent registrations.
func (s *Service) Register(ctx context.Context, req *model.RegisterPatientRequest) (*model.RegisterPatientResponse, error) {
	email := strings.TrimSpace(req.Email)

	_, err := s.repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, apperrors.Conflict(msgEmailTaken, nil)
	case !apperrors.IsNotFound(err):
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	p := &model.Patient{
		ID:              uuid.NewString(),
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           email,
		Phone:           req.Phone,
		BirthDate:       req.BirthDate,
		Address:         req.Address,
		InsuranceNumber: req.InsuranceNumber,
		Insurance:       req.Insurance,
		CreatedAt:       s.now().UTC(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		if apperrors.IsConflict(err) {
			return nil, apperrors.Conflict(msgEmailTaken, err)
		}
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}

	s.logger.Info().Str("patient_id", p.ID).Msg("patient registered")
	return &model.RegisterPatientResponse{
		Message:     msgRegistered,
		PatientID:   p.ID,
		PatientName: fullName(p),
	}, nil
}

// Login matches a patient by email and phone. There is no password.
func (s *Service) Login(ctx context.Context, req *model.PatientLoginRequest) (*model.PatientLoginResponse, error) {
	p, err := s.repo.GetByEmailAndPhone(ctx, strings.TrimSpace(req.Email), strings.TrimSpace(req.Phone))
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.New(apperrors.ErrNotFound, msgNotFound, err)
		}
		return nil, fmt.Errorf("failed to find patient: %w", err)
	}

	return &model.PatientLoginResponse{
		Message:      msgLoggedIn,
		PatientID:    p.ID,
		PatientName:  fullName(p),
		PatientEmail: p.Email,
	}, nil
}

func (s *Service) Get(ctx context.Context, id string) (*model.Patient, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.New(apperrors.ErrNotFound, msgNotFound, err)
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return p, nil
}

func fullName(p *model.Patient) string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}
