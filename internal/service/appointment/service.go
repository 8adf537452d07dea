package appointment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lezerquera/apk-ZIMI/internal/model"
	"github.com/lezerquera/apk-ZIMI/internal/repository"
	"github.com/lezerquera/apk-ZIMI/internal/service/clinic"
	"github.com/lezerquera/apk-ZIMI/pkg/messaging"
	"github.com/lezerquera/apk-ZIMI/pkg/metrics"
)

const (
	ConfirmationSubject = "Cita Confirmada"
	confirmedMessage    = "Cita confirmada exitosamente"
	notifiedMessage     = "Notificación enviada al administrador"
)

// Notifier delivers the patient-facing confirmation message.
type Notifier interface {
	Send(ctx context.Context, sender model.MessageSender, req *model.SendMessageRequest) (*model.Message, error)
}

type Service struct {
	repo      repository.AppointmentRepository
	notifier  Notifier
	events    messaging.Publisher
	metrics   *metrics.Metrics
	logger    zerolog.Logger
	adminName string
	now       func() time.Time
}

func NewService(
	repo repository.AppointmentRepository,
	notifier Notifier,
	events messaging.Publisher,
	m *metrics.Metrics,
	logger zerolog.Logger,
	adminName string,
) *Service {
	if m == nil {
		m = metrics.NewNop()
	}
	if events == nil {
		events = messaging.NewEventPublisher(nil, "", m)
	}
	return &Service{
		repo:      repo,
		notifier:  notifier,
		events:    events,
		metrics:   m,
		logger:    logger,
		adminName: adminName,
		now:       time.Now,
	}
}

// Create stores a new request. The patient id is freshly generated and not
// linked to any registered patient.
func (s *Service) Create(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	apt := &model.Appointment{
		ID:              uuid.NewString(),
		PatientID:       uuid.NewString(),
		PatientName:     req.PatientName,
		PatientEmail:    req.PatientEmail,
		PatientPhone:    req.PatientPhone,
		ServiceType:     req.ServiceType,
		AppointmentType: req.AppointmentType,
		RequestedDate:   req.RequestedDate,
		RequestedTime:   req.RequestedTime,
		Note:            req.Note,
		Status:          model.AppointmentStatusRequested,
		CreatedAt:       s.now().UTC(),
	}

	if err := s.repo.Create(ctx, apt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	s.metrics.AppointmentsRequested.Inc()

	s.logger.Info().
		Str("appointment_id", apt.ID).
		Str("service_type", string(apt.ServiceType)).
		Msg("appointment requested")
	_ = s.events.Publish(ctx, messaging.EventAppointmentRequested, apt)

	return apt, nil
}

func (s *Service) Get(ctx context.Context, id string) (*model.Appointment, error) {
	apt, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return apt, nil
}

// List returns the newest appointments first.
func (s *Service) List(ctx context.Context) ([]*model.Appointment, error) {
	apts, err := s.repo.List(ctx, &model.AppointmentFilters{Limit: model.MaxListSize})
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return apts, nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]*model.Appointment, error) {
	apts, err := s.repo.List(ctx, &model.AppointmentFilters{PatientID: patientID, Limit: model.MaxListSize})
	if err != nil {
		return nil, fmt.Errorf("failed to list patient appointments: %w", err)
	}
	return apts, nil
}

// Confirm assigns the schedule and then messages the patient. The message is
// best effort: a failure is logged and reported only through
// NotificationDelivered, never as an error.
func (s *Service) Confirm(ctx context.Context, id string, req *model.ConfirmAppointmentRequest) (*model.ConfirmationResult, error) {
	apt, err := s.repo.Confirm(ctx, id, &model.AppointmentConfirmation{
		AssignedDate:     req.AssignedDate,
		AssignedTime:     req.AssignedTime,
		TelemedicineLink: presentOrNil(req.TelemedicineLink),
		DoctorNotes:      presentOrNil(req.DoctorNotes),
		ConfirmedAt:      s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to confirm appointment: %w", err)
	}
	s.metrics.AppointmentsConfirmed.Inc()

	delivered := s.notifyPatient(ctx, apt)
	_ = s.events.Publish(ctx, messaging.EventAppointmentConfirmed, apt)

	return &model.ConfirmationResult{
		Message:       confirmedMessage,
		AppointmentID: apt.ID,
		Details: model.ScheduleDetails{
			AssignedDate:     deref(apt.AssignedDate),
			AssignedTime:     deref(apt.AssignedTime),
			TelemedicineLink: apt.TelemedicineLink,
			DoctorNotes:      apt.DoctorNotes,
		},
		PatientNotified:       true,
		NotificationDelivered: delivered,
	}, nil
}

func (s *Service) notifyPatient(ctx context.Context, apt *model.Appointment) bool {
	if s.notifier == nil {
		return false
	}
	_, err := s.notifier.Send(ctx,
		model.MessageSender{ID: model.AdminID, Name: s.adminName},
		&model.SendMessageRequest{
			ReceiverID:    apt.PatientID,
			ReceiverName:  apt.PatientName,
			Subject:       ConfirmationSubject,
			Body:          confirmationBody(apt),
			Type:          model.MessageTypeAppointmentConfirmation,
			AppointmentID: &apt.ID,
		})
	if err != nil {
		s.metrics.NotificationsFailed.WithLabelValues(string(model.MessageTypeAppointmentConfirmation)).Inc()
		s.logger.Warn().
			Err(err).
			Str("appointment_id", apt.ID).
			Str("patient_id", apt.PatientID).
			Msg("failed to send confirmation message")
		return false
	}
	return true
}

// NotifyAdmin re-announces an existing request on the event bus.
func (s *Service) NotifyAdmin(ctx context.Context, id string) (string, error) {
	apt, err := s.repo.Get(ctx, id)
	if err != nil {
		return "", fmt.Errorf("failed to get appointment: %w", err)
	}
	if err := s.events.Publish(ctx, messaging.EventAppointmentRequested, apt); err != nil {
		s.logger.Warn().Err(err).Str("appointment_id", apt.ID).Msg("admin notification not published")
	}
	s.logger.Info().
		Str("appointment_id", apt.ID).
		Str("patient_name", apt.PatientName).
		Msg("admin notified of appointment")
	return notifiedMessage, nil
}

func modalityLabel(m model.Modality) string {
	if m == model.ModalityTelemedicine {
		return "Telemedicina"
	}
	return "Presencial"
}

func confirmationBody(apt *model.Appointment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Estimado/a %s,\n\n", apt.PatientName)
	b.WriteString("Su cita ha sido confirmada con los siguientes detalles:\n\n")
	fmt.Fprintf(&b, "Servicio: %s (%s)\n", clinic.ServiceName(apt.ServiceType), apt.ServiceType)
	fmt.Fprintf(&b, "Modalidad: %s\n", modalityLabel(apt.AppointmentType))
	fmt.Fprintf(&b, "Fecha: %s\n", deref(apt.AssignedDate))
	fmt.Fprintf(&b, "Hora: %s\n", deref(apt.AssignedTime))
	if apt.TelemedicineLink != nil {
		fmt.Fprintf(&b, "Enlace de telemedicina: %s\n", *apt.TelemedicineLink)
	}
	if apt.DoctorNotes != nil {
		fmt.Fprintf(&b, "Notas del doctor: %s\n", *apt.DoctorNotes)
	}
	b.WriteString("\nGracias por confiar en ZIMI - Zerquera Integrative Medical Institute.")
	return b.String()
}

// presentOrNil treats a blank optional field as absent so it cannot clear a
// stored value.
func presentOrNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
