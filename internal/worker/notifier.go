package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lezerquera/apk-ZIMI/internal/model"
	"github.com/lezerquera/apk-ZIMI/pkg/email"
	"github.com/lezerquera/apk-ZIMI/pkg/messaging"
	"github.com/lezerquera/apk-ZIMI/pkg/metrics"
)

const newAppointmentSubject = "Nueva solicitud de cita"

// AdminNotifier emails the clinic inbox for every appointment request seen on
// the event bus.
type AdminNotifier struct {
	broker  messaging.Broker
	channel string
	mailer  email.Sender
	inbox   string
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

// NewAdminNotifier listens on the channel that publisher uses for
// appointment requests.
func NewAdminNotifier(broker messaging.Broker, publisher *messaging.EventPublisher, mailer email.Sender, inbox string, m *metrics.Metrics, logger zerolog.Logger) *AdminNotifier {
	if m == nil {
		m = metrics.NewNop()
	}
	return &AdminNotifier{
		broker:  broker,
		channel: publisher.Channel(messaging.EventAppointmentRequested),
		mailer:  mailer,
		inbox:   inbox,
		metrics: m,
		logger:  logger.With().Str("component", "admin_notifier").Logger(),
	}
}

// Run blocks until ctx is cancelled or the subscription closes.
func (n *AdminNotifier) Run(ctx context.Context) error {
	msgs, err := n.broker.Subscribe(ctx, n.channel)
	if err != nil {
		return err
	}

	n.logger.Info().Str("channel", n.channel).Msg("admin notifier started")
	for {
		select {
		case <-ctx.Done():
			n.logger.Info().Msg("admin notifier shutting down")
			return nil
		case raw, ok := <-msgs:
			if !ok {
				return nil
			}
			if err := n.handle(ctx, raw); err != nil {
				n.metrics.NotificationsFailed.WithLabelValues("admin_email").Inc()
				n.logger.Error().Err(err).Msg("failed to notify admin")
			}
		}
	}
}

// appointmentEvent mirrors messaging.Message with a typed payload.
type appointmentEvent struct {
	Type    string            `json:"type"`
	Payload model.Appointment `json:"payload"`
}

func (n *AdminNotifier) handle(ctx context.Context, raw []byte) error {
	var evt appointmentEvent
	if err := json.Unmarshal(raw, &evt); err != nil {
		return fmt.Errorf("failed to decode event: %w", err)
	}
	if evt.Type != messaging.EventAppointmentRequested {
		return nil
	}

	if err := n.mailer.Send(ctx, newAppointmentEmail(n.inbox, &evt.Payload)); err != nil {
		return err
	}
	n.logger.Info().Str("appointment_id", evt.Payload.ID).Msg("admin notified")
	return nil
}

func newAppointmentEmail(inbox string, apt *model.Appointment) *email.Email {
	var b strings.Builder
	fmt.Fprintf(&b, "Paciente: %s\n", apt.PatientName)
	fmt.Fprintf(&b, "Email: %s\n", apt.PatientEmail)
	fmt.Fprintf(&b, "Teléfono: %s\n", apt.PatientPhone)
	fmt.Fprintf(&b, "Servicio: %s\n", apt.ServiceType)
	fmt.Fprintf(&b, "Modalidad: %s\n", apt.AppointmentType)
	fmt.Fprintf(&b, "Fecha solicitada: %s %s\n", apt.RequestedDate, apt.RequestedTime)
	if apt.Note != nil && *apt.Note != "" {
		fmt.Fprintf(&b, "\n%s\n", *apt.Note)
	}

	return &email.Email{
		To:      inbox,
		ReplyTo: apt.PatientEmail,
		Subject: newAppointmentSubject + ": " + apt.PatientName,
		Body:    b.String(),
	}
}
