package contact

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lezerquera/apk-ZIMI/internal/model"
	"github.com/lezerquera/apk-ZIMI/internal/repository"
	"github.com/lezerquera/apk-ZIMI/pkg/email"
	"github.com/lezerquera/apk-ZIMI/pkg/messaging"
	"github.com/lezerquera/apk-ZIMI/pkg/metrics"
)

const msgReceived = "Mensaje enviado exitosamente"

type Service struct {
	repo    repository.ContactRepository
	mailer  email.Sender
	inbox   string
	events  messaging.Publisher
	metrics *metrics.Metrics
	logger  zerolog.Logger
	now     func() time.Time
}

// NewService forwards each stored contact to inbox through mailer.
func NewService(repo repository.ContactRepository, mailer email.Sender, inbox string, events messaging.Publisher, m *metrics.Metrics, logger zerolog.Logger) *Service {
	if m == nil {
		m = metrics.NewNop()
	}
	if mailer == nil {
		mailer = email.NopSender{}
	}
	if events == nil {
		events = messaging.NewEventPublisher(nil, "", m)
	}
	return &Service{
		repo:    repo,
		mailer:  mailer,
		inbox:   inbox,
		events:  events,
		metrics: m,
		logger:  logger,
		now:     time.Now,
	}
}

// Submit persists the contact form. Forwarding it by email is best effort.
func (s *Service) Submit(ctx context.Context, req *model.CreateContactRequest) (*model.ContactAck, error) {
	c := &model.Contact{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     strings.TrimSpace(req.Email),
		Phone:     req.Phone,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to save contact: %w", err)
	}

	if s.inbox != "" {
		if err := s.mailer.Send(ctx, forwardEmail(s.inbox, c)); err != nil {
			s.metrics.NotificationsFailed.WithLabelValues("contact_email").Inc()
			s.logger.Warn().Err(err).Str("contact_id", c.ID).Msg("failed to forward contact email")
		}
	}

	if err := s.events.Publish(ctx, messaging.EventContactReceived, c); err != nil {
		s.logger.Warn().Err(err).Str("contact_id", c.ID).Msg("failed to publish contact event")
	}

	return &model.ContactAck{Message: msgReceived, ID: c.ID}, nil
}

func forwardEmail(inbox string, c *model.Contact) *email.Email {
	var b strings.Builder
	fmt.Fprintf(&b, "Nombre: %s\n", c.Name)
	fmt.Fprintf(&b, "Email: %s\n", c.Email)
	fmt.Fprintf(&b, "Teléfono: %s\n", c.Phone)
	fmt.Fprintf(&b, "Asunto: %s\n\n", c.Subject)
	b.WriteString(c.Message)

	return &email.Email{
		To:      inbox,
		ReplyTo: c.Email,
		Subject: "Contacto: " + c.Subject,
		Body:    b.String(),
	}
}
