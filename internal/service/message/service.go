package message

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lezerquera/apk-ZIMI/internal/model"
	"github.com/lezerquera/apk-ZIMI/internal/repository"
	"github.com/lezerquera/apk-ZIMI/pkg/messaging"
	"github.com/lezerquera/apk-ZIMI/pkg/metrics"
)

const (
	adminPollSize = 5
	replyPrefix   = "Re: "
)

type Service struct {
	repo    repository.MessageRepository
	events  messaging.Publisher
	metrics *metrics.Metrics
	logger  zerolog.Logger
	now     func() time.Time
}

func NewService(repo repository.MessageRepository, events messaging.Publisher, m *metrics.Metrics, logger zerolog.Logger) *Service {
	if m == nil {
		m = metrics.NewNop()
	}
	if events == nil {
		events = messaging.NewEventPublisher(nil, "", m)
	}
	return &Service{
		repo:    repo,
		events:  events,
		metrics: m,
		logger:  logger,
		now:     time.Now,
	}
}

// Send stores a new unread message. The receiver is not checked against any
// stored identity.
func (s *Service) Send(ctx context.Context, sender model.MessageSender, req *model.SendMessageRequest) (*model.Message, error) {
	msgType := req.Type
	if msgType == "" {
		msgType = model.MessageTypeGeneral
	}

	msg := &model.Message{
		ID:            uuid.NewString(),
		SenderID:      sender.ID,
		SenderName:    sender.Name,
		ReceiverID:    req.ReceiverID,
		ReceiverName:  req.ReceiverName,
		Subject:       req.Subject,
		Body:          req.Body,
		Type:          msgType,
		AppointmentID: req.AppointmentID,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *Service) create(ctx context.Context, msg *model.Message) error {
	if err := s.repo.Create(ctx, msg); err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	s.metrics.MessagesSent.WithLabelValues(string(msg.Type)).Inc()

	// best effort; the publisher logs failures
	_ = s.events.Publish(ctx, messaging.EventMessageCreated, msg)
	s.logger.Debug().
		Str("message_id", msg.ID).
		Str("sender_id", msg.SenderID).
		Str("receiver_id", msg.ReceiverID).
		Msg("message stored")
	return nil
}

// ListFor returns messages the user sent or received, newest first.
func (s *Service) ListFor(ctx context.Context, userID string) ([]*model.Message, error) {
	msgs, err := s.repo.ListForUser(ctx, userID, model.MaxListSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return msgs, nil
}

func (s *Service) MarkRead(ctx context.Context, id string) (*model.Message, error) {
	msg, err := s.repo.MarkRead(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to mark message read: %w", err)
	}
	return msg, nil
}

// Reply answers the original's sender. Type and appointment link carry over;
// the original stays unread.
func (s *Service) Reply(ctx context.Context, id string, sender model.MessageSender, body string) (*model.Message, error) {
	original, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get original message: %w", err)
	}

	reply := &model.Message{
		ID:            uuid.NewString(),
		SenderID:      sender.ID,
		SenderName:    sender.Name,
		ReceiverID:    original.SenderID,
		ReceiverName:  original.SenderName,
		Subject:       replyPrefix + original.Subject,
		Body:          body,
		Type:          original.Type,
		AppointmentID: original.AppointmentID,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.create(ctx, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

func (s *Service) UnreadCount(ctx context.Context, userID string) (*model.UnreadCount, error) {
	n, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return &model.UnreadCount{UserID: userID, UnreadCount: n}, nil
}

// AdminPoll backs the admin dashboard's new-message indicator.
func (s *Service) AdminPoll(ctx context.Context) (*model.AdminMessagePoll, error) {
	n, err := s.repo.CountUnread(ctx, model.AdminID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread messages: %w", err)
	}
	latest, err := s.repo.ListUnreadForReceiver(ctx, model.AdminID, adminPollSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list unread messages: %w", err)
	}
	return &model.AdminMessagePoll{UnreadCount: n, LatestMessages: latest}, nil
}
