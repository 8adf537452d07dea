package email

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
	"gopkg.in/gomail.v2"

	"github.com/lezerquera/apk-ZIMI/pkg/circuitbreaker"
)

// Email is a plain-text message.
type Email struct {
	To      string
	ReplyTo string
	Subject string
	Body    string
}

type Sender interface {
	Send(ctx context.Context, e *Email) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// dialer is the part of gomail.Dialer the sender needs.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type smtpSender struct {
	dialer dialer
	from   string
	cb     *gobreaker.CircuitBreaker
}

// NewSMTPSender sends through gomail. Repeated SMTP failures open a breaker
// so a dead relay fails fast instead of stalling every request.
func NewSMTPSender(cfg SMTPConfig) Sender {
	return newSMTPSender(gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password), cfg.From)
}

func newSMTPSender(d dialer, from string) *smtpSender {
	return &smtpSender{
		dialer: d,
		from:   from,
		cb:     circuitbreaker.New(circuitbreaker.DefaultSettings("smtp"), log.Logger),
	}
}

// Send honours ctx only before dialing; gomail has no context support.
func (s *smtpSender) Send(ctx context.Context, e *Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.cb.Execute(func() (interface{}, error) {
		return nil, s.dialer.DialAndSend(buildMessage(s.from, e))
	})
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", e.To, err)
	}
	return nil
}

func buildMessage(from string, e *Email) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", e.To)
	if e.ReplyTo != "" {
		m.SetHeader("Reply-To", e.ReplyTo)
	}
	m.SetHeader("Subject", e.Subject)
	m.SetBody("text/plain", e.Body)
	return m
}

// NopSender logs instead of sending. Used when SMTP is not configured.
type NopSender struct{}

func (NopSender) Send(_ context.Context, e *Email) error {
	log.Debug().Str("to", e.To).Str("subject", e.Subject).Msg("email delivery disabled")
	return nil
}
