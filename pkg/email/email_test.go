package email

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

func TestBuildMessageHeaders(t *testing.T) {
	m := buildMessage("no-reply@drzerquera.com", &Email{
		To:      "drzerquera@aol.com",
		ReplyTo: "ana@example.com",
		Subject: "Nuevo contacto",
		Body:    "Hola",
	})

	assert.Equal(t, []string{"drzerquera@aol.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"ana@example.com"}, m.GetHeader("Reply-To"))

	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Nuevo contacto")
}

func TestSMTPSenderHonoursCancelledContext(t *testing.T) {
	s := NewSMTPSender(SMTPConfig{Host: "localhost", Port: 2525})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Send(ctx, &Email{To: "x@y.z"}), context.Canceled)
}

type failingDialer struct{ calls int }

func (d *failingDialer) DialAndSend(...*gomail.Message) error {
	d.calls++
	return errors.New("connection refused")
}

func TestSMTPSenderBreakerOpens(t *testing.T) {
	d := &failingDialer{}
	s := newSMTPSender(d, "no-reply@drzerquera.com")

	for i := 0; i < 5; i++ {
		assert.Error(t, s.Send(context.Background(), &Email{To: "x@y.z"}))
	}
	err := s.Send(context.Background(), &Email{To: "x@y.z"})
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 5, d.calls)
}
