package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpensAfterConsecutiveFailures(t *testing.T) {
	settings := DefaultSettings("test")
	settings.Failures = 2
	settings.Timeout = time.Hour
	cb := New(settings, zerolog.Nop())

	boom := errors.New("boom")
	fail := func() (interface{}, error) { return nil, boom }

	_, err := cb.Execute(fail)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, gobreaker.StateClosed, cb.State())

	_, err = cb.Execute(fail)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, gobreaker.StateOpen, cb.State())

	called := false
	_, err = cb.Execute(func() (interface{}, error) {
		called = true
		return nil, nil
	})
	require.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.False(t, called)
}

func TestSuccessResetsFailures(t *testing.T) {
	settings := DefaultSettings("test")
	settings.Failures = 2
	cb := New(settings, zerolog.Nop())

	_, _ = cb.Execute(func() (interface{}, error) { return nil, errors.New("once") })
	_, err := cb.Execute(func() (interface{}, error) { return "ok", nil })
	require.NoError(t, err)
	_, _ = cb.Execute(func() (interface{}, error) { return nil, errors.New("again") })

	assert.Equal(t, gobreaker.StateClosed, cb.State())
}
