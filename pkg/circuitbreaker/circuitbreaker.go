package circuitbreaker

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
)

type Settings struct {
	Name string
	// MaxRequests is how many probes pass while half-open.
	MaxRequests uint32
	Interval    time.Duration
	Timeout     time.Duration
	// Failures is the consecutive failure count that opens the breaker.
	Failures uint32
}

// DefaultSettings suits the outbound dependencies of the API (Redis, SMTP).
func DefaultSettings(name string) Settings {
	return Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    10 * time.Second,
		Timeout:     5 * time.Second,
		Failures:    5,
	}
}

// New builds a gobreaker.CircuitBreaker that logs every state change.
func New(settings Settings, logger zerolog.Logger) *gobreaker.CircuitBreaker {
	failures := settings.Failures
	if failures == 0 {
		failures = 1
	}
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        settings.Name,
		MaxRequests: settings.MaxRequests,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
		},
	})
}
