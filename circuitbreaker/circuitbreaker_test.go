package circuitbreaker

import (
	"errors"
	"testing"

	"runner-game/session"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitBreakers(t *testing.T) {
	InitBreakers()

	require.NotNil(t, SessionBreaker)
	require.NotNil(t, NatsBreaker)
	require.NotNil(t, RedisBreaker)
	assert.False(t, Open(SessionBreaker))
}

func TestSessionBreakerTripsOnTransportErrorsOnly(t *testing.T) {
	InitBreakers()

	for i := 0; i < 10; i++ {
		SessionBreaker.Execute(func() ([]byte, error) {
			return nil, session.ErrInsufficientFunds
		})
		SessionBreaker.Execute(func() ([]byte, error) {
			return nil, &session.APIError{Op: "session.start", Status: 404}
		})
	}
	assert.Equal(t, gobreaker.StateClosed, SessionBreaker.State())

	for i := 0; i < 6; i++ {
		SessionBreaker.Execute(func() ([]byte, error) {
			return nil, errors.New("connection refused")
		})
	}
	assert.True(t, Open(SessionBreaker))
}

func TestOpenNilBreaker(t *testing.T) {
	var cb *gobreaker.CircuitBreaker[[]byte]
	assert.False(t, Open(cb))
}
