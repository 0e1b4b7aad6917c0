package circuitbreaker

import (
	"time"

	"runner-game/session"

	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"
)

var SessionBreaker *gobreaker.CircuitBreaker[[]byte]
var NatsBreaker *gobreaker.CircuitBreaker[interface{}]
var RedisBreaker *gobreaker.CircuitBreaker[interface{}]

func onChange(name string, from gobreaker.State, to gobreaker.State) {
	if to == gobreaker.StateOpen {
		log.WithField("type", "breaker").Error(name + " breaker is open")
	} else if to == gobreaker.StateHalfOpen {
		log.WithField("type", "breaker").Warn(name + " breaker is half open")
	} else if to == gobreaker.StateClosed {
		log.WithField("type", "breaker").Info(name + " breaker is closed")
	}
}

func InitBreakers() {
	SessionBreaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:          "sessionBreaker",
		Timeout:       5 * time.Second,
		OnStateChange: onChange,
		IsSuccessful:  session.BreakerNeutral,
	})

	NatsBreaker = gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:          "natsBreaker",
		Timeout:       5 * time.Second,
		OnStateChange: onChange,
	})

	RedisBreaker = gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:          "redisBreaker",
		Timeout:       5 * time.Second,
		OnStateChange: onChange,
	})

	log.Info("Circuit breakers initialized")
}

// Open reports whether calls through cb would currently fail fast.
func Open[T any](cb *gobreaker.CircuitBreaker[T]) bool {
	return cb != nil && cb.State() == gobreaker.StateOpen
}
