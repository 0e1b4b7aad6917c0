package session

import (
	"errors"
	"fmt"
)

// insufficientBalance is the message the service answers a start request with
// when the wallet cannot cover the entry fee.
const insufficientBalance = "Insufficient balance to start a game"

var (
	ErrInsufficientFunds = errors.New("insufficient balance to start a game")
	ErrNoSession         = errors.New("no session id")
)

type APIError struct {
	Op      string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, e.Message)
}

// IsFunding reports whether err means the player has to deposit before playing.
func IsFunding(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// BreakerNeutral reports errors that say nothing about the health of the
// service and must not trip the circuit breaker.
func BreakerNeutral(err error) bool {
	if err == nil || errors.Is(err, ErrInsufficientFunds) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status >= 400 && apiErr.Status < 500
	}
	return false
}
