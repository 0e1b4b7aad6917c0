package game

import "time"

const (
	EventSessionStarted  = "session.started"
	EventObstaclePassed  = "obstacle.passed"
	EventProgressApplied = "progress.applied"
	EventPlayerCollided  = "player.collided"
	EventSessionEnded    = "session.ended"
	EventSessionEndFail  = "session.end_failed"
)

type Event struct {
	Type         string    `json:"type"`
	SessionID    string    `json:"sessionId"`
	Score        int       `json:"score"`
	Speed        float64   `json:"speed"`
	EarnedAmount float64   `json:"earnedAmount"`
	Outcome      string    `json:"outcome,omitempty"`
	Active       bool      `json:"active"`
	At           time.Time `json:"at"`
}

// EventSink receives engine events. Emit is called on the frame thread and
// must not block.
type EventSink interface {
	Emit(Event)
}

type nopSink struct{}

func (nopSink) Emit(Event) {}
