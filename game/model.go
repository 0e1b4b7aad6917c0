package game

import "image/color"

type Posture uint8

const (
	Running Posture = iota
	Jumping
	Ducking
	Dead
)

func (p Posture) String() string {
	switch p {
	case Running:
		return "running"
	case Jumping:
		return "jumping"
	case Ducking:
		return "ducking"
	case Dead:
		return "dead"
	}
	return "unknown"
}

type ObstacleKind uint8

const (
	Ground ObstacleKind = iota
	Aerial
)

func (k ObstacleKind) String() string {
	if k == Aerial {
		return "aerial"
	}
	return "ground"
}

// Session is the local copy of the server-owned run. Score, Speed and
// EarnedAmount are only ever copied from service responses.
type Session struct {
	ID           string
	Active       bool
	Score        int
	Speed        float64
	EarnedAmount float64
}

// PlayerBody is the dino. Offset is <= 0, 0 meaning grounded.
type PlayerBody struct {
	Offset   float64
	Velocity float64
	Posture  Posture
}

type Obstacle struct {
	Kind    ObstacleKind
	Variant int
	X, Y    float64
	Width   float64
	Height  float64

	Passed   bool
	OnScreen bool
}

type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Life   float64
	Color  color.NRGBA
}

type Outcome uint8

const (
	NoOutcome Outcome = iota
	Victory
	Defeat
)

func (o Outcome) String() string {
	switch o {
	case Victory:
		return "victory"
	case Defeat:
		return "defeat"
	}
	return ""
}

// Classify is the local, cosmetic classification of a final score. The
// payout of record is decided by the service.
func Classify(score, victoryScore int) Outcome {
	if score >= victoryScore {
		return Victory
	}
	return Defeat
}

// Final is what the end call reported for a run.
type Final struct {
	Score        int
	EarnedAmount float64
	Balance      float64
	HasBalance   bool
	Outcome      Outcome
	Confirmed    bool
}
