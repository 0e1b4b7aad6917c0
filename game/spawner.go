package game

import (
	"math"
	"math/rand/v2"
)

// Spawner decides when the next obstacle appears and what it looks like.
type Spawner struct {
	SinceLast float64
	rng       *rand.Rand
}

func NewSpawner(rng *rand.Rand) Spawner {
	return Spawner{rng: rng}
}

// Interval is the spawn cadence for score; it tightens with every point down
// to the floor.
func Interval(score int, t Tuning) float64 {
	return math.Max(t.SpawnMinMs, t.SpawnBaseMs-float64(score)*t.SpawnPerPointMs)
}

func (s *Spawner) Reset() {
	s.SinceLast = 0
}

// Advance accumulates deltaMs and returns a new obstacle at the right edge
// once the interval for score has elapsed.
func (s *Spawner) Advance(deltaMs float64, score int, width float64, t Tuning) (Obstacle, bool) {
	s.SinceLast += deltaMs
	if s.SinceLast < Interval(score, t) {
		return Obstacle{}, false
	}
	s.SinceLast = 0
	return s.shape(score, width, t), true
}

func (s *Spawner) shape(score int, width float64, t Tuning) Obstacle {
	o := Obstacle{
		Kind:    Ground,
		Variant: s.rng.IntN(max(1, t.ShapeVariants)),
		X:       width,
	}

	if score > t.BirdMinScore && s.rng.Float64() < t.BirdChance {
		o.Kind = Aerial
		o.Width = t.BirdWidth
		o.Height = t.BirdHeight
		o.Y = t.BirdAltitudeLow
		if s.rng.Float64() < 0.5 {
			o.Y = t.BirdAltitudeHigh
		}
		return o
	}

	o.Height = uniform(s.rng, t.CactusHeightMin, t.CactusHeightMax)
	o.Width = uniform(s.rng, t.CactusWidthMin, t.CactusWidthMax)
	return o
}

// AdvanceObstacles scrolls obstacles left by speed per reference frame and
// drops the ones that are fully past the left edge.
func AdvanceObstacles(obstacles []Obstacle, speed, deltaMs, width float64) []Obstacle {
	dx := speed * (deltaMs / ReferenceFrameMs)
	kept := obstacles[:0]
	for _, o := range obstacles {
		o.X -= dx
		if o.X <= -o.Width {
			continue
		}
		if o.X < width {
			o.OnScreen = true
		}
		kept = append(kept, o)
	}
	return kept
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
