package game

import "math"

// Parallax holds the accumulated scroll of each background layer.
type Parallax struct {
	Stars  float64
	Clouds float64
	Ground float64
}

func (p *Parallax) Advance(deltaMs float64, geom Geometry, t Tuning) {
	if geom.Width <= 0 {
		return
	}
	p.Stars = math.Mod(p.Stars+deltaMs*t.StarsParallax, geom.Width)
	p.Clouds = math.Mod(p.Clouds+deltaMs*t.CloudsParallax, geom.Width*2)
	p.Ground = math.Mod(p.Ground+deltaMs*t.GroundParallax, geom.Width/4)
}

// Animation tracks sprite frame selection.
type Animation struct {
	RunFrame   int
	DuckFrame  int
	DeathFrame int
	BirdFrame  int

	runAcc   float64
	duckAcc  float64
	deathAcc float64
	birdAcc  float64
}

func (a *Animation) Advance(deltaMs float64, posture Posture, t Tuning) {
	a.birdAcc += deltaMs
	for a.birdAcc >= t.BirdFlapMs && t.BirdFlapMs > 0 {
		a.birdAcc -= t.BirdFlapMs
		a.BirdFrame = (a.BirdFrame + 1) % 2
	}

	switch posture {
	case Dead:
		a.deathAcc += deltaMs
		for a.deathAcc >= t.DeathFrameMs && t.DeathFrameMs > 0 {
			a.deathAcc -= t.DeathFrameMs
			a.DeathFrame = (a.DeathFrame + 1) % 2
		}
	case Ducking:
		a.duckAcc += deltaMs
		for a.duckAcc >= t.DuckFrameMs && t.DuckFrameMs > 0 {
			a.duckAcc -= t.DuckFrameMs
			a.DuckFrame = (a.DuckFrame + 1) % 2
		}
	case Running:
		a.runAcc += deltaMs
		for a.runAcc >= t.RunFrameMs && t.RunFrameMs > 0 {
			a.runAcc -= t.RunFrameMs
			a.RunFrame = (a.RunFrame + 1) % 3
		}
	}
}

func (a *Animation) Reset() {
	*a = Animation{}
}

// FPSMeter keeps the last samples of instantaneous frame rate.
type FPSMeter struct {
	samples []float64
	next    int
}

const fpsWindow = 60

func (m *FPSMeter) Sample(deltaMs float64) {
	if deltaMs <= 0 {
		return
	}
	fps := 1000 / deltaMs
	if len(m.samples) < fpsWindow {
		m.samples = append(m.samples, fps)
		return
	}
	m.samples[m.next] = fps
	m.next = (m.next + 1) % fpsWindow
}

func (m *FPSMeter) Average() float64 {
	if len(m.samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range m.samples {
		sum += s
	}
	return sum / float64(len(m.samples))
}
