package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallaxWraps(t *testing.T) {
	tun := DefaultTuning()
	g := NewGeometry(800, 400, tun)
	var p Parallax

	p.Advance(1000, g, tun)
	assert.InDelta(t, 1, p.Stars, 1e-9)
	assert.InDelta(t, 20, p.Clouds, 1e-9)
	assert.InDelta(t, 100, p.Ground, 1e-9)

	p.Advance(1000, g, tun)
	assert.InDelta(t, 0, p.Ground, 1e-9)
	assert.InDelta(t, 40, p.Clouds, 1e-9)
}

func TestAnimationFrames(t *testing.T) {
	tun := DefaultTuning()
	var a Animation

	a.Advance(120, Running, tun)
	assert.Equal(t, 1, a.RunFrame)
	a.Advance(240, Running, tun)
	assert.Equal(t, 0, a.RunFrame)
	assert.Equal(t, 1, a.BirdFrame)

	a.Advance(240, Ducking, tun)
	assert.Equal(t, 1, a.DuckFrame)
	assert.Equal(t, 0, a.RunFrame)

	a.Advance(299, Dead, tun)
	assert.Equal(t, 0, a.DeathFrame)
	a.Advance(1, Dead, tun)
	assert.Equal(t, 1, a.DeathFrame)

	a.Reset()
	assert.Equal(t, Animation{}, a)
}

func TestFPSMeterAverages(t *testing.T) {
	var m FPSMeter
	assert.Zero(t, m.Average())

	m.Sample(0)
	assert.Zero(t, m.Average())

	for i := 0; i < 100; i++ {
		m.Sample(20)
	}
	assert.InDelta(t, 50, m.Average(), 1e-9)

	for i := 0; i < fpsWindow; i++ {
		m.Sample(10)
	}
	assert.InDelta(t, 100, m.Average(), 1e-9)
}

func TestParticlesFadeOut(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))
	ps := Burst(rng, 20, 100, 100)
	require.Len(t, ps, 20)
	for _, p := range ps {
		assert.Equal(t, 1.0, p.Life)
	}

	ps = StepParticles(ps, ReferenceFrameMs, 0.02)
	require.Len(t, ps, 20)
	assert.InDelta(t, 0.98, ps[0].Life, 1e-9)

	for i := 0; i < 55; i++ {
		ps = StepParticles(ps, ReferenceFrameMs, 0.02)
	}
	assert.Empty(t, ps)
}

func TestDustStartsAtFeet(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	ps := Dust(rng, 10, 50, 350, 60)

	require.Len(t, ps, 10)
	for _, p := range ps {
		assert.GreaterOrEqual(t, p.X, 50.0)
		assert.LessOrEqual(t, p.X, 80.0)
		assert.InDelta(t, 350, p.Y, 5)
		assert.Negative(t, p.VX)
	}
}
