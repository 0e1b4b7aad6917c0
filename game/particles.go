package game

import (
	"image/color"
	"math"
	"math/rand/v2"
)

// Dust kicks up white specks behind the player's feet.
func Dust(rng *rand.Rand, n int, x, groundY, size float64) []Particle {
	out := make([]Particle, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Particle{
			X:     x + rng.Float64()*size*0.5,
			Y:     groundY + rng.Float64()*10 - 5,
			VX:    -rng.Float64()*2 - 1,
			VY:    -rng.Float64()*2 - 1,
			Size:  rng.Float64()*3 + 1,
			Life:  1,
			Color: color.NRGBA{R: 255, G: 255, B: 255, A: uint8(128 + rng.IntN(128))},
		})
	}
	return out
}

// Burst is the radial explosion spawned on a fatal collision.
func Burst(rng *rand.Rand, n int, x, y float64) []Particle {
	out := make([]Particle, 0, n)
	for i := 0; i < n; i++ {
		angle := rng.Float64() * math.Pi * 2
		speed := rng.Float64()*5 + 2
		out = append(out, Particle{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Size:  rng.Float64()*4 + 2,
			Life:  1,
			Color: color.NRGBA{R: 255, G: uint8(100 + rng.IntN(100)), A: uint8(128 + rng.IntN(128))},
		})
	}
	return out
}

// StepParticles moves and fades particles, dropping the expired ones.
func StepParticles(particles []Particle, deltaMs, decay float64) []Particle {
	scale := deltaMs / ReferenceFrameMs
	kept := particles[:0]
	for _, p := range particles {
		p.X += p.VX * scale
		p.Y += p.VY * scale
		p.Life -= decay * scale
		if p.Life <= 0 {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}
