package game

// Jump starts a jump from the ground. It is a no-op while airborne, ducking
// or dead.
func (p *PlayerBody) Jump(t Tuning) bool {
	if p.Posture != Running {
		return false
	}
	p.Posture = Jumping
	p.Velocity = t.JumpImpulse
	return true
}

// Duck toggles the ducking posture. Requests while jumping or dead are ignored.
func (p *PlayerBody) Duck(down bool) bool {
	switch {
	case down && p.Posture == Running:
		p.Posture = Ducking
		return true
	case !down && p.Posture == Ducking:
		p.Posture = Running
		return true
	}
	return false
}

func (p *PlayerBody) Kill() {
	p.Posture = Dead
}

// Integrate advances the vertical motion by one frame of deltaMs.
func (p *PlayerBody) Integrate(deltaMs float64, t Tuning) {
	if p.Posture == Dead {
		return
	}
	scale := deltaMs / ReferenceFrameMs

	p.Velocity += t.Gravity * scale
	p.Offset += p.Velocity * scale

	if p.Offset >= 0 {
		p.Offset = 0
		p.Velocity = 0
		if p.Posture == Jumping {
			p.Posture = Running
		}
	}
}

// Geometry is the canvas-dependent layout shared by physics, detection and
// drawing.
type Geometry struct {
	Width, Height float64
	GroundY       float64
	PlayerX       float64
	PlayerSize    float64
}

func NewGeometry(width, height float64, t Tuning) Geometry {
	size := height * t.PlayerSizeRatio
	if size > t.PlayerMaxSize {
		size = t.PlayerMaxSize
	}
	return Geometry{
		Width:      width,
		Height:     height,
		GroundY:    height - t.GroundHeight,
		PlayerX:    t.PlayerX,
		PlayerSize: size,
	}
}

// PlayerRect is the visible sprite rectangle of the player.
func (g Geometry) PlayerRect(p PlayerBody, t Tuning) Box {
	w, h := g.PlayerSize, g.PlayerSize
	x := g.PlayerX
	if p.Posture == Ducking {
		w = g.PlayerSize * t.DuckWidthRatio
		h = g.PlayerSize * t.DuckHeightRatio
		x -= (w - g.PlayerSize) / 2
	}
	return Box{X: x, Y: g.GroundY - h + p.Offset, W: w, H: h}
}

// ObstacleRect is the visible rectangle of o. Aerial obstacles sit above the
// ground by their negative Y.
func (g Geometry) ObstacleRect(o Obstacle) Box {
	return Box{X: o.X, Y: g.GroundY - o.Height + o.Y, W: o.Width, H: o.Height}
}
