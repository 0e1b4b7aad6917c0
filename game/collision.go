package game

type Box struct {
	X, Y, W, H float64
}

// Inset shrinks b around its centre to ratio of its size.
func (b Box) Inset(ratio float64) Box {
	w, h := b.W*ratio, b.H*ratio
	return Box{
		X: b.X + (b.W-w)/2,
		Y: b.Y + (b.H-h)/2,
		W: w,
		H: h,
	}
}

func (b Box) Overlaps(o Box) bool {
	return b.X < o.X+o.W &&
		b.X+b.W > o.X &&
		b.Y < o.Y+o.H &&
		b.Y+b.H > o.Y
}

func (b Box) Right() float64 {
	return b.X + b.W
}

// Detection is the outcome of one frame of hit testing.
type Detection struct {
	Passed   []int
	Collided bool
	HitIndex int
}

// Detect inspects every obstacle once. An obstacle whose trailing edge is
// behind the player's leading edge can only be passed, never hit; passes are
// flagged on the obstacle so each one is reported at most once.
func Detect(player PlayerBody, obstacles []Obstacle, geom Geometry, t Tuning) Detection {
	d := Detection{HitIndex: -1}
	if player.Posture == Dead {
		return d
	}

	playerBox := geom.PlayerRect(player, t).Inset(t.PlayerHitbox)
	leading := geom.PlayerX - t.PassMargin

	for i := range obstacles {
		o := &obstacles[i]
		trailing := o.X + o.Width

		if trailing < leading {
			if !o.Passed && o.OnScreen && trailing > 0 {
				o.Passed = true
				d.Passed = append(d.Passed, i)
			}
			continue
		}

		if !d.Collided && playerBox.Overlaps(geom.ObstacleRect(*o).Inset(t.ObstacleHitbox)) {
			d.Collided = true
			d.HitIndex = i
		}
	}
	return d
}
