package render

import (
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"

	"runner-game/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	skyTop       = color.NRGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 0xff}
	skyBottom    = color.NRGBA{R: 0x16, G: 0x21, B: 0x3e, A: 0xff}
	groundTop    = color.NRGBA{R: 0x2a, G: 0x3f, B: 0x5f, A: 0xff}
	groundBottom = color.NRGBA{R: 0x1c, G: 0x2e, B: 0x4a, A: 0xff}
	groundDot    = color.NRGBA{R: 255, G: 255, B: 255, A: 13}
	shadow       = color.NRGBA{A: 77}
	overlay      = color.NRGBA{A: 128}
	cactusGreen  = color.NRGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff}
	birdBrown    = color.NRGBA{R: 0xb0, G: 0x6a, B: 0x3c, A: 0xff}
	dinoGrey     = color.NRGBA{R: 0xcf, G: 0xd8, B: 0xdc, A: 0xff}
	dinoDead     = color.NRGBA{R: 0xe5, G: 0x39, B: 0x35, A: 0xff}
	barBack      = color.NRGBA{R: 255, G: 255, B: 255, A: 51}
	barLow       = color.NRGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff}
	barMid       = color.NRGBA{R: 0xff, G: 0xc1, B: 0x07, A: 0xff}
	barHigh      = color.NRGBA{R: 0xff, G: 0x57, B: 0x22, A: 0xff}
	modalBack    = color.NRGBA{R: 0x22, G: 0x22, B: 0x3a, A: 0xf0}
)

type star struct {
	x, y, size float64
}

// sky is the fixed layout of background decorations; parallax scrolls it.
type sky struct {
	stars  []star
	clouds []float64
}

func newSky(rng *rand.Rand) *sky {
	s := &sky{}
	for i := 0; i < 50; i++ {
		s.stars = append(s.stars, star{x: rng.Float64(), y: rng.Float64(), size: rng.Float64()*1.5 + 0.5})
	}
	s.clouds = []float64{0.1, 0.55, 0.9, 1.4}
	return s
}

func lerp(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

func gradient(dst *ebiten.Image, x, y, w, h float64, top, bottom color.NRGBA) {
	const bands = 16
	bh := h / bands
	for i := 0; i < bands; i++ {
		c := lerp(top, bottom, float64(i)/(bands-1))
		vector.DrawFilledRect(dst, float32(x), float32(y+float64(i)*bh), float32(w), float32(bh+1), c, false)
	}
}

func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(float64(c.A) * math.Max(0, math.Min(1, a)))
	return c
}

func (g *Game) Draw(screen *ebiten.Image) {
	e := g.engine
	geom := e.Geometry()

	g.drawBackground(screen, geom, e.Parallax)
	g.drawObstacles(screen, geom, e)
	g.drawPlayer(screen, geom, e)
	drawParticles(screen, e.Particles)
	g.drawHUD(screen, geom, e.HUD())
}

func (g *Game) drawBackground(dst *ebiten.Image, geom game.Geometry, p game.Parallax) {
	gradient(dst, 0, 0, geom.Width, geom.Height, skyTop, skyBottom)

	for _, s := range g.sky.stars {
		x := math.Mod(s.x*geom.Width-p.Stars+geom.Width, geom.Width)
		y := s.y * geom.GroundY * 0.6
		vector.DrawFilledCircle(dst, float32(x), float32(y), float32(s.size), color.NRGBA{R: 255, G: 255, B: 255, A: 200}, true)
	}

	for i, base := range g.sky.clouds {
		x := math.Mod(base*geom.Width-p.Clouds+2*geom.Width, 2*geom.Width) - geom.Width/4
		y := geom.Height * (0.12 + 0.06*float64(i%2))
		w, h := geom.Width*0.12, geom.Height*0.08
		if g.sprites.Cloud != nil {
			drawSprite(dst, g.sprites.Cloud, x, y, w, h, 0.7)
			continue
		}
		c := color.NRGBA{R: 255, G: 255, B: 255, A: 60}
		vector.DrawFilledCircle(dst, float32(x+w*0.3), float32(y+h*0.6), float32(h*0.5), c, true)
		vector.DrawFilledCircle(dst, float32(x+w*0.55), float32(y+h*0.45), float32(h*0.65), c, true)
		vector.DrawFilledCircle(dst, float32(x+w*0.8), float32(y+h*0.6), float32(h*0.45), c, true)
	}

	groundH := geom.Height - geom.GroundY
	gradient(dst, 0, geom.GroundY, geom.Width, groundH, groundTop, groundBottom)

	spacing := geom.Width / 40
	if spacing <= 0 {
		return
	}
	offset := math.Mod(p.Ground, spacing)
	for x := -offset; x < geom.Width; x += spacing {
		vector.DrawFilledCircle(dst, float32(x), float32(geom.GroundY+groundH/2), 1, groundDot, false)
	}
}

func (g *Game) drawObstacles(dst *ebiten.Image, geom game.Geometry, e *game.Engine) {
	for _, o := range e.Obstacles {
		r := geom.ObstacleRect(o)

		vector.DrawFilledRect(dst, float32(r.X+4), float32(geom.GroundY-3), float32(r.W), 4, shadow, false)

		var img *ebiten.Image
		fallback := cactusGreen
		if o.Kind == game.Aerial {
			img = g.sprites.Bird[e.Anim.BirdFrame%len(g.sprites.Bird)]
			fallback = birdBrown
		} else {
			img = g.sprites.Cactus[o.Variant%len(g.sprites.Cactus)]
		}

		if img != nil {
			drawSprite(dst, img, r.X, r.Y, r.W, r.H, 1)
			continue
		}
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fallback, true)
	}
}

func (g *Game) drawPlayer(dst *ebiten.Image, geom game.Geometry, e *game.Engine) {
	r := geom.PlayerRect(e.Player, e.Tuning())

	shadowW := r.W * (1 + e.Player.Offset/400)
	vector.DrawFilledRect(dst, float32(r.X+(r.W-shadowW)/2), float32(geom.GroundY-3), float32(shadowW), 4, shadow, false)

	if img := g.sprites.player(e.Player.Posture, e.Anim); img != nil {
		drawSprite(dst, img, r.X, r.Y, r.W, r.H, 1)
		return
	}
	c := dinoGrey
	if e.Player.Posture == game.Dead {
		c = dinoDead
	}
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, true)
}

func drawParticles(dst *ebiten.Image, ps []game.Particle) {
	for _, p := range ps {
		vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(p.Size), withAlpha(p.Color, p.Life), true)
	}
}

func progressColor(progress float64) color.NRGBA {
	if progress < 0.5 {
		return lerp(barLow, barMid, progress*2)
	}
	return lerp(barMid, barHigh, (progress-0.5)*2)
}

func center(w float64, text string) int {
	return int(w/2) - len(text)*3
}

func (g *Game) drawHUD(dst *ebiten.Image, geom game.Geometry, h game.HUD) {
	w := geom.Width
	barW, barX := w*0.6, w*0.2
	vector.DrawFilledRect(dst, float32(barX), 12, float32(barW), 10, barBack, false)
	vector.DrawFilledRect(dst, float32(barX), 12, float32(barW*h.Progress), 10, progressColor(h.Progress), false)
	ebitenutil.DebugPrintAt(dst, h.ProgressText, int(barX), 26)
	ebitenutil.DebugPrintAt(dst, h.EarningsText, int(barX+barW)-len(h.EarningsText)*6, 26)
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("%d FPS", h.FPS), 6, int(geom.Height)-18)

	if h.ComboText != "" {
		ebitenutil.DebugPrintAt(dst, h.ComboText, center(w, h.ComboText), int(geom.Height/3))
	}

	if h.Notice != "" {
		notice := h.Notice
		if h.DepositNotice && h.DepositURL != "" {
			notice += " - deposit at " + h.DepositURL
		}
		ebitenutil.DebugPrintAt(dst, notice, center(w, notice), 44)
	}

	switch {
	case h.CountdownText != "":
		vector.DrawFilledRect(dst, 0, 0, float32(w), float32(geom.Height), overlay, false)
		ebitenutil.DebugPrintAt(dst, h.CountdownText, center(w, h.CountdownText), int(geom.Height/2)-8)
		ebitenutil.DebugPrintAt(dst, "Get ready...", center(w, "Get ready..."), int(geom.Height/2)+12)
	case h.Starting:
		vector.DrawFilledRect(dst, 0, 0, float32(w), float32(geom.Height), overlay, false)
		ebitenutil.DebugPrintAt(dst, "Starting...", center(w, "Starting..."), int(geom.Height/2))
	case h.Paused:
		vector.DrawFilledRect(dst, 0, 0, float32(w), float32(geom.Height), overlay, false)
		ebitenutil.DebugPrintAt(dst, "Paused", center(w, "Paused"), int(geom.Height/2)-8)
		ebitenutil.DebugPrintAt(dst, "Press P or Esc to resume", center(w, "Press P or Esc to resume"), int(geom.Height/2)+12)
	case h.Idle:
		g.drawIdle(dst, geom, h)
	case h.Outcome != nil:
		drawOutcome(dst, geom, h.Outcome)
	}
}

func (g *Game) drawIdle(dst *ebiten.Image, geom game.Geometry, h game.HUD) {
	w := geom.Width
	y := int(geom.Height/2) - 30
	title := "Press Space or tap to play"
	ebitenutil.DebugPrintAt(dst, title, center(w, title), y)
	help := "Space/Up jump  Down duck  P pause"
	ebitenutil.DebugPrintAt(dst, help, center(w, help), y+18)

	if len(h.History) == 0 {
		return
	}
	ebitenutil.DebugPrintAt(dst, "Recent runs", center(w, "Recent runs"), y+44)
	for i, line := range h.History {
		ebitenutil.DebugPrintAt(dst, line, center(w, line), y+62+i*16)
	}
}

func drawOutcome(dst *ebiten.Image, geom game.Geometry, o *game.OutcomeView) {
	w, h := geom.Width, geom.Height
	vector.DrawFilledRect(dst, 0, 0, float32(w), float32(h), overlay, false)

	mw, mh := math.Min(320, w-40), 150.0
	mx, my := (w-mw)/2, (h-mh)/2
	vector.DrawFilledRect(dst, float32(mx), float32(my), float32(mw), float32(mh), modalBack, true)
	border := barHigh
	if o.Victory {
		border = barLow
	}
	vector.StrokeRect(dst, float32(mx), float32(my), float32(mw), float32(mh), 2, border, true)

	lines := []string{o.Title}
	if !o.Pending {
		lines = append(lines, o.ScoreText, o.EarningsText)
		if o.PenaltyText != "" {
			lines = append(lines, o.PenaltyText)
		}
		if o.BalanceText != "" {
			lines = append(lines, o.BalanceText)
		}
		if o.Unconfirmed {
			lines = append(lines, "Payout unconfirmed")
		}
		lines = append(lines, "Enter: play again  Esc: close")
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(dst, line, center(w, line), int(my)+14+i*18)
	}
}
