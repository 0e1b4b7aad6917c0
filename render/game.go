package render

import (
	"math/rand/v2"
	"time"

	"runner-game/game"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
)

// maxDelta caps the frame delta after a stall so the world does not jump.
const maxDelta = 250 * time.Millisecond

// closeGrace is how long a closing window waits for the end call.
const closeGrace = 3 * time.Second

type Options struct {
	Engine  *game.Engine
	Sprites *Sprites
	Rand    *rand.Rand
	NowFunc func() time.Time
}

// Game adapts the engine to ebiten: Update feeds input and time, Draw paints
// the published state.
type Game struct {
	engine  *game.Engine
	sprites *Sprites
	input   *inputCollector
	sky     *sky
	now     func() time.Time

	last    time.Time
	closing shutdown

	width, height int
}

func NewGame(opts Options) *Game {
	now := opts.NowFunc
	if now == nil {
		now = time.Now
	}
	sprites := opts.Sprites
	if sprites == nil {
		sprites = &Sprites{}
	}
	rng := opts.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}

	return &Game{
		engine:  opts.Engine,
		sprites: sprites,
		input:   newInputCollector(),
		sky:     newSky(rng),
		now:     now,
	}
}

// Run opens the window and blocks until it is closed.
func Run(g *Game, title string) error {
	w, h := int(game.BaseWidth), int(game.BaseHeight)
	ebiten.SetWindowSize(w+32, h+32)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(60)

	return ebiten.RunGame(g)
}

func (g *Game) delta() float64 {
	now := g.now()
	if g.last.IsZero() {
		g.last = now
		return 0
	}
	d := now.Sub(g.last)
	g.last = now
	if d > maxDelta {
		d = maxDelta
	}
	if d < 0 {
		d = 0
	}
	return float64(d) / float64(time.Millisecond)
}

func (g *Game) Update() error {
	deltaMs := g.delta()

	if ebiten.IsWindowBeingClosed() && !g.closing.started {
		log.Info("Window closing, finishing the current run")
		g.closing.begin(g.now(), closeGrace)
	}

	if g.closing.started {
		// A start still in flight may turn into a run that has to be ended too.
		g.engine.ForceEnd()
	} else {
		g.input.collect(g.engine.Push)
	}
	g.engine.Frame(deltaMs)

	if g.closing.done(g.now(), g.engine.Settled()) {
		if !g.engine.Settled() {
			log.Warn("End call still pending at shutdown, leaving it to the backup")
		}
		g.engine.Close()
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := game.FitCanvas(float64(outsideWidth), float64(outsideHeight))
	g.engine.Resize(w, h)
	g.width, g.height = int(w), int(h)
	return g.width, g.height
}

// shutdown tracks a window close that waits for the session to settle.
type shutdown struct {
	started  bool
	deadline time.Time
}

func (s *shutdown) begin(now time.Time, grace time.Duration) {
	s.started = true
	s.deadline = now.Add(grace)
}

func (s *shutdown) done(now time.Time, settled bool) bool {
	if !s.started {
		return false
	}
	return settled || !now.Before(s.deadline)
}
