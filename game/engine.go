package game

import (
	"math/rand/v2"
	"sync/atomic"
	"time"

	"runner-game/session"

	log "github.com/sirupsen/logrus"
)

type Options struct {
	Service SessionService
	Tuning  Tuning
	Rand    *rand.Rand
	Sink    EventSink

	// Dispatch runs a service call; nil runs each call on its own goroutine.
	Dispatch func(func())

	// OnDepositRequired is called when a start is refused for lack of funds.
	OnDepositRequired func()
	DepositURL        string

	Width, Height float64
}

// Engine is the whole state of the minigame. It is owned by the render loop:
// every method except Snapshot must be called from the frame goroutine.
type Engine struct {
	tuning Tuning
	geom   Geometry
	rng    *rand.Rand
	sink   EventSink
	remote *remote

	onDeposit  func()
	depositURL string

	Phase     Phase
	Session   *Session
	Player    PlayerBody
	Obstacles []Obstacle
	Particles []Particle
	Parallax  Parallax
	Anim      Animation
	Spawner   Spawner
	FPS       FPSMeter

	// Clock is the simulated time in ms; it does not advance while paused.
	Clock float64

	countdown     int
	countdownLeft float64
	starting      bool

	combo     int
	comboLeft float64

	passSeq    uint64
	appliedSeq uint64

	ending       bool
	final        *Final
	outcomeLeft  float64
	outcomeShown bool

	notice  Notice
	history []session.Session

	queue    []InputEvent
	snapshot atomic.Pointer[Snapshot]
}

func New(opts Options) *Engine {
	rng := opts.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	sink := opts.Sink
	if sink == nil {
		sink = nopSink{}
	}
	tuning := opts.Tuning
	if tuning == (Tuning{}) {
		tuning = DefaultTuning()
	}
	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		width, height = BaseWidth, BaseHeight
	}

	e := &Engine{
		tuning:     tuning,
		geom:       NewGeometry(width, height, tuning),
		rng:        rng,
		sink:       sink,
		remote:     newRemote(opts.Service, opts.Dispatch),
		onDeposit:  opts.OnDepositRequired,
		depositURL: opts.DepositURL,
		Phase:      Idle,
		Spawner:    NewSpawner(rng),
	}
	e.remote.history()
	e.publish()
	return e
}

func (e *Engine) Tuning() Tuning {
	return e.tuning
}

func (e *Engine) Geometry() Geometry {
	return e.geom
}

// Resize changes the drawing surface. Obstacles keep their positions.
func (e *Engine) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == e.geom.Width && height == e.geom.Height {
		return
	}
	e.geom = NewGeometry(width, height, e.tuning)
}

// Push queues a raw input event for the next frame.
func (e *Engine) Push(ev InputEvent) {
	e.queue = append(e.queue, ev)
}

// Frame advances the game by deltaMs of wall time. It is the only place
// where time-driven state moves.
func (e *Engine) Frame(deltaMs float64) {
	if e.remote.closed() {
		return
	}
	if deltaMs < 0 {
		deltaMs = 0
	}

	e.applyResults()
	e.handleInput()
	e.advanceTimers(deltaMs)

	if e.Phase != Paused {
		e.Clock += deltaMs
		e.Parallax.Advance(deltaMs, e.geom, e.tuning)
		e.Anim.Advance(deltaMs, e.Player.Posture, e.tuning)
		e.Particles = StepParticles(e.Particles, deltaMs, e.tuning.ParticleDecay)
		e.advanceCombo(deltaMs)

		if e.Phase == Active {
			e.simulate(deltaMs)
		}
	}

	e.FPS.Sample(deltaMs)
	e.publish()
}

func (e *Engine) simulate(deltaMs float64) {
	t := e.tuning

	e.Player.Integrate(deltaMs, t)

	if o, ok := e.Spawner.Advance(deltaMs, e.Session.Score, e.geom.Width, t); ok {
		e.Obstacles = append(e.Obstacles, o)
	}
	e.Obstacles = AdvanceObstacles(e.Obstacles, e.CurrentSpeed(), deltaMs, e.geom.Width)

	d := Detect(e.Player, e.Obstacles, e.geom, t)
	if d.Collided {
		e.die()
		return
	}
	for range d.Passed {
		e.pass()
	}
}

// CurrentSpeed is the scroll speed per reference frame derived from the
// server's speed multiplier.
func (e *Engine) CurrentSpeed() float64 {
	if e.Session == nil {
		return e.tuning.BaseSpeed
	}
	return e.tuning.BaseSpeed * e.Session.Speed
}

func (e *Engine) advanceCombo(deltaMs float64) {
	if e.comboLeft <= 0 {
		return
	}
	e.comboLeft -= deltaMs
	if e.comboLeft <= 0 {
		e.comboLeft = 0
		e.combo = 0
	}
}

func (e *Engine) pass() {
	e.combo++
	e.comboLeft = e.tuning.ComboShowMs
	e.passSeq++
	e.remote.reportPass(e.Session.ID, e.passSeq)
	e.emit(EventObstaclePassed)
}

func (e *Engine) die() {
	e.Player.Kill()
	e.Phase = Dead
	e.outcomeLeft = e.tuning.OutcomeDelayMs
	e.outcomeShown = false

	box := e.geom.PlayerRect(e.Player, e.tuning)
	e.Particles = append(e.Particles, Burst(e.rng, e.tuning.BurstParticles, box.X+box.W/2, box.Y+box.H/2)...)

	log.WithFields(log.Fields{
		"session": e.Session.ID,
		"score":   e.Session.Score,
	}).Info("Player collided, ending session")
	e.emit(EventPlayerCollided)

	if !e.ending {
		e.ending = true
		e.remote.end(e.Session.ID)
	}
}

// ForceEnd ends a running session as if the player had collided.
func (e *Engine) ForceEnd() {
	if e.Phase != Active && e.Phase != Paused {
		return
	}
	e.die()
}

// Settled reports whether no end call is outstanding.
func (e *Engine) Settled() bool {
	return !e.ending && !e.starting
}

// Close stops the engine. In-flight service calls are cancelled and their
// responses are discarded.
func (e *Engine) Close() {
	e.remote.close()
	e.queue = nil
}

func (e *Engine) Closed() bool {
	return e.remote.closed()
}

func (e *Engine) emit(eventType string) {
	ev := Event{Type: eventType, At: time.Now()}
	if e.Session != nil {
		ev.SessionID = e.Session.ID
		ev.Score = e.Session.Score
		ev.Speed = e.Session.Speed
		ev.EarnedAmount = e.Session.EarnedAmount
		ev.Active = e.Session.Active
	}
	if e.final != nil {
		ev.Outcome = e.final.Outcome.String()
	}
	e.sink.Emit(ev)
}
