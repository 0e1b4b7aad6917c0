package game

import (
	"runner-game/session"

	log "github.com/sirupsen/logrus"
)

type Phase uint8

const (
	Idle Phase = iota
	Countdown
	Active
	Paused
	Dead
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Countdown:
		return "countdown"
	case Active:
		return "active"
	case Paused:
		return "paused"
	case Dead:
		return "dead"
	}
	return "unknown"
}

type Notice struct {
	Text    string
	Deposit bool
}

func (e *Engine) handleInput() {
	queue := e.queue
	e.queue = nil
	for _, ev := range queue {
		cmd, ok := Translate(ev, e.Phase, e.geom.Height)
		if !ok {
			continue
		}
		e.Dispatch(cmd)
	}
}

// Dispatch applies one command to the current phase.
func (e *Engine) Dispatch(cmd Command) {
	t := e.tuning

	switch cmd {
	case CmdJump:
		if e.Phase == Active && e.Player.Jump(t) {
			e.dust()
		}
	case CmdDuckStart:
		if e.Phase == Active && e.Player.Duck(true) {
			e.dust()
		}
	case CmdDuckEnd:
		if e.Phase == Active {
			e.Player.Duck(false)
		}
	case CmdPause:
		switch e.Phase {
		case Active:
			e.Phase = Paused
		case Paused:
			e.Phase = Active
		}
	case CmdStart:
		if e.Phase == Idle || e.replayable() {
			e.beginCountdown()
		}
	case CmdDismiss:
		switch {
		case e.replayable():
			e.toIdle()
		case e.Phase == Idle:
			e.notice = Notice{}
		}
	}
}

// replayable is true once the outcome modal is up and the end call settled.
func (e *Engine) replayable() bool {
	return e.Phase == Dead && e.outcomeShown && !e.ending
}

func (e *Engine) dust() {
	e.Particles = append(e.Particles, Dust(e.rng, e.tuning.DustParticles, e.geom.PlayerX, e.geom.GroundY, e.geom.PlayerSize)...)
}

func (e *Engine) beginCountdown() {
	e.resetWorld()
	e.Session = nil
	e.notice = Notice{}
	e.Phase = Countdown
	e.countdown = e.tuning.CountdownFrom
	e.countdownLeft = e.tuning.CountdownStep
	e.starting = false

	if e.countdown <= 0 {
		e.requestStart()
	}
}

func (e *Engine) requestStart() {
	e.countdown = 0
	e.starting = true
	e.remote.start()
}

func (e *Engine) toIdle() {
	e.resetWorld()
	e.Phase = Idle
	e.remote.history()
}

func (e *Engine) resetWorld() {
	e.Player = PlayerBody{}
	e.Obstacles = nil
	e.Particles = nil
	e.Parallax = Parallax{}
	e.Anim.Reset()
	e.Spawner.Reset()
	e.combo = 0
	e.comboLeft = 0
	e.passSeq = 0
	e.appliedSeq = 0
	e.ending = false
	e.final = nil
	e.outcomeLeft = 0
	e.outcomeShown = false
}

func (e *Engine) advanceTimers(deltaMs float64) {
	switch e.Phase {
	case Countdown:
		if e.starting {
			return
		}
		e.countdownLeft -= deltaMs
		for e.countdownLeft <= 0 && !e.starting {
			e.countdown--
			if e.countdown <= 0 {
				e.requestStart()
				return
			}
			e.countdownLeft += e.tuning.CountdownStep
		}
	case Dead:
		if e.outcomeShown {
			return
		}
		e.outcomeLeft -= deltaMs
		if e.outcomeLeft <= 0 {
			e.outcomeShown = true
		}
	}
}

func (e *Engine) applyResults() {
	for _, res := range e.remote.drain() {
		switch r := res.(type) {
		case startResult:
			e.applyStart(r)
		case passResult:
			e.applyPass(r)
		case endResult:
			e.applyEnd(r)
		case historyResult:
			if r.err != nil {
				log.WithError(r.err).Warn("Failed to load run history")
				continue
			}
			e.history = r.sessions
		}
	}
}

func (e *Engine) applyStart(r startResult) {
	if e.Phase != Countdown || !e.starting {
		return
	}
	e.starting = false

	if r.err != nil {
		e.Phase = Idle
		if session.IsFunding(r.err) {
			log.Info("Insufficient balance, redirecting to deposit")
			e.notice = Notice{Text: "Insufficient balance to start a game", Deposit: true}
			if e.onDeposit != nil {
				e.onDeposit()
			}
			return
		}
		log.WithError(r.err).Warn("Failed to start game session")
		e.notice = Notice{Text: "Could not start the game, press start to try again"}
		return
	}

	e.resetWorld()
	e.Session = &Session{
		ID:           r.session.ID,
		Active:       r.session.Status != session.StatusEnded,
		Score:        r.session.Score,
		Speed:        speedOrDefault(r.session.Speed, 1),
		EarnedAmount: r.session.EarnedAmount,
	}
	e.Phase = Active

	log.WithField("session", e.Session.ID).Info("Game session started")
	e.emit(EventSessionStarted)
}

func (e *Engine) applyPass(r passResult) {
	if e.Session == nil || r.sessionID != e.Session.ID {
		return
	}
	if r.err != nil {
		log.WithError(r.err).WithField("session", r.sessionID).Warn("Failed to register passed obstacle")
		return
	}
	if e.final != nil && e.final.Confirmed {
		return
	}
	if r.seq <= e.appliedSeq {
		log.WithFields(log.Fields{
			"session": r.sessionID,
			"seq":     r.seq,
			"applied": e.appliedSeq,
		}).Debug("Dropping stale pass response")
		return
	}

	e.appliedSeq = r.seq
	e.Session.Score = r.progress.Score
	e.Session.Speed = speedOrDefault(r.progress.Speed, e.Session.Speed)
	e.Session.EarnedAmount = r.progress.EarnedAmount
	if r.progress.Status == session.StatusEnded {
		e.Session.Active = false
	}
	e.emit(EventProgressApplied)
}

func (e *Engine) applyEnd(r endResult) {
	if e.Session == nil || r.sessionID != e.Session.ID {
		return
	}
	e.ending = false

	if r.err != nil {
		log.WithError(r.err).WithField("session", r.sessionID).Error("Failed to end game session")
		e.final = &Final{
			Score:        e.Session.Score,
			EarnedAmount: e.Session.EarnedAmount,
			Outcome:      Classify(e.Session.Score, e.tuning.VictoryScore),
		}
		e.notice = Notice{Text: "Could not confirm the payout, your server balance is authoritative"}
		e.emit(EventSessionEndFail)
		return
	}

	e.Session.Score = r.result.Score
	e.Session.EarnedAmount = r.result.EarnedAmount
	e.Session.Active = false
	e.final = &Final{
		Score:        r.result.Score,
		EarnedAmount: r.result.EarnedAmount,
		Outcome:      Classify(r.result.Score, e.tuning.VictoryScore),
		Confirmed:    true,
	}
	if r.result.User != nil {
		e.final.Balance = r.result.User.Balance
		e.final.HasBalance = true
	}

	log.WithFields(log.Fields{
		"session": r.sessionID,
		"score":   r.result.Score,
		"earned":  r.result.EarnedAmount,
		"outcome": e.final.Outcome.String(),
	}).Info("Game session ended")
	e.emit(EventSessionEnded)
}

func speedOrDefault(speed, fallback float64) float64 {
	if speed > 0 {
		return speed
	}
	return fallback
}
