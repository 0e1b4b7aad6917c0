package game

import (
	"fmt"
	"math"

	"runner-game/session"
)

// HUD is the overlay view model drawn on top of the scene.
type HUD struct {
	Progress     float64
	ProgressText string
	EarningsText string
	ComboText    string

	CountdownText string
	Starting      bool
	Paused        bool

	Notice        string
	DepositNotice bool
	DepositURL    string

	Idle    bool
	History []string

	Outcome *OutcomeView

	FPS int
}

// OutcomeView is the end-of-run modal.
type OutcomeView struct {
	Title        string
	Victory      bool
	ScoreText    string
	EarningsText string
	PenaltyText  string
	BalanceText  string
	Pending      bool
	Unconfirmed  bool
}

func money(v float64) string {
	return fmt.Sprintf("R$ %.2f", v)
}

func (e *Engine) HUD() HUD {
	t := e.tuning
	h := HUD{
		Paused:        e.Phase == Paused,
		Notice:        e.notice.Text,
		DepositNotice: e.notice.Deposit,
		DepositURL:    e.depositURL,
		Idle:          e.Phase == Idle,
		FPS:           int(math.Round(e.FPS.Average())),
		EarningsText:  money(0),
	}

	score := 0
	if e.Session != nil {
		score = e.Session.Score
		h.EarningsText = money(e.Session.EarnedAmount)
	}
	h.Progress = math.Min(1, float64(score)/float64(t.VictoryScore))
	h.ProgressText = fmt.Sprintf("%d/%d", score, t.VictoryScore)

	if e.comboLeft > 0 && e.combo > 1 {
		h.ComboText = fmt.Sprintf("Combo x%d", e.combo)
	}

	if e.Phase == Countdown {
		if e.starting {
			h.Starting = true
		} else {
			h.CountdownText = fmt.Sprintf("%d", e.countdown)
		}
	}

	if h.Idle {
		for i, s := range e.history {
			if i == 3 {
				break
			}
			h.History = append(h.History, historyLine(s))
		}
	}

	if e.Phase == Dead && e.outcomeShown {
		h.Outcome = e.outcomeView()
	}
	return h
}

func (e *Engine) outcomeView() *OutcomeView {
	if e.final == nil {
		return &OutcomeView{Title: "Finalizing...", Pending: true}
	}

	f := e.final
	v := &OutcomeView{
		Victory:      f.Outcome == Victory,
		ScoreText:    fmt.Sprintf("Score: %d", f.Score),
		EarningsText: "Earnings: " + money(f.EarnedAmount),
		Unconfirmed:  !f.Confirmed,
	}
	if v.Victory {
		v.Title = "Victory!"
	} else {
		v.Title = "Game Over"
		v.PenaltyText = fmt.Sprintf("Below %d points: %.0f%% penalty applied", e.tuning.VictoryScore, (1-e.tuning.DefeatPayoutRatio)*100)
	}
	if f.HasBalance {
		v.BalanceText = "Balance: " + money(f.Balance)
	}
	return v
}

func historyLine(s session.Session) string {
	return fmt.Sprintf("%d pts  %s", s.Score, money(s.EarnedAmount))
}

// Snapshot is a read-only copy of the engine published for observers on
// other goroutines.
type Snapshot struct {
	Phase        string  `json:"phase"`
	SessionID    string  `json:"sessionId,omitempty"`
	Score        int     `json:"score"`
	Speed        float64 `json:"speed"`
	EarnedAmount float64 `json:"earnedAmount"`
	Posture      string  `json:"posture"`
	PlayerOffset float64 `json:"playerOffset"`
	Obstacles    int     `json:"obstacles"`
	Particles    int     `json:"particles"`
	Combo        int     `json:"combo"`
	Outcome      string  `json:"outcome,omitempty"`
	FPS          float64 `json:"fps"`
	Clock        float64 `json:"clock"`
}

func (e *Engine) publish() {
	s := &Snapshot{
		Phase:        e.Phase.String(),
		Posture:      e.Player.Posture.String(),
		PlayerOffset: e.Player.Offset,
		Obstacles:    len(e.Obstacles),
		Particles:    len(e.Particles),
		Combo:        e.combo,
		FPS:          e.FPS.Average(),
		Clock:        e.Clock,
	}
	if e.Session != nil {
		s.SessionID = e.Session.ID
		s.Score = e.Session.Score
		s.Speed = e.Session.Speed
		s.EarnedAmount = e.Session.EarnedAmount
	}
	if e.final != nil {
		s.Outcome = e.final.Outcome.String()
	}
	e.snapshot.Store(s)
}

// Snapshot returns the state published by the last frame. Safe to call from
// any goroutine.
func (e *Engine) Snapshot() Snapshot {
	if s := e.snapshot.Load(); s != nil {
		return *s
	}
	return Snapshot{}
}
