package game

import (
	"context"
	"testing"

	"runner-game/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHUDProgressAndEarnings(t *testing.T) {
	e := newTestEngine(t, &fakeService{start: session.Session{ID: "s1", Speed: 1}})
	startRun(t, e)
	e.Session.Score = 37
	e.Session.EarnedAmount = 1.85

	h := e.HUD()

	assert.InDelta(t, 0.37, h.Progress, 1e-9)
	assert.Equal(t, "37/100", h.ProgressText)
	assert.Equal(t, "R$ 1.85", h.EarningsText)
	assert.Empty(t, h.ComboText)

	e.Session.Score = 140
	assert.Equal(t, 1.0, e.HUD().Progress)
}

func TestHUDComboCallout(t *testing.T) {
	e := newTestEngine(t, &fakeService{start: session.Session{ID: "s1", Speed: 1}})
	startRun(t, e)

	e.Obstacles = []Obstacle{
		{Kind: Ground, X: 10, Width: 15, Height: 30, OnScreen: true},
		{Kind: Ground, X: 0, Width: 15, Height: 30, OnScreen: true},
	}
	e.Frame(16)
	assert.Equal(t, "Combo x2", e.HUD().ComboText)

	e.Frame(e.Tuning().ComboShowMs)
	assert.Empty(t, e.HUD().ComboText)
}

func TestHUDPendingOutcome(t *testing.T) {
	var pending []func()
	e := New(Options{
		Service:  &fakeService{start: session.Session{ID: "s1", Speed: 1}},
		Dispatch: func(f func()) { pending = append(pending, f) },
	})
	defer e.Close()

	e.Dispatch(CmdStart)
	for i := 0; i < 3; i++ {
		e.Frame(1000)
	}
	pending[0]()
	e.Frame(16)
	require.Equal(t, Active, e.Phase)

	e.ForceEnd()
	e.Frame(e.Tuning().OutcomeDelayMs)

	out := e.HUD().Outcome
	require.NotNil(t, out)
	assert.True(t, out.Pending)
	assert.False(t, e.Settled())

	e.Dispatch(CmdStart)
	assert.Equal(t, Dead, e.Phase)
}

type historyService struct {
	fakeService
	runs []session.Session
}

func (h *historyService) History(ctx context.Context) ([]session.Session, error) {
	return h.runs, nil
}

func TestHUDIdleHistory(t *testing.T) {
	svc := &historyService{runs: []session.Session{
		{ID: "a", Score: 100, EarnedAmount: 5},
		{ID: "b", Score: 12, EarnedAmount: 0.3},
		{ID: "c", Score: 4, EarnedAmount: 0.1},
		{ID: "d", Score: 1, EarnedAmount: 0.05},
	}}
	e := newTestEngine(t, svc)
	e.Frame(16)

	h := e.HUD()
	assert.True(t, h.Idle)
	assert.Equal(t, []string{"100 pts  R$ 5.00", "12 pts  R$ 0.30", "4 pts  R$ 0.10"}, h.History)
}

func TestSnapshotReflectsFrame(t *testing.T) {
	e := newTestEngine(t, &fakeService{start: session.Session{ID: "s1", Speed: 1.2}})
	startRun(t, e)
	e.Frame(16)

	s := e.Snapshot()
	assert.Equal(t, "active", s.Phase)
	assert.Equal(t, "s1", s.SessionID)
	assert.Equal(t, 1.2, s.Speed)
	assert.Equal(t, "running", s.Posture)
	assert.Positive(t, s.Clock)
}
