package game

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"

	"runner-game/session"

	"github.com/stretchr/testify/require"
)

type fakeService struct {
	mu sync.Mutex

	start    session.Session
	startErr error

	progress  []session.Progress
	passErr   error
	passCalls int

	end      session.Result
	endErr   error
	endCalls int
}

func (f *fakeService) Start(ctx context.Context) (session.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.start, f.startErr
}

func (f *fakeService) ReportPass(ctx context.Context, id string) (session.Progress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.passCalls++
	if f.passErr != nil {
		return session.Progress{}, f.passErr
	}
	if len(f.progress) == 0 {
		return session.Progress{}, nil
	}
	p := f.progress[0]
	f.progress = f.progress[1:]
	return p, nil
}

func (f *fakeService) End(ctx context.Context, id string) (session.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.endCalls++
	return f.end, f.endErr
}

func syncDispatch(f func()) {
	f()
}

func newTestEngine(t *testing.T, svc SessionService) *Engine {
	t.Helper()
	e := New(Options{
		Service:  svc,
		Rand:     rand.New(rand.NewPCG(1, 2)),
		Dispatch: syncDispatch,
		Width:    BaseWidth,
		Height:   BaseHeight,
	})
	t.Cleanup(e.Close)
	return e
}

// startRun drives the engine through the countdown into an active session.
func startRun(t *testing.T, e *Engine) {
	t.Helper()
	e.Dispatch(CmdStart)
	require.Equal(t, Countdown, e.Phase)

	for i := 0; i < e.Tuning().CountdownFrom; i++ {
		e.Frame(e.Tuning().CountdownStep)
	}
	e.Frame(0)
	require.Equal(t, Active, e.Phase)
	require.NotNil(t, e.Session)
}

// hitObstacle returns a cactus sitting right on top of the player.
func hitObstacle(e *Engine) Obstacle {
	g := e.Geometry()
	return Obstacle{Kind: Ground, X: g.PlayerX, Width: 30, Height: 50, OnScreen: true}
}
