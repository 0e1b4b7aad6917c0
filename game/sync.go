package game

import (
	"context"

	"runner-game/session"
)

// SessionService is the authoritative game-session backend.
type SessionService interface {
	Start(ctx context.Context) (session.Session, error)
	ReportPass(ctx context.Context, id string) (session.Progress, error)
	End(ctx context.Context, id string) (session.Result, error)
}

// HistoryService is optionally implemented by a SessionService that can list
// past runs.
type HistoryService interface {
	History(ctx context.Context) ([]session.Session, error)
}

type startResult struct {
	session session.Session
	err     error
}

type passResult struct {
	sessionID string
	seq       uint64
	progress  session.Progress
	err       error
}

type endResult struct {
	sessionID string
	result    session.Result
	err       error
}

type historyResult struct {
	sessions []session.Session
	err      error
}

// remote runs service calls off the frame thread and hands their results
// back through a channel the frame drains.
type remote struct {
	svc      SessionService
	ctx      context.Context
	cancel   context.CancelFunc
	results  chan any
	dispatch func(func())
}

func goDispatch(f func()) {
	go f()
}

func newRemote(svc SessionService, dispatch func(func())) *remote {
	ctx, cancel := context.WithCancel(context.Background())
	if dispatch == nil {
		dispatch = goDispatch
	}
	return &remote{
		svc:      svc,
		ctx:      ctx,
		cancel:   cancel,
		results:  make(chan any, 128),
		dispatch: dispatch,
	}
}

func (r *remote) run(call func(ctx context.Context) any) {
	if r.ctx.Err() != nil {
		return
	}
	r.dispatch(func() {
		res := call(r.ctx)
		if r.ctx.Err() != nil {
			return
		}
		select {
		case r.results <- res:
		case <-r.ctx.Done():
		}
	})
}

func (r *remote) start() {
	r.run(func(ctx context.Context) any {
		s, err := r.svc.Start(ctx)
		return startResult{session: s, err: err}
	})
}

func (r *remote) reportPass(id string, seq uint64) {
	r.run(func(ctx context.Context) any {
		p, err := r.svc.ReportPass(ctx, id)
		return passResult{sessionID: id, seq: seq, progress: p, err: err}
	})
}

func (r *remote) end(id string) {
	r.run(func(ctx context.Context) any {
		res, err := r.svc.End(ctx, id)
		return endResult{sessionID: id, result: res, err: err}
	})
}

func (r *remote) history() {
	hs, ok := r.svc.(HistoryService)
	if !ok {
		return
	}
	r.run(func(ctx context.Context) any {
		sessions, err := hs.History(ctx)
		return historyResult{sessions: sessions, err: err}
	})
}

// drain returns every result that has arrived so far without blocking.
func (r *remote) drain() []any {
	var out []any
	for {
		select {
		case res := <-r.results:
			out = append(out, res)
		default:
			return out
		}
	}
}

func (r *remote) close() {
	r.cancel()
}

func (r *remote) closed() bool {
	return r.ctx.Err() != nil
}
