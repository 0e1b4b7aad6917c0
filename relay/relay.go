package relay

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"runner-game/backup"
	"runner-game/game"
	"runner-game/nats"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const subjectPrefix = "runner."

// Publisher sends one message on a subject.
type Publisher func(subject string, data []byte) error

// Store keeps the backup of runs that are not confirmed as ended.
type Store interface {
	Save(ctx context.Context, r backup.Record)
	Delete(ctx context.Context, sessionID string)
}

type redisStore struct{}

func (redisStore) Save(ctx context.Context, r backup.Record) { backup.Save(ctx, r) }

func (redisStore) Delete(ctx context.Context, id string) { backup.Delete(ctx, id) }

type Options struct {
	Publish   Publisher
	Store     Store
	QueueSize int
}

type message struct {
	game.Event
	Source string `json:"source"`
}

// Relay moves engine events off the frame thread. It publishes each event on
// runner.<type> and keeps the run backup in step with the session.
type Relay struct {
	events  chan game.Event
	publish Publisher
	store   Store
	source  string

	mu      sync.Mutex
	dropped int

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

func New(opts Options) *Relay {
	publish := opts.Publish
	if publish == nil {
		publish = nats.Publish
	}
	store := opts.Store
	if store == nil {
		store = redisStore{}
	}
	size := opts.QueueSize
	if size <= 0 {
		size = 64
	}

	return &Relay{
		events:  make(chan game.Event, size),
		publish: publish,
		store:   store,
		source:  uuid.NewString(),
	}
}

// Emit queues ev. It never blocks; when the queue is full the event is dropped.
func (r *Relay) Emit(ev game.Event) {
	select {
	case r.events <- ev:
	default:
		r.mu.Lock()
		r.dropped++
		dropped := r.dropped
		r.mu.Unlock()
		log.WithFields(log.Fields{
			"type":    ev.Type,
			"dropped": dropped,
		}).Warn("Event queue full, dropping event")
	}
}

func (r *Relay) Dropped() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dropped
}

// Start consumes events until ctx is done or Stop is called.
func (r *Relay) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.run(ctx)
	}()
}

// Stop handles the events already queued and waits for the consumer to exit.
func (r *Relay) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
}

func (r *Relay) run(ctx context.Context) {
	for {
		select {
		case ev := <-r.events:
			r.handle(ctx, ev)
		case <-ctx.Done():
			for {
				select {
				case ev := <-r.events:
					r.handle(context.Background(), ev)
				default:
					return
				}
			}
		}
	}
}

func (r *Relay) handle(ctx context.Context, ev game.Event) {
	switch ev.Type {
	case game.EventSessionStarted, game.EventProgressApplied, game.EventPlayerCollided, game.EventSessionEndFail:
		r.store.Save(ctx, backup.Record{
			SessionID:    ev.SessionID,
			Score:        ev.Score,
			Speed:        ev.Speed,
			EarnedAmount: ev.EarnedAmount,
			SavedAt:      ev.At,
		})
	case game.EventSessionEnded:
		r.store.Delete(ctx, ev.SessionID)
	}

	data, err := json.Marshal(message{Event: ev, Source: r.source})
	if err != nil {
		log.WithError(err).Error("Failed to encode event")
		return
	}
	if err := r.publish(subjectPrefix+ev.Type, data); err != nil && !errors.Is(err, nats.ErrNotConnected) {
		log.WithError(err).WithField("type", ev.Type).Debug("Event not published")
	}
}
