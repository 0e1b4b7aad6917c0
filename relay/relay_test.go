package relay

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"runner-game/backup"
	"runner-game/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	subject string
	data    []byte
}

type fakeBus struct {
	mu   sync.Mutex
	msgs []published
}

func (b *fakeBus) publish(subject string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.msgs = append(b.msgs, published{subject, data})
	return nil
}

type fakeStore struct {
	mu      sync.Mutex
	saved   map[string]backup.Record
	deleted []string
}

func (s *fakeStore) Save(_ context.Context, r backup.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved[r.SessionID] = r
}

func (s *fakeStore) Delete(_ context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.saved, id)
	s.deleted = append(s.deleted, id)
}

func TestRelayPublishesAndMaintainsBackup(t *testing.T) {
	bus := &fakeBus{}
	store := &fakeStore{saved: map[string]backup.Record{}}
	r := New(Options{Publish: bus.publish, Store: store})
	r.Start(context.Background())

	at := time.Now()
	r.Emit(game.Event{Type: game.EventSessionStarted, SessionID: "s1", Speed: 1, At: at})
	r.Emit(game.Event{Type: game.EventProgressApplied, SessionID: "s1", Score: 3, Speed: 1.1, EarnedAmount: 0.3, At: at})
	r.Stop()

	require.Contains(t, store.saved, "s1")
	assert.Equal(t, 3, store.saved["s1"].Score)
	assert.Equal(t, 0.3, store.saved["s1"].EarnedAmount)

	require.Len(t, bus.msgs, 2)
	assert.Equal(t, "runner.session.started", bus.msgs[0].subject)
	assert.Equal(t, "runner.progress.applied", bus.msgs[1].subject)

	var msg map[string]any
	require.NoError(t, json.Unmarshal(bus.msgs[1].data, &msg))
	assert.Equal(t, "s1", msg["sessionId"])
	assert.Equal(t, 3.0, msg["score"])
	assert.NotEmpty(t, msg["source"])
}

func TestRelayDeletesBackupOnConfirmedEnd(t *testing.T) {
	store := &fakeStore{saved: map[string]backup.Record{}}
	r := New(Options{Publish: (&fakeBus{}).publish, Store: store})
	r.Start(context.Background())

	r.Emit(game.Event{Type: game.EventPlayerCollided, SessionID: "s1", Score: 9})
	r.Emit(game.Event{Type: game.EventSessionEnded, SessionID: "s1", Score: 9, Outcome: "defeat"})
	r.Stop()

	assert.NotContains(t, store.saved, "s1")
	assert.Equal(t, []string{"s1"}, store.deleted)
}

func TestRelayKeepsBackupWhenEndFails(t *testing.T) {
	store := &fakeStore{saved: map[string]backup.Record{}}
	r := New(Options{Publish: (&fakeBus{}).publish, Store: store})
	r.Start(context.Background())

	r.Emit(game.Event{Type: game.EventSessionEndFail, SessionID: "s1", Score: 9})
	r.Stop()

	assert.Contains(t, store.saved, "s1")
	assert.Empty(t, store.deleted)
}

func TestEmitDropsWhenFull(t *testing.T) {
	r := New(Options{Publish: (&fakeBus{}).publish, Store: &fakeStore{saved: map[string]backup.Record{}}, QueueSize: 2})

	for i := 0; i < 5; i++ {
		r.Emit(game.Event{Type: game.EventObstaclePassed})
	}

	assert.Equal(t, 3, r.Dropped())
}
