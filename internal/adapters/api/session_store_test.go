package api

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weathernow.app/internal/core/weather"
)

type blockingLooker struct {
	started chan struct{}
	release chan struct{}
}

func (l blockingLooker) Lookup(context.Context, weather.LookupRequest) (*weather.DisplayModel, error) {
	close(l.started)
	<-l.release
	return &weather.DisplayModel{}, nil
}

func TestSessionStore_CreateAndGet(t *testing.T) {
	store := NewSessionStore(nil, time.Minute)

	id, session := store.Create()
	require.NotEmpty(t, id)

	got, ok := store.Get(id)
	require.True(t, ok)
	assert.Same(t, session, got)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestSessionStore_PrunesIdleSessionsOnCreate(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store := NewSessionStore(nil, 30*time.Minute)
	store.now = func() time.Time { return now }

	idle, _ := store.Create()
	active, _ := store.Create()

	now = now.Add(20 * time.Minute)
	_, ok := store.Get(active)
	require.True(t, ok)

	now = now.Add(20 * time.Minute)
	store.Create()

	_, ok = store.Get(idle)
	assert.False(t, ok)
	_, ok = store.Get(active)
	assert.True(t, ok)
	assert.Equal(t, 2, store.Len())
}

func TestSessionStore_KeepsLoadingSessions(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	looker := blockingLooker{started: make(chan struct{}), release: make(chan struct{})}
	store := NewSessionStore(looker, time.Minute)
	store.now = func() time.Time { return now }

	id, session := store.Create()
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = session.Submit(context.Background(), "Paris")
	}()
	<-looker.started

	now = now.Add(time.Hour)
	store.Create()

	_, ok := store.Get(id)
	assert.True(t, ok)

	close(looker.release)
	<-done
}

func TestSessionStore_DefaultIdleTimeout(t *testing.T) {
	store := NewSessionStore(nil, 0)
	assert.Equal(t, DefaultSessionIdleTimeout, store.idleTimeout)
}
