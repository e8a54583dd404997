package cleanup

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingStore struct {
	purges atomic.Int32
	expire int
}

func (s *countingStore) PurgeExpired() int {
	s.purges.Add(1)
	return s.expire
}

func (s *countingStore) Len() int { return 0 }

func TestWorker_PerformCleanup(t *testing.T) {
	store := &countingStore{expire: 3}
	w := NewWorker(store, nil, &Config{CleanupInterval: time.Minute, VerboseReporting: true})
	assert.Equal(t, 3, w.PerformCleanup())
	assert.EqualValues(t, 1, store.purges.Load())
}

func TestWorker_StartStopsOnCancel(t *testing.T) {
	store := &countingStore{}
	w := NewWorker(store, nil, &Config{CleanupInterval: 5 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return store.purges.Load() > 0 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestWorker_DisabledReturnsImmediately(t *testing.T) {
	w := NewWorker(&countingStore{}, nil, &Config{})
	w.Start(context.Background())
}
