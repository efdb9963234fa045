package codes

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/studentteacher/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

func mustPut[V any](t *testing.T, s Store[V], code int, v V, issuedAt time.Time) {
	t.Helper()
	ok, err := s.PutIfAbsent(context.Background(), code, v, issuedAt)
	require.NoError(t, err)
	require.True(t, ok, "code %d already taken", code)
}

func TestMemoryStore_PutGetRemove(t *testing.T) {
	s := NewMemoryStore[models.CodeInfo](15 * time.Minute)
	ctx := context.Background()

	_, ok, err := s.TryGet(ctx, 123456)
	require.NoError(t, err)
	assert.False(t, ok)

	mustPut[models.CodeInfo](t, s, 123456, models.CodeInfo{UserID: "u1", IssuedAt: t0}, t0)

	e, ok, err := s.TryGet(ctx, 123456)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "u1", e.Value.UserID)
	assert.Equal(t, t0, e.IssuedAt)

	require.NoError(t, s.Remove(ctx, 123456))
	_, ok, _ = s.TryGet(ctx, 123456)
	assert.False(t, ok)

	require.NoError(t, s.Remove(ctx, 123456), "removing twice is fine")
}

func TestMemoryStore_RemoveFreesCode(t *testing.T) {
	s := NewMemoryStore[string](time.Minute)
	ctx := context.Background()

	mustPut[string](t, s, 1, "first", t0)
	require.NoError(t, s.Remove(ctx, 1))
	mustPut[string](t, s, 1, "second", t0.Add(time.Second))

	e, _, _ := s.TryGet(ctx, 1)
	assert.Equal(t, "second", e.Value)
	assert.Equal(t, 1, s.Len())
}

func TestMemoryStore_PutIfAbsent(t *testing.T) {
	s := NewMemoryStore[string](time.Minute)
	ctx := context.Background()

	ok, err := s.PutIfAbsent(ctx, 7, "a", t0)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.PutIfAbsent(ctx, 7, "b", t0)
	require.NoError(t, err)
	assert.False(t, ok)

	e, _, _ := s.TryGet(ctx, 7)
	assert.Equal(t, "a", e.Value)
}

func TestMemoryStore_ConcurrentPutIfAbsent_SingleWinner(t *testing.T) {
	s := NewMemoryStore[int](time.Minute)
	ctx := context.Background()

	const workers = 64
	var wg sync.WaitGroup
	wins := make(chan int, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if ok, _ := s.PutIfAbsent(ctx, 424242, i, t0); ok {
				wins <- i
			}
		}(i)
	}
	wg.Wait()
	close(wins)

	assert.Len(t, wins, 1)
}

func TestMemoryStore_Sweep(t *testing.T) {
	s := NewMemoryStore[string](10 * time.Minute)
	ctx := context.Background()

	mustPut[string](t, s, 1, "old", t0)
	mustPut[string](t, s, 2, "edge", t0.Add(time.Minute))
	mustPut[string](t, s, 3, "fresh", t0.Add(5*time.Minute))

	removed := s.Sweep(t0.Add(11 * time.Minute))

	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, s.Len())
	_, ok, _ := s.TryGet(ctx, 3)
	assert.True(t, ok)
}

func TestMemoryStore_RunSweeper_StopsOnCancel(t *testing.T) {
	s := NewMemoryStore[string](time.Minute)
	mustPut[string](t, s, 1, "stale", t0)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.RunSweeper(ctx, 5*time.Millisecond, func() time.Time { return t0.Add(time.Hour) })
		close(done)
	}()

	require.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestEntry_Expired(t *testing.T) {
	e := Entry[string]{IssuedAt: t0}

	assert.False(t, e.Expired(t0.Add(RegistrationWindow-time.Second), RegistrationWindow))
	assert.True(t, e.Expired(t0.Add(RegistrationWindow), RegistrationWindow))
	assert.True(t, e.Expired(t0.Add(601*time.Second), RegistrationWindow))
	assert.False(t, e.Expired(t0.Add(14*time.Minute), RecoveryWindow))
}
