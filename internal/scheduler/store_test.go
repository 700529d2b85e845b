package scheduler

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/sorriso-perfeito/internal/calendar"
)

func roundTrip(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Load(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	s := NewSession("abc", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
	d := calendar.Date{Year: 2024, Month: time.March, Day: 15}
	s.SelectedDate = &d
	s.SelectedTime = "10:00"
	s.Status = "ok"
	require.NoError(t, store.Save(ctx, s))

	got, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, s.Displayed, got.Displayed)
	assert.Equal(t, d, *got.SelectedDate)
	assert.Equal(t, calendar.TimeSlot("10:00"), got.SelectedTime)
	assert.Equal(t, "ok", got.Status)

	got.Status = "changed"
	again, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "ok", again.Status)
}

func TestMemoryStore(t *testing.T) {
	roundTrip(t, NewMemoryStore(time.Minute))
}

func TestMemoryStoreExpires(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(context.Background(), &Session{ID: "x"}))
	now = now.Add(2 * time.Minute)

	_, err := store.Load(context.Background(), "x")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisStore(client, 30*time.Minute)
	roundTrip(t, store)

	assert.True(t, mr.Exists("scheduler:session:abc"))
	assert.Equal(t, 30*time.Minute, mr.TTL("scheduler:session:abc"))

	mr.FastForward(31 * time.Minute)
	_, err := store.Load(context.Background(), "abc")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
