package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"strength-api/internal/cache"
)

func TestMemory_GetMissingKey(t *testing.T) {
	m := cache.NewMemory()

	_, ok := m.Get("absent")
	require.False(t, ok)
}

func TestMemory_SetAndGet(t *testing.T) {
	m := cache.NewMemory()
	value := time.Now().UTC()

	m.Set("key", value, time.Minute)

	got, ok := m.Get("key")
	require.True(t, ok)
	require.Equal(t, value, got)
}

func TestMemory_ExpiredEntryIsGone(t *testing.T) {
	m := cache.NewMemory()

	m.Set("key", time.Now().UTC(), time.Nanosecond)
	time.Sleep(5 * time.Millisecond)

	_, ok := m.Get("key")
	require.False(t, ok)
}

func TestMemory_LastWriteWins(t *testing.T) {
	m := cache.NewMemory()
	first := time.Now().UTC().Add(-time.Hour)
	second := time.Now().UTC()

	m.Set("key", first, time.Minute)
	m.Set("key", second, time.Minute)

	got, ok := m.Get("key")
	require.True(t, ok)
	require.Equal(t, second, got)
}
