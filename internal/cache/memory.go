package cache

import (
	"sync"
	"time"
)

type entry struct {
	value     time.Time
	expiresAt time.Time
}

// Memory — внутрипроцессная реализация Store на мьютексе.
// Истёкшие записи вычищаются лениво при чтении.
type Memory struct {
	mu      sync.Mutex
	entries map[string]entry
}

var _ Store = (*Memory)(nil)

// NewMemory создаёт пустое внутрипроцессное хранилище.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]entry)}
}

// Get возвращает значение по ключу; истёкшая запись удаляется и считается
// отсутствующей.
func (m *Memory) Get(key string) (time.Time, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return time.Time{}, false
	}
	if time.Now().After(e.expiresAt) {
		delete(m.entries, key)
		return time.Time{}, false
	}
	return e.value, true
}

// Set сохраняет значение по ключу на время ttl (last-write-wins).
func (m *Memory) Set(key string, value time.Time, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = entry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}
