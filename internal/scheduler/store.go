package scheduler

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// Store keeps sessions between requests. Saves are last-writer-wins.
type Store interface {
	Load(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
}

type memoryEntry struct {
	data    []byte
	expires time.Time
}

// MemoryStore is the single-process fallback used when Redis is not
// configured. Sessions are stored serialized so callers never share
// pointers.
type MemoryStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]memoryEntry
	now   func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:   ttl,
		items: make(map[string]memoryEntry),
		now:   time.Now,
	}
}

func (m *MemoryStore) Load(_ context.Context, id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.items[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if !entry.expires.IsZero() && m.now().After(entry.expires) {
		delete(m.items, id)
		return nil, ErrSessionNotFound
	}

	var s Session
	if err := json.Unmarshal(entry.data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (m *MemoryStore) Save(_ context.Context, s *Session) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	entry := memoryEntry{data: b}
	if m.ttl > 0 {
		entry.expires = m.now().Add(m.ttl)
	}
	m.items[s.ID] = entry
	m.sweep()
	return nil
}

// sweep drops expired entries; caller holds mu.
func (m *MemoryStore) sweep() {
	now := m.now()
	for id, entry := range m.items {
		if !entry.expires.IsZero() && now.After(entry.expires) {
			delete(m.items, id)
		}
	}
}
