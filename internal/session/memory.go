package session

import (
	"context"
	"sync"

	"github.com/sells-group/pagechat/internal/model"
)

// MemoryStore keeps slots in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string]model.Slot
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string]model.Slot)}
}

func (m *MemoryStore) Get(_ context.Context, id string) (*model.Slot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	slot, ok := m.slots[id]
	if !ok {
		return nil, nil
	}
	return &slot, nil
}

func (m *MemoryStore) Set(_ context.Context, id string, slot *model.Slot) error {
	if slot == nil {
		return ErrNilSlot
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[id] = *slot
	return nil
}

func (m *MemoryStore) Clear(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, id)
	return nil
}

// Len reports how many sessions hold a slot.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.slots)
}

func (m *MemoryStore) Migrate(context.Context) error { return nil }

func (m *MemoryStore) Close() error { return nil }
