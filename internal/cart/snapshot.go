package cart

import (
	"context"
	"sync"
)

// DefaultSnapshotKey is the storage key the cart is persisted under.
const DefaultSnapshotKey = "musicMerchantCart"

// Snapshotter is a durable single-key store for the serialized cart. Load
// returns nil data and no error when nothing has been saved yet.
type Snapshotter interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// MemorySnapshot keeps the snapshot in process memory.
type MemorySnapshot struct {
	mu   sync.Mutex
	data []byte
}

func NewMemorySnapshot() *MemorySnapshot {
	return &MemorySnapshot{}
}

func (m *MemorySnapshot) Load(context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, nil
	}
	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out, nil
}

func (m *MemorySnapshot) Save(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
	return nil
}
