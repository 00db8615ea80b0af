package postscript

import (
	"context"
	"fmt"
	"sync"
)

// StoreType selects the static-data backend.
type StoreType string

const (
	// StoreTypeMemory keeps static data in process memory.
	StoreTypeMemory StoreType = "memory"

	// StoreTypeNATS persists static data in a NATS JetStream KV bucket.
	StoreTypeNATS StoreType = "nats"
)

// StaticDataStore is the host-owned keyed persistence the webhook lifecycle
// depends on. The only value stored today is the remote webhook id per
// subscription key; absence is reported as ErrKeyNotFound.
type StaticDataStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// StaticDataConfig configures the static-data backend.
type StaticDataConfig struct {
	Type StoreType

	// NATS backend configuration, required when Type is StoreTypeNATS.
	NATS *NATSStoreConfig
}

// NewStaticDataStore creates a static-data store from configuration. A nil
// config yields an in-memory store.
func NewStaticDataStore(config *StaticDataConfig) (StaticDataStore, error) {
	if config == nil {
		return NewMemoryStaticData(), nil
	}

	switch config.Type {
	case StoreTypeMemory:
		return NewMemoryStaticData(), nil

	case StoreTypeNATS:
		if config.NATS == nil {
			return nil, ErrNATSConfigRequired
		}

		return NewNATSStaticData(config.NATS)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStoreType, config.Type)
	}
}

// MemoryStaticData is a StaticDataStore backed by a map, used when the host
// has no durable store and by tests.
type MemoryStaticData struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStaticData creates an empty in-memory store.
func NewMemoryStaticData() *MemoryStaticData {
	return &MemoryStaticData{data: map[string]string{}}
}

// Get implements StaticDataStore.
func (s *MemoryStaticData) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}

	return value, nil
}

// Set implements StaticDataStore.
func (s *MemoryStaticData) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value

	return nil
}

// Delete implements StaticDataStore.
func (s *MemoryStaticData) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)

	return nil
}
