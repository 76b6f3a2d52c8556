package kvstore

import "sync"

type memoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemory returns a volatile in-memory store, used in tests as a
// persistence fake
func NewMemory() Store {
	return &memoryStore{records: make(map[string][]byte)}
}

func (s *memoryStore) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.records[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

func (s *memoryStore) Put(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	s.records[key] = stored
	return nil
}

func (s *memoryStore) Close() error {
	return nil
}
