package repositories

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// MemoryBlobStore - хранилище в памяти для локальной разработки и тестов.
// При ненулевых latencyMin/latencyMax каждая операция засыпает на случайное
// время из диапазона - имитация сетевой задержки настоящего хранилища.
type MemoryBlobStore struct {
	mu         sync.Mutex
	data       map[string][]byte
	latencyMin time.Duration
	latencyMax time.Duration
}

func NewMemoryBlobStore(latencyMin, latencyMax time.Duration) *MemoryBlobStore {
	return &MemoryBlobStore{
		data:       make(map[string][]byte),
		latencyMin: latencyMin,
		latencyMax: latencyMax,
	}
}

func (s *MemoryBlobStore) simulateLatency(ctx context.Context) error {
	if s.latencyMax <= 0 {
		return nil
	}
	d := s.latencyMin
	if s.latencyMax > s.latencyMin {
		d += time.Duration(rand.Int63n(int64(s.latencyMax - s.latencyMin)))
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *MemoryBlobStore) Get(ctx context.Context, collection string) ([]byte, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if stored, ok := s.data[collection]; ok {
		out := make([]byte, len(stored))
		copy(out, stored)
		return out, nil
	}

	seed, err := seedData(collection)
	if err != nil {
		return nil, err
	}
	s.data[collection] = seed
	out := make([]byte, len(seed))
	copy(out, seed)
	return out, nil
}

func (s *MemoryBlobStore) Set(ctx context.Context, collection string, data []byte) error {
	if err := s.simulateLatency(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.data[collection] = stored
	return nil
}
