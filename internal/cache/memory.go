package cache

import (
	"context"
	"sync"

	"covid-screening-bot/internal/model"
)

// memoryLabelStore is an in-process LabelStore for tests and for running
// without Redis. Records never expire on their own; Clear is the only
// eviction.
type memoryLabelStore struct {
	mu   sync.Mutex
	sets map[string]model.LabelSet
}

// NewMemoryLabelStore returns an in-memory LabelStore.
func NewMemoryLabelStore() LabelStore {
	return &memoryLabelStore{sets: make(map[string]model.LabelSet)}
}

func (s *memoryLabelStore) Labels(_ context.Context, session string) (model.LabelSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := model.NewLabelSet()
	set.Add(s.sets[session].Sorted()...)
	return set, nil
}

func (s *memoryLabelStore) AddLabels(_ context.Context, session string, labels ...model.Label) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.sets[session]
	if !ok {
		set = model.NewLabelSet()
		s.sets[session] = set
	}
	set.Add(labels...)
	return nil
}

func (s *memoryLabelStore) Clear(_ context.Context, session string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sets, session)
	return nil
}
