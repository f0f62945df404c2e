// SPDX-License-Identifier: MIT

package storage

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps encoded runs in a map; records round-trip through the
// codec so callers never share slices with the store.
type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	runs        map[string][]byte
}

// NewMemoryStore returns an uninitialised store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Init resets the store.
func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.runs = make(map[string][]byte)

	return nil
}

// SaveRun inserts or replaces run.
func (s *MemoryStore) SaveRun(_ context.Context, run Run) error {
	if run.ID == "" {
		return ErrMissingID
	}
	payload, err := EncodeRun(run)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return ErrNotInitialized
	}
	s.runs[run.ID] = payload

	return nil
}

// GetRun returns the run with id, if present.
func (s *MemoryStore) GetRun(_ context.Context, id string) (Run, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.initialized {
		return Run{}, false, ErrNotInitialized
	}

	payload, ok := s.runs[id]
	if !ok {
		return Run{}, false, nil
	}
	run, err := DecodeRun(payload)
	if err != nil {
		return Run{}, false, err
	}

	return run, true, nil
}

// ListRuns returns every run ordered by creation time, then id.
func (s *MemoryStore) ListRuns(_ context.Context) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.initialized {
		return nil, ErrNotInitialized
	}

	out := make([]Run, 0, len(s.runs))
	for _, payload := range s.runs {
		run, err := DecodeRun(payload)
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}
