package pipeline

import (
	"path/filepath"
	"sync"
)

// ProcessedSet remembers paths that were already handed over for processing.
type ProcessedSet struct {
	mu    sync.Mutex
	paths map[string]struct{}
}

func NewProcessedSet() *ProcessedSet {
	return &ProcessedSet{
		paths: make(map[string]struct{}),
	}
}

// TestAndSet marks path as processed and reports whether it was unmarked
// before the call. Only the first caller for a path gets true.
func (s *ProcessedSet) TestAndSet(path string) bool {
	path = filepath.Clean(path)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.paths[path]; ok {
		return false
	}

	s.paths[path] = struct{}{}

	return true
}

func (s *ProcessedSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.paths)
}
