// Package progress tracks the learner's solved and bookmarked problems.
// State is held in memory behind a mutex and persisted as a JSON file so
// it survives restarts.
package progress

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Store is a thread-safe solved/bookmark registry backed by a JSON file.
type Store struct {
	mu         sync.Mutex
	path       string
	solved     map[string]bool
	bookmarked map[string]bool
}

type fileState struct {
	Solved     []string `json:"solved"`
	Bookmarked []string `json:"bookmarked"`
}

// Open loads the store at path, creating an empty one if the file does
// not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{
		path:       path,
		solved:     make(map[string]bool),
		bookmarked: make(map[string]bool),
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read progress file: %w", err)
	}
	var st fileState
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parse progress file %s: %w", path, err)
	}
	for _, id := range st.Solved {
		s.solved[id] = true
	}
	for _, id := range st.Bookmarked {
		s.bookmarked[id] = true
	}
	return s, nil
}

// Solved reports whether a problem is marked solved.
func (s *Store) Solved(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.solved[id]
}

// Bookmarked reports whether a problem is bookmarked.
func (s *Store) Bookmarked(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookmarked[id]
}

// SetSolved marks or unmarks a problem as solved and persists.
func (s *Store) SetSolved(id string, v bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	setMark(s.solved, id, v)
	return s.saveLocked()
}

// SetBookmarked marks or unmarks a bookmark and persists.
func (s *Store) SetBookmarked(id string, v bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	setMark(s.bookmarked, id, v)
	return s.saveLocked()
}

func setMark(m map[string]bool, id string, v bool) {
	if v {
		m[id] = true
	} else {
		delete(m, id)
	}
}

// Summary is a snapshot of progress counts.
type Summary struct {
	SolvedCount     int      `json:"solved_count"`
	BookmarkedCount int      `json:"bookmarked_count"`
	Solved          []string `json:"solved"`
	Bookmarked      []string `json:"bookmarked"`
}

// Snapshot returns the current progress state with stable ordering.
func (s *Store) Snapshot() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Summary{
		SolvedCount:     len(s.solved),
		BookmarkedCount: len(s.bookmarked),
		Solved:          sortedKeys(s.solved),
		Bookmarked:      sortedKeys(s.bookmarked),
	}
}

// saveLocked writes the state file. Caller holds the mutex. Writes go to
// a temp file first so a crash mid-write cannot corrupt the store.
func (s *Store) saveLocked() error {
	st := fileState{
		Solved:     sortedKeys(s.solved),
		Bookmarked: sortedKeys(s.bookmarked),
	}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".progress-*.json")
	if err != nil {
		return fmt.Errorf("create temp progress file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write progress: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close progress file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace progress file: %w", err)
	}
	return nil
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
