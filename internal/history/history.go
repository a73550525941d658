// Package history persists a record of past generation runs in a JSON
// flat file. Persistence failures are non-fatal to generation; callers log
// and move on.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

const fileVersion = "1.0"

// Entry is one recorded generation run.
type Entry struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	OutputDir   string    `json:"output_dir"`
	Platforms   []string  `json:"platforms"`
	Categories  []string  `json:"categories"`
	AssetCount  int       `json:"asset_count"`
	ErrorCount  int       `json:"error_count"`
	Success     bool      `json:"success"`
	GeneratedAt time.Time `json:"generated_at"`
}

// historyFile is the on-disk JSON format.
type historyFile struct {
	Version string  `json:"version"`
	Entries []Entry `json:"entries"`
}

// Store manages history persistence.
type Store struct {
	path    string
	mu      sync.RWMutex
	version string
	entries []Entry
}

// NewStore creates a Store backed by path and loads any existing file.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:    path,
		version: fileVersion,
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	if err := s.load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		s.entries = []Entry{}
	}

	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var file historyFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse history: %w", err)
	}

	s.version = file.Version
	s.entries = file.Entries
	return nil
}

// Save writes the history to disk atomically.
func (s *Store) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file := historyFile{
		Version: s.version,
		Entries: s.entries,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temporary file: %w", err)
	}

	return nil
}

// Record appends a run to the history and assigns it an ID. The entry is
// returned with its ID and timestamp filled in.
func (s *Store) Record(entry Entry) Entry {
	entry.ID = uuid.NewString()
	if entry.GeneratedAt.IsZero() {
		entry.GeneratedAt = time.Now().UTC()
	}

	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()

	return entry
}

// List returns all entries, newest last. The slice is a copy.
func (s *Store) List() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Get retrieves an entry by ID.
func (s *Store) Get(id string) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("history entry not found: %s", id)
}

// Remove deletes an entry by ID.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("history entry not found: %s", id)
}
