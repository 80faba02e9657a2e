// Package history records replay outcomes so an operator can see what
// was re-issued and what came back. The store is a capped, newest-first
// JSON file; it is a convenience log, not part of the capture, and a
// broken history file never blocks a replay.
package history

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/harview/harview/internal/errdef"
)

const defaultMaxEntries = 200

// snippetLimit keeps stored response bodies small; the full body lives
// only in the replay result handed to the caller.
const snippetLimit = 512

// Entry is one recorded replay
type Entry struct {
	ID          string        `json:"id"`
	ExecutedAt  time.Time     `json:"executedAt"`
	Method      string        `json:"method"`
	URL         string        `json:"url"`
	StatusCode  int           `json:"statusCode"`
	StatusText  string        `json:"statusText,omitempty"`
	Duration    time.Duration `json:"duration"`
	BodySnippet string        `json:"bodySnippet,omitempty"`
	Error       string        `json:"error,omitempty"`
}

// NewEntry builds a history entry for a completed or failed replay
func NewEntry(method, url string, statusCode int, statusText string, duration time.Duration, body string, replayErr error) Entry {
	entry := Entry{
		ID:         uuid.NewString(),
		ExecutedAt: time.Now().UTC(),
		Method:     method,
		URL:        url,
		StatusCode: statusCode,
		StatusText: statusText,
		Duration:   duration,
	}
	if len(body) > snippetLimit {
		body = body[:snippetLimit]
	}
	entry.BodySnippet = body
	if replayErr != nil {
		entry.Error = replayErr.Error()
	}
	return entry
}

// Store persists replay history to a single JSON file
type Store struct {
	path       string
	maxEntries int
	entries    []Entry
	mu         sync.RWMutex
	loaded     bool
}

// NewStore creates a store backed by the given path. maxEntries <= 0
// selects the default cap.
func NewStore(path string, maxEntries int) *Store {
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	return &Store{path: path, maxEntries: maxEntries}
}

// Load reads the history file into memory. A missing file is an empty
// history, not an error.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureLoadedLocked()
}

// Append records a replay at the head of the history, trimming the
// oldest entries past the cap, and persists the result.
func (s *Store) Append(entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(); err != nil {
		return err
	}

	s.entries = append([]Entry{entry}, s.entries...)
	if len(s.entries) > s.maxEntries {
		s.entries = s.entries[:s.maxEntries]
	}
	return s.persistLocked()
}

// Entries returns a copy of the history, newest first
func (s *Store) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	copies := make([]Entry, len(s.entries))
	copy(copies, s.entries)
	return copies
}

// Delete removes the entry with the given id, reporting whether it existed
func (s *Store) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(); err != nil {
		return false, err
	}

	idx := -1
	for i, entry := range s.entries {
		if entry.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false, nil
	}

	copy(s.entries[idx:], s.entries[idx+1:])
	s.entries = s.entries[:len(s.entries)-1]

	if err := s.persistLocked(); err != nil {
		return false, err
	}
	return true, nil
}

// ByURL returns recorded replays of the given URL, newest first
func (s *Store) ByURL(url string) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if url == "" {
		return nil
	}
	var matched []Entry
	for _, entry := range s.entries {
		if entry.URL == url {
			matched = append(matched, entry)
		}
	}
	return matched
}

func (s *Store) ensureLoadedLocked() error {
	if s.loaded {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.loaded = true
		return nil
	}
	if err != nil {
		return errdef.Wrap(errdef.CodeFilesystem, err, "read history")
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return errdef.Wrap(errdef.CodeHistory, err, "parse history")
	}
	s.entries = entries
	s.loaded = true
	return nil
}

func (s *Store) persistLocked() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errdef.Wrap(errdef.CodeFilesystem, err, "create history dir")
	}

	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return errdef.Wrap(errdef.CodeHistory, err, "encode history")
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errdef.Wrap(errdef.CodeFilesystem, err, "write history tmp")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errdef.Wrap(errdef.CodeFilesystem, err, "replace history file")
	}
	return nil
}
