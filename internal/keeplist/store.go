package keeplist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/text/cases"

	"prunarr/internal/library"
	"prunarr/internal/logging"
)

// Version is the current schema tag written to the document.
const Version = 1

// ErrMalformed marks a keep-list file whose content could not be parsed.
// The store never repairs or resets such a file on its own.
var ErrMalformed = errors.New("keep list file is malformed")

// Entry is one protected movie. AddedAt is set once at creation and never
// mutated; the stored title is the canonical title reported by Radarr.
type Entry struct {
	ID      int64     `json:"id"`
	Title   string    `json:"title"`
	AddedAt time.Time `json:"added_at"`
}

type document struct {
	Version int     `json:"version"`
	Movies  []Entry `json:"movies"`
}

// Store provides durable access to the keep list. Entries are held in
// insertion order and every mutation is persisted immediately with an
// atomic whole-document rewrite. The store assumes a single process per
// backing file; there is no cross-process locking.
type Store struct {
	path    string
	logger  *slog.Logger
	now     func() time.Time
	entries []Entry
}

// Option customizes the store.
type Option func(*Store)

// WithClock overrides the timestamp source (useful for tests).
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// Open loads the keep list at path. A missing file yields an empty list;
// unparseable content fails with an error wrapping ErrMalformed.
func Open(path string, logger *slog.Logger, opts ...Option) (*Store, error) {
	store := &Store{
		path:   path,
		logger: logging.NewComponentLogger(logger, "keeplist"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(store)
	}
	if err := store.load(); err != nil {
		return nil, err
	}
	return store, nil
}

// Add appends a new entry with the current UTC timestamp and persists. When
// the id is already present it reports added=false and leaves the stored
// entry, including its title, untouched.
func (s *Store) Add(id int64, title string) (Entry, bool, error) {
	for _, entry := range s.entries {
		if entry.ID == id {
			return entry, false, nil
		}
	}

	entry := Entry{ID: id, Title: title, AddedAt: s.now().UTC()}
	s.entries = append(s.entries, entry)
	if err := s.save(); err != nil {
		return Entry{}, false, err
	}

	s.logger.Debug("added keep list entry",
		logging.Int64("id", id),
		logging.String("title", title))
	return entry, true, nil
}

// RemoveByID deletes the entry with the given id and persists. It reports
// whether an entry was removed.
func (s *Store) RemoveByID(id int64) (bool, error) {
	return s.remove(func(e Entry) bool { return e.ID == id })
}

// RemoveByTitle deletes entries whose title equals the given title under
// case-insensitive comparison. Matching is always exact, never substring, so
// removing "Saw" cannot touch "Saw II".
func (s *Store) RemoveByTitle(title string) (bool, error) {
	folded := foldTitle(title)
	return s.remove(func(e Entry) bool { return foldTitle(e.Title) == folded })
}

func (s *Store) remove(match func(Entry) bool) (bool, error) {
	kept := s.entries[:0:0]
	for _, entry := range s.entries {
		if !match(entry) {
			kept = append(kept, entry)
		}
	}
	if len(kept) == len(s.entries) {
		return false, nil
	}
	s.entries = kept
	if err := s.save(); err != nil {
		return false, err
	}
	return true, nil
}

// Entries returns all entries in insertion order.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Clear removes every entry and persists. Clearing an empty list is a no-op
// that still rewrites the file.
func (s *Store) Clear() error {
	s.entries = nil
	if err := s.save(); err != nil {
		return err
	}
	s.logger.Debug("cleared keep list")
	return nil
}

// IsKept reports whether the given id is protected.
func (s *Store) IsKept(id int64) bool {
	for _, entry := range s.entries {
		if entry.ID == id {
			return true
		}
	}
	return false
}

// IsKeptTitle reports whether a title is protected, using the same
// case-insensitive exact matching as RemoveByTitle.
func (s *Store) IsKeptTitle(title string) bool {
	folded := foldTitle(title)
	for _, entry := range s.entries {
		if foldTitle(entry.Title) == folded {
			return true
		}
	}
	return false
}

// FilterKept returns the subset of items whose id is not in the keep list,
// preserving input order. These are the items allowed to proceed to deletion.
func (s *Store) FilterKept(items []library.Item) []library.Item {
	if len(s.entries) == 0 {
		return items
	}
	keptIDs := make(map[int64]struct{}, len(s.entries))
	for _, entry := range s.entries {
		keptIDs[entry.ID] = struct{}{}
	}
	out := make([]library.Item, 0, len(items))
	for _, item := range items {
		if _, kept := keptIDs[item.ID]; !kept {
			out = append(out, item)
		}
	}
	return out
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil // fresh start
		}
		return fmt.Errorf("read keep list: %w", err)
	}

	if len(data) == 0 {
		return nil
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformed, s.path, err)
	}
	s.entries = doc.Movies

	s.logger.Debug("loaded keep list",
		logging.Int("entry_count", len(s.entries)),
		logging.String("path", s.path))
	return nil
}

// save writes the whole document atomically via a temp file and rename so a
// reader never observes a truncated list.
func (s *Store) save() error {
	doc := document{Version: Version, Movies: s.entries}
	if doc.Movies == nil {
		doc.Movies = []Entry{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal keep list: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create keep list directory: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// foldTitle normalizes a title for comparison. A fresh caser per call since
// cases.Caser is not safe for shared use.
func foldTitle(title string) string {
	return cases.Fold().String(title)
}
