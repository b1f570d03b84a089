package keeplist

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"prunarr/internal/library"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keep-list.json")
	store, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return store
}

func TestOpenMissingFileYieldsEmptyList(t *testing.T) {
	store := testStore(t)
	if store.Len() != 0 {
		t.Errorf("expected empty list, got %d entries", store.Len())
	}
}

func TestOpenMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keep-list.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	_, err := Open(path, nil)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestAddPersistsAndRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keep-list.json")
	store, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if _, added, err := store.Add(1, "Saw"); err != nil || !added {
		t.Fatalf("Add failed: added=%v err=%v", added, err)
	}
	if _, added, err := store.Add(2, "The Exorcist"); err != nil || !added {
		t.Fatalf("Add failed: added=%v err=%v", added, err)
	}

	reopened, err := Open(path, nil)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	entries := reopened.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries after reload, got %d", len(entries))
	}
	if entries[0].ID != 1 || entries[1].ID != 2 {
		t.Errorf("insertion order lost: %+v", entries)
	}
	if entries[0].AddedAt.IsZero() {
		t.Error("added_at should be set")
	}
	if entries[0].AddedAt.Location() != time.UTC {
		t.Errorf("added_at should be UTC, got %v", entries[0].AddedAt.Location())
	}
}

func TestAddDuplicateIsNoOp(t *testing.T) {
	store := testStore(t)

	if _, added, err := store.Add(1, "Saw"); err != nil || !added {
		t.Fatalf("first Add failed: added=%v err=%v", added, err)
	}
	existing, added, err := store.Add(1, "Different Title")
	if err != nil {
		t.Fatalf("second Add failed: %v", err)
	}
	if added {
		t.Error("duplicate id should report already present")
	}
	if existing.Title != "Saw" {
		t.Errorf("stored title must not be overwritten: %q", existing.Title)
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", store.Len())
	}
}

func TestRemoveByID(t *testing.T) {
	store := testStore(t)
	store.Add(1, "Saw")
	store.Add(2, "Elf")

	removed, err := store.RemoveByID(1)
	if err != nil {
		t.Fatalf("RemoveByID failed: %v", err)
	}
	if !removed {
		t.Fatal("expected entry to be removed")
	}
	if store.IsKept(1) {
		t.Error("id 1 should no longer be kept")
	}

	removed, err = store.RemoveByID(99)
	if err != nil {
		t.Fatalf("RemoveByID failed: %v", err)
	}
	if removed {
		t.Error("removing an absent id should report not found")
	}
}

func TestRemoveByTitleExactCaseInsensitive(t *testing.T) {
	for _, title := range []string{"The Exorcist", "THE EXORCIST", "the exorcist"} {
		store := testStore(t)
		store.Add(1, "The Exorcist")
		store.Add(2, "The Exorcist Part II")

		removed, err := store.RemoveByTitle(title)
		if err != nil {
			t.Fatalf("RemoveByTitle(%q) failed: %v", title, err)
		}
		if !removed {
			t.Errorf("RemoveByTitle(%q) should match", title)
		}
		if !store.IsKept(2) {
			t.Errorf("RemoveByTitle(%q) must not touch %q", title, "The Exorcist Part II")
		}
	}
}

func TestRemoveByTitleNeverMatchesSubstring(t *testing.T) {
	store := testStore(t)
	store.Add(1, "The Exorcist")

	removed, err := store.RemoveByTitle("Exorcist")
	if err != nil {
		t.Fatalf("RemoveByTitle failed: %v", err)
	}
	if removed {
		t.Error("substring must not match")
	}
	if !store.IsKept(1) {
		t.Error("entry should still be present")
	}
}

func TestIsKeptTitle(t *testing.T) {
	store := testStore(t)
	store.Add(1, "Saw")

	if !store.IsKeptTitle("saw") {
		t.Error("case-insensitive title lookup should match")
	}
	if store.IsKeptTitle("Saw II") {
		t.Error("different title must not match")
	}
}

func TestClearIsIdempotent(t *testing.T) {
	store := testStore(t)
	store.Add(1, "Saw")

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("expected empty list, got %d", store.Len())
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear failed: %v", err)
	}
}

func TestFilterKept(t *testing.T) {
	store := testStore(t)
	store.Add(1, "Saw")

	items := []library.Item{
		{ID: 1, Title: "Saw"},
		{ID: 2, Title: "Hostel"},
	}
	remaining := store.FilterKept(items)
	if len(remaining) != 1 || remaining[0].ID != 2 {
		t.Errorf("expected only id 2 to remain, got %+v", remaining)
	}
}

func TestFilterKeptEmptyListIsNoOp(t *testing.T) {
	store := testStore(t)
	items := []library.Item{{ID: 1}, {ID: 2}}

	remaining := store.FilterKept(items)
	if len(remaining) != len(items) {
		t.Fatalf("empty keep list must not filter anything: %+v", remaining)
	}
}

func TestDocumentShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keep-list.json")
	fixed := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	store, err := Open(path, nil, WithClock(func() time.Time { return fixed }))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	store.Add(42, "The Exorcist")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}

	var doc struct {
		Version int `json:"version"`
		Movies  []struct {
			ID      int64  `json:"id"`
			Title   string `json:"title"`
			AddedAt string `json:"added_at"`
		} `json:"movies"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("parse document: %v", err)
	}
	if doc.Version != 1 {
		t.Errorf("version tag mismatch: %d", doc.Version)
	}
	if len(doc.Movies) != 1 || doc.Movies[0].ID != 42 {
		t.Fatalf("unexpected movies: %+v", doc.Movies)
	}
	if doc.Movies[0].AddedAt != "2026-08-30T12:00:00Z" {
		t.Errorf("added_at should be RFC3339 UTC: %q", doc.Movies[0].AddedAt)
	}
}
