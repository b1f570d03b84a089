package library

import (
	"testing"
)

func sampleItems() []Item {
	return []Item{
		{ID: 1, Title: "Saw", Genres: []string{"Horror", "Thriller"}, SizeOnDisk: 2_000_000_000},
		{ID: 2, Title: "Elf", Genres: []string{"Comedy"}, SizeOnDisk: 500_000_000},
	}
}

func TestFilterByGenre(t *testing.T) {
	result := FilterByGenre(sampleItems(), "Horror")

	if result.MatchedCount != 1 {
		t.Fatalf("expected 1 match, got %d", result.MatchedCount)
	}
	if result.Matched[0].ID != 1 {
		t.Errorf("expected Saw to match, got %+v", result.Matched[0])
	}
	if result.TotalCount != 2 {
		t.Errorf("total count mismatch: %d", result.TotalCount)
	}
	if result.MatchedSize != 2_000_000_000 {
		t.Errorf("matched size mismatch: %d", result.MatchedSize)
	}
	if result.TotalSize != 2_500_000_000 {
		t.Errorf("total size mismatch: %d", result.TotalSize)
	}
}

func TestFilterByGenreCaseInsensitive(t *testing.T) {
	for _, genre := range []string{"horror", "HORROR", "hOrRoR"} {
		result := FilterByGenre(sampleItems(), genre)
		if result.MatchedCount != 1 {
			t.Errorf("genre %q: expected 1 match, got %d", genre, result.MatchedCount)
		}
	}
}

func TestFilterByGenrePreservesOrder(t *testing.T) {
	items := []Item{
		{ID: 3, Title: "Alien", Genres: []string{"Horror"}},
		{ID: 1, Title: "Saw", Genres: []string{"Horror"}},
		{ID: 2, Title: "Scream", Genres: []string{"Horror"}},
	}
	result := FilterByGenre(items, "Horror")

	wantOrder := []int64{3, 1, 2}
	if len(result.Matched) != len(wantOrder) {
		t.Fatalf("expected %d matches, got %d", len(wantOrder), len(result.Matched))
	}
	for i, id := range wantOrder {
		if result.Matched[i].ID != id {
			t.Errorf("position %d: got id %d, want %d", i, result.Matched[i].ID, id)
		}
	}
}

func TestFilterByGenreEmptyGenresNeverMatch(t *testing.T) {
	items := []Item{
		{ID: 1, Title: "Mystery Box", Genres: nil},
		{ID: 2, Title: "Blank", Genres: []string{}},
	}
	result := FilterByGenre(items, "Horror")
	if result.MatchedCount != 0 {
		t.Errorf("items without genres must not match, got %d", result.MatchedCount)
	}
}

func TestFilterByGenreEmptyInput(t *testing.T) {
	result := FilterByGenre(nil, "Horror")
	if result.MatchedCount != 0 || result.TotalCount != 0 {
		t.Errorf("empty input should yield empty result: %+v", result)
	}
	if result.TotalSize != 0 || result.MatchedSize != 0 {
		t.Errorf("empty input should have zero sizes: %+v", result)
	}
	if len(result.Matched) != 0 {
		t.Errorf("expected empty matched slice, got %v", result.Matched)
	}
}
