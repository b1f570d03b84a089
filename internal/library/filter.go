package library

import (
	"golang.org/x/text/cases"
)

// FilterResult carries the items matching a genre along with aggregate
// statistics over the scanned collection, used by confirmation prompts and
// scan summaries.
type FilterResult struct {
	Matched      []Item
	TotalCount   int
	MatchedCount int
	TotalSize    int64
	MatchedSize  int64
}

// FilterByGenre selects the items whose genre set contains genre under
// case-insensitive comparison. Input order is preserved; an item with an
// empty genre set never matches.
func FilterByGenre(items []Item, genre string) FilterResult {
	target := fold(genre)

	result := FilterResult{
		Matched:    make([]Item, 0, len(items)),
		TotalCount: len(items),
	}
	for _, item := range items {
		result.TotalSize += item.SizeOnDisk
		for _, g := range item.Genres {
			if fold(g) == target {
				result.Matched = append(result.Matched, item)
				result.MatchedCount++
				result.MatchedSize += item.SizeOnDisk
				break
			}
		}
	}
	return result
}

// fold normalizes a string for case-insensitive comparison. cases.Caser is
// stateful, so a fresh one is made per call.
func fold(value string) string {
	return cases.Fold().String(value)
}
