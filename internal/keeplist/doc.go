// Package keeplist persists the set of movies protected from deletion.
//
// The list is a small JSON document:
//
//	{
//	  "version": 1,
//	  "movies": [
//	    {"id": 42, "title": "The Exorcist", "added_at": "2026-08-30T12:00:00Z"}
//	  ]
//	}
//
// The movie id is authoritative for identity; the title is stored for
// display and as a secondary lookup key with case-insensitive exact
// matching. The whole document is rewritten atomically after every
// mutation. A malformed file is surfaced as an error rather than silently
// reset, since truncating a user's list is worse than stopping.
package keeplist
