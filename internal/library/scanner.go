package library

import (
	"context"
	"log/slog"

	"prunarr/internal/logging"
	"prunarr/internal/radarr"
)

// MovieLister describes the part of the Radarr client the scanner uses.
type MovieLister interface {
	ListMovies(ctx context.Context) ([]radarr.Movie, error)
}

// Scanner fetches the full movie collection and normalizes it.
type Scanner struct {
	client MovieLister
	logger *slog.Logger
}

// NewScanner constructs a scanner over the given client.
func NewScanner(client MovieLister, logger *slog.Logger) *Scanner {
	return &Scanner{
		client: client,
		logger: logging.NewComponentLogger(logger, "scanner"),
	}
}

// Scan lists every movie and maps it into an Item. An empty library yields
// an empty slice, not an error; API failures propagate unchanged.
func (s *Scanner) Scan(ctx context.Context) ([]Item, error) {
	movies, err := s.client.ListMovies(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(movies))
	for _, movie := range movies {
		genres := movie.Genres
		if genres == nil {
			genres = []string{}
		}
		items = append(items, Item{
			ID:         movie.ID,
			Title:      movie.Title,
			Year:       movie.Year,
			Genres:     genres,
			HasFile:    movie.HasFile,
			SizeOnDisk: movie.SizeOnDisk,
		})
	}

	s.logger.Debug("scanned library", logging.Int("movie_count", len(items)))
	return items, nil
}
