package deleter

import (
	"context"
	"log/slog"

	"prunarr/internal/library"
	"prunarr/internal/logging"
)

// MovieDeleter describes the part of the Radarr client the orchestrator uses.
type MovieDeleter interface {
	DeleteMovie(ctx context.Context, id int64, deleteFiles, addExclusion bool) error
}

// KeepChecker reports whether a movie id is protected by the keep list.
type KeepChecker interface {
	IsKept(id int64) bool
}

// Options controls one deletion batch.
type Options struct {
	// KeepFiles leaves files on disk; the API call's deleteFiles flag is
	// always derived as !KeepFiles here and nowhere else.
	KeepFiles bool
	// DryRun computes the outcome without issuing any API calls.
	DryRun bool
	// IgnoreKeepList processes kept movies like any other.
	IgnoreKeepList bool
}

// Outcome partitions the input items of one batch: every input title lands
// in exactly one of the three lists.
type Outcome struct {
	Deleted []string
	Failed  []string
	Skipped []string
}

// Deleter turns a candidate item set into a deletion batch with per-item
// accounting.
type Deleter struct {
	client MovieDeleter
	keep   KeepChecker
	logger *slog.Logger
}

// New constructs a Deleter. keep may be nil when no keep list is in play.
func New(client MovieDeleter, keep KeepChecker, logger *slog.Logger) *Deleter {
	return &Deleter{
		client: client,
		keep:   keep,
		logger: logging.NewComponentLogger(logger, "deleter"),
	}
}

// Delete processes items strictly in input order. Kept movies are skipped
// without any API call in every mode. In a dry run the eligible titles are
// reported as Deleted to preview the batch. In a real run each eligible
// movie is deleted with an import exclusion added unconditionally, so a
// removed title is not re-imported by subscribed lists regardless of whether
// its files were kept. One movie's failure never aborts the batch.
func (d *Deleter) Delete(ctx context.Context, items []library.Item, opts Options) Outcome {
	outcome := Outcome{
		Deleted: []string{},
		Failed:  []string{},
		Skipped: []string{},
	}

	deleteFiles := !opts.KeepFiles

	for _, item := range items {
		if !opts.IgnoreKeepList && d.keep != nil && d.keep.IsKept(item.ID) {
			outcome.Skipped = append(outcome.Skipped, item.Title)
			continue
		}

		if opts.DryRun {
			d.logger.Info("would delete movie",
				logging.Int64("id", item.ID),
				logging.String("title", item.Title),
				logging.Bool("delete_files", deleteFiles))
			outcome.Deleted = append(outcome.Deleted, item.Title)
			continue
		}

		if err := d.client.DeleteMovie(ctx, item.ID, deleteFiles, true); err != nil {
			d.logger.Warn("failed to delete movie",
				logging.Int64("id", item.ID),
				logging.String("title", item.Title),
				logging.Error(err))
			outcome.Failed = append(outcome.Failed, item.Title)
			continue
		}

		d.logger.Info("deleted movie",
			logging.Int64("id", item.ID),
			logging.String("title", item.Title),
			logging.Bool("delete_files", deleteFiles))
		outcome.Deleted = append(outcome.Deleted, item.Title)
	}

	return outcome
}
