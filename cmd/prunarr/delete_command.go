package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"prunarr/internal/deleter"
	"prunarr/internal/library"
)

func newDeleteCommand(ctx *commandContext) *cobra.Command {
	var genre string
	var execute bool
	var keepFiles bool
	var yes bool
	var ignoreKeepList bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete movies matching a genre (dry run unless --execute)",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if genre == "" {
				genre = cfg.Filter.Genre
			}

			client, err := ctx.radarrClient()
			if err != nil {
				return err
			}
			status, err := client.TestConnection(cmd.Context())
			if err != nil {
				return err
			}
			if verbose {
				fmt.Fprintf(out, "Connected to Radarr version %s\n", status.Version)
			}

			items, err := library.NewScanner(client, ctx.ensureLogger()).Scan(cmd.Context())
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Fprintln(out, "No movies found in library")
				return nil
			}

			result := library.FilterByGenre(items, genre)
			if result.MatchedCount == 0 {
				fmt.Fprintf(out, "No %s movies found\n", genre)
				return nil
			}

			keep, err := ctx.openKeepList()
			if err != nil {
				return err
			}

			candidates := result.Matched
			if !ignoreKeepList {
				candidates = keep.FilterKept(result.Matched)
				keptCount := len(result.Matched) - len(candidates)
				if keptCount > 0 {
					fmt.Fprintf(out, "Protected by keep list: %d movies\n", keptCount)
				}
				if len(candidates) == 0 {
					fmt.Fprintf(out, "No %s movies to delete (all are in the keep list)\n", genre)
					return nil
				}
			}

			var candidateSize int64
			for _, item := range candidates {
				candidateSize += item.SizeOnDisk
			}

			fmt.Fprintf(out, "Movies to be deleted (genre: %s):\n", genre)
			fmt.Fprintln(out, renderTable(
				[]string{"Title", "Year", "Size", "Genres"},
				movieRows(candidates, nil),
				2,
			))

			dryRun := !execute
			if dryRun {
				fmt.Fprintln(out, "Dry run: no deletions will be performed. Re-run with --execute to delete.")
			} else if !yes {
				if !stdinIsTerminal() {
					return errors.New("confirmation requires a terminal; pass --yes to proceed")
				}
				var prompt string
				if keepFiles {
					prompt = fmt.Sprintf("Remove %d movies (%s) from Radarr, keeping files on disk. Continue?",
						len(candidates), formatSize(candidateSize))
				} else {
					prompt = fmt.Sprintf("PERMANENTLY delete %d movies (%s) including files on disk. Continue?",
						len(candidates), formatSize(candidateSize))
				}
				if !confirm(cmd.InOrStdin(), out, prompt) {
					fmt.Fprintln(out, "Operation cancelled")
					return nil
				}
			}

			// The orchestrator re-partitions the full matched set so kept
			// titles are accounted for as skipped in the outcome.
			d := deleter.New(client, keep, ctx.ensureLogger())
			outcome := d.Delete(cmd.Context(), result.Matched, deleter.Options{
				KeepFiles:      keepFiles,
				DryRun:         dryRun,
				IgnoreKeepList: ignoreKeepList,
			})

			printOutcome(cmd, outcome, dryRun, keepFiles, verbose)
			if len(outcome.Failed) > 0 {
				return fmt.Errorf("%d movies failed to delete", len(outcome.Failed))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&genre, "genre", "g", "", "Genre to filter (defaults to filter.genre from config)")
	cmd.Flags().BoolVar(&execute, "execute", false, "Actually perform deletions (default: dry run)")
	cmd.Flags().BoolVar(&keepFiles, "keep-files", false, "Keep files on disk, only remove from Radarr")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVar(&ignoreKeepList, "ignore-keep-list", false, "Include movies protected by the keep list")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed output")

	return cmd
}

func printOutcome(cmd *cobra.Command, outcome deleter.Outcome, dryRun, keepFiles, verbose bool) {
	out := cmd.OutOrStdout()

	action := "Deleted"
	switch {
	case dryRun:
		action = "Would delete"
	case keepFiles:
		action = "Removed from library"
	}

	fmt.Fprintf(out, "\n%s: %d movies\n", action, len(outcome.Deleted))
	if len(outcome.Skipped) > 0 {
		fmt.Fprintf(out, "Skipped (keep list): %d movies\n", len(outcome.Skipped))
		if verbose {
			for _, title := range outcome.Skipped {
				fmt.Fprintf(out, "  - %s\n", title)
			}
		}
	}
	if len(outcome.Failed) > 0 {
		fmt.Fprintf(out, "Failed: %d movies\n", len(outcome.Failed))
		for _, title := range outcome.Failed {
			fmt.Fprintf(out, "  - %s\n", title)
		}
	}
}
