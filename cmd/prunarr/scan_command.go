package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"prunarr/internal/keeplist"
	"prunarr/internal/library"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var genre string
	var verbose bool
	var interactive bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List movies matching a genre",
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

			fmt.Fprintf(out, "Movies with genre %s:\n", genre)
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Title", "Year", "Size", "Genres", "Kept"},
				numberedMovieRows(result.Matched, keep.IsKept),
				0, 3,
			))

			keptCount := 0
			for _, item := range result.Matched {
				if keep.IsKept(item.ID) {
					keptCount++
				}
			}
			if keptCount > 0 {
				fmt.Fprintf(out, "%d of these movies are in the keep list\n", keptCount)
			}

			if interactive {
				if err := interactiveKeepSelection(cmd, result.Matched, keep); err != nil {
					return err
				}
			}

			fmt.Fprintf(out, "\nFound %d %s movies out of %d total\n", result.MatchedCount, genre, result.TotalCount)
			fmt.Fprintf(out, "%s movies use %s of %s total storage\n", genre, formatSize(result.MatchedSize), formatSize(result.TotalSize))
			return nil
		},
	}

	cmd.Flags().StringVarP(&genre, "genre", "g", "", "Genre to filter (defaults to filter.genre from config)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed output")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Select movies to add to the keep list")

	return cmd
}

// numberedMovieRows prefixes each table row with its 1-based entry number so
// interactive selection can refer to rows by number.
func numberedMovieRows(items []library.Item, isKept func(int64) bool) [][]string {
	rows := movieRows(items, isKept)
	for i := range rows {
		rows[i] = append([]string{fmt.Sprintf("%d", i+1)}, rows[i]...)
	}
	return rows
}

func interactiveKeepSelection(cmd *cobra.Command, items []library.Item, keep *keeplist.Store) error {
	out := cmd.OutOrStdout()
	in := cmd.InOrStdin()

	if in == os.Stdin && !stdinIsTerminal() {
		return errors.New("interactive selection requires a terminal")
	}

	fmt.Fprint(out, "Enter entry numbers to add to the keep list (e.g. 1,3-5), or press Enter to skip: ")
	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && strings.TrimSpace(line) == "" {
		return nil
	}

	indexes, err := parseSelection(line, len(items))
	if err != nil {
		return err
	}
	if len(indexes) == 0 {
		fmt.Fprintln(out, "No movies selected")
		return nil
	}

	addedCount := 0
	for _, idx := range indexes {
		item := items[idx]
		_, added, err := keep.Add(item.ID, item.Title)
		if err != nil {
			return err
		}
		if added {
			fmt.Fprintf(out, "Added to keep list: %s\n", item.Title)
			addedCount++
		} else {
			fmt.Fprintf(out, "Already in keep list: %s\n", item.Title)
		}
	}
	fmt.Fprintf(out, "Added %d movies to keep list\n", addedCount)
	return nil
}
