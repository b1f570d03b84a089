package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"prunarr/internal/library"
)

func newKeepCommand(ctx *commandContext) *cobra.Command {
	keepCmd := &cobra.Command{
		Use:   "keep",
		Short: "Manage the keep list of protected movies",
	}

	keepCmd.AddCommand(newKeepAddCommand(ctx))
	keepCmd.AddCommand(newKeepRemoveCommand(ctx))
	keepCmd.AddCommand(newKeepListCommand(ctx))
	keepCmd.AddCommand(newKeepClearCommand(ctx))

	return keepCmd
}

func newKeepAddCommand(ctx *commandContext) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "add [movie-id]",
		Short: "Protect a movie from deletion",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 && title == "" {
				return errors.New("provide a movie id or --title")
			}
			if len(args) > 0 && title != "" {
				return errors.New("provide either a movie id or --title, not both")
			}

			client, err := ctx.radarrClient()
			if err != nil {
				return err
			}
			items, err := library.NewScanner(client, ctx.ensureLogger()).Scan(cmd.Context())
			if err != nil {
				return err
			}

			var movie library.Item
			if len(args) > 0 {
				id, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid movie id %q", args[0])
				}
				found := false
				for _, item := range items {
					if item.ID == id {
						movie = item
						found = true
						break
					}
				}
				if !found {
					return fmt.Errorf("movie with id %d not found in Radarr", id)
				}
			} else {
				movie, err = findByTitle(items, title)
				if err != nil {
					return err
				}
			}

			keep, err := ctx.openKeepList()
			if err != nil {
				return err
			}
			entry, added, err := keep.Add(movie.ID, movie.Title)
			if err != nil {
				return err
			}
			if !added {
				fmt.Fprintf(out, "%q is already in the keep list\n", entry.Title)
				return nil
			}
			fmt.Fprintf(out, "Added to keep list: %s (id %d)\n", movie.Title, movie.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Movie title (exact match, case-insensitive)")
	return cmd
}

// findByTitle resolves a title against the library with exact
// case-insensitive matching. Zero matches and multiple matches are distinct
// errors; the ambiguous case lists the candidates so the operator can
// retry by id.
func findByTitle(items []library.Item, title string) (library.Item, error) {
	var matches []library.Item
	for _, item := range items {
		if strings.EqualFold(item.Title, title) {
			matches = append(matches, item)
		}
	}
	switch len(matches) {
	case 0:
		return library.Item{}, fmt.Errorf("no movie found with title %q", title)
	case 1:
		return matches[0], nil
	default:
		lines := make([]string, 0, len(matches))
		for _, m := range matches {
			lines = append(lines, fmt.Sprintf("  id %d: %s (%d)", m.ID, m.Title, m.Year))
		}
		return library.Item{}, fmt.Errorf("multiple movies found with title %q, use the movie id instead:\n%s",
			title, strings.Join(lines, "\n"))
	}
}

func newKeepRemoveCommand(ctx *commandContext) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "remove [movie-id]",
		Short: "Remove a movie from the keep list",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 && title == "" {
				return errors.New("provide a movie id or --title")
			}
			if len(args) > 0 && title != "" {
				return errors.New("provide either a movie id or --title, not both")
			}

			keep, err := ctx.openKeepList()
			if err != nil {
				return err
			}

			if len(args) > 0 {
				id, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid movie id %q", args[0])
				}
				removed, err := keep.RemoveByID(id)
				if err != nil {
					return err
				}
				if !removed {
					fmt.Fprintf(out, "Movie id %d was not in the keep list\n", id)
					return nil
				}
				fmt.Fprintf(out, "Removed movie id %d from keep list\n", id)
				return nil
			}

			removed, err := keep.RemoveByTitle(title)
			if err != nil {
				return err
			}
			if !removed {
				fmt.Fprintf(out, "%q was not in the keep list\n", title)
				return nil
			}
			fmt.Fprintf(out, "Removed %q from keep list\n", title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Movie title (exact match, case-insensitive)")
	return cmd
}

func newKeepListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all protected movies",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			keep, err := ctx.openKeepList()
			if err != nil {
				return err
			}
			entries := keep.Entries()
			if len(entries) == 0 {
				fmt.Fprintln(out, "Keep list is empty")
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				rows = append(rows, []string{
					strconv.FormatInt(entry.ID, 10),
					entry.Title,
					entry.AddedAt.Format("2006-01-02"),
				})
			}
			fmt.Fprintln(out, renderTable([]string{"ID", "Title", "Added"}, rows, 0))
			fmt.Fprintf(out, "%d movies in keep list\n", len(entries))
			return nil
		},
	}
}

func newKeepClearCommand(ctx *commandContext) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every entry from the keep list",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			keep, err := ctx.openKeepList()
			if err != nil {
				return err
			}
			count := keep.Len()
			if count == 0 {
				fmt.Fprintln(out, "Keep list is already empty")
				return nil
			}

			if !yes {
				if !stdinIsTerminal() {
					return errors.New("confirmation requires a terminal; pass --yes to proceed")
				}
				prompt := fmt.Sprintf("Clear %d movies from the keep list?", count)
				if !confirm(cmd.InOrStdin(), out, prompt) {
					fmt.Fprintln(out, "Operation cancelled")
					return nil
				}
			}

			if err := keep.Clear(); err != nil {
				return err
			}
			fmt.Fprintf(out, "Cleared %d movies from keep list\n", count)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
