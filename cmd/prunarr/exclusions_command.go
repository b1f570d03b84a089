package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newExclusionsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "exclusions",
		Short: "List Radarr import exclusions",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			client, err := ctx.radarrClient()
			if err != nil {
				return err
			}
			exclusions, err := client.ListExclusions(cmd.Context())
			if err != nil {
				return err
			}
			if len(exclusions) == 0 {
				fmt.Fprintln(out, "No import exclusions configured")
				return nil
			}

			rows := make([][]string, 0, len(exclusions))
			for _, excl := range exclusions {
				year := ""
				if excl.MovieYear > 0 {
					year = strconv.Itoa(excl.MovieYear)
				}
				rows = append(rows, []string{
					strconv.FormatInt(excl.TMDBID, 10),
					excl.MovieTitle,
					year,
				})
			}
			fmt.Fprintln(out, renderTable([]string{"TMDB ID", "Title", "Year"}, rows, 0))
			fmt.Fprintf(out, "%d import exclusions\n", len(exclusions))
			return nil
		},
	}
}
