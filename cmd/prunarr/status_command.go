package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check connectivity to the Radarr instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.radarrClient()
			if err != nil {
				return err
			}
			status, err := client.TestConnection(cmd.Context())
			if err != nil {
				return err
			}
			name := status.AppName
			if name == "" {
				name = "Radarr"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Connected to %s version %s\n", name, status.Version)
			return nil
		},
	}
}
