package main

import (
	"os"

	"partylink/pkg/logger"

	"github.com/spf13/cobra"
)

func main() {
	defer logger.Sync()

	root := &cobra.Command{
		Use:          "partylink",
		Short:        "Partylink birthday party invitations and RSVP server",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), false)
		},
	}
	root.AddCommand(newServeCmd(), newMigrateCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
