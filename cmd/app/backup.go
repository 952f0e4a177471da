package main

import (
	"fmt"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Copy every order to a timestamped file in BACKUP_DIR",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		return withApplication(c, func(app *application) error {
			handler := app.root.CreateBackupOrdersCommandHandler()
			location, err := handler.Handle(c.Context(), commands.NewBackupOrdersCommand())
			if err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "Backup written to %s\n", location)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
}
