package cmd

import (
	"fmt"

	"github.com/D-C-Legacy/ad-admin/internal/domain"
	"github.com/spf13/cobra"
)

func newNotificationsCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "notifications <account-id>",
		Short: "Derive threshold-breach notifications for one account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			notifications, err := app.service.GenerateNotifications(cmd.Context(), domain.AccountID(args[0]))
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, notifications)
			}

			for _, n := range notifications {
				marker := " "
				if !n.Read {
					marker = "*"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s [%s] %s: %s\n", marker, n.Type, n.Title, n.Message)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
