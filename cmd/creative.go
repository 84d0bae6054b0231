package cmd

import (
	"fmt"

	"github.com/D-C-Legacy/ad-admin/internal/application"
	"github.com/D-C-Legacy/ad-admin/internal/domain"
	"github.com/spf13/cobra"
)

func newCreativeCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "creative",
		Short: "Manage creatives",
	}

	cmd.AddCommand(
		newCreativeListCmd(app),
		newCreativeAssignCmd(app),
	)

	return cmd
}

func newCreativeListCmd(app *app) *cobra.Command {
	var creativeType, status string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List creatives",
		RunE: func(cmd *cobra.Command, _ []string) error {
			creatives, err := app.service.ListCreatives(cmd.Context(), application.CreativeFilter{
				Type:   domain.CreativeType(creativeType),
				Status: domain.CreativeStatus(status),
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, creatives)
			}

			for _, c := range creatives {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%-30s\t%s\t%s\t%s\t%s\t%d ad groups\n",
					c.ID, c.Name, c.Type, c.Status, c.Dimensions, c.FileSize, len(c.AdGroupIDs))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&creativeType, "type", "", "Filter by type (image|video|text)")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (approved|pending|rejected)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newCreativeAssignCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "assign <creative-id> <adgroup-id>",
		Short: "Assign a creative to an ad group (idempotent)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			creative, err := app.service.AssignCreative(cmd.Context(), domain.CreativeID(args[0]), domain.AdGroupID(args[1]))
			if err != nil {
				return err
			}
			if creative.ID == "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "creative %s or ad group %s not found; nothing to do\n", args[0], args[1])
				return nil
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\tassigned to %d ad groups\n", creative.ID, len(creative.AdGroupIDs))
			return nil
		},
	}
}
