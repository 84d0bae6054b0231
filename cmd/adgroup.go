package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/D-C-Legacy/ad-admin/internal/application"
	"github.com/D-C-Legacy/ad-admin/internal/domain"
	"github.com/spf13/cobra"
)

func newAdGroupCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adgroup",
		Short: "Manage ad groups",
	}

	cmd.AddCommand(
		newAdGroupListCmd(app),
		newAdGroupToggleCmd(app),
		newAdGroupSetBidCmd(app),
	)

	return cmd
}

func newAdGroupListCmd(app *app) *cobra.Command {
	var campaignID, accountID string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ad groups, scoped to a campaign or account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			groups, err := app.service.ListAdGroups(cmd.Context(), application.AdGroupFilter{
				CampaignID: domain.CampaignID(campaignID),
				AccountID:  domain.AccountID(accountID),
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, groups)
			}

			for _, g := range groups {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%-46s\t%s\tbid $%.2f\tgeo %s\n",
					g.ID, g.Name, g.Status, g.BidAmount, strings.Join(g.Targeting.Geo, ","))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&campaignID, "campaign", "", "Filter by campaign ID")
	cmd.Flags().StringVar(&accountID, "account", "", "Filter by account ID")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newAdGroupToggleCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <adgroup-id>",
		Short: "Toggle an ad group between active and paused",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			group, err := app.service.ToggleAdGroupStatus(cmd.Context(), domain.AdGroupID(args[0]))
			if err != nil {
				return err
			}
			if group.ID == "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "ad group %s not found; nothing to do\n", args[0])
				return nil
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", group.ID, group.Status)
			return nil
		},
	}
}

func newAdGroupSetBidCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-bid <adgroup-id> <bid>",
		Short: "Set an ad group's bid; volume rescales sub-linearly",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bid, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("parse bid %q: %w", args[1], err)
			}

			group, err := app.service.SetAdGroupBid(cmd.Context(), domain.AdGroupID(args[0]), bid)
			if err != nil {
				return err
			}
			if group.ID == "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "ad group %s not found; nothing to do\n", args[0])
				return nil
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\tbid $%.2f\timpressions %d\tclicks %d\tconversions %d\n",
				group.ID, group.BidAmount, group.Impressions, group.Clicks, group.Conversions)
			return nil
		},
	}
}
