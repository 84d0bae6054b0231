package cmd

import (
	"fmt"
	"os"

	"github.com/D-C-Legacy/ad-admin/internal/application"
	"github.com/D-C-Legacy/ad-admin/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

// exportDocument is the on-disk shape of a dataset dump. It exists so
// fixtures can be generated once and diffed across seeds.
type exportDocument struct {
	Accounts  []domain.Account  `json:"accounts" toml:"accounts"`
	Campaigns []domain.Campaign `json:"campaigns" toml:"campaigns"`
	AdGroups  []domain.AdGroup  `json:"ad_groups" toml:"ad_groups"`
	Creatives []domain.Creative `json:"creatives" toml:"creatives"`
	Invoices  []domain.Invoice  `json:"invoices" toml:"invoices"`
}

func newExportCmd(app *app) *cobra.Command {
	var format, outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Dump the synthesized entity graph as TOML or JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			accounts, err := app.service.ListAccounts(ctx)
			if err != nil {
				return err
			}
			campaigns, err := app.service.ListCampaigns(ctx, application.CampaignFilter{}, application.CampaignSort{}, 1, 1<<30)
			if err != nil {
				return err
			}
			adGroups, err := app.service.ListAdGroups(ctx, application.AdGroupFilter{})
			if err != nil {
				return err
			}
			creatives, err := app.service.ListCreatives(ctx, application.CreativeFilter{})
			if err != nil {
				return err
			}

			doc := exportDocument{
				Accounts:  accounts,
				Campaigns: campaigns.Campaigns,
				AdGroups:  adGroups,
				Creatives: creatives,
				Invoices:  app.service.ListInvoices(),
			}

			out := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("create export file: %w", err)
				}
				defer f.Close()
				out = f
			}

			switch format {
			case "toml":
				return toml.NewEncoder(out).Encode(doc)
			case "json":
				return writeJSONTo(out, doc)
			default:
				return fmt.Errorf("unsupported export format %q", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "toml", "Export format (toml|json)")
	cmd.Flags().StringVar(&outPath, "out", "", "Write to a file instead of stdout")

	return cmd
}
