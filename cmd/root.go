package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "adadmin",
		Short:         "adadmin: explore and mutate a synthetic ad-campaign dataset",
		Long:          "adadmin synthesizes a deterministic advertiser dataset (accounts, campaigns, ad groups, creatives) and exposes the dashboard's queries and mutations from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newAccountCmd(app),
		newCampaignCmd(app),
		newAdGroupCmd(app),
		newCreativeCmd(app),
		newTimeSeriesCmd(app),
		newConversionsCmd(app),
		newNotificationsCmd(app),
		newInvoiceCmd(app),
		newDashboardCmd(app),
		newExportCmd(app),
	)

	return rootCmd
}
