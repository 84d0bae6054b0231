package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountListShowsSynthesizedAccounts(t *testing.T) {
	stdout, _, err := executeCLI(t, "account", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "acc-1")
	assert.Contains(t, stdout, "Acme Corp")
	assert.Contains(t, stdout, "acc-2")
	assert.Contains(t, stdout, "Globex Industries")
	assert.Contains(t, stdout, "acc-3")
	assert.Contains(t, stdout, "Initech Solutions")
}

func TestAccountListJSONOutput(t *testing.T) {
	stdout, _, err := executeCLI(t, "account", "list", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"acc-1\"")
	assert.Contains(t, stdout, "Acme Corp")
}

func TestAccountMetricsRendersSummary(t *testing.T) {
	stdout, _, err := executeCLI(t, "account", "metrics", "acc-1", "--range", "7d")
	require.NoError(t, err)
	assert.Contains(t, stdout, "spend:")
	assert.Contains(t, stdout, "impressions:")
	assert.Contains(t, stdout, "campaigns:")
	assert.Contains(t, stdout, "active /")
}

func TestAccountUpdateChangesIndustry(t *testing.T) {
	stdout, _, err := executeCLI(t, "account", "update", "acc-1", "--industry", "Retail")
	require.NoError(t, err)
	assert.Contains(t, stdout, "acc-1")
	assert.Contains(t, stdout, "Acme Corp")
	assert.Contains(t, stdout, "Retail")
}

func TestAccountUpdateUnknownAccountIsNoOp(t *testing.T) {
	stdout, _, err := executeCLI(t, "account", "update", "acc-404", "--name", "Ghost")
	require.NoError(t, err)
	assert.Contains(t, stdout, "account acc-404 not found; nothing to do")
}

func TestCampaignListPaginates(t *testing.T) {
	stdout, _, err := executeCLI(t, "campaign", "list", "--account", "acc-1", "--page-size", "5")
	require.NoError(t, err)
	assert.Contains(t, stdout, "page 1/")
	assert.Contains(t, stdout, "cmp-acc-1-0")

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	assert.Len(t, lines, 6) // header plus five campaigns
}

func TestCampaignListStatusFilter(t *testing.T) {
	stdout, _, err := executeCLI(t, "campaign", "list", "--account", "acc-1", "--status", "active", "--page-size", "100")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "\tpaused\t")
	assert.NotContains(t, stdout, "\tlimited\t")
}

func TestCampaignToggleUnknownIDIsNoOp(t *testing.T) {
	stdout, _, err := executeCLI(t, "campaign", "toggle", "cmp-404")
	require.NoError(t, err)
	assert.Contains(t, stdout, "campaign cmp-404 not found; nothing to do")
}

func TestCampaignSetStrategyRejectsUnknownStrategy(t *testing.T) {
	_, _, err := executeCLI(t, "campaign", "set-strategy", "cmp-acc-1-0", "target_roas")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bid strategy")
}

func TestCampaignCreateRequiresFlags(t *testing.T) {
	_, _, err := executeCLI(t, "campaign", "create", "--account", "acc-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s)")
}

func TestCampaignCreateInsertsCampaign(t *testing.T) {
	stdout, _, err := executeCLI(t,
		"campaign", "create",
		"--account", "acc-1",
		"--name", "Spring Sale Push",
		"--objective", "conversions",
		"--daily-budget", "250",
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "created cmp-acc-1-")
	assert.Contains(t, stdout, "Spring Sale Push")
}

func TestAdGroupListByCampaign(t *testing.T) {
	stdout, _, err := executeCLI(t, "adgroup", "list", "--campaign", "cmp-acc-1-0")
	require.NoError(t, err)
	assert.Contains(t, stdout, "ag-cmp-acc-1-0-0")
	assert.Contains(t, stdout, "bid $")
}

func TestAdGroupSetBidRejectsMalformedNumber(t *testing.T) {
	_, _, err := executeCLI(t, "adgroup", "set-bid", "ag-cmp-acc-1-0-0", "lots")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse bid")
}

func TestAdGroupSetBidUnknownIDIsNoOp(t *testing.T) {
	stdout, _, err := executeCLI(t, "adgroup", "set-bid", "ag-404", "2.50")
	require.NoError(t, err)
	assert.Contains(t, stdout, "ad group ag-404 not found; nothing to do")
}

func TestCreativeListShowsPool(t *testing.T) {
	stdout, _, err := executeCLI(t, "creative", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "cr-0")
	assert.Contains(t, stdout, "cr-59")
}

func TestTimeSeriesEndsAtReferenceDate(t *testing.T) {
	stdout, _, err := executeCLI(t, "timeseries", "acc-1", "--days", "7")
	require.NoError(t, err)
	assert.Contains(t, stdout, "2026-02-06")

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	assert.Len(t, lines, 7)
}

func TestTimeSeriesIsDeterministicAcrossRuns(t *testing.T) {
	first, _, err := executeCLI(t, "timeseries", "acc-1", "--days", "14")
	require.NoError(t, err)
	second, _, err := executeCLI(t, "timeseries", "acc-1", "--days", "14")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestConversionsRendersEventCatalog(t *testing.T) {
	stdout, _, err := executeCLI(t, "conversions", "acc-1", "--window", "7")
	require.NoError(t, err)
	assert.Contains(t, stdout, "ev-1")
	assert.Contains(t, stdout, "Purchase")
	assert.Contains(t, stdout, "ev-6")
	assert.Contains(t, stdout, "App Install")
}

func TestNotificationsJSONOutput(t *testing.T) {
	stdout, _, err := executeCLI(t, "notifications", "acc-1", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
}

func TestInvoiceListShowsBillingTable(t *testing.T) {
	stdout, _, err := executeCLI(t, "invoice", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "inv-001")
	assert.Contains(t, stdout, "$15420.00")
	assert.Contains(t, stdout, "pending")
}

func TestExportJSONOutput(t *testing.T) {
	stdout, _, err := executeCLI(t, "export", "--format", "json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"accounts\"")
	assert.Contains(t, stdout, "\"invoices\"")
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	_, _, err := executeCLI(t, "export", "--format", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported export format")
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dev")
}

func TestUnknownCommandFails(t *testing.T) {
	_, _, err := executeCLI(t, "promote")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command \"promote\"")
}

func executeCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
