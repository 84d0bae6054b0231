package domain

// TimeSeriesPoint is one day of account-level delivery. Points are
// generated on demand per (account, window) and never stored.
type TimeSeriesPoint struct {
	Date        string
	Spend       float64
	Impressions int64
	Clicks      int64
	Conversions int64
	CPC         float64
	CPM         float64
}
