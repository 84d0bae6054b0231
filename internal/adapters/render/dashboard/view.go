// Package dashboard renders the account overview for the terminal: the
// rolled-up metrics, recent spend as a bar strip, and derived
// notifications.
package dashboard

import (
	"fmt"
	"strings"

	"github.com/D-C-Legacy/ad-admin/internal/application"
	"github.com/D-C-Legacy/ad-admin/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Overview is everything one account's dashboard page shows.
type Overview struct {
	Account       domain.Account
	Range         application.DateRange
	Metrics       application.MetricsSummary
	Series        []domain.TimeSeriesPoint
	Notifications []domain.Notification
}

// RenderOptions control layout only; they never affect the numbers.
type RenderOptions struct {
	BarWidth   int
	SeriesDays int
}

const (
	defaultBarWidth   = 30
	defaultSeriesDays = 14
)

// Render produces the static overview for one account.
func Render(o Overview, opts RenderOptions) string {
	return renderView(o, opts, newStyles())
}

func renderView(o Overview, opts RenderOptions, s styles) string {
	if opts.BarWidth <= 0 {
		opts.BarWidth = defaultBarWidth
	}
	if opts.SeriesDays <= 0 {
		opts.SeriesDays = defaultSeriesDays
	}

	lines := []string{
		s.title.Render("Campaign Dashboard"),
		s.account.Render(fmt.Sprintf("%s (%s) — %s, %s", o.Account.Name, o.Account.ID, o.Account.Industry, o.Account.Timezone)),
		s.header.Render(fmt.Sprintf("range: %s", o.Range)),
		s.section.Render(renderMetrics(o.Metrics, s)),
	}

	if len(o.Series) > 0 {
		lines = append(lines, s.section.Render(renderSeries(o.Series, opts, s)))
	}
	lines = append(lines, s.section.Render(renderNotifications(o.Notifications, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderMetrics(m application.MetricsSummary, s styles) string {
	rows := []struct {
		key   string
		value string
	}{
		{"spend", fmt.Sprintf("$%.2f", m.Spend)},
		{"impressions", fmt.Sprintf("%d", m.Impressions)},
		{"clicks", fmt.Sprintf("%d", m.Clicks)},
		{"conversions", fmt.Sprintf("%d", m.Conversions)},
		{"avg cpc", fmt.Sprintf("$%.2f", m.AvgCPC)},
		{"avg cpm", fmt.Sprintf("$%.2f", m.AvgCPM)},
		{"campaigns", fmt.Sprintf("%d active / %d paused / %d limited", m.ActiveCampaigns, m.PausedCampaigns, m.LimitedCampaigns)},
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.metricKey.Render(fmt.Sprintf("%-12s", row.key)),
			s.metricVal.Render(row.value),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderSeries(points []domain.TimeSeriesPoint, opts RenderOptions, s styles) string {
	if len(points) > opts.SeriesDays {
		points = points[len(points)-opts.SeriesDays:]
	}

	var maxSpend float64
	for _, p := range points {
		if p.Spend > maxSpend {
			maxSpend = p.Spend
		}
	}

	lines := []string{s.header.Render(fmt.Sprintf("daily spend (last %d days)", len(points)))}
	for _, p := range points {
		lines = append(lines, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.barLabel.Render(p.Date+" "),
			renderSpendBar(p.Spend, maxSpend, opts.BarWidth, s),
			s.metricVal.Render(fmt.Sprintf(" $%.2f", p.Spend)),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderSpendBar(spend, maxSpend float64, width int, s styles) string {
	filled := 0
	if maxSpend > 0 {
		filled = int(spend / maxSpend * float64(width))
	}
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func renderNotifications(notifications []domain.Notification, s styles) string {
	lines := []string{s.header.Render(fmt.Sprintf("notifications: %d", len(notifications)))}
	if len(notifications) == 0 {
		lines = append(lines, s.empty.Render("No notifications for this account."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, n := range notifications {
		style := s.read
		marker := " "
		if !n.Read {
			style = s.unread
			marker = "*"
		}
		lines = append(lines, style.Render(fmt.Sprintf("%s [%s] %s: %s", marker, n.Type, n.Title, n.Message)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
