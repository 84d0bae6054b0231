package dashboard

import (
	"errors"
	"fmt"
	"io"

	"github.com/D-C-Legacy/ad-admin/internal/domain"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var ErrUnexpectedModel = errors.New("unexpected final bubbletea model type")

// Fetcher loads the overview and campaign rows for one account. The
// engine is synchronous, so fetches run inline in Update.
type Fetcher func(domain.AccountID) (Overview, []table.Row, error)

type model struct {
	accounts []domain.Account
	index    int
	fetch    Fetcher
	styles   styles

	overview Overview
	table    table.Model
	err      error
}

var campaignColumns = []table.Column{
	{Title: "ID", Width: 14},
	{Title: "Name", Width: 34},
	{Title: "Status", Width: 8},
	{Title: "Objective", Width: 12},
	{Title: "Budget", Width: 10},
	{Title: "Spend", Width: 12},
	{Title: "CPC", Width: 7},
}

func newInteractiveModel(accounts []domain.Account, fetch Fetcher) model {
	t := table.New(
		table.WithColumns(campaignColumns),
		table.WithHeight(12),
		table.WithFocused(true),
	)

	m := model{
		accounts: accounts,
		fetch:    fetch,
		styles:   newStyles(),
		table:    t,
	}
	m.load()
	return m
}

func (m *model) load() {
	if len(m.accounts) == 0 {
		return
	}

	overview, rows, err := m.fetch(m.accounts[m.index].ID)
	if err != nil {
		m.err = err
		return
	}

	m.err = nil
	m.overview = overview
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab", "right":
			if len(m.accounts) > 0 {
				m.index = (m.index + 1) % len(m.accounts)
				m.load()
			}
			return m, nil
		case "shift+tab", "left":
			if len(m.accounts) > 0 {
				m.index = (m.index - 1 + len(m.accounts)) % len(m.accounts)
				m.load()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if len(m.accounts) == 0 {
		return m.styles.empty.Render("No accounts available.")
	}
	if m.err != nil {
		return m.styles.unread.Render(fmt.Sprintf("dashboard error: %v", m.err))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		renderView(m.overview, RenderOptions{}, m.styles),
		m.styles.section.Render(m.table.View()),
		m.styles.help.Render("tab/shift+tab: switch account · arrows: scroll campaigns · q: quit"),
	)
}

// RunInteractive drives the dashboard until the user quits.
func RunInteractive(accounts []domain.Account, fetch Fetcher, output io.Writer) error {
	p := tea.NewProgram(
		newInteractiveModel(accounts, fetch),
		tea.WithOutput(output),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	if _, ok := finalModel.(model); !ok {
		return ErrUnexpectedModel
	}
	return nil
}
