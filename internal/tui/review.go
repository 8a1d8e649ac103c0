// Package tui implements the interactive bill review screen.
package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tabsplit/tabsplit/internal/bill"
	"github.com/tabsplit/tabsplit/internal/cli"
)

type keyMap struct {
	Up   key.Binding
	Down key.Binding
	Sort key.Binding
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Sort, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Sort, k.Quit}}
}

var defaultKeys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k", "prev diner"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j", "next diner"),
	),
	Sort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "toggle sort"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

var (
	selectedStyle = lipgloss.NewStyle().Foreground(cli.ColorAccent).Bold(true)
	normalStyle   = lipgloss.NewStyle().Foreground(cli.ColorText)
	labelStyle    = lipgloss.NewStyle().Foreground(cli.ColorTextMuted)
	panelStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cli.ColorBorder).
			Padding(0, 2)
)

// Model is the review screen: per-diner totals with a breakdown panel for
// the highlighted diner. Totals are computed once at construction; the
// screen is a read-only view of a finished bill.
type Model struct {
	splitter    *bill.Splitter
	totals      []bill.DinerTotal
	cursor      int
	sortByTotal bool
	width       int
	keys        keyMap
	help        help.Model
}

// New builds the review model. Fails if the bill has no diners.
func New(s *bill.Splitter) (Model, error) {
	totals, err := s.Totals()
	if err != nil {
		return Model{}, err
	}
	m := Model{
		splitter:    s,
		totals:      totals,
		sortByTotal: true,
		keys:        defaultKeys,
		help:        help.New(),
	}
	m.applySort()
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.totals)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Sort):
			m.sortByTotal = !m.sortByTotal
			m.applySort()
			m.cursor = 0
		}
	}
	return m, nil
}

// applySort orders totals by amount descending, or restores diner add
// order when the toggle is off.
func (m *Model) applySort() {
	if m.sortByTotal {
		sort.SliceStable(m.totals, func(i, j int) bool {
			return m.totals[i].Total > m.totals[j].Total
		})
		return
	}

	order := make(map[string]int, len(m.splitter.Diners()))
	for i, d := range m.splitter.Diners() {
		order[d.ID()] = i
	}
	sort.SliceStable(m.totals, func(i, j int) bool {
		return order[m.totals[i].DinerID] < order[m.totals[j].DinerID]
	})
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(cli.RenderTitle("BILL REVIEW"))
	b.WriteString("\n\n")

	sortLabel := "total"
	if !m.sortByTotal {
		sortLabel = "entry order"
	}
	b.WriteString(labelStyle.Render(fmt.Sprintf(
		"  Service charge %s · %s · sorted by %s",
		cli.FormatPercent(m.splitter.ServicePercent()),
		cli.FormatCount(len(m.totals), "diner"),
		sortLabel,
	)))
	b.WriteString("\n\n")

	for i, dt := range m.totals {
		marker := "  "
		style := normalStyle
		if i == m.cursor {
			marker = "> "
			style = selectedStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("  %s%-16s %10s",
			marker, dt.Name, cli.FormatMoney(dt.Total))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.breakdownPanel())
	b.WriteString("\n\n")
	b.WriteString("  ")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

func (m Model) breakdownPanel() string {
	if len(m.totals) == 0 {
		return ""
	}
	dt := m.totals[m.cursor]

	var lines []string
	lines = append(lines, selectedStyle.Render(dt.Name)+
		labelStyle.Render("  tip "+cli.FormatPercent(dt.TipPercent)))

	for _, d := range m.splitter.Diners() {
		if d.ID() != dt.DinerID {
			continue
		}
		for _, it := range d.PersonalItems() {
			lines = append(lines, fmt.Sprintf("%-18s %10s", it.Name(), cli.FormatMoney(it.Price())))
		}
	}

	rows := []struct {
		label string
		value float64
	}{
		{"Shared share", dt.SharedShare},
		{"Subtotal", dt.Subtotal},
		{"Service", dt.ServiceCharge},
		{"Tip", dt.Tip},
		{"Total", dt.Total},
	}
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%s %10s",
			labelStyle.Render(fmt.Sprintf("%-18s", r.label)),
			cli.FormatMoney(r.value)))
	}

	return panelStyle.Render(strings.Join(lines, "\n"))
}
