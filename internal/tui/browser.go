// Package tui is an interactive terminal browser for analysis results:
// a run list and a per-run detail view with the E(t) curve.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/rtdlab/internal/report"
	"github.com/san-kum/rtdlab/internal/rtd"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

type state int

const (
	stateList state = iota
	stateDetail
)

type model struct {
	state   state
	cursor  int
	results []rtd.Result
	errs    []error

	width  int
	height int
}

// NewBrowser builds the browser model over analyzed runs. errs carries
// per-run failures (index-aligned, nil for good runs) so the list can
// flag them.
func NewBrowser(results []rtd.Result, errs []error) tea.Model {
	return model{
		state:   stateList,
		results: results,
		errs:    errs,
		width:   80,
		height:  24,
	}
}

// Run starts the browser and blocks until the user quits.
func Run(results []rtd.Result, errs []error) error {
	p := tea.NewProgram(NewBrowser(results, errs))
	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateList:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
		case "enter", " ":
			if len(m.results) > 0 && m.errs[m.cursor] == nil {
				m.state = stateDetail
			}
		}
	case stateDetail:
		switch msg.String() {
		case "q", "escape":
			m.state = stateList
			return m, tea.ClearScreen
		case "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	switch m.state {
	case stateList:
		return m.viewList()
	case stateDetail:
		return m.viewDetail()
	}
	return ""
}

func (m model) viewList() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + cyan.Render("r t d l a b") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, r := range m.results {
		var desc string
		if m.errs[i] != nil {
			desc = yellow.Render(m.errs[i].Error())
		} else {
			desc = dim.Render(fmt.Sprintf("τ=%s s  σ²=%s s²  %s mL/min",
				report.FormatFixed(r.MeanResidenceTime),
				report.FormatFixed(r.Variance),
				report.FormatFlow(r.FlowRateMlPerMin)))
		}
		label := fmt.Sprintf("run %-8s", m.results[i].RunID)
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(label) + desc + "\n")
		} else {
			b.WriteString("        " + dim.Render(label) + desc + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter curve   q quit") + "\n")

	return b.String()
}

func (m model) viewDetail() string {
	r := m.results[m.cursor]

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("      " + cyan.Render("run "+r.RunID) + "  " + dim.Render("exit-age distribution") + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 40)) + "\n\n")

	plotWidth := m.width - 20
	if plotWidth < 30 {
		plotWidth = 30
	}
	plotHeight := m.height - 14
	if plotHeight < 6 {
		plotHeight = 6
	}
	graph := asciigraph.Plot(r.Curve.E,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(fmt.Sprintf("E(t), t ∈ [%.1f, %.1f] s, τ = %.2f s",
			r.Curve.Times[0], r.Curve.Times[len(r.Curve.Times)-1], r.Curve.Tau)),
	)
	b.WriteString(graph + "\n\n")

	rows := []struct{ label, value string }{
		{"mean residence time", report.FormatFixed(r.MeanResidenceTime) + " s"},
		{"variance", report.FormatFixed(r.Variance) + " s²"},
		{"axial dispersion", report.FormatSci(r.AxialDispersion) + " m²/s"},
		{"Peclet number", report.FormatFixed(r.Peclet)},
		{"space time τ₀", report.FormatFixed(r.SpaceTime) + " s"},
		{"Reynolds number", report.FormatFixed(r.Reynolds)},
	}
	for _, row := range rows {
		b.WriteString("      " + dim.Render(fmt.Sprintf("%-22s", row.label)) + magenta.Render(row.value) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      q back   ctrl+c quit") + "\n")

	return b.String()
}
