package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	w, h := m.mapSize()

	header := titleStyle.Render(" stepfg ─ extrusion preview ") + dimStyle.Render(" "+m.title)
	header = lipgloss.NewStyle().Width(w).MaxHeight(headerHeight).Render(header)

	var body string
	if m.showTable {
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 2
		}
		boxW := min(w, colW+4)
		m.tbl.SetWidth(boxW - 4)
		m.tbl.SetHeight(min(h-2, 20))
		body = lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, boxStyle.Width(boxW).Render(m.tbl.View()))
	} else {
		body = lipgloss.NewStyle().Width(w).Height(h).Render(m.renderFootprint(w, h))
	}

	status := dimStyle.Render(" " + m.status + " ")
	if m.confirmed {
		status = okStyle.Render(" " + m.status + " ")
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, m.renderHelp())
	coords := ""
	if m.hoverHasXY {
		coords = dimStyle.Render(fmt.Sprintf("  x=%.4g y=%.4g  ", m.hoverX, m.hoverY))
	}
	spacerW := max(0, w-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(w).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(w).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"Enter write",
		"q/Esc abort",
		"↑↓←→ pan",
		"+/- zoom",
		"0 reset",
		"t solids",
		"h help",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
