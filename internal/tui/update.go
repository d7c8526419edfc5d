package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	headerHeight = 1
	footerHeight = 2
)

// mapSize is the footprint area left between header and footer.
func (m Model) mapSize() (int, int) {
	return max(10, m.width), max(4, m.height-headerHeight-footerHeight)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			m.confirmed = true
			m.status = "writing"
			return m, tea.Quit
		case "ctrl+c", "q", "esc":
			m.status = "aborted"
			return m, tea.Quit
		case "t":
			m.showTable = !m.showTable
			return m, nil
		case "h":
			m.helpVisible = !m.helpVisible
			return m, nil
		}
		if m.showTable {
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "0":
			m.zoom = 1.0
			m.offsetX, m.offsetY = 0, 0
			m.status = "view reset"
		case "up":
			m.offsetY--
		case "down":
			m.offsetY++
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		if m.showTable {
			return m, nil
		}
		w, h := m.mapSize()
		cx, cy := msg.X, msg.Y-headerHeight
		if cx < 0 || cx >= w || cy < 0 || cy >= h {
			m.hovering, m.hoverHasXY = false, false
			return m, nil
		}
		m.hoverX, m.hoverY, m.hoverHasXY = m.cellToXY(cx, cy, w, h)
		m.hoverMicX, m.hoverMicY, m.hovering = m.nearestVertex(cx*2, cy*4, w, h)
	}
	return m, nil
}
