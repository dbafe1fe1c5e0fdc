package focustui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/amonks/focusstation/internal/markdown"
)

func (m model) handleLeaderboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		moveSelection(&m.boardList, -1)
	case "down", "j":
		moveSelection(&m.boardList, 1)
	case "r":
		if m.boardLoading {
			return m, nil
		}
		m.boardLoading = true
		return m, m.loadLeaderboardCmd()
	}
	return m, nil
}

func (m model) entryView(width int) string {
	if m.boardLoading && len(m.boardList.Items()) == 0 {
		return valueMuted.Render("Loading...")
	}
	item, ok := m.boardList.SelectedItem().(entryItem)
	if !ok {
		return valueMuted.Render("No sessions yet")
	}
	return markdown.Render(width, item.entry.Markdown())
}
