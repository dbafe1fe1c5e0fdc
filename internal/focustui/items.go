package focustui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/amonks/focusstation/leaderboard"
	"github.com/amonks/focusstation/task"
)

type taskItem struct {
	task task.Task

	// chosen marks tasks picked for the running timer session.
	chosen bool
}

func (item taskItem) FilterValue() string {
	return item.task.Text
}

type taskItemDelegate struct {
	showChosen bool
}

func (d taskItemDelegate) Height() int                             { return 1 }
func (d taskItemDelegate) Spacing() int                            { return 0 }
func (d taskItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d taskItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(taskItem)
	if !ok {
		return
	}

	line := formatTaskItem(item, d.showChosen, m.Width())
	style := itemNormalStyle
	switch {
	case index == m.Index():
		style = itemSelectedStyle
	case item.task.Done:
		style = itemDoneStyle
	}
	fmt.Fprint(w, style.Render(line))
}

func formatTaskItem(item taskItem, showChosen bool, width int) string {
	marker := "[ ]"
	if showChosen {
		if item.chosen {
			marker = "[*]"
		}
	} else if item.task.Done {
		marker = "[x]"
	}
	return truncateText(marker+" "+item.task.Text, width)
}

type entryItem struct {
	entry leaderboard.Entry
}

func (item entryItem) FilterValue() string {
	return item.entry.Username
}

type entryItemDelegate struct{}

func (d entryItemDelegate) Height() int                             { return 1 }
func (d entryItemDelegate) Spacing() int                            { return 0 }
func (d entryItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d entryItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(entryItem)
	if !ok {
		return
	}

	line := formatEntryItem(item.entry, m.Width())
	style := itemNormalStyle
	if color := item.entry.Tier().Color(); color != "" {
		style = style.Foreground(lipgloss.Color(color))
	}
	if index == m.Index() {
		style = itemSelectedStyle
	}
	fmt.Fprint(w, style.Render(line))
}

func formatEntryItem(entry leaderboard.Entry, width int) string {
	line := fmt.Sprintf("#%d  %s  %s  %d tasks", entry.Rank, entry.Username, leaderboard.FormatMinutes(entry.TotalMinutes), entry.TotalTasks)
	return truncateText(line, width)
}

func truncateText(value string, width int) string {
	if width <= 0 {
		return value
	}
	return truncate.StringWithTail(value, uint(width), "...")
}

func newList(title string, delegate list.ItemDelegate) list.Model {
	l := list.New(nil, delegate, 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	return l
}
