package focustui

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m model) handleTasksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		moveSelection(&m.taskList, -1)
	case "down", "j":
		moveSelection(&m.taskList, 1)
	case "left", "h":
		m.shiftDay(-1)
	case "right", "l":
		m.shiftDay(1)
	case "t":
		m.day = m.opts.Store.Today()
		m.reloadTasks()
	case "a":
		m.adding = true
		m.input.Reset()
		cmd := m.input.Focus()
		return m, cmd
	case "d", " ":
		return m.completeSelected()
	case "x", "delete":
		m.deleteSelected()
	}
	return m, nil
}

func (m model) updateTaskInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.stopAdding()
		return m, nil
	case "enter":
		text := strings.TrimSpace(m.input.Value())
		m.stopAdding()
		if text == "" {
			return m, nil
		}
		if err := m.opts.Store.AddTask(m.day, text); err != nil {
			m.setStatus(fmt.Sprintf("Save failed: %v", err), statusError)
			return m, nil
		}
		m.reloadTasks()
		m.taskList.Select(len(m.taskList.Items()) - 1)
		m.setStatus(fmt.Sprintf("Added %q", text), statusInfo)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) stopAdding() {
	m.adding = false
	m.input.Blur()
	m.input.Reset()
}

// shiftDay moves between the days that have tasks, plus today.
func (m *model) shiftDay(delta int) {
	days := m.opts.Store.Days()
	for _, day := range []string{m.opts.Store.Today(), m.day} {
		if !slices.Contains(days, day) {
			days = append(days, day)
		}
	}
	slices.Sort(days)
	index := slices.Index(days, m.day)
	next := min(max(index+delta, 0), len(days)-1)
	if days[next] == m.day {
		return
	}
	m.day = days[next]
	m.taskList.Select(0)
	m.reloadTasks()
}

func (m model) completeSelected() (tea.Model, tea.Cmd) {
	item, ok := m.taskList.SelectedItem().(taskItem)
	if !ok {
		return m, nil
	}
	if item.task.Done {
		m.setStatus(fmt.Sprintf("%q is already done", item.task.Text), statusInfo)
		return m, nil
	}
	upload, err := m.opts.Store.CompleteTask(m.day, item.task.Text)
	if err != nil {
		m.setStatus(fmt.Sprintf("Save failed: %v", err), statusError)
		return m, nil
	}
	m.reloadTasks()
	m.setStatus(fmt.Sprintf("Completed %q", item.task.Text), statusInfo)
	return m, waitUploadCmd(m.ctx, upload, "task")
}

func (m *model) deleteSelected() {
	item, ok := m.taskList.SelectedItem().(taskItem)
	if !ok {
		return
	}
	removed, err := m.opts.Store.DeleteTask(m.day, item.task.Text)
	if err != nil {
		m.setStatus(fmt.Sprintf("Save failed: %v", err), statusError)
		return
	}
	if removed {
		m.setStatus(fmt.Sprintf("Deleted %q", item.task.Text), statusInfo)
	}
	m.reloadTasks()
}

func (m model) dayView() string {
	var pending, done int
	for _, listItem := range m.taskList.Items() {
		if item, ok := listItem.(taskItem); ok {
			if item.task.Done {
				done++
			} else {
				pending++
			}
		}
	}

	day := m.day
	if day == m.opts.Store.Today() {
		day += " (today)"
	}
	lines := []string{
		labelStyle.Render(day),
		fmt.Sprintf("Pending: %d  Done: %d", pending, done),
		"",
	}
	if m.adding {
		lines = append(lines, m.input.View())
	} else {
		lines = append(lines, valueMuted.Render("a: add a task"))
	}
	return strings.Join(lines, "\n")
}
