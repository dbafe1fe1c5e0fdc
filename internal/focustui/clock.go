package focustui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/amonks/focusstation/timer"
)

const tickInterval = time.Second

func (m model) handleTimerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		moveSelection(&m.timerList, -1)
		return m, nil
	case "down", "j":
		moveSelection(&m.timerList, 1)
		return m, nil
	case " ":
		m.toggleChosen()
		return m, nil
	case "backspace":
		m.prefilled = false
		m.timer.Backspace()
		return m, nil
	case "enter":
		return m.toggleTimer()
	case "f":
		return m.finishEarly()
	case "x", "esc":
		if m.timer.State() == timer.StateRunning || m.timer.State() == timer.StatePaused {
			m.setStatus("Session cancelled", statusInfo)
		}
		m.resetTimer()
		return m, nil
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		r := msg.Runes[0]
		if r < '0' || r > '9' {
			return m, nil
		}
		if m.prefilled {
			m.prefilled = false
			_ = m.timer.Edit()
		}
		if err := m.timer.Type(r); err != nil {
			m.setStatus(fmt.Sprintf("Timer: %v", err), statusError)
		}
	}
	return m, nil
}

func (m *model) prefillTimer() {
	m.prefilled = false
	if m.opts.DefaultMinutes <= 0 {
		return
	}
	if err := m.timer.SetMinutes(m.opts.DefaultMinutes); err != nil {
		m.timer.Cancel()
		return
	}
	m.prefilled = true
}

func (m *model) resetTimer() {
	m.tickID++
	m.timer.Cancel()
	m.prefillTimer()
}

func (m *model) toggleChosen() {
	item, ok := m.timerList.SelectedItem().(taskItem)
	if !ok || m.timer.State() == timer.StateFinished {
		return
	}
	if m.chosen[item.task.Text] {
		delete(m.chosen, item.task.Text)
	} else {
		m.chosen[item.task.Text] = true
	}
	m.reloadTasks()
}

func (m model) chosenTasks() []string {
	var tasks []string
	for _, listItem := range m.timerList.Items() {
		if item, ok := listItem.(taskItem); ok && item.chosen {
			tasks = append(tasks, item.task.Text)
		}
	}
	return tasks
}

func (m model) toggleTimer() (tea.Model, tea.Cmd) {
	switch m.timer.State() {
	case timer.StateIdle, timer.StateEditing:
		if m.timer.State() == timer.StateIdle {
			_ = m.timer.Edit()
		}
		if err := m.timer.Start(); err != nil {
			m.setStatus(fmt.Sprintf("Start failed: %v", err), statusError)
			return m, nil
		}
		m.prefilled = false
		m.setStatus(fmt.Sprintf("Focusing for %d min", m.timer.Planned()), statusInfo)
		cmd := m.scheduleTick()
		return m, cmd
	case timer.StateRunning:
		m.accrue()
		_ = m.timer.Pause()
		m.tickID++
		m.setStatus("Paused", statusInfo)
		return m, nil
	case timer.StatePaused:
		_ = m.timer.Resume()
		m.setStatus("Resumed", statusInfo)
		cmd := m.scheduleTick()
		return m, cmd
	default:
		m.resetTimer()
		m.setStatus("", statusNone)
		return m, nil
	}
}

func (m *model) scheduleTick() tea.Cmd {
	m.tickID++
	m.lastTick = m.opts.Now()
	return tickCmd(m.tickID)
}

func tickCmd(id int) tea.Cmd {
	return tea.Tick(tickInterval, func(at time.Time) tea.Msg {
		return timerTickMsg{id: id, at: at}
	})
}

// accrue credits the time since the last tick to a running timer.
func (m *model) accrue() bool {
	now := m.opts.Now()
	elapsed := now.Sub(m.lastTick)
	if elapsed <= 0 {
		return false
	}
	m.lastTick = now
	return m.timer.Tick(elapsed)
}

func (m model) handleTimerTick(msg timerTickMsg) (tea.Model, tea.Cmd) {
	if msg.id != m.tickID || m.timer.State() != timer.StateRunning {
		return m, nil
	}
	elapsed := msg.at.Sub(m.lastTick)
	m.lastTick = msg.at
	if m.timer.Tick(elapsed) {
		return m.commitSession()
	}
	return m, tickCmd(m.tickID)
}

func (m model) finishEarly() (tea.Model, tea.Cmd) {
	state := m.timer.State()
	if state != timer.StateRunning && state != timer.StatePaused {
		m.setStatus("No session running", statusError)
		return m, nil
	}
	if state == timer.StateRunning && m.accrue() {
		return m.commitSession()
	}
	if _, err := m.timer.Finish(); err != nil {
		m.setStatus(fmt.Sprintf("Finish failed: %v", err), statusError)
		return m, nil
	}
	return m.commitSession()
}

func (m model) commitSession() (tea.Model, tea.Cmd) {
	m.tickID++
	upload, err := m.timer.Commit(timer.CommitOptions{
		Username: m.opts.Username,
		Tasks:    m.chosenTasks(),
		Store:    m.opts.Store,
		Recorder: m.opts.Recorder,
		Notifier: m.opts.Notifier,
		Now:      m.opts.Now,
	})
	m.chosen = map[string]bool{}
	m.reloadTasks()
	if err != nil {
		m.setStatus(fmt.Sprintf("Save failed: %v", err), statusError)
	} else {
		m.setStatus(timer.NotificationMessage(m.timer.Logged()), statusInfo)
	}
	return m, waitUploadCmd(m.ctx, upload, "session")
}

func (m model) timerView() string {
	state := m.timer.State()
	lines := []string{
		labelStyle.Render("Focus timer"),
		"",
		clockStyle.Render(m.timer.Display()),
		valueMuted.Render(state.String()),
		"",
	}
	switch state {
	case timer.StateFinished:
		lines = append(lines, fmt.Sprintf("Session done: %d min logged", m.timer.Logged()), valueMuted.Render("enter: new session"))
	case timer.StateRunning, timer.StatePaused:
		lines = append(lines, fmt.Sprintf("Planned: %d min", m.timer.Planned()))
	default:
		lines = append(lines, valueMuted.Render("Type minutes, then enter"))
	}
	if count := len(m.chosenTasks()); count > 0 && state != timer.StateFinished {
		lines = append(lines, fmt.Sprintf("Tasks this session: %d", count))
	}
	return strings.Join(lines, "\n")
}
