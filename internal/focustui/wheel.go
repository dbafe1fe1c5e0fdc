package focustui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/amonks/focusstation/picker"
	"github.com/amonks/focusstation/task"
)

func (m model) handleWheelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		moveSelection(&m.wheelList, -1)
	case "down", "j":
		moveSelection(&m.wheelList, 1)
	case "enter", " ", "s":
		return m.spin()
	case "d":
		return m.completePicked()
	case "esc":
		if !m.spinning {
			m.hasPick = false
		}
	}
	return m, nil
}

func (m model) spin() (tea.Model, tea.Cmd) {
	if m.spinning {
		return m, nil
	}
	pending := m.opts.Store.ListPending(m.opts.Store.Today())
	var frames []picker.Frame
	picked, err := m.opts.Picker.Spin(pending, m.opts.SpinFrames, func(frame picker.Frame) {
		frames = append(frames, frame)
	})
	if err != nil {
		if errors.Is(err, picker.ErrEmptyPool) {
			m.setStatus("Nothing to spin: add some tasks for today first", statusError)
		} else {
			m.setStatus(fmt.Sprintf("Spin failed: %v", err), statusError)
		}
		return m, nil
	}

	m.spinID++
	m.picked = picked
	m.hasPick = false
	m.frames = frames
	m.frameIndex = 0
	if len(frames) == 0 {
		return m.reveal()
	}
	m.spinning = true
	m.setStatus("Spinning...", statusNone)
	return m, frameCmd(m.spinID, 0, frames[0].Delay)
}

func frameCmd(id, index int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return wheelFrameMsg{id: id, index: index}
	})
}

func (m model) handleWheelFrame(msg wheelFrameMsg) (tea.Model, tea.Cmd) {
	if msg.id != m.spinID || !m.spinning {
		return m, nil
	}
	next := msg.index + 1
	if next >= len(m.frames) {
		return m.reveal()
	}
	m.frameIndex = next
	return m, frameCmd(msg.id, next, m.frames[next].Delay)
}

func (m model) reveal() (tea.Model, tea.Cmd) {
	m.spinning = false
	m.hasPick = true
	m.setStatus(fmt.Sprintf("Picked %q", m.picked.Text), statusInfo)
	return m, nil
}

func (m model) completePicked() (tea.Model, tea.Cmd) {
	if !m.hasPick || m.spinning {
		return m, nil
	}
	picked := m.picked
	m.hasPick = false
	m.picked = task.Task{}
	upload, err := m.opts.Store.CompleteTask(m.opts.Store.Today(), picked.Text)
	if err != nil {
		m.setStatus(fmt.Sprintf("Save failed: %v", err), statusError)
		return m, nil
	}
	m.reloadTasks()
	m.setStatus(fmt.Sprintf("Completed %q", picked.Text), statusInfo)
	return m, waitUploadCmd(m.ctx, upload, "task")
}

func (m model) wheelView() string {
	lines := []string{labelStyle.Render("Task wheel"), ""}
	switch {
	case m.spinning && m.frameIndex < len(m.frames):
		lines = append(lines, wheelStyle.Render(m.frames[m.frameIndex].Task.Text), "", valueMuted.Render("spinning..."))
	case m.hasPick:
		lines = append(lines, "Picked:", wheelStyle.Render(m.picked.Text), "", valueMuted.Render("d: mark done | esc: dismiss"))
	default:
		lines = append(lines, valueMuted.Render("Press enter to spin"))
	}
	return strings.Join(lines, "\n")
}
