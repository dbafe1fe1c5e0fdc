// Package focustui is the terminal interface of focus: the focus timer, the
// task list of each day, the task wheel and the leaderboard.
package focustui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amonks/focusstation/internal/notify"
	"github.com/amonks/focusstation/leaderboard"
	"github.com/amonks/focusstation/picker"
	"github.com/amonks/focusstation/session"
	"github.com/amonks/focusstation/task"
	"github.com/amonks/focusstation/timer"
)

type tabKind int

const (
	tabTimer tabKind = iota
	tabTasks
	tabWheel
	tabLeaderboard
	tabCount
)

var tabLabels = []string{"Timer", "Tasks", "Wheel", "Leaderboard"}

type statusLevel int

const (
	statusNone statusLevel = iota
	statusInfo
	statusError
)

// Options wires the interface to its collaborators.
type Options struct {
	Username string

	// Store is required.
	Store *task.Store

	// Repository feeds the leaderboard tab.
	Repository session.Repository

	// Recorder receives timer session summaries.
	Recorder task.Recorder

	Notifier notify.Notifier
	Picker   *picker.Picker

	// DefaultMinutes prefills the timer. Zero leaves it empty.
	DefaultMinutes int

	// SpinFrames is the number of cosmetic wheel frames.
	SpinFrames int

	Now func() time.Time
}

type model struct {
	ctx         context.Context
	opts        Options
	width       int
	height      int
	activeTab   tabKind
	showHelp    bool
	status      string
	statusLevel statusLevel

	timer     *timer.Timer
	prefilled bool
	tickID    int
	lastTick  time.Time
	chosen    map[string]bool
	timerList list.Model

	day      string
	taskList list.Model
	adding   bool
	input    textinput.Model

	wheelList  list.Model
	spinID     int
	spinning   bool
	frames     []picker.Frame
	frameIndex int
	picked     task.Task
	hasPick    bool

	boardList    list.Model
	boardLoading bool
}

type timerTickMsg struct {
	id int
	at time.Time
}

type wheelFrameMsg struct {
	id    int
	index int
}

type leaderboardLoadedMsg struct {
	entries []leaderboard.Entry
	err     error
}

type uploadDoneMsg struct {
	what string
	err  error
}

// Run starts the interface and blocks until the user quits.
func Run(ctx context.Context, opts Options) error {
	if opts.Store == nil {
		return fmt.Errorf("task store is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	program := tea.NewProgram(newModel(ctx, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

func newModel(ctx context.Context, opts Options) model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Notifier == nil {
		opts.Notifier = notify.Nop{}
	}
	if opts.Picker == nil {
		opts.Picker = picker.New(nil)
	}
	opts.SpinFrames = max(opts.SpinFrames, 0)

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "New task"

	m := model{
		ctx:       ctx,
		opts:      opts,
		activeTab: tabTimer,
		timer:     timer.New(),
		chosen:    map[string]bool{},
		timerList: newList("Today's tasks", taskItemDelegate{showChosen: true}),
		day:       opts.Store.Today(),
		taskList:  newList("Tasks", taskItemDelegate{}),
		input:     input,
		wheelList: newList("Pending", taskItemDelegate{}),
		boardList: newList("Leaderboard", entryItemDelegate{}),

		boardLoading: true,
	}
	m.prefillTimer()
	m.reloadTasks()
	return m
}

func (m model) Init() tea.Cmd {
	return m.loadLeaderboardCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case timerTickMsg:
		return m.handleTimerTick(msg)
	case wheelFrameMsg:
		return m.handleWheelFrame(msg)
	case leaderboardLoadedMsg:
		return m.handleLeaderboardLoaded(msg)
	case uploadDoneMsg:
		return m.handleUploadDone(msg)
	}

	if m.adding {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading focus..."
	}
	if m.showHelp {
		modal := lipgloss.NewStyle().Border(borderASCII).Padding(1, 2).Render(helpContent())
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
	}

	contentHeight := max(m.height-3, 1)
	leftWidth, rightWidth := splitWidths(m.width)

	var left, right string
	rightFocused := false
	switch m.activeTab {
	case tabTimer:
		left, right = m.timerView(), m.timerList.View()
	case tabTasks:
		left, right = m.taskList.View(), m.dayView()
		rightFocused = m.adding
	case tabWheel:
		left, right = m.wheelList.View(), m.wheelView()
	case tabLeaderboard:
		left, right = m.boardList.View(), m.entryView(rightWidth-4)
	}

	leftPane := m.renderPane(left, leftWidth, contentHeight, !rightFocused)
	rightPane := m.renderPane(right, rightWidth, contentHeight, rightFocused)
	content := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)

	return strings.Join([]string{m.renderTabs(), m.renderHelpLine(), content, m.renderStatusLine()}, "\n")
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}
	if m.showHelp {
		switch key {
		case "?", "esc":
			m.showHelp = false
		case "q":
			return m, tea.Quit
		}
		return m, nil
	}
	if m.adding {
		return m.updateTaskInput(msg)
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "?":
		m.showHelp = true
		return m, nil
	case "tab", "]":
		return m.activateTab((m.activeTab + 1) % tabCount)
	case "shift+tab", "backtab", "[":
		return m.activateTab((m.activeTab + tabCount - 1) % tabCount)
	}

	switch m.activeTab {
	case tabTimer:
		return m.handleTimerKey(msg)
	case tabTasks:
		return m.handleTasksKey(msg)
	case tabWheel:
		return m.handleWheelKey(msg)
	case tabLeaderboard:
		return m.handleLeaderboardKey(msg)
	}
	return m, nil
}

func (m model) activateTab(target tabKind) (tea.Model, tea.Cmd) {
	if target == m.activeTab {
		return m, nil
	}
	m.activeTab = target
	m.reloadTasks()
	return m, nil
}

func (m *model) reloadTasks() {
	today := m.opts.Store.Today()
	pending := m.opts.Store.ListPending(today)

	timerItems := make([]list.Item, 0, len(pending))
	wheelItems := make([]list.Item, 0, len(pending))
	for _, item := range pending {
		timerItems = append(timerItems, taskItem{task: item, chosen: m.chosen[item.Text]})
		wheelItems = append(wheelItems, taskItem{task: item})
	}
	setItems(&m.timerList, timerItems)
	setItems(&m.wheelList, wheelItems)

	tasks := m.opts.Store.List(m.day)
	dayItems := make([]list.Item, 0, len(tasks))
	for _, item := range tasks {
		dayItems = append(dayItems, taskItem{task: item})
	}
	setItems(&m.taskList, dayItems)
	m.taskList.Title = "Tasks " + m.day
}

func setItems(l *list.Model, items []list.Item) {
	index := l.Index()
	l.SetItems(items)
	if len(items) == 0 {
		return
	}
	l.Select(min(max(index, 0), len(items)-1))
}

func moveSelection(l *list.Model, delta int) {
	count := len(l.Items())
	if count == 0 {
		return
	}
	next := min(max(l.Index()+delta, 0), count-1)
	l.Select(next)
}

func (m model) loadLeaderboardCmd() tea.Cmd {
	ctx := m.ctx
	repo := m.opts.Repository
	return func() tea.Msg {
		if repo == nil {
			return leaderboardLoadedMsg{entries: []leaderboard.Entry{}, err: session.ErrNoRepository}
		}
		records, err := repo.FetchAll(ctx)
		if err != nil {
			return leaderboardLoadedMsg{entries: []leaderboard.Entry{}, err: err}
		}
		return leaderboardLoadedMsg{entries: leaderboard.Aggregate(records)}
	}
}

func (m model) handleLeaderboardLoaded(msg leaderboardLoadedMsg) (tea.Model, tea.Cmd) {
	m.boardLoading = false
	if msg.err != nil {
		m.setStatus(fmt.Sprintf("Leaderboard load failed: %v", msg.err), statusError)
	}
	items := make([]list.Item, 0, len(msg.entries))
	for _, entry := range msg.entries {
		items = append(items, entryItem{entry: entry})
	}
	setItems(&m.boardList, items)
	return m, nil
}

func waitUploadCmd(ctx context.Context, upload *session.Upload, what string) tea.Cmd {
	if upload == nil {
		return nil
	}
	return func() tea.Msg {
		_, err := upload.Wait(ctx)
		return uploadDoneMsg{what: what, err: err}
	}
}

func (m model) handleUploadDone(msg uploadDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if errors.Is(msg.err, session.ErrNoRepository) {
			return m, nil
		}
		m.setStatus(fmt.Sprintf("Upload of %s failed: %v", msg.what, msg.err), statusError)
		return m, nil
	}
	m.boardLoading = true
	return m, m.loadLeaderboardCmd()
}

func (m *model) resize() {
	contentHeight := max(m.height-3, 1)
	leftWidth, rightWidth := splitWidths(m.width)
	listWidth := max(leftWidth-4, 1)
	listHeight := max(contentHeight-2, 1)
	m.taskList.SetSize(listWidth, listHeight)
	m.wheelList.SetSize(listWidth, listHeight)
	m.boardList.SetSize(listWidth, listHeight)
	m.timerList.SetSize(max(rightWidth-4, 1), listHeight)
	m.input.Width = max(rightWidth-8, 1)
}

func splitWidths(width int) (int, int) {
	left := width / 3
	if left < 30 {
		left = 30
	}
	if left > width-20 {
		left = width / 2
	}
	right := width - left
	if right < 20 {
		right = 20
		left = width - right
	}
	return left, right
}

func (m model) renderTabs() string {
	parts := make([]string, 0, len(tabLabels))
	for i, label := range tabLabels {
		style := tabInactiveStyle
		if tabKind(i) == m.activeTab {
			style = tabActiveStyle
		}
		parts = append(parts, style.Render(label))
	}
	content := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	hint := valueMuted.Render(m.opts.Username + "  ? help")
	spacerWidth := max(m.width-lipgloss.Width(content)-lipgloss.Width(hint), 1)
	return tabBarStyle.Width(m.width).Render(content + strings.Repeat(" ", spacerWidth) + hint)
}

func (m model) renderPane(content string, width, height int, focused bool) string {
	style := paneStyle
	if focused {
		style = paneActiveStyle
	}
	return style.Width(max(width-2, 0)).Height(max(height-2, 0)).Render(content)
}

func (m model) renderStatusLine() string {
	if strings.TrimSpace(m.status) == "" {
		return ""
	}
	style := valueMuted
	switch m.statusLevel {
	case statusError:
		style = statusErrorStyle
	case statusInfo:
		style = statusSuccessStyle
	}
	return style.Render(m.status)
}

func (m model) renderHelpLine() string {
	return helpBarStyle.Width(m.width).Render(truncateText(m.helpSummary(), m.width))
}

func (m model) helpSummary() string {
	switch m.activeTab {
	case tabTimer:
		return "Keys: 0-9 minutes | enter start/pause | f finish | x cancel | space pick task | tab switch tabs | ? help | q quit"
	case tabTasks:
		if m.adding {
			return "Keys: enter save | esc cancel"
		}
		return "Keys: a add | d done | x delete | left/right day | t today | tab switch tabs | ? help | q quit"
	case tabWheel:
		return "Keys: enter spin | d mark picked done | esc dismiss | tab switch tabs | ? help | q quit"
	default:
		return "Keys: up/down move | r refresh | tab switch tabs | ? help | q quit"
	}
}

func (m *model) setStatus(text string, level statusLevel) {
	m.status = text
	m.statusLevel = level
}

func helpContent() string {
	sections := []string{
		labelStyle.Render("Global"),
		"q or ctrl+c: quit",
		"tab / shift+tab or [ ]: switch tabs",
		"up/down or j/k: move selection",
		"?: toggle help",
		"",
		labelStyle.Render("Timer"),
		"0-9 and backspace: session length in minutes",
		"enter: start, pause or resume",
		"space: add the selected task to the session",
		"f: finish early, x: cancel",
		"",
		labelStyle.Render("Tasks"),
		"a: add, d: mark done, x: delete",
		"left/right: previous/next day, t: today",
		"",
		labelStyle.Render("Wheel"),
		"enter: spin, d: mark the pick done",
		"",
		labelStyle.Render("Leaderboard"),
		"r: refresh",
		"",
		"press ? or esc to close",
	}
	return strings.Join(sections, "\n")
}
