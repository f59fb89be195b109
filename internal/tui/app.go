package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/pdxmph/todo-tui/internal/task"
	"github.com/pdxmph/todo-tui/internal/theme"
	"github.com/pdxmph/todo-tui/internal/view"
)

// Options wires the model to its collaborators
type Options struct {
	Store    *task.Store
	KV       theme.KV
	ThemeKey string
	Mode     theme.Mode
	Sort     view.SortKey
	Logger   *log.Logger
	Now      func() time.Time
}

// Model represents the main application state
type Model struct {
	store    *task.Store
	kv       theme.KV
	themeKey string
	mode     theme.Mode
	styles   theme.Palette
	logger   *log.Logger
	now      func() time.Time

	selected int
	width    int
	height   int
	err      error

	// View selection
	filterMode   bool
	filter       textinput.Model
	statusFilter int
	sortKey      view.SortKey

	// Add form
	addMode   bool
	addField  int
	addInputs []textinput.Model
	addErr    error

	// Status picker
	statusMode     bool
	statusSelected int

	// Clear-all confirmation
	confirmClearMode bool

	infoMode bool
}

// Status filter choices, "" shows every task
var StatusFilters = []string{
	"",
	string(task.NotStarted),
	string(task.InProgress),
	string(task.Done),
}

// Add form field indices
const (
	AddFieldText = iota
	AddFieldDate
	AddFieldCount
)

// New creates a new application model
func New(opts Options) *Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.ThemeKey == "" {
		opts.ThemeKey = theme.DefaultKey
	}
	if opts.Mode == "" {
		opts.Mode = theme.Light
	}

	// Setup filter input
	ti := textinput.New()
	ti.Placeholder = "Filter by name or date..."
	ti.Width = 30
	ti.CharLimit = 100
	ti.Prompt = "/ "

	// Setup add inputs
	addInputs := make([]textinput.Model, AddFieldCount)
	for i := range addInputs {
		addInputs[i] = textinput.New()
		addInputs[i].Width = 40

		switch i {
		case AddFieldText:
			addInputs[i].Placeholder = "Task name"
			addInputs[i].CharLimit = 200
		case AddFieldDate:
			addInputs[i].Placeholder = "Due date (YYYY-MM-DD)"
			addInputs[i].CharLimit = len(task.DateLayout)
		}
	}

	return &Model{
		store:     opts.Store,
		kv:        opts.KV,
		themeKey:  opts.ThemeKey,
		mode:      opts.Mode,
		styles:    theme.Styles(opts.Mode),
		logger:    opts.Logger,
		now:       opts.Now,
		sortKey:   opts.Sort,
		filter:    ti,
		addInputs: addInputs,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.width > 0 {
			m.filter.Width = m.width / 3
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case m.infoMode:
			return m.updateInfo(msg)
		case m.confirmClearMode:
			return m.updateConfirmClear(msg)
		case m.addMode:
			return m.updateAdd(msg)
		case m.statusMode:
			return m.updateStatus(msg)
		case m.filterMode:
			return m.updateFilter(msg)
		}
		return m.updateNormal(msg)
	}

	return m, nil
}

func (m Model) updateInfo(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "?", "q", "enter":
		m.infoMode = false
	}
	return m, nil
}

func (m Model) updateConfirmClear(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if err := m.store.Clear(); err != nil {
			m.err = err
		} else {
			m.logger.Info("cleared all tasks")
		}
		m.selected = 0
	}
	// Any other key cancels
	m.confirmClearMode = false
	return m, nil
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeAddForm()
		return m, nil

	case "tab", "shift+tab", "down", "up":
		m.addInputs[m.addField].Blur()
		m.addField = (m.addField + 1) % AddFieldCount
		m.addInputs[m.addField].Focus()
		return m, textinput.Blink

	case "enter":
		text := m.addInputs[AddFieldText].Value()
		date := m.addInputs[AddFieldDate].Value()
		if err := m.store.Add(text, date, m.now()); err != nil {
			m.addErr = err
			// Put the cursor on the field that needs fixing
			var ve *task.ValidationError
			if errors.As(err, &ve) {
				field := AddFieldDate
				if ve == task.ErrEmptyText || ve == task.ErrTextTooLong {
					field = AddFieldText
				}
				m.addInputs[m.addField].Blur()
				m.addField = field
				m.addInputs[m.addField].Focus()
			}
			return m, nil
		}
		m.logger.Info("added task", "position", m.store.Len()-1, "due", strings.TrimSpace(date))
		m.closeAddForm()
		m.selected = m.ensureValidSelection()
		return m, nil
	}

	// Feedback clears on the next keystroke
	m.addErr = nil
	var cmd tea.Cmd
	m.addInputs[m.addField], cmd = m.addInputs[m.addField].Update(msg)
	return m, cmd
}

func (m *Model) closeAddForm() {
	m.addMode = false
	m.addField = AddFieldText
	m.addErr = nil
	for i := range m.addInputs {
		m.addInputs[i].Blur()
		m.addInputs[i].Reset()
	}
}

func (m Model) updateStatus(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	statuses := task.Statuses()
	switch msg.String() {
	case "esc":
		m.statusMode = false
		m.statusSelected = 0
	case "enter":
		if row, ok := m.selectedRow(); ok {
			newStatus := statuses[m.statusSelected]
			if err := m.store.SetStatus(row.Position, newStatus); err != nil {
				m.err = err
			} else {
				m.logger.Info("changed status", "position", row.Position, "status", newStatus)
			}
		}
		m.statusMode = false
		m.statusSelected = 0
		m.selected = m.ensureValidSelection()
	case "j", "down":
		if m.statusSelected < len(statuses)-1 {
			m.statusSelected++
		}
	case "k", "up":
		if m.statusSelected > 0 {
			m.statusSelected--
		}
	}
	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filterMode = false
		m.filter.Blur()
		m.filter.Reset()
		m.selected = m.ensureValidSelection()
		return m, nil
	case "enter":
		m.filterMode = false
		m.filter.Blur()
		m.selected = m.ensureValidSelection()
		return m, nil
	case "up":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down":
		if m.selected < len(m.visibleRows())-1 {
			m.selected++
		}
		return m, nil
	}

	// The view is derived on every render, so the filter applies live
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.selected = m.ensureValidSelection()
	return m, cmd
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "j", "down":
		if m.selected < len(m.visibleRows())-1 {
			m.selected++
		}

	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}

	case "/":
		m.filterMode = true
		m.filter.Focus()
		return m, textinput.Blink

	case "esc":
		if m.filter.Value() != "" {
			m.filter.Reset()
			m.selected = m.ensureValidSelection()
		}

	case "a":
		m.addMode = true
		m.addField = AddFieldText
		m.addInputs[AddFieldText].Focus()
		return m, textinput.Blink

	case "f":
		m.statusFilter = (m.statusFilter + 1) % len(StatusFilters)
		m.selected = m.ensureValidSelection()

	case "o":
		keys := view.SortKeys()
		next := 0
		for i, k := range keys {
			if k == m.sortKey {
				next = (i + 1) % len(keys)
				break
			}
		}
		m.sortKey = keys[next]

	case "s":
		if row, ok := m.selectedRow(); ok {
			m.statusMode = true
			m.statusSelected = 0
			// Preselect the current status
			for i, st := range task.Statuses() {
				if st == row.Task.Status() {
					m.statusSelected = i
					break
				}
			}
		}

	case "d", "x":
		if row, ok := m.selectedRow(); ok {
			if err := m.store.Remove(row.Position); err != nil {
				m.err = err
			} else {
				m.logger.Info("deleted task", "position", row.Position)
			}
			m.selected = m.ensureValidSelection()
		}

	case "D":
		if m.store.Len() > 0 {
			m.confirmClearMode = true
		}

	case "t":
		next := m.mode.Toggle()
		if m.kv != nil {
			if err := theme.Save(m.kv, m.themeKey, next); err != nil {
				m.err = err
				return m, nil
			}
		}
		m.mode = next
		m.styles = theme.Styles(next)
		m.logger.Debug("theme changed", "mode", next)

	case "?":
		m.infoMode = true
	}

	return m, nil
}

// query returns the current view selection
func (m Model) query() view.Query {
	return view.Query{
		Filter: m.filter.Value(),
		Status: StatusFilters[m.statusFilter],
		Sort:   m.sortKey,
	}
}

// visibleRows derives the rows currently on screen
func (m Model) visibleRows() []view.Row {
	return view.Derive(m.store.Tasks(), m.query())
}

func (m Model) selectedRow() (view.Row, bool) {
	rows := m.visibleRows()
	if len(rows) == 0 || m.selected >= len(rows) {
		return view.Row{}, false
	}
	return rows[m.selected], true
}

// ensureValidSelection ensures the current selection is within bounds
func (m Model) ensureValidSelection() int {
	rows := m.visibleRows()
	if len(rows) == 0 {
		return 0
	}
	if m.selected >= len(rows) {
		return len(rows) - 1
	}
	if m.selected < 0 {
		return 0
	}
	return m.selected
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	switch {
	case m.infoMode:
		return m.centered(m.renderInfo())
	case m.confirmClearMode:
		return m.centered(m.renderConfirmClear())
	case m.addMode:
		return m.centered(m.renderAddForm())
	case m.statusMode:
		return m.centered(m.renderStatusSelection())
	}

	header := m.renderHeader()
	list := m.styles.Border.
		Width(m.width - 2).
		Height(m.height - 4).
		Render(m.renderTable(m.width-4, m.height-4))
	help := m.renderHelp()

	return lipgloss.JoinVertical(lipgloss.Left, header, list, help)
}

// renderHeader shows the active filter, status filter and sort
func (m Model) renderHeader() string {
	status := StatusFilters[m.statusFilter]
	if status == "" {
		status = "All"
	}

	parts := []string{
		m.styles.Header.Render("Tasks"),
		m.styles.Muted.Render(fmt.Sprintf("status: %s", status)),
		m.styles.Muted.Render(fmt.Sprintf("sort: %s", m.sortKey.Label())),
	}
	if m.filterMode {
		parts = append(parts, m.filter.View())
	} else if f := m.filter.Value(); f != "" {
		parts = append(parts, m.styles.Muted.Render(fmt.Sprintf("filter: %q", f)))
	}
	return strings.Join(parts, "  ")
}

const (
	dateColWidth   = 11
	statusColWidth = 12
)

// renderTable renders the task rows that fit in height lines, scrolled so
// the selected row stays visible
func (m Model) renderTable(width, height int) string {
	textWidth := width - 2*dateColWidth - statusColWidth - 2
	if textWidth < 10 {
		textWidth = 10
	}

	cell := func(s string, w int) string {
		return lipgloss.NewStyle().Width(w).MaxWidth(w).Render(s)
	}

	var lines []string
	lines = append(lines, m.styles.Header.Render(
		"  "+cell("Task", textWidth)+cell("Due", dateColWidth)+cell("Added", dateColWidth)+cell("Status", statusColWidth),
	))

	rows := m.visibleRows()
	if len(rows) == 0 {
		lines = append(lines, "", m.styles.Muted.Render("No tasks found."))
		return strings.Join(lines, "\n")
	}

	// Calculate visible range
	visibleHeight := height - 1 // account for header
	if visibleHeight < 1 {
		visibleHeight = 1
	}
	startIdx := 0
	if m.selected >= visibleHeight {
		startIdx = m.selected - visibleHeight + 1
	}

	today := m.now().Format(task.DateLayout)
	for i := startIdx; i < len(rows) && i < startIdx+visibleHeight; i++ {
		t := rows[i].Task

		added := t.DateAdded()
		if added == "" {
			added = "-"
		}

		marker := "  "
		if t.Status() != task.Done && t.Date() < today {
			marker = m.styles.Overdue.Render("*") + " "
		}

		status := string(t.Status())
		line := cell(t.Text(), textWidth) + cell(t.Date(), dateColWidth) + cell(added, dateColWidth)
		if i == m.selected {
			line = m.styles.Selected.Render(line + cell(status, statusColWidth))
		} else {
			line = m.styles.Text.Render(line) + m.styles.Status(status).Render(cell(status, statusColWidth))
		}
		lines = append(lines, marker+line)
	}

	return strings.Join(lines, "\n")
}

// renderHelp renders the help line
func (m Model) renderHelp() string {
	if m.err != nil {
		return m.styles.Error.Render(" Error: " + m.err.Error())
	}
	if m.filterMode {
		return " type to filter • ↑/↓: navigate • Enter: keep • Esc: clear"
	}
	return " a: add • s: status • d: delete • D: delete all • /: filter • f: status filter • o: sort • t: theme • ?: info • q: quit"
}

// renderAddForm renders the add task overlay
func (m Model) renderAddForm() string {
	var lines []string
	lines = append(lines, "New task", "")

	labels := []string{"Name: ", "Due:  "}
	for i, input := range m.addInputs {
		lines = append(lines, labels[i]+input.View())
	}

	lines = append(lines, "")
	if m.addErr != nil {
		lines = append(lines, m.styles.Error.Render(m.addErr.Error()))
	} else {
		lines = append(lines, m.styles.Muted.Render(fmt.Sprintf("Today is %s", m.now().Format(task.DateLayout))))
	}
	lines = append(lines, "", "Tab: switch field • Enter: add • Esc: cancel")

	return m.styles.Overlay.Render(strings.Join(lines, "\n"))
}

// renderStatusSelection renders the status picker overlay
func (m Model) renderStatusSelection() string {
	row, ok := m.selectedRow()
	if !ok {
		return "No task selected"
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("Set status for %s:", row.Task.Text()), "")

	for i, st := range task.Statuses() {
		line := fmt.Sprintf("  %s", st)
		if i == m.statusSelected {
			line = m.styles.Selected.Render(line)
		}
		lines = append(lines, line)
	}

	lines = append(lines, "", "Press Enter to confirm, Esc to cancel")
	return m.styles.Overlay.Render(strings.Join(lines, "\n"))
}

// renderConfirmClear renders the delete-all prompt
func (m Model) renderConfirmClear() string {
	prompt := fmt.Sprintf("Delete all %d tasks? (y/N)", m.store.Len())
	return m.styles.Overlay.Render(m.styles.Error.Render(prompt))
}

// renderInfo renders the info overlay
func (m Model) renderInfo() string {
	lines := []string{
		m.styles.Header.Render("todo-tui"),
		"",
		"Add tasks with a name and a due date, then track them",
		"from Not Started to In Progress to Done.",
		"",
		"Tasks are saved after every change. Filter matches the",
		"task name (any case) or the due date. A * marks tasks",
		"past their due date that are not done.",
		"",
		fmt.Sprintf("Theme: %s (t to toggle)", m.mode),
		"",
		"Esc to close",
	}
	return m.styles.Overlay.Render(strings.Join(lines, "\n"))
}

// centered places a box in the middle of the screen
func (m Model) centered(box string) string {
	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(box)
}
