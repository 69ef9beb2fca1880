package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todor/internal/logger"
	"github.com/idilsaglam/todor/internal/model"
	"github.com/idilsaglam/todor/internal/state"
)

// Gateway is the slice of the API client the TUI drives. Declared here so
// tests can substitute a fake.
type Gateway interface {
	Users(ctx context.Context) ([]model.User, error)
	Todos(ctx context.Context) ([]model.Todo, error)
	CreateTodo(ctx context.Context, userID int, title string) (model.Todo, error)
	SetCompleted(ctx context.Context, id int, completed bool) (model.Todo, error)
	DeleteTodo(ctx context.Context, id int) error
}

// todoItem adapts a todo plus its resolved author name to bubbles/list.Item.
type todoItem struct {
	Todo   model.Todo
	Author string
}

func (i todoItem) TitleText() string {
	box := boxUnchecked
	if i.Todo.Completed {
		box = boxChecked
	}
	return fmt.Sprintf("%s %s", box, i.Todo.Title)
}

// Implement list.Item interface
func (i todoItem) Title() string       { return i.TitleText() }
func (i todoItem) Description() string { return "" }
func (i todoItem) FilterValue() string { return i.Todo.Title }

// Messages delivered by gateway commands.
type (
	usersLoadedMsg   []model.User
	todosLoadedMsg   []model.Todo
	startupFailedMsg struct{ err error }
	todoCreatedMsg   model.Todo
	todoToggledMsg   model.Todo
	todoDeletedMsg   int
	opFailedMsg      struct{ err error }
)

// Model is the Bubble Tea model for the remote todo list.
type Model struct {
	gw    Gateway
	store *state.Store

	list  list.Model
	spin  spinner.Model
	alert Alert

	// Startup fan-in: each half is held until both arrive; nothing renders
	// from partial data.
	users      []model.User
	todos      []model.Todo
	gotUsers   bool
	gotTodos   bool
	loadFailed bool
	ready      bool

	// Inline create
	adding  bool
	ti      textinput.Model
	picker  []model.User // selectable options, server order
	userIdx int          // selected picker entry
	addErr  string

	width, height int
}

// Custom delegate to control how rows render (single line).
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(todoItem)

	box := mutedStyle.Render(boxUnchecked)
	text := it.Todo.Title
	if it.Todo.Completed {
		box = successStyle.Render(boxChecked)
		text = doneStyle.Render(text)
	}

	line := fmt.Sprintf("%s %s %s", box, text, mutedStyle.Render("by "+it.Author))
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

// New builds the TUI model around an injected gateway and state store.
func New(gw Gateway, store *state.Store) Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.Title = titleStyle.Render("Todos")
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("todo", "todos")

	// Extend help with the remote actions
	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	toggleBind := key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	delBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	dismissBind := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss alert"))
	extra := func() []key.Binding { return []key.Binding{addBind, toggleBind, delBind, dismissBind} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = accentStyle

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New todo title..."
	ti.CharLimit = 200

	return Model{
		gw:     gw,
		store:  store,
		list:   l,
		spin:   sp,
		ti:     ti,
		width:  80,
		height: 24,
	}
}

// Run starts the program in the alternate screen.
func Run(gw Gateway, store *state.Store) error {
	p := tea.NewProgram(New(gw, store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init fans out the two startup fetches in parallel.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.fetchUsersCmd(), m.fetchTodosCmd())
}

// ---------------------------------------------------
// Gateway commands
// ---------------------------------------------------

func (m Model) fetchUsersCmd() tea.Cmd {
	return func() tea.Msg {
		users, err := m.gw.Users(context.Background())
		if err != nil {
			return startupFailedMsg{err}
		}
		return usersLoadedMsg(users)
	}
}

func (m Model) fetchTodosCmd() tea.Cmd {
	return func() tea.Msg {
		todos, err := m.gw.Todos(context.Background())
		if err != nil {
			return startupFailedMsg{err}
		}
		return todosLoadedMsg(todos)
	}
}

func (m Model) createCmd(userID int, title string) tea.Cmd {
	return func() tea.Msg {
		todo, err := m.gw.CreateTodo(context.Background(), userID, title)
		if err != nil {
			return opFailedMsg{err}
		}
		return todoCreatedMsg(todo)
	}
}

func (m Model) toggleCmd(id int, completed bool) tea.Cmd {
	return func() tea.Msg {
		todo, err := m.gw.SetCompleted(context.Background(), id, completed)
		if err != nil {
			return opFailedMsg{err}
		}
		return todoToggledMsg(todo)
	}
}

func (m Model) deleteCmd(id int) tea.Cmd {
	return func() tea.Msg {
		if err := m.gw.DeleteTodo(context.Background(), id); err != nil {
			return opFailedMsg{err}
		}
		return todoDeletedMsg(id)
	}
}

// ---------------------------------------------------
// Update
// ---------------------------------------------------

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.ready || m.loadFailed {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case usersLoadedMsg:
		m.users = msg
		m.gotUsers = true
		return m.finishStartup(), nil

	case todosLoadedMsg:
		m.todos = msg
		m.gotTodos = true
		return m.finishStartup(), nil

	case startupFailedMsg:
		m.loadFailed = true
		m.alert.ShowStartup(msg.err.Error())
		logger.ErrorWithStack(msg.err)
		return m, nil

	case todoCreatedMsg:
		todo := model.Todo(msg)
		snap := m.store.Current().WithTodo(todo)
		m.store.Replace(snap)
		// Most-recent-first: new todos go to the head of the list.
		m.list.InsertItem(0, rowFor(todo, snap))
		m.refreshTitle()
		return m, nil

	case todoToggledMsg:
		todo := model.Todo(msg)
		snap := m.store.Current().WithTodo(todo)
		m.store.Replace(snap)
		// Replace the whole row from fresh data, never just the glyph.
		for i, it := range m.list.Items() {
			if row, ok := it.(todoItem); ok && row.Todo.ID == todo.ID {
				m.list.SetItem(i, rowFor(todo, snap))
				break
			}
		}
		m.refreshTitle()
		return m, nil

	case todoDeletedMsg:
		id := int(msg)
		m.store.Replace(m.store.Current().WithoutTodo(id))
		for i, it := range m.list.Items() {
			if row, ok := it.(todoItem); ok && row.Todo.ID == id {
				m.list.RemoveItem(i)
				break
			}
		}
		m.refreshTitle()
		return m, nil

	case opFailedMsg:
		m.alert.Show(msg.err.Error())
		logger.ErrorWithStack(msg.err)
		return m, nil
	}

	if m.adding {
		return m.updateAdding(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "x":
			m.alert.Hide()
			return m, nil
		}
		if !m.ready {
			return m, nil
		}
		switch msg.String() {
		case " ":
			if row, ok := m.selectedRow(); ok {
				return m, m.toggleCmd(row.Todo.ID, !row.Todo.Completed)
			}
			return m, nil
		case "d":
			if row, ok := m.selectedRow(); ok {
				return m, m.deleteCmd(row.Todo.ID)
			}
			return m, nil
		case "a":
			m.adding = true
			m.addErr = ""
			m.userIdx = 0
			m.ti.SetValue("")
			m.ti.Focus()
			return m, nil
		}
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// updateAdding handles the inline create bar: the text input plus the user
// picker cycled with left/right.
func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch x := msg.(type) {
	case tea.KeyMsg:
		switch x.String() {
		case "enter":
			title := strings.TrimSpace(m.ti.Value())
			if title == "" {
				m.addErr = "Title cannot be empty"
				return m, nil
			}
			if len(m.picker) == 0 {
				m.addErr = "No users loaded"
				return m, nil
			}
			userID := m.picker[m.userIdx].ID
			m.adding = false
			m.ti.SetValue("")
			m.ti.Blur()
			return m, m.createCmd(userID, title)
		case "esc":
			m.adding = false
			m.addErr = ""
			m.ti.SetValue("")
			m.ti.Blur()
			return m, nil
		case "left", "shift+tab":
			if len(m.picker) > 0 {
				m.userIdx = (m.userIdx + len(m.picker) - 1) % len(m.picker)
			}
			return m, nil
		case "right", "tab":
			if len(m.picker) > 0 {
				m.userIdx = (m.userIdx + 1) % len(m.picker)
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

// finishStartup runs the fan-in: only when both fetches have resolved and
// neither failed is the store loaded and the initial view built.
func (m Model) finishStartup() Model {
	if !m.gotUsers || !m.gotTodos || m.loadFailed {
		return m
	}
	snap := state.Load(m.users, m.todos)
	m.store.Replace(snap)
	m.picker = m.users

	items := make([]list.Item, 0, len(m.todos))
	for _, t := range m.todos {
		items = append(items, rowFor(t, snap))
	}
	m.list.SetItems(items)
	m.ready = true
	m.refreshTitle()
	return m
}

func rowFor(t model.Todo, snap *state.Snapshot) todoItem {
	author, ok := snap.UserName(t.UserID)
	if !ok {
		author = "unknown"
	}
	return todoItem{Todo: t, Author: author}
}

func (m *Model) selectedRow() (todoItem, bool) {
	i := m.list.Index()
	if i < 0 || i >= len(m.list.Items()) {
		return todoItem{}, false
	}
	row, ok := m.list.Items()[i].(todoItem)
	return row, ok
}

// refreshTitle keeps the live done/pending counts in the header.
func (m *Model) refreshTitle() {
	done, pending := 0, 0
	for _, t := range m.store.Current().Todos {
		if t.Completed {
			done++
		} else {
			pending++
		}
	}
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("Todos"),
		successStyle.Render("✔"), done,
		pendingStyle.Render("•"), pending,
		accentStyle.Render("Total"), done+pending,
	)
}

// ---------------------------------------------------
// View
// ---------------------------------------------------

func (m Model) View() string {
	if !m.ready {
		content := m.spin.View() + " fetching users and todos..."
		if m.loadFailed {
			// Nothing renders from a failed startup, just the alert.
			content = mutedStyle.Render("nothing loaded")
		}
		if m.alert.Visible() {
			content += "\n" + m.alert.View()
		}
		return panelString(content)
	}

	listHeight := m.height - 4
	if m.adding {
		listHeight = m.height - 6
	}
	if m.alert.Visible() {
		listHeight -= 3
	}
	m.list.SetSize(m.width-2, listHeight)

	content := m.list.View()
	if m.adding {
		bar := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
		title := "Add new todo for " + accentStyle.Render(m.pickerLabel()) + mutedStyle.Render("  ←/→ to switch user")
		if m.addErr != "" {
			title += "  " + errorStyle.Render(m.addErr)
		}
		content += "\n" + bar.Render(title+"\n"+m.ti.View())
	}
	if m.alert.Visible() {
		content += "\n" + m.alert.View()
	}
	return panelString(content)
}

func (m Model) pickerLabel() string {
	if len(m.picker) == 0 {
		return "(no users)"
	}
	return m.picker[m.userIdx].Name
}

// helpers for View
func panelString(inner string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(inner)
}
