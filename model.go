package bankview

import (
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"bankview/message"
	"bankview/style"
)

const (
	footerHeight = 2
)

// Model is the bubbletea model, a stack of screens with a footer.
type Model struct {
	env   *env
	stack []Screen

	errorString string
	status      string

	Width  int
	Height int
}

func newModel(env *env) Model {
	return Model{
		env:   env,
		stack: []Screen{newClientsScreen(env)},
	}
}

func (m Model) Init() tea.Cmd {
	return m.top().Load()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch typed := msg.(type) {

	case pushMsg:
		return m.push(typed.screen)

	case message.BackMsg:
		return m.pop(typed.Reload)

	case message.StatusMsg:
		m.status = typed.Text
		return m, nil

	case message.ErrorMsg:
		m.env.logger.Error(m.env.ctx, "error msg", typed.Err)
		m.errorString = typed.Err.Error()
		m.status = ""
		// screens see it too, to drop any pending state

	case tea.KeyPressMsg:
		m.errorString = ""
		m.status = ""

		if typed.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if !m.top().Capturing() {
			switch typed.String() {
			case "q":
				return m, tea.Quit
			case "esc":
				if len(m.stack) == 1 {
					return m, tea.Quit
				}
				return m.pop(false)
			}
		}

		// keys go to the top screen only
		scr, cmd := m.top().Update(typed)
		m.stack = slices.Clone(m.stack)
		m.stack[len(m.stack)-1] = scr
		return m, cmd

	case tea.WindowSizeMsg:
		m.Width = typed.Width
		m.Height = typed.Height
		msg = m.sizeMsg()
	}

	// Broadcast to every screen on the stack
	stack := slices.Clone(m.stack)
	cmds := make([]tea.Cmd, len(stack))
	for i, scr := range stack {
		stack[i], cmds[i] = scr.Update(msg)
	}
	m.stack = stack

	return m, tea.Batch(cmds...)
}

func (m Model) View() tea.View {
	if m.Width == 0 {
		return tea.NewView("Cargando...")
	}

	screenLayer := lipgloss.NewLayer("screen", m.top().Render())
	footerLayer := lipgloss.NewLayer("footer", m.footer()).Y(m.Height - footerHeight)

	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(screenLayer)
	canvas.Compose(footerLayer)

	view := tea.NewView(canvas)
	view.AltScreen = true
	return view
}

// unexported

func (m Model) top() Screen {
	return m.stack[len(m.stack)-1]
}

func (m Model) sizeMsg() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{
		Width:  m.Width,
		Height: m.Height - footerHeight,
	}
}

func (m Model) push(scr Screen) (Model, tea.Cmd) {

	var cmd tea.Cmd
	if m.Width > 0 {
		scr, cmd = scr.Update(m.sizeMsg())
	}
	m.stack = append(slices.Clone(m.stack), scr)
	m.status = ""

	return m, tea.Batch(cmd, scr.Load())
}

func (m Model) pop(reload bool) (Model, tea.Cmd) {

	if len(m.stack) == 1 {
		return m, nil
	}
	m.stack = slices.Clone(m.stack[:len(m.stack)-1])

	if reload {
		return m, m.top().Load()
	}
	return m, nil
}

func (m Model) trail() string {

	titles := make([]string, len(m.stack))
	for i, scr := range m.stack {
		titles[i] = scr.Title()
	}
	return strings.Join(titles, " › ")
}

func (m Model) footer() string {

	if m.errorString != "" {
		return style.ErrorStyle.Render(m.errorString)
	}

	right := "q: salir · esc: volver"
	if m.status != "" {
		right = m.status
	}
	return RenderFooter(m.trail(), right, m.Width)
}
