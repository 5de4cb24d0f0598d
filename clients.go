package bankview

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	nt "bankview/entity"
	"bankview/form"
	"bankview/grid"
	"bankview/message"
	"bankview/style"
)

const clientsChrome = 3 // title, spacer and hint/search line

// clientsScreen lists clients, with username search
type clientsScreen struct {
	env   *env
	panel grid.Panel

	all       []nt.Record // as fetched, before search
	term      string
	search    form.TextInput
	searching bool
}

func newClientsScreen(env *env) clientsScreen {

	bindings := grid.Bindings{
		Edit:   grid.Bind(env.editClient),
		Delete: grid.Bind(env.deleteClient),
		Actions: []grid.Action{
			{Label: "Ver cuentas", Fn: grid.Bind(func(row nt.Record) tea.Cmd {
				return pushCmd(newAccountsScreen(env, row.Id(), clientName(row)))
			})},
			{Label: "Reporte", Fn: grid.Bind(func(row nt.Record) tea.Cmd {
				return pushCmd(newReportScreen(env, row.Id(), clientName(row)))
			})},
			{Label: "Detalle", Fn: grid.Bind(func(row nt.Record) tea.Cmd {
				return pushCmd(newDetailScreen("Cliente "+clientName(row), row))
			})},
		},
	}

	return clientsScreen{
		env:    env,
		panel:  grid.NewPanel(grid.New(env.layout.Clients, env.cfg.PageSize, bindings), "No hay clientes"),
		search: form.NewTextInput("", 40),
	}
}

func (scr clientsScreen) Title() string {
	return "Clientes"
}

func (scr clientsScreen) Load() tea.Cmd {
	return scr.env.fetchClients()
}

func (scr clientsScreen) Capturing() bool {
	return scr.searching || scr.panel.Capturing()
}

func (scr clientsScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {

	switch msg := msg.(type) {
	case clientsMsg:
		scr.all = msg.records
		scr.panel = scr.panel.SetData(matchUsername(scr.all, scr.term))
		return scr, nil

	case deletedMsg:
		return scr, tea.Batch(scr.Load(), message.StatusCmd("Cliente eliminado"))

	case tea.WindowSizeMsg:
		var cmd tea.Cmd
		scr.panel, cmd = scr.panel.Update(grid.SizeMsg{Width: msg.Width, Height: msg.Height - clientsChrome})
		return scr, cmd

	case tea.KeyPressMsg:
		if scr.searching {
			return scr.searchKey(msg)
		}
		if !scr.panel.Capturing() {
			switch msg.String() {
			case "c":
				return scr, pushCmd(newFormScreen(scr.env, nt.Client{}))
			case "/":
				scr.searching = true
				scr.search = form.NewTextInput(scr.term, 40)
				return scr, nil
			case "r":
				return scr, scr.Load()
			}
		}
		var cmd tea.Cmd
		scr.panel, cmd = scr.panel.Update(msg)
		return scr, cmd
	}

	return scr, nil
}

func (scr clientsScreen) Render() string {

	parts := []string{style.TitleStyle.Render(scr.Title()), ""}
	switch {
	case scr.searching:
		parts = append(parts, "Buscar usuario: "+scr.search.Render(true))
	case scr.term != "":
		parts = append(parts, style.MutedStyle.Render("Usuario contiene \""+scr.term+"\" · / cambiar"))
	default:
		parts = append(parts, style.MutedStyle.Render("c: nuevo · /: buscar · enter: acciones · e: editar · d: eliminar"))
	}
	parts = append(parts, scr.panel.Render())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// unexported

func (scr clientsScreen) searchKey(msg tea.KeyPressMsg) (Screen, tea.Cmd) {

	switch msg.String() {
	case "esc":
		scr.searching = false
		return scr, nil

	case "enter":
		scr.searching = false
		scr.term = strings.TrimSpace(scr.search.Value().(string))
		scr.panel = scr.panel.Reset()
		return scr, scr.Load()
	}

	scr.search = scr.search.Update(msg).(form.TextInput)
	return scr, nil
}

// matchUsername keeps records whose username contains term, all of them for an empty term
func matchUsername(recs []nt.Record, term string) []nt.Record {

	if term == "" {
		return recs
	}

	matched := []nt.Record{}
	for _, rec := range recs {
		username, _ := rec.Lookup("username")
		if strings.Contains(username.String(), term) {
			matched = append(matched, rec)
		}
	}
	return matched
}

func clientName(row nt.Record) string {

	nombre, _ := row.Lookup("persona.nombre")
	apellido, _ := row.Lookup("persona.apellido")
	name := strings.TrimSpace(nombre.String() + " " + apellido.String())
	if name == "" {
		username, _ := row.Lookup("username")
		return username.String()
	}
	return name
}
