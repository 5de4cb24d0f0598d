package bankview

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	nt "bankview/entity"
	"bankview/grid"
	"bankview/style"
)

const accountsChrome = 2 // title and spacer

// accountsScreen lists one client's accounts
type accountsScreen struct {
	env      *env
	clientId string
	name     string
	panel    grid.Panel
}

func newAccountsScreen(env *env, clientId, name string) accountsScreen {

	bindings := grid.Bindings{
		Actions: []grid.Action{
			{Label: "Ver movimientos", Fn: grid.Bind(func(row nt.Record) tea.Cmd {
				owner, _ := row.Lookup("clienteId")
				number, _ := row.Lookup("numeroCuenta")
				return pushCmd(newMovementsScreen(env, owner.String(), number.String()))
			})},
			{Label: "Detalle", Fn: grid.Bind(func(row nt.Record) tea.Cmd {
				number, _ := row.Lookup("numeroCuenta")
				return pushCmd(newDetailScreen("Cuenta "+number.String(), row))
			})},
		},
	}

	return accountsScreen{
		env:      env,
		clientId: clientId,
		name:     name,
		panel:    grid.NewPanel(grid.New(env.layout.Accounts, env.cfg.PageSize, bindings), "El cliente no tiene cuentas"),
	}
}

func (scr accountsScreen) Title() string {
	return "Cuentas de " + scr.name
}

func (scr accountsScreen) Load() tea.Cmd {
	return scr.env.fetchAccounts(scr.clientId)
}

func (scr accountsScreen) Capturing() bool {
	return scr.panel.Capturing()
}

func (scr accountsScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {

	switch msg := msg.(type) {
	case accountsMsg:
		if msg.clientId == scr.clientId {
			scr.panel = scr.panel.SetData(msg.records)
		}
		return scr, nil

	case tea.WindowSizeMsg:
		var cmd tea.Cmd
		scr.panel, cmd = scr.panel.Update(grid.SizeMsg{Width: msg.Width, Height: msg.Height - accountsChrome})
		return scr, cmd

	case tea.KeyPressMsg:
		if msg.String() == "r" && !scr.panel.Capturing() {
			return scr, scr.Load()
		}
		var cmd tea.Cmd
		scr.panel, cmd = scr.panel.Update(msg)
		return scr, cmd
	}

	return scr, nil
}

func (scr accountsScreen) Render() string {

	return lipgloss.JoinVertical(lipgloss.Left,
		style.TitleStyle.Render(scr.Title()),
		"",
		scr.panel.Render(),
	)
}
