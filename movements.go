package bankview

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	nt "bankview/entity"
	"bankview/grid"
	"bankview/style"
)

const movementsChrome = 2 // title and period

// movementsScreen lists one account's movements within the configured dates
type movementsScreen struct {
	env      *env
	clientId string
	number   string
	panel    grid.Panel
}

func newMovementsScreen(env *env, clientId, number string) movementsScreen {

	bindings := grid.Bindings{
		Actions: []grid.Action{
			{Label: "Detalle", Fn: grid.Bind(func(row nt.Record) tea.Cmd {
				return pushCmd(newDetailScreen("Movimiento "+row.Id(), row))
			})},
		},
	}

	return movementsScreen{
		env:      env,
		clientId: clientId,
		number:   number,
		panel:    grid.NewPanel(grid.New(env.layout.Movements, env.cfg.PageSize, bindings), "Sin movimientos en el periodo"),
	}
}

func (scr movementsScreen) Title() string {
	return "Movimientos " + scr.number
}

func (scr movementsScreen) Load() tea.Cmd {
	return scr.env.fetchMovements(scr.clientId, scr.number)
}

func (scr movementsScreen) Capturing() bool {
	return scr.panel.Capturing()
}

func (scr movementsScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {

	switch msg := msg.(type) {
	case movementsMsg:
		if msg.clientId == scr.clientId && msg.number == scr.number {
			scr.panel = scr.panel.SetData(msg.records)
		}
		return scr, nil

	case tea.WindowSizeMsg:
		var cmd tea.Cmd
		scr.panel, cmd = scr.panel.Update(grid.SizeMsg{Width: msg.Width, Height: msg.Height - movementsChrome})
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

func (scr movementsScreen) Render() string {

	period := style.MutedStyle.Render("Del " + scr.env.cfg.MovesFrom + " al " + scr.env.cfg.MovesTo)
	return lipgloss.JoinVertical(lipgloss.Left,
		style.TitleStyle.Render(scr.Title()),
		period,
		scr.panel.Render(),
	)
}
