package bankview

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/pkg/errors"

	nt "bankview/entity"
	"bankview/form"
	"bankview/message"
	"bankview/style"
)

// reportScreen exports a client's pdf statement for a date range
type reportScreen struct {
	env      *env
	clientId string
	name     string

	dates [2]form.TextInput // from, to
	focus int
	path  string // last export
}

func newReportScreen(env *env, clientId, name string) reportScreen {

	return reportScreen{
		env:      env,
		clientId: clientId,
		name:     name,
		dates: [2]form.TextInput{
			form.NewTextInput(env.cfg.Report.From, 10),
			form.NewTextInput(env.today().Format(nt.DateFormat), 10),
		},
	}
}

func (scr reportScreen) Title() string {
	return "Reporte " + scr.name
}

func (scr reportScreen) Load() tea.Cmd {
	return nil
}

func (scr reportScreen) Capturing() bool {
	return false
}

func (scr reportScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {

	switch msg := msg.(type) {
	case exportedMsg:
		if msg.clientId == scr.clientId {
			scr.path = msg.path
			return scr, message.StatusCmd("Reporte guardado en " + msg.path)
		}
		return scr, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			scr.focus = 1 - scr.focus
			return scr, nil

		case "x", "enter":
			qry, err := scr.query()
			if err != nil {
				return scr, message.ErrorCmd(err)
			}
			return scr, scr.env.exportReport(qry)

		case "backspace", "delete", "left", "right", "home", "end":
			scr.dates[scr.focus] = scr.dates[scr.focus].Update(msg).(form.TextInput)
			return scr, nil
		}

		if isDateText(msg.Text) {
			scr.dates[scr.focus] = scr.dates[scr.focus].Update(msg).(form.TextInput)
		}
	}

	return scr, nil
}

func (scr reportScreen) Render() string {

	label := func(i int, text string) string {
		if i == scr.focus {
			return style.FocusLabelStyle.Render(text)
		}
		return style.LabelStyle.Render(text)
	}

	lines := []string{
		style.TitleStyle.Render("Reporte de " + scr.name),
		"",
		label(0, "Fecha desde") + " " + scr.dates[0].Render(scr.focus == 0),
		label(1, "Fecha hasta") + " " + scr.dates[1].Render(scr.focus == 1),
		"",
	}
	if scr.path != "" {
		lines = append(lines, "Guardado en "+scr.path)
	}
	lines = append(lines, style.MutedStyle.Render("tab: campo · x/enter: exportar pdf · esc: volver"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// unexported

// query checks the dates and builds the report request
func (scr reportScreen) query() (qry nt.ReportQuery, err error) {

	from := scr.dates[0].Value().(string)
	to := scr.dates[1].Value().(string)

	start, err := time.Parse(nt.DateFormat, from)
	if err != nil {
		err = errors.Errorf("fecha desde invalida: %q", from)
		return
	}
	end, err := time.Parse(nt.DateFormat, to)
	if err != nil {
		err = errors.Errorf("fecha hasta invalida: %q", to)
		return
	}
	if start.After(end) {
		err = errors.New("La fecha de inicio no puede ser posterior a la fecha fin")
		return
	}

	qry = nt.ReportQuery{
		ClienteId:  scr.clientId,
		FechaDesde: from,
		FechaHasta: to,
	}
	return
}

func isDateText(text string) bool {

	if text == "" {
		return false
	}
	for _, r := range text {
		if (r < '0' || r > '9') && r != '-' {
			return false
		}
	}
	return true
}
