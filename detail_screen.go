package bankview

import (
	tea "charm.land/bubbletea/v2"

	nt "bankview/entity"
	"bankview/detail"
)

// detailScreen shows any row in full
type detailScreen struct {
	title string
	panel detail.DetailPanel
}

func newDetailScreen(title string, rec nt.Record) detailScreen {
	return detailScreen{title: title, panel: detail.NewDetailPanel(title, rec)}
}

func (scr detailScreen) Title() string   { return scr.title }
func (scr detailScreen) Load() tea.Cmd   { return nil }
func (scr detailScreen) Capturing() bool { return false }
func (scr detailScreen) Render() string  { return scr.panel.Render() }

func (scr detailScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		scr.panel, cmd = scr.panel.Update(detail.SizeMsg{Width: msg.Width, Height: msg.Height})
	case tea.KeyPressMsg:
		scr.panel, cmd = scr.panel.Update(msg)
	}
	return scr, cmd
}
