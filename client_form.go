package bankview

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	nt "bankview/entity"
	"bankview/form"
	"bankview/message"
	"bankview/style"
)

// formScreen creates or edits a client
type formScreen struct {
	env    *env
	form   form.Form
	saving bool
}

func newFormScreen(env *env, client nt.Client) formScreen {
	return formScreen{env: env, form: form.New(client)}
}

func (scr formScreen) Title() string {
	if scr.form.Creating() {
		return "Nuevo cliente"
	}
	return "Editar cliente"
}

func (scr formScreen) Load() tea.Cmd {
	return nil
}

// Capturing is always true, letters are text here
func (scr formScreen) Capturing() bool {
	return true
}

func (scr formScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {

	switch msg := msg.(type) {
	case form.SubmitMsg:
		if scr.saving {
			return scr, nil
		}
		scr.saving = true
		return scr, scr.env.saveClient(msg.Client, msg.Create)

	case savedMsg:
		status := "Cliente actualizado"
		if msg.create {
			status = "Cliente creado"
		}
		return scr, tea.Batch(message.BackCmd(true), message.StatusCmd(status))

	case message.ErrorMsg:
		scr.saving = false
		return scr, nil

	case tea.KeyPressMsg:
		if msg.String() == "esc" {
			return scr, message.BackCmd(false)
		}
		if scr.saving {
			return scr, nil
		}
		var cmd tea.Cmd
		scr.form, cmd = scr.form.Update(msg)
		return scr, cmd
	}

	return scr, nil
}

func (scr formScreen) Render() string {

	if !scr.saving {
		return scr.form.Render()
	}
	return lipgloss.JoinVertical(lipgloss.Left, scr.form.Render(), style.MutedStyle.Render("Guardando..."))
}
