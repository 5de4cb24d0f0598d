// Package form edits a client record.
package form

import (
	"encoding/json"
	"reflect"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	nt "bankview/entity"
	"bankview/style"
)

const incomplete = "Por favor, completa todos los campos"

var generos = []string{"MASCULINO", "FEMENINO"}

// SubmitMsg carries a valid client out of the form.
type SubmitMsg struct {
	Client nt.Client
	Create bool
}

type field struct {
	path  string // json path within the client record
	label string
	piece Piece
	err   string
}

// Form is a client create/edit form
type Form struct {
	id        string
	personaId string
	fields    []field
	focus     int
	message   string
	validate  *validator.Validate
}

// New creates a form prefilled from client; a client with an id is edited rather than created.
func New(client nt.Client) Form {

	rec := toRecord(client)
	text := func(path string) string {
		val, _ := rec.Lookup(path)
		return val.String()
	}
	flag := func(path string) bool {
		val, _ := rec.Lookup(path)
		b, _ := val.Bool()
		return b
	}
	active := flag("estado") || client.Id == "" // new clients start active

	return Form{
		id:        client.Id,
		personaId: client.PersonaId,
		validate:  newValidate(),
		fields: []field{
			{path: "persona.nombre", label: "Nombre", piece: NewTextInput(text("persona.nombre"), 60)},
			{path: "persona.apellido", label: "Apellido", piece: NewTextInput(text("persona.apellido"), 60)},
			{path: "persona.genero", label: "Género", piece: NewOperator(generos, text("persona.genero"))},
			{path: "persona.fechaNacimiento", label: "Fecha nacimiento", piece: NewTextInput(text("persona.fechaNacimiento"), 10)},
			{path: "persona.identificacion", label: "Identificación", piece: NewTextInput(text("persona.identificacion"), 20)},
			{path: "persona.telefono", label: "Teléfono", piece: NewTextInput(text("persona.telefono"), 20)},
			{path: "persona.direccion", label: "Dirección", piece: NewTextInput(text("persona.direccion"), 120)},
			{path: "username", label: "Usuario", piece: NewTextInput(text("username"), 40)},
			{path: "password", label: "Contraseña", piece: NewTextInput(text("password"), 40).Masked()},
			{path: "estado", label: "Activo", piece: NewCheckbox(active)},
		},
	}
}

// Creating reports whether the form makes a new client.
func (frm Form) Creating() bool {
	return frm.id == ""
}

// Focus returns the json path of the focused field.
func (frm Form) Focus() string {
	return frm.fields[frm.focus].path
}

// Message returns the form level validation message, if any.
func (frm Form) Message() string {
	return frm.message
}

// FieldError returns the validation error shown beside a field.
func (frm Form) FieldError(path string) string {
	for _, fld := range frm.fields {
		if fld.path == path {
			return fld.err
		}
	}
	return ""
}

// Client builds a client from the current field values.
func (frm Form) Client() (client nt.Client, err error) {

	rec := nt.Record{}
	for _, fld := range frm.fields {
		setPath(rec, fld.path, fld.piece.Value())
	}

	data, err := json.Marshal(rec)
	if err != nil {
		err = errors.Wrapf(err, "failed to marshal form values")
		return
	}

	err = json.Unmarshal(data, &client)
	if err != nil {
		err = errors.Wrapf(err, "failed to unmarshal form values")
		return
	}

	client.Id = frm.id
	client.PersonaId = frm.personaId
	client.Persona.Id = frm.personaId
	client.Persona.Estado = client.Estado
	return
}

func (frm Form) Update(msg tea.Msg) (Form, tea.Cmd) {

	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return frm, nil
	}

	switch key.String() {
	case "tab", "down":
		frm.focus = (frm.focus + 1) % len(frm.fields)

	case "shift+tab", "up":
		frm.focus = (frm.focus - 1 + len(frm.fields)) % len(frm.fields)

	case "ctrl+s":
		return frm.Submit()

	case "enter":
		if frm.focus == len(frm.fields)-1 {
			return frm.Submit()
		}
		frm.focus++

	default:
		frm.fields = slices.Clone(frm.fields)
		frm.fields[frm.focus].piece = frm.fields[frm.focus].piece.Update(key)
		frm.fields[frm.focus].err = ""
	}

	return frm, nil
}

// Submit validates the form and emits SubmitMsg when every field checks out.
func (frm Form) Submit() (Form, tea.Cmd) {

	frm.fields = slices.Clone(frm.fields)
	for i := range frm.fields {
		frm.fields[i].err = ""
	}
	frm.message = ""

	client, err := frm.Client()
	if err != nil {
		frm.message = err.Error()
		return frm, nil
	}

	err = frm.validate.Struct(client)
	if err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			frm.message = err.Error()
			return frm, nil
		}

		for _, fe := range fieldErrs {
			frm = frm.markField(jsonPath(fe.Namespace()), describe(fe))
		}
		frm.message = incomplete
		return frm, nil
	}

	create := frm.Creating()
	return frm, func() tea.Msg {
		return SubmitMsg{Client: client, Create: create}
	}
}

// Render renders the fields, one per line, with errors alongside
func (frm Form) Render() string {

	title := "Editar cliente"
	if frm.Creating() {
		title = "Nuevo cliente"
	}

	lines := []string{style.TitleStyle.Render(title), ""}
	for i, fld := range frm.fields {
		focused := i == frm.focus

		label := style.LabelStyle.Render(fld.label)
		if focused {
			label = style.FocusLabelStyle.Render(fld.label)
		}

		line := label + " " + fld.piece.Render(focused)
		if fld.err != "" {
			line += "  " + style.ErrorStyle.Render(fld.err)
		}
		lines = append(lines, line)
	}

	lines = append(lines, "")
	if frm.message != "" {
		lines = append(lines, style.ErrorStyle.Render(frm.message))
	}
	lines = append(lines, style.MutedStyle.Render("tab/shift+tab: campo · ctrl+s: guardar · esc: cancelar"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// unexported

func (frm Form) markField(path, msg string) Form {
	for i := range frm.fields {
		if frm.fields[i].path == path {
			frm.fields[i].err = msg
		}
	}
	return frm
}

func newValidate() *validator.Validate {

	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

// jsonPath drops the top level type name, "Client.persona.nombre" becomes "persona.nombre".
func jsonPath(namespace string) string {
	_, path, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}
	return path
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "requerido"
	case "datetime":
		return "formato AAAA-MM-DD"
	case "oneof":
		return "elegir " + strings.Join(strings.Fields(fe.Param()), " o ")
	}
	return "inválido"
}

func toRecord(client nt.Client) nt.Record {

	rec := nt.Record{}
	data, err := json.Marshal(client)
	if err != nil {
		return rec
	}
	_ = json.Unmarshal(data, &rec)
	return rec
}

func setPath(rec nt.Record, path string, val any) {

	parts := strings.Split(path, ".")
	node := map[string]any(rec)
	for _, part := range parts[:len(parts)-1] {
		child, ok := node[part].(map[string]any)
		if !ok {
			child = map[string]any{}
			node[part] = child
		}
		node = child
	}
	node[parts[len(parts)-1]] = val
}
