package form

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"bankview/style"
)

// Piece is an editable form value
type Piece interface {
	Update(msg tea.KeyPressMsg) Piece
	Render(focused bool) string
	Value() any
}

// TextInput is an editable text field
type TextInput struct {
	value     []rune
	cursor    int
	maxLength int
	mask      bool
}

func NewTextInput(value string, maxLength int) TextInput {
	if maxLength <= 0 {
		maxLength = 100 // Default max length
	}
	runes := []rune(value)
	return TextInput{
		value:     runes,
		cursor:    len(runes),
		maxLength: maxLength,
	}
}

// Masked hides the value behind asterisks.
func (t TextInput) Masked() TextInput {
	t.mask = true
	return t
}

func (t TextInput) Update(msg tea.KeyPressMsg) Piece {
	switch msg.String() {
	case "backspace":
		if t.cursor > 0 {
			t.value = append(t.value[:t.cursor-1:t.cursor-1], t.value[t.cursor:]...)
			t.cursor--
		}
	case "delete":
		if t.cursor < len(t.value) {
			t.value = append(t.value[:t.cursor:t.cursor], t.value[t.cursor+1:]...)
		}
	case "left":
		if t.cursor > 0 {
			t.cursor--
		}
	case "right":
		if t.cursor < len(t.value) {
			t.cursor++
		}
	case "home", "ctrl+a":
		t.cursor = 0
	case "end", "ctrl+e":
		t.cursor = len(t.value)
	default:
		text := []rune(msg.Text)
		if len(text) == 0 || len(t.value)+len(text) > t.maxLength {
			break
		}
		value := make([]rune, 0, len(t.value)+len(text))
		value = append(value, t.value[:t.cursor]...)
		value = append(value, text...)
		value = append(value, t.value[t.cursor:]...)
		t.value = value
		t.cursor += len(text)
	}
	return t
}

func (t TextInput) Cursor() int {
	return t.cursor
}

func (t TextInput) Render(focused bool) string {
	shown := t.value
	if t.mask {
		shown = []rune(strings.Repeat("*", len(t.value)))
	}
	if !focused {
		return string(shown)
	}

	before := string(shown[:t.cursor])
	under, after := " ", ""
	if t.cursor < len(shown) {
		under = string(shown[t.cursor])
		after = string(shown[t.cursor+1:])
	}
	return before + style.CursorStyle.Render(under) + after
}

func (t TextInput) Value() any {
	return string(t.value)
}

// Operator cycles through a list of options, starting unselected at -1
type Operator struct {
	options  []string
	selected int
}

func NewOperator(options []string, selected string) Operator {
	op := Operator{options: options, selected: -1}
	for i, opt := range options {
		if opt == selected {
			op.selected = i
		}
	}
	return op
}

func (o Operator) Update(msg tea.KeyPressMsg) Piece {
	if len(o.options) == 0 {
		return o
	}
	switch msg.String() {
	case "left", "h":
		o.selected--
		if o.selected < 0 {
			o.selected = len(o.options) - 1
		}
	case "right", "l", "space", " ":
		o.selected++
		if o.selected >= len(o.options) {
			o.selected = 0
		}
	}
	return o
}

func (o Operator) Selected() string {
	if o.selected < 0 || o.selected >= len(o.options) {
		return ""
	}
	return o.options[o.selected]
}

func (o Operator) Render(focused bool) string {
	shown := o.Selected()
	if shown == "" {
		shown = style.MutedStyle.Render("(elegir)")
	}
	if focused {
		return "< " + shown + " >"
	}
	return shown
}

func (o Operator) Value() any {
	return o.Selected()
}

// Checkbox is a toggleable checkbox
type Checkbox struct {
	checked bool
}

func NewCheckbox(checked bool) Checkbox {
	return Checkbox{checked: checked}
}

func (c Checkbox) Update(msg tea.KeyPressMsg) Piece {
	switch msg.String() {
	case "space", " ", "x":
		c.checked = !c.checked
	}
	return c
}

func (c Checkbox) Render(focused bool) string {
	if c.checked {
		return "[x]"
	}
	return "[ ]"
}

func (c Checkbox) Value() any {
	return c.checked
}
