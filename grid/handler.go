package grid

import (
	tea "charm.land/bubbletea/v2"

	nt "bankview/entity"
)

// Handler is an optional callback held on behalf of the grid's owner.
// The zero Handler is unbound; calling it does nothing.
type Handler[T any] struct {
	fn func(T) tea.Cmd
}

// Bind wraps fn as a bound Handler.
func Bind[T any](fn func(T) tea.Cmd) Handler[T] {
	return Handler[T]{fn: fn}
}

// Bound reports whether a callback is present.
func (h Handler[T]) Bound() bool {
	return h.fn != nil
}

// Call invokes the callback if bound and hands back whatever it returns.
func (h Handler[T]) Call(arg T) tea.Cmd {
	if h.fn == nil {
		return nil
	}
	return h.fn(arg)
}

// Action is a caller-defined row action shown in the menu after edit and delete.
type Action struct {
	Label string
	Fn    Handler[nt.Record]
}

// Bindings groups the row actions a grid offers.
// Edit and Delete receive the row's id, custom Actions the full row.
type Bindings struct {
	Edit    Handler[string]
	Delete  Handler[string]
	Actions []Action
}
