// Package grid renders loosely-typed records as a paginated table with a per-row action menu.
package grid

import (
	tea "charm.land/bubbletea/v2"

	nt "bankview/entity"
)

// DefaultPageSize is used when a grid is created without a positive page size.
const DefaultPageSize = 20

// Grid holds the columns, rows and pagination/menu state of one table.
// It knows nothing about the shape of its records beyond the column field paths.
// The zero Grid is an empty table on page 1 with DefaultPageSize and no menu open.
type Grid struct {
	columns  []nt.Column
	data     []nt.Record
	bindings Bindings

	pageSize int // Zero means DefaultPageSize
	page     int // Zero means page 1
	openMenu int
	menuOpen bool
}

// New creates a grid on page 1 with no menu open.
func New(columns []nt.Column, pageSize int, bindings Bindings) Grid {

	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return Grid{
		columns:  columns,
		bindings: bindings,
		pageSize: pageSize,
		page:     1,
	}
}

// SetData replaces the row sequence wholesale.
// Page and menu state are left alone, so page may now point past the end.
func (grd Grid) SetData(data []nt.Record) Grid {
	grd.data = data
	return grd
}

// SetColumns replaces the column descriptors.
func (grd Grid) SetColumns(columns []nt.Column) Grid {
	grd.columns = columns
	return grd
}

// Reset returns to page 1 and closes any open menu.
func (grd Grid) Reset() Grid {
	grd.page = 1
	return grd.CloseMenu()
}

func (grd Grid) Columns() []nt.Column { return grd.columns }
func (grd Grid) Data() []nt.Record { return grd.data }
func (grd Grid) Bindings() Bindings { return grd.bindings }
func (grd Grid) Page() int { return max(grd.page, 1) }

func (grd Grid) PageSize() int {
	if grd.pageSize <= 0 {
		return DefaultPageSize
	}
	return grd.pageSize
}

// OpenMenu returns the index within the current page whose menu is open.
func (grd Grid) OpenMenu() (idx int, ok bool) {
	return grd.openMenu, grd.menuOpen
}

// CurrentPageRows returns the slice of rows on the current page, empty past the end.
func (grd Grid) CurrentPageRows() []nt.Record {

	size := grd.PageSize()
	start := (grd.Page() - 1) * size
	if start < 0 || start >= len(grd.data) {
		return []nt.Record{}
	}

	end := min(start+size, len(grd.data))
	return grd.data[start:end]
}

// TotalPageCount is ceil(rows / pageSize), zero when there are no rows.
func (grd Grid) TotalPageCount() int {
	size := grd.PageSize()
	return (len(grd.data) + size - 1) / size
}

// ResolveField looks up a dot-separated field path in a row.
func ResolveField(row nt.Record, fieldPath string) (nt.Value, bool) {
	return row.Lookup(fieldPath)
}

// GoToPage moves to target when it is a valid page and is ignored otherwise.
func (grd Grid) GoToPage(target int) Grid {
	if target >= 1 && target <= grd.TotalPageCount() {
		grd.page = target
	}
	return grd
}

// ToggleMenu closes the menu at idx if it is open, otherwise opens it in place of any other.
func (grd Grid) ToggleMenu(idx int) Grid {
	if grd.menuOpen && grd.openMenu == idx {
		return grd.CloseMenu()
	}
	grd.openMenu = idx
	grd.menuOpen = true
	return grd
}

// CloseMenu closes whatever menu is open.
func (grd Grid) CloseMenu() Grid {
	grd.openMenu = 0
	grd.menuOpen = false
	return grd
}

// TriggerEdit calls the edit handler with id, if bound, and closes the menu.
func (grd Grid) TriggerEdit(id string) (Grid, tea.Cmd) {
	cmd := grd.bindings.Edit.Call(id)
	return grd.CloseMenu(), cmd
}

// TriggerDelete calls the delete handler with id, if bound, and closes the menu.
func (grd Grid) TriggerDelete(id string) (Grid, tea.Cmd) {
	cmd := grd.bindings.Delete.Call(id)
	return grd.CloseMenu(), cmd
}

// TriggerAction calls the k'th custom action with the full row and closes the menu.
// An out-of-range k only closes the menu.
func (grd Grid) TriggerAction(k int, row nt.Record) (Grid, tea.Cmd) {

	var cmd tea.Cmd
	if k >= 0 && k < len(grd.bindings.Actions) {
		cmd = grd.bindings.Actions[k].Fn.Call(row)
	}
	return grd.CloseMenu(), cmd
}
