package grid

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	nt "bankview/entity"
	"bankview/style"
)

// Todo: horizontal scroll when visible columns overflow the width

const (
	headerHeight = 2 // Header row + separator line
	pagerHeight  = 1
)

type itemKind int

const (
	editItem itemKind = iota
	deleteItem
	actionItem
)

type menuItem struct {
	label string
	kind  itemKind
	index int // into Bindings.Actions for actionItem
}

// Panel handles grid display and keyboard navigation
type Panel struct {
	grid Grid

	cursor    int    // Row within the current page
	offset    int    // First row of the current page on screen
	menuItem  int    // Selected entry of the open menu
	pageInput string // Digits typed toward a page jump
	empty     string // Shown when there are no rows

	width  int // Zero renders at natural width
	height int // Zero renders every row of the page

	table *table.Table
}

// NewPanel wraps a grid for display.
func NewPanel(grd Grid, empty string) Panel {

	lgt := table.New()
	style.StyleTable(lgt)

	return Panel{
		grid:  grd,
		empty: empty,
		table: lgt,
	}
}

// Grid returns the underlying grid state.
func (pnl Panel) Grid() Grid {
	return pnl.grid
}

// Cursor returns the selected row index within the current page.
func (pnl Panel) Cursor() int {
	return pnl.cursor
}

// SetData replaces the rows, keeping page and menu state.
func (pnl Panel) SetData(data []nt.Record) Panel {
	pnl.grid = pnl.grid.SetData(data)
	return pnl.clampCursor().scroll()
}

// Reset goes back to the first page with menus closed.
func (pnl Panel) Reset() Panel {
	pnl.grid = pnl.grid.Reset()
	pnl.cursor = 0
	pnl.offset = 0
	pnl.menuItem = 0
	pnl.pageInput = ""
	return pnl
}

// Capturing reports whether the panel wants esc for itself.
func (pnl Panel) Capturing() bool {
	_, open := pnl.grid.OpenMenu()
	return open || pnl.pageInput != ""
}

// Selected returns the row under the cursor.
func (pnl Panel) Selected() (row nt.Record, ok bool) {
	rows := pnl.grid.CurrentPageRows()
	if pnl.cursor < 0 || pnl.cursor >= len(rows) {
		return nil, false
	}
	return rows[pnl.cursor], true
}

func (pnl Panel) Update(msg tea.Msg) (Panel, tea.Cmd) {

	switch msg := msg.(type) {
	case SizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height
		return pnl.scroll(), nil

	case tea.KeyPressMsg:
		var cmd tea.Cmd
		if _, open := pnl.grid.OpenMenu(); open {
			pnl, cmd = pnl.menuKey(msg)
		} else {
			pnl, cmd = pnl.tableKey(msg)
		}
		return pnl.scroll(), cmd
	}

	return pnl, nil
}

// Visible returns the range of current page rows that fit the panel height.
func (pnl Panel) Visible() (first, last int) {

	count := len(pnl.grid.CurrentPageRows())
	fit := pnl.fit()
	if fit >= count {
		return 0, count
	}

	first = min(max(pnl.offset, 0), count-fit)
	return first, first + fit
}

// Render renders the table, the open menu and the pager line
func (pnl Panel) Render() string {

	var columns []nt.Column
	for _, col := range pnl.grid.Columns() {
		if !col.Hidden {
			columns = append(columns, col)
		}
	}

	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Heading()
	}

	first, last := pnl.Visible()
	rows := pnl.grid.CurrentPageRows()[first:last]
	menuRow := -1
	if idx, open := pnl.grid.OpenMenu(); open {
		menuRow = idx - first
	}

	pnl.table.Headers(headers...)
	pnl.table.StyleFunc(style.RowStyler(pnl.cursor-first, menuRow))
	pnl.table.ClearRows()
	for _, row := range rows {
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = Cell(row, col)
		}
		pnl.table.Row(cells...)
	}

	parts := []string{pnl.table.Render()}
	if len(pnl.grid.Data()) == 0 && pnl.empty != "" {
		parts = append(parts, style.MutedStyle.Render(pnl.empty))
	}
	if menuRow >= 0 {
		parts = append(parts, pnl.renderMenu())
	}
	parts = append(parts, pnl.renderPager())

	out := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if pnl.width > 0 {
		out = lipgloss.NewStyle().MaxWidth(pnl.width).Render(out)
	}
	return out
}

// unexported

func (pnl Panel) tableKey(msg tea.KeyPressMsg) (Panel, tea.Cmd) {

	rows := pnl.grid.CurrentPageRows()
	key := msg.String()

	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		pnl.pageInput += key
		return pnl, nil
	}

	switch key {
	case "up", "k":
		if pnl.cursor > 0 {
			pnl.cursor--
		}

	case "down", "j":
		if pnl.cursor < len(rows)-1 {
			pnl.cursor++
		}

	case "right", "l", "n", "pgdown":
		pnl = pnl.goToPage(pnl.grid.Page() + 1)

	case "left", "h", "p", "pgup":
		pnl = pnl.goToPage(pnl.grid.Page() - 1)

	case "g", "home":
		pnl = pnl.goToPage(1)

	case "G", "end":
		pnl = pnl.goToPage(pnl.grid.TotalPageCount())

	case "backspace":
		if pnl.pageInput != "" {
			pnl.pageInput = pnl.pageInput[:len(pnl.pageInput)-1]
		}

	case "esc":
		pnl.pageInput = ""

	case "enter", "space", " ":
		if pnl.pageInput != "" {
			target, _ := strconv.Atoi(pnl.pageInput)
			pnl.pageInput = ""
			return pnl.goToPage(target), nil
		}
		if len(rows) > 0 && len(pnl.menuItems()) > 0 {
			pnl.grid = pnl.grid.ToggleMenu(pnl.cursor)
			pnl.menuItem = 0
		}

	case "e":
		if row, ok := pnl.Selected(); ok {
			var cmd tea.Cmd
			pnl.grid, cmd = pnl.grid.TriggerEdit(row.Id())
			return pnl, cmd
		}

	case "d":
		if row, ok := pnl.Selected(); ok {
			var cmd tea.Cmd
			pnl.grid, cmd = pnl.grid.TriggerDelete(row.Id())
			return pnl, cmd
		}
	}

	return pnl, nil
}

func (pnl Panel) menuKey(msg tea.KeyPressMsg) (Panel, tea.Cmd) {

	items := pnl.menuItems()

	switch msg.String() {
	case "up", "k":
		if pnl.menuItem > 0 {
			pnl.menuItem--
		}

	case "down", "j":
		if pnl.menuItem < len(items)-1 {
			pnl.menuItem++
		}

	case "esc", "q":
		pnl.grid = pnl.grid.CloseMenu()

	case "enter", "space", " ":
		if pnl.menuItem >= len(items) {
			pnl.grid = pnl.grid.CloseMenu()
			return pnl, nil
		}
		return pnl.trigger(items[pnl.menuItem])
	}

	return pnl, nil
}

func (pnl Panel) trigger(item menuItem) (Panel, tea.Cmd) {

	idx, _ := pnl.grid.OpenMenu()
	rows := pnl.grid.CurrentPageRows()
	if idx >= len(rows) {
		pnl.grid = pnl.grid.CloseMenu()
		return pnl, nil
	}
	row := rows[idx]

	var cmd tea.Cmd
	switch item.kind {
	case editItem:
		pnl.grid, cmd = pnl.grid.TriggerEdit(row.Id())
	case deleteItem:
		pnl.grid, cmd = pnl.grid.TriggerDelete(row.Id())
	case actionItem:
		pnl.grid, cmd = pnl.grid.TriggerAction(item.index, row)
	}
	return pnl, cmd
}

func (pnl Panel) goToPage(target int) Panel {

	before := pnl.grid.Page()
	pnl.grid = pnl.grid.GoToPage(target)
	if pnl.grid.Page() != before {
		pnl.cursor = 0
		pnl.grid = pnl.grid.CloseMenu()
	}
	return pnl
}

// fit is how many rows the height leaves room for, at least one
func (pnl Panel) fit() int {

	if pnl.height <= 0 {
		return len(pnl.grid.CurrentPageRows())
	}

	chrome := headerHeight + pagerHeight
	if _, open := pnl.grid.OpenMenu(); open {
		chrome += len(pnl.menuItems()) + 2 // menu border
	}
	return max(pnl.height-chrome, 1)
}

// scroll moves the row window so the cursor stays on screen
func (pnl Panel) scroll() Panel {

	fit := pnl.fit()
	switch {
	case pnl.cursor < pnl.offset:
		pnl.offset = pnl.cursor
	case pnl.cursor >= pnl.offset+fit:
		pnl.offset = pnl.cursor - fit + 1
	}

	count := len(pnl.grid.CurrentPageRows())
	pnl.offset = max(min(pnl.offset, count-fit), 0)
	return pnl
}

func (pnl Panel) clampCursor() Panel {

	last := len(pnl.grid.CurrentPageRows()) - 1
	if pnl.cursor > last {
		pnl.cursor = max(last, 0)
	}
	return pnl
}

func (pnl Panel) menuItems() []menuItem {

	bindings := pnl.grid.Bindings()

	var items []menuItem
	if bindings.Edit.Bound() {
		items = append(items, menuItem{label: "Editar", kind: editItem})
	}
	if bindings.Delete.Bound() {
		items = append(items, menuItem{label: "Eliminar", kind: deleteItem})
	}
	for i, action := range bindings.Actions {
		items = append(items, menuItem{label: action.Label, kind: actionItem, index: i})
	}
	return items
}

func (pnl Panel) renderMenu() string {

	lines := make([]string, 0, len(pnl.menuItems()))
	for i, item := range pnl.menuItems() {
		if i == pnl.menuItem {
			lines = append(lines, style.FocusStyle.Render("> "+item.label))
			continue
		}
		lines = append(lines, "  "+item.label)
	}
	return style.MenuStyle.Render(strings.Join(lines, "\n"))
}

func (pnl Panel) renderPager() string {

	pager := fmt.Sprintf("página %d de %d · %d registros",
		pnl.pagerPage(), pnl.grid.TotalPageCount(), len(pnl.grid.Data()))
	if first, last := pnl.Visible(); last-first < len(pnl.grid.CurrentPageRows()) {
		pager += fmt.Sprintf(" · filas %d-%d", first+1, last)
	}
	if pnl.pageInput != "" {
		pager += " · ir a página: " + pnl.pageInput
	}
	return style.MutedStyle.Render(pager)
}

// pagerPage shows 0 alongside "of 0" so an empty grid reads "0 de 0".
func (pnl Panel) pagerPage() int {
	if pnl.grid.TotalPageCount() == 0 {
		return 0
	}
	return pnl.grid.Page()
}
