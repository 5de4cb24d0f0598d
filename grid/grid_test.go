package grid

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "bankview/entity"
)

func records(n int) []nt.Record {
	recs := make([]nt.Record, n)
	for i := range recs {
		recs[i] = nt.Record{"id": float64(i)}
	}
	return recs
}

func ids(recs []nt.Record) []float64 {
	out := make([]float64, len(recs))
	for i, rec := range recs {
		out[i] = rec["id"].(float64)
	}
	return out
}

func TestNewDefaults(t *testing.T) {
	grd := New(nil, 0, Bindings{})

	assert.Equal(t, DefaultPageSize, grd.PageSize())
	assert.Equal(t, 1, grd.Page())
	_, open := grd.OpenMenu()
	assert.False(t, open)
}

func TestCurrentPageRows(t *testing.T) {

	t.Run("fifty rows by twenty", func(t *testing.T) {
		grd := New(nil, 20, Bindings{}).SetData(records(50))

		rows := grd.CurrentPageRows()
		require.Len(t, rows, 20)
		assert.Equal(t, float64(0), ids(rows)[0])
		assert.Equal(t, float64(19), ids(rows)[19])

		grd.page = 2
		rows = grd.CurrentPageRows()
		require.Len(t, rows, 20)
		assert.Equal(t, float64(20), ids(rows)[0])
		assert.Equal(t, float64(39), ids(rows)[19])

		grd.page = 3
		rows = grd.CurrentPageRows()
		require.Len(t, rows, 10)
		assert.Equal(t, float64(40), ids(rows)[0])
	})

	t.Run("forty five rows by twenty", func(t *testing.T) {
		grd := New(nil, 20, Bindings{}).SetData(records(45))
		assert.Equal(t, 3, grd.TotalPageCount())

		grd.page = 3
		rows := grd.CurrentPageRows()
		require.Len(t, rows, 5)
		assert.Equal(t, float64(40), ids(rows)[0])
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		grd := New(nil, 20, Bindings{}).SetData(records(45))
		grd.page = 4

		rows := grd.CurrentPageRows()
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})

	t.Run("no data", func(t *testing.T) {
		grd := New(nil, 20, Bindings{})
		assert.Empty(t, grd.CurrentPageRows())
	})
}

func TestPageSizes(t *testing.T) {
	for _, size := range []int{1, 3, 7, 20} {
		for n := 0; n <= 45; n++ {
			grd := New(nil, size, Bindings{}).SetData(records(n))

			total := grd.TotalPageCount()
			assert.Equal(t, (n+size-1)/size, total)
			assert.Equal(t, n == 0, total == 0)

			seen := 0
			for page := 1; page <= total; page++ {
				grd = grd.GoToPage(page)
				require.Equal(t, page, grd.Page())

				rows := grd.CurrentPageRows()
				if page < total {
					assert.Len(t, rows, size)
				} else {
					assert.Len(t, rows, n-(page-1)*size)
				}
				if len(rows) > 0 {
					assert.Equal(t, float64(seen), ids(rows)[0])
				}
				seen += len(rows)
			}
			assert.Equal(t, n, seen)
		}
	}
}

func TestTotalPageCount(t *testing.T) {
	assert.Equal(t, 0, New(nil, 20, Bindings{}).TotalPageCount())
	assert.Equal(t, 1, New(nil, 20, Bindings{}).SetData(records(1)).TotalPageCount())
	assert.Equal(t, 1, New(nil, 20, Bindings{}).SetData(records(20)).TotalPageCount())
	assert.Equal(t, 2, New(nil, 20, Bindings{}).SetData(records(21)).TotalPageCount())
	assert.Equal(t, 3, New(nil, 20, Bindings{}).SetData(records(45)).TotalPageCount())
}

func TestResolveField(t *testing.T) {
	nested := nt.Record{"a": map[string]any{"b": map[string]any{"c": 42}}}

	val, ok := ResolveField(nested, "a.b.c")
	require.True(t, ok)
	assert.Equal(t, 42, val.Raw)

	_, ok = ResolveField(nested, "a.x.c")
	assert.False(t, ok)

	val, ok = ResolveField(nt.Record{"foo": 123}, "foo")
	require.True(t, ok)
	assert.Equal(t, 123, val.Raw)
}

func TestGoToPage(t *testing.T) {
	grd := New(nil, 20, Bindings{}).SetData(records(50))

	grd = grd.GoToPage(2)
	assert.Equal(t, 2, grd.Page())

	for _, target := range []int{0, -1, 4, 10} {
		assert.Equal(t, 2, grd.GoToPage(target).Page(), "target %d", target)
	}

	grd = grd.GoToPage(grd.TotalPageCount() + 1)
	assert.Equal(t, 2, grd.Page())

	empty := New(nil, 20, Bindings{})
	assert.Equal(t, 1, empty.GoToPage(1).Page())
}

func TestShrinkingDataKeepsPage(t *testing.T) {
	grd := New(nil, 20, Bindings{}).SetData(records(41)).GoToPage(3)
	require.Equal(t, 3, grd.Page())

	grd = grd.SetData(records(40))
	assert.Equal(t, 3, grd.Page())
	assert.Empty(t, grd.CurrentPageRows())

	grd = grd.Reset()
	assert.Equal(t, 1, grd.Page())
	assert.Len(t, grd.CurrentPageRows(), 20)
}

func TestToggleMenu(t *testing.T) {
	grd := New(nil, 20, Bindings{})

	grd = grd.ToggleMenu(3)
	idx, open := grd.OpenMenu()
	require.True(t, open)
	assert.Equal(t, 3, idx)

	grd = grd.ToggleMenu(3)
	_, open = grd.OpenMenu()
	assert.False(t, open)

	grd = grd.ToggleMenu(1).ToggleMenu(4)
	idx, open = grd.OpenMenu()
	require.True(t, open)
	assert.Equal(t, 4, idx)

	grd = grd.ToggleMenu(0)
	idx, _ = grd.OpenMenu()
	assert.Equal(t, 0, idx)
}

func TestCloseMenu(t *testing.T) {
	grd := New(nil, 20, Bindings{}).ToggleMenu(5).CloseMenu()
	_, open := grd.OpenMenu()
	assert.False(t, open)

	grd = grd.CloseMenu()
	_, open = grd.OpenMenu()
	assert.False(t, open)
}

type doneMsg struct{ what string }

func TestTriggerEdit(t *testing.T) {

	t.Run("bound", func(t *testing.T) {
		var got []string
		bindings := Bindings{
			Edit: Bind(func(id string) tea.Cmd {
				got = append(got, id)
				return func() tea.Msg { return doneMsg{what: "edit " + id} }
			}),
		}

		grd := New(nil, 20, bindings).ToggleMenu(1)
		grd, cmd := grd.TriggerEdit("abc")

		assert.Equal(t, []string{"abc"}, got)
		_, open := grd.OpenMenu()
		assert.False(t, open)
		require.NotNil(t, cmd)
		assert.Equal(t, doneMsg{what: "edit abc"}, cmd())
	})

	t.Run("unbound", func(t *testing.T) {
		grd := New(nil, 20, Bindings{}).ToggleMenu(2)

		var cmd tea.Cmd
		assert.NotPanics(t, func() { grd, cmd = grd.TriggerEdit("id") })
		assert.Nil(t, cmd)
		_, open := grd.OpenMenu()
		assert.False(t, open)
	})
}

func TestTriggerDelete(t *testing.T) {

	t.Run("bound", func(t *testing.T) {
		var got []string
		bindings := Bindings{
			Delete: Bind(func(id string) tea.Cmd {
				got = append(got, id)
				return nil
			}),
		}

		grd := New(nil, 20, bindings).ToggleMenu(1)
		grd, _ = grd.TriggerDelete("xyz")

		assert.Equal(t, []string{"xyz"}, got)
		_, open := grd.OpenMenu()
		assert.False(t, open)
	})

	t.Run("unbound", func(t *testing.T) {
		grd := New(nil, 20, Bindings{}).ToggleMenu(2)
		grd, cmd := grd.TriggerDelete("id")

		assert.Nil(t, cmd)
		_, open := grd.OpenMenu()
		assert.False(t, open)
	})
}

func TestTriggerAction(t *testing.T) {
	var got nt.Record
	bindings := Bindings{
		Actions: []Action{
			{Label: "Ver movimientos", Fn: Bind(func(row nt.Record) tea.Cmd {
				got = row
				return nil
			})},
			{Label: "Sin handler"},
		},
	}
	row := nt.Record{"id": "a-1", "clienteId": "c-1", "numeroCuenta": float64(478758)}

	grd := New(nil, 20, bindings).ToggleMenu(0)
	grd, _ = grd.TriggerAction(0, row)
	assert.Equal(t, row, got)
	_, open := grd.OpenMenu()
	assert.False(t, open)

	grd = grd.ToggleMenu(0)
	grd, cmd := grd.TriggerAction(1, row)
	assert.Nil(t, cmd)
	_, open = grd.OpenMenu()
	assert.False(t, open)

	grd = grd.ToggleMenu(0)
	grd, cmd = grd.TriggerAction(9, row)
	assert.Nil(t, cmd)
	_, open = grd.OpenMenu()
	assert.False(t, open)
}

func TestHandlerPanicPropagates(t *testing.T) {
	bindings := Bindings{
		Edit: Bind(func(id string) tea.Cmd { panic("boom " + id) }),
	}
	grd := New(nil, 20, bindings)

	assert.PanicsWithValue(t, "boom x", func() { grd.TriggerEdit("x") })
}

func TestZeroGrid(t *testing.T) {
	var grd Grid

	assert.Equal(t, 0, grd.TotalPageCount())
	assert.Equal(t, 1, grd.Page())
	assert.Equal(t, DefaultPageSize, grd.PageSize())
	_, open := grd.OpenMenu()
	assert.False(t, open)

	grd = grd.SetData(records(45))
	assert.Equal(t, 3, grd.TotalPageCount())
	assert.Len(t, grd.CurrentPageRows(), 20)

	grd = grd.ToggleMenu(0)
	idx, open := grd.OpenMenu()
	assert.True(t, open)
	assert.Equal(t, 0, idx)

	grd = grd.ToggleMenu(0)
	_, open = grd.OpenMenu()
	assert.False(t, open)
}
