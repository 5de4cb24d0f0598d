package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, data string) Record {
	t.Helper()

	var rec Record
	require.NoError(t, json.Unmarshal([]byte(data), &rec))
	return rec
}

func TestLookup(t *testing.T) {
	rec := decode(t, `{
		"id": "c-1",
		"username": "jlema",
		"estado": false,
		"saldo": 0,
		"persona": {"nombre": "Jose", "direccion": null, "telefonos": ["0991", "0992"]},
		"a": {"b": {"c": 42}}
	}`)

	tests := []struct {
		name string
		path string
		want any
		ok   bool
	}{
		{name: "top level", path: "username", want: "jlema", ok: true},
		{name: "nested", path: "persona.nombre", want: "Jose", ok: true},
		{name: "deep", path: "a.b.c", want: float64(42), ok: true},
		{name: "falsy bool is present", path: "estado", want: false, ok: true},
		{name: "zero is present", path: "saldo", want: float64(0), ok: true},
		{name: "array index", path: "persona.telefonos.1", want: "0992", ok: true},
		{name: "missing intermediate", path: "a.x.c", ok: false},
		{name: "missing leaf", path: "persona.apellido", ok: false},
		{name: "null leaf", path: "persona.direccion", ok: false},
		{name: "through a scalar", path: "username.length", ok: false},
		{name: "array out of range", path: "persona.telefonos.5", ok: false},
		{name: "empty path", path: "", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			val, ok := rec.Lookup(tc.path)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, val.Raw)
			}
		})
	}
}

func TestLookupNilRecord(t *testing.T) {
	var rec Record

	_, ok := rec.Lookup("id")
	assert.False(t, ok)
	assert.Equal(t, "", rec.Id())
}

func TestValueKind(t *testing.T) {
	rec := decode(t, `{"n": null, "b": true, "f": 1.5, "s": "x", "a": [1], "o": {}}`)

	kinds := map[string]Kind{"b": Bool, "f": Number, "s": String, "a": Array, "o": Object}
	for path, want := range kinds {
		val, ok := rec.Lookup(path)
		require.True(t, ok, path)
		assert.Equal(t, want, val.Kind(), path)
	}

	assert.Equal(t, Null, Value{}.Kind())
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "", Value{}.String())
	assert.Equal(t, "1500", Value{Raw: float64(1500)}.String())
	assert.Equal(t, "12.5", Value{Raw: 12.5}.String())
	assert.Equal(t, "true", Value{Raw: true}.String())
	assert.Equal(t, `{"a":1}`, Value{Raw: map[string]any{"a": 1}}.String())
}

func TestValueConversions(t *testing.T) {
	f, err := Value{Raw: "10.25"}.Float()
	require.NoError(t, err)
	assert.Equal(t, 10.25, f)

	_, err = Value{Raw: true}.Float()
	assert.Error(t, err)

	tm, err := Value{Raw: "2025-03-01"}.Time()
	require.NoError(t, err)
	assert.Equal(t, 2025, tm.Year())

	tm, err = Value{Raw: "2025-03-01T10:11:12Z"}.Time()
	require.NoError(t, err)
	assert.Equal(t, 10, tm.Hour())

	_, err = Value{Raw: "yesterday"}.Time()
	assert.Error(t, err)

	_, err = Value{Raw: "true"}.Bool()
	assert.Error(t, err)
}
