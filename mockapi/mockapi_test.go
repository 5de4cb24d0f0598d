package mockapi

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "bankview/entity"
	"bankview/store/duck"
)

type nopLogger struct{}

func (nopLogger) Info(ctx context.Context, msg string, kv ...any)             {}
func (nopLogger) Error(ctx context.Context, msg string, err error, kv ...any) {}

const (
	joseId    = "5b0c2f3a-1d4e-4a8b-9c61-0f2a7e3d9b10"
	marianela = "8e3d1a27-5c4b-4f0e-a2d9-3b6c8f1e4a52"
)

func router(t *testing.T) http.Handler {
	t.Helper()

	dk, err := duck.New(nopLogger{})
	require.NoError(t, err)
	t.Cleanup(dk.Close)
	require.NoError(t, dk.Load(context.Background(), "../fixtures"))

	cfg := &Config{}
	return cfg.New(dk, nopLogger{}).Router()
}

func call(t *testing.T, hdl http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	hdl.ServeHTTP(rec, req)
	return rec
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []nt.Record {
	t.Helper()

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var recs []nt.Record
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &recs))
	return recs
}

func TestListClients(t *testing.T) {
	hdl := router(t)

	recs := decodeList(t, call(t, hdl, http.MethodGet, "/api/clientes", ""))
	require.Len(t, recs, 3)
	assert.Equal(t, "josorio", recs[0]["username"])

	recs = decodeList(t, call(t, hdl, http.MethodGet, "/api/clientes?page=1&size=2", ""))
	require.Len(t, recs, 1)
	assert.Equal(t, "jlema", recs[0]["username"])

	rec := call(t, hdl, http.MethodGet, "/api/clientes?size=zero", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = call(t, hdl, http.MethodGet, "/api/clientes?page=9223372036854775807&size=20", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "page fuera de rango")
}

func TestListClientsByUsername(t *testing.T) {
	hdl := router(t)

	recs := decodeList(t, call(t, hdl, http.MethodGet, "/api/clientes?username=OS", ""))
	require.Len(t, recs, 1)
	assert.Equal(t, "josorio", recs[0]["username"])

	recs = decodeList(t, call(t, hdl, http.MethodGet, "/api/clientes?username=zz", ""))
	assert.Empty(t, recs)
}

func TestClientCrud(t *testing.T) {
	hdl := router(t)

	body := `{
		"persona": {"nombre":"Ana","apellido":"Vera","genero":"FEMENINO","fechaNacimiento":"1990-01-01",
			"identificacion":"1700000001","telefono":"099","direccion":"Quito"},
		"username":"avera","password":"secreto","estado":true
	}`

	rec := call(t, hdl, http.MethodPost, "/api/clientes", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created nt.Client
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.Id)
	assert.NotEmpty(t, created.PersonaId)
	assert.Equal(t, created.PersonaId, created.Persona.Id)

	recs := decodeList(t, call(t, hdl, http.MethodGet, "/api/clientes", ""))
	assert.Equal(t, "avera", recs[0]["username"])

	rec = call(t, hdl, http.MethodPut, "/api/clientes/"+created.Id, strings.Replace(body, "Quito", "Cuenca", 1))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = call(t, hdl, http.MethodGet, "/api/clientes/"+created.Id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got nt.Client
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Cuenca", got.Persona.Direccion)
	assert.Equal(t, created.PersonaId, got.PersonaId)
	assert.Equal(t, created.CreatedAt, got.CreatedAt)

	rec = call(t, hdl, http.MethodDelete, "/api/clientes/"+created.Id, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = call(t, hdl, http.MethodGet, "/api/clientes/"+created.Id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Registro no encontrado")
}

func TestCreateClientInvalid(t *testing.T) {
	hdl := router(t)

	rec := call(t, hdl, http.MethodPost, "/api/clientes", `{"username":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Por favor, completa todos los campos")

	rec = call(t, hdl, http.MethodPost, "/api/clientes", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListAccounts(t *testing.T) {
	hdl := router(t)

	recs := decodeList(t, call(t, hdl, http.MethodGet, "/api/cuentas?clienteId="+marianela+"&page=0&size=20", ""))
	require.Len(t, recs, 2)
	for _, rec := range recs {
		assert.Equal(t, marianela, rec["clienteId"])
	}
}

func TestListMovements(t *testing.T) {
	hdl := router(t)

	target := "/api/movimientos?clienteId=" + joseId +
		"&numeroCuenta=478758&fechaDesde=2025-01-01&fechaHasta=2025-12-31&page=0&size=20"
	recs := decodeList(t, call(t, hdl, http.MethodGet, target, ""))
	require.Len(t, recs, 1)
	assert.Equal(t, "DEBITO", recs[0]["tipo"])

	target = "/api/movimientos?clienteId=" + joseId + "&numeroCuenta=478758&fechaDesde=2025-03-01&fechaHasta=2025-12-31"
	assert.Empty(t, decodeList(t, call(t, hdl, http.MethodGet, target, "")))

	target = "/api/movimientos?clienteId=" + marianela + "&numeroCuenta=478758"
	assert.Empty(t, decodeList(t, call(t, hdl, http.MethodGet, target, "")))

	rec := call(t, hdl, http.MethodGet, "/api/movimientos?fechaDesde=2025-12-31&fechaHasta=2025-01-01", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "La fecha de inicio no puede ser posterior a la fecha fin")
}

func TestReport(t *testing.T) {
	hdl := router(t)
	base := "/api/reportes?clienteId=" + marianela + "&fechaDesde=2025-01-01&fechaHasta=2025-12-31"

	t.Run("json", func(t *testing.T) {
		rec := call(t, hdl, http.MethodGet, base+"&formato=json", "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var rpt nt.Report
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rpt))
		assert.Equal(t, "Marianela Montalvo", rpt.ClientName)
		require.Len(t, rpt.Accounts, 2)
		assert.Equal(t, "600.00", rpt.Accounts[0].TotalCredits)
		assert.Equal(t, "-540.00", rpt.Accounts[1].TotalDebits)
		assert.Equal(t, "-540.00", rpt.TotalDebits)
		assert.Equal(t, "600.00", rpt.TotalCredits)
	})

	t.Run("pdf", func(t *testing.T) {
		rec := call(t, hdl, http.MethodGet, base+"&formato=pdf", "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var pdf nt.PdfReport
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pdf))
		data, err := base64.StdEncoding.DecodeString(pdf.PdfBase64)
		require.NoError(t, err)
		assert.Contains(t, string(data), "Marianela Montalvo")
		assert.Contains(t, string(data), "Cuenta 225487 CORRIENTE")
	})

	t.Run("bad format", func(t *testing.T) {
		rec := call(t, hdl, http.MethodGet, base+"&formato=xml", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown client", func(t *testing.T) {
		rec := call(t, hdl, http.MethodGet, "/api/reportes?clienteId=nope&fechaDesde=2025-01-01&fechaHasta=2025-12-31", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing dates", func(t *testing.T) {
		rec := call(t, hdl, http.MethodGet, "/api/reportes?clienteId="+marianela, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
