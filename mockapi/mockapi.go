// Package mockapi serves clients, accounts, movements and reports over http from a Store.
package mockapi

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	nt "bankview/entity"
)

const (
	defaultSize = 20
	reportSize  = 1000
)

// Store specifies a backing datastore of json records.
type Store interface {
	Find(ctx context.Context, kind string, filter nt.Filter, sort nt.Sort, page, size int) ([]nt.Record, error)
	Get(ctx context.Context, kind, id string) (nt.Record, error)
	Insert(ctx context.Context, kind string, rec nt.Record) (nt.Record, error)
	Replace(ctx context.Context, kind, id string, rec nt.Record) (nt.Record, error)
	Delete(ctx context.Context, kind, id string) error
}

type Config struct {
	Addr     string `yaml:"addr"`
	Fixtures string `yaml:"fixtures"`
}

type MockApi struct {
	store    Store
	logger   nt.Logger
	validate *validator.Validate
}

// badRequest marks errors the caller can fix.
type badRequest struct {
	msg string
}

func (br badRequest) Error() string {
	return br.msg
}

func (cfg *Config) New(store Store, lgr nt.Logger) *MockApi {

	return &MockApi{
		store:    store,
		logger:   lgr,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Router routes the service under /api.
func (api *MockApi) Router() *gin.Engine {

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), api.logRequest)

	group := router.Group("/api")
	group.GET("/clientes", api.listClients)
	group.POST("/clientes", api.createClient)
	group.GET("/clientes/:id", api.getClient)
	group.PUT("/clientes/:id", api.updateClient)
	group.DELETE("/clientes/:id", api.deleteClient)
	group.GET("/cuentas", api.listAccounts)
	group.GET("/movimientos", api.listMovements)
	group.GET("/reportes", api.generateReport)

	return router
}

// unexported

func (api *MockApi) logRequest(gc *gin.Context) {

	start := time.Now()
	gc.Next()

	api.logger.Info(gc.Request.Context(), "served",
		"method", gc.Request.Method,
		"path", gc.Request.URL.Path,
		"status", gc.Writer.Status(),
		"elapsed", time.Since(start).String(),
	)
}

func (api *MockApi) listClients(gc *gin.Context) {

	page, size, err := paging(gc)
	if err != nil {
		api.fail(gc, err)
		return
	}

	filter := nt.Filter{}
	if username := gc.Query("username"); username != "" {
		filter = nt.Filter{Op: nt.Contains, Field: "username", Value: username}
	}

	recs, err := api.store.Find(gc.Request.Context(), nt.Clients, filter, nt.Sort{Desc: true}, page, size)
	if err != nil {
		api.fail(gc, err)
		return
	}

	gc.JSON(http.StatusOK, recs)
}

func (api *MockApi) getClient(gc *gin.Context) {

	rec, err := api.store.Get(gc.Request.Context(), nt.Clients, gc.Param("id"))
	if err != nil {
		api.fail(gc, err)
		return
	}

	gc.JSON(http.StatusOK, rec)
}

func (api *MockApi) createClient(gc *gin.Context) {

	rec, err := api.bindClient(gc)
	if err != nil {
		api.fail(gc, err)
		return
	}

	personaId := uuid.NewString()
	rec["personaId"] = personaId
	if persona, ok := rec["persona"].(map[string]any); ok {
		persona["id"] = personaId
	}

	stored, err := api.store.Insert(gc.Request.Context(), nt.Clients, rec)
	if err != nil {
		api.fail(gc, err)
		return
	}

	gc.JSON(http.StatusCreated, stored)
}

func (api *MockApi) updateClient(gc *gin.Context) {

	ctx := gc.Request.Context()
	id := gc.Param("id")

	rec, err := api.bindClient(gc)
	if err != nil {
		api.fail(gc, err)
		return
	}

	existing, err := api.store.Get(ctx, nt.Clients, id)
	if err != nil {
		api.fail(gc, err)
		return
	}

	personaId, _ := existing.Lookup("personaId")
	rec["personaId"] = personaId.Raw
	if persona, ok := rec["persona"].(map[string]any); ok {
		persona["id"] = personaId.Raw
	}

	stored, err := api.store.Replace(ctx, nt.Clients, id, rec)
	if err != nil {
		api.fail(gc, err)
		return
	}

	gc.JSON(http.StatusOK, stored)
}

func (api *MockApi) deleteClient(gc *gin.Context) {

	err := api.store.Delete(gc.Request.Context(), nt.Clients, gc.Param("id"))
	if err != nil {
		api.fail(gc, err)
		return
	}

	gc.Status(http.StatusNoContent)
}

func (api *MockApi) listAccounts(gc *gin.Context) {

	page, size, err := paging(gc)
	if err != nil {
		api.fail(gc, err)
		return
	}

	filter := nt.Filter{}
	if clientId := gc.Query("clienteId"); clientId != "" {
		filter = nt.Filter{Op: nt.Eq, Field: "clienteId", Value: clientId}
	}

	recs, err := api.store.Find(gc.Request.Context(), nt.Accounts, filter, nt.Sort{}, page, size)
	if err != nil {
		api.fail(gc, err)
		return
	}

	gc.JSON(http.StatusOK, recs)
}

func (api *MockApi) listMovements(gc *gin.Context) {

	page, size, err := paging(gc)
	if err != nil {
		api.fail(gc, err)
		return
	}

	from, to, err := dateRange(gc.Query("fechaDesde"), gc.Query("fechaHasta"), false)
	if err != nil {
		api.fail(gc, err)
		return
	}

	accountFilter := []nt.Filter{}
	if clientId := gc.Query("clienteId"); clientId != "" {
		accountFilter = append(accountFilter, nt.Filter{Op: nt.Eq, Field: "clienteId", Value: clientId})
	}
	if number := gc.Query("numeroCuenta"); number != "" {
		accountFilter = append(accountFilter, nt.Filter{Op: nt.Eq, Field: "numeroCuenta", Value: number})
	}

	recs, err := api.movements(gc.Request.Context(), nt.All(accountFilter...), from, to, page, size)
	if err != nil {
		api.fail(gc, err)
		return
	}

	gc.JSON(http.StatusOK, recs)
}

func (api *MockApi) generateReport(gc *gin.Context) {

	ctx := gc.Request.Context()
	clientId := gc.Query("clienteId")
	if clientId == "" {
		api.fail(gc, badRequest{msg: "clienteId es requerido"})
		return
	}

	from, to, err := dateRange(gc.Query("fechaDesde"), gc.Query("fechaHasta"), true)
	if err != nil {
		api.fail(gc, err)
		return
	}

	format := gc.DefaultQuery("formato", "json")
	if format != "json" && format != "pdf" {
		api.fail(gc, badRequest{msg: "Formato no soportado: " + format + ". Formatos disponibles: json, pdf"})
		return
	}

	client, err := api.store.Get(ctx, nt.Clients, clientId)
	if err != nil {
		api.fail(gc, err)
		return
	}

	accounts, err := api.store.Find(ctx, nt.Accounts,
		nt.Filter{Op: nt.Eq, Field: "clienteId", Value: clientId}, nt.Sort{}, 0, reportSize)
	if err != nil {
		api.fail(gc, err)
		return
	}

	movements := make([][]nt.Record, len(accounts))
	for i, account := range accounts {
		movements[i], err = api.movements(ctx, nt.Filter{Op: nt.Eq, Field: "id", Value: account.Id()}, from, to, 0, reportSize)
		if err != nil {
			api.fail(gc, err)
			return
		}
	}

	rpt, err := buildReport(client, accounts, movements, from, to)
	if err != nil {
		api.fail(gc, err)
		return
	}

	if format == "json" {
		gc.JSON(http.StatusOK, rpt)
		return
	}
	gc.JSON(http.StatusOK, nt.PdfReport{PdfBase64: encodeStatement(rpt)})
}

// movements finds movements of the first account matching accountFilter, within from and to
func (api *MockApi) movements(ctx context.Context, accountFilter nt.Filter, from, to string, page, size int) (recs []nt.Record, err error) {

	accounts, err := api.store.Find(ctx, nt.Accounts, accountFilter, nt.Sort{}, 0, 1)
	if err != nil || len(accounts) == 0 {
		recs = []nt.Record{}
		return
	}

	filters := []nt.Filter{{Op: nt.Eq, Field: "cuentaId", Value: accounts[0].Id()}}
	if from != "" {
		filters = append(filters, nt.Filter{Op: nt.Gte, Field: "fecha", Value: from})
	}
	if to != "" {
		filters = append(filters, nt.Filter{Op: nt.Lte, Field: "fecha", Value: to + "T23:59:59.999"})
	}

	recs, err = api.store.Find(ctx, nt.Movements, nt.All(filters...), nt.Sort{Field: "fecha"}, page, size)
	return
}

func (api *MockApi) bindClient(gc *gin.Context) (rec nt.Record, err error) {

	var client nt.Client
	err = gc.ShouldBindJSON(&client)
	if err != nil {
		err = badRequest{msg: "cuerpo inválido: " + err.Error()}
		return
	}

	err = api.validate.Struct(client)
	if err != nil {
		err = badRequest{msg: "Por favor, completa todos los campos: " + err.Error()}
		return
	}

	client.Id = ""
	client.CreatedAt = ""
	client.UpdatedAt = ""

	data, err := json.Marshal(client)
	if err != nil {
		err = errors.Wrapf(err, "failed to marshal client")
		return
	}

	err = json.Unmarshal(data, &rec)
	err = errors.Wrapf(err, "failed to unmarshal client")
	return
}

func (api *MockApi) fail(gc *gin.Context, err error) {

	status := http.StatusInternalServerError
	business := "Ocurrió un error inesperado"

	var br badRequest
	switch {
	case errors.As(err, &br):
		status = http.StatusBadRequest
		business = br.msg
	case errors.Is(err, nt.ErrNotFound):
		status = http.StatusNotFound
		business = "Registro no encontrado"
	default:
		api.logger.Error(gc.Request.Context(), "request failed", err, "path", gc.Request.URL.Path)
	}

	gc.AbortWithStatusJSON(status, gin.H{
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
		"status":          status,
		"message":         err.Error(),
		"businessMessage": business,
	})
}

func paging(gc *gin.Context) (page, size int, err error) {

	page, err = strconv.Atoi(gc.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		err = badRequest{msg: "page inválido"}
		return
	}

	size, err = strconv.Atoi(gc.DefaultQuery("size", strconv.Itoa(defaultSize)))
	if err != nil || size <= 0 {
		err = badRequest{msg: "size inválido"}
		return
	}

	if page > math.MaxInt/size {
		err = badRequest{msg: "page fuera de rango"}
	}
	return
}

func dateRange(from, to string, required bool) (string, string, error) {

	if required && (from == "" || to == "") {
		return "", "", badRequest{msg: "fechaDesde y fechaHasta son requeridos"}
	}

	var start, end time.Time
	var err error
	if from != "" {
		start, err = time.Parse(nt.DateFormat, from)
		if err != nil {
			return "", "", badRequest{msg: "fechaDesde inválida: " + from}
		}
	}
	if to != "" {
		end, err = time.Parse(nt.DateFormat, to)
		if err != nil {
			return "", "", badRequest{msg: "fechaHasta inválida: " + to}
		}
	}

	if from != "" && to != "" && start.After(end) {
		return "", "", badRequest{msg: "La fecha de inicio no puede ser posterior a la fecha fin"}
	}
	return from, to, nil
}
