// Package api talks to the remote clients/accounts/movements service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/pkg/errors"

	nt "bankview/entity"
)

const (
	clientsPath   = "/clientes"
	accountsPath  = "/cuentas"
	movementsPath = "/movimientos"
	reportsPath   = "/reportes"
)

// Config configures the remote service client.
type Config struct {
	BaseUrl string        `yaml:"baseUrl"`
	Timeout time.Duration `yaml:"timeout"`
}

// Client is a thin json client over the remote service.
type Client struct {
	baseUrl string
	http    *http.Client
	logger  nt.Logger
}

// StatusError reports a non-2xx response.
type StatusError struct {
	Method string
	Url    string
	Code   int
	Body   string
}

func (se *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d: %s", se.Method, se.Url, se.Code, se.Body)
}

// New creates a client from config.
func (cfg *Config) New(lgr nt.Logger) *Client {

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseUrl: strings.TrimSuffix(cfg.BaseUrl, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  lgr,
	}
}

// ListClients gets a page of clients.
func (clt *Client) ListClients(ctx context.Context, page, size int) (clients []nt.Record, err error) {

	err = clt.do(ctx, http.MethodGet, clientsPath, nt.Paging{Page: page, Size: size}, nil, &clients)
	return
}

// GetClient gets one client by id.
func (clt *Client) GetClient(ctx context.Context, id string) (client nt.Client, err error) {

	err = clt.do(ctx, http.MethodGet, clientsPath+"/"+url.PathEscape(id), nil, nil, &client)
	return
}

// CreateClient posts a new client and returns it as stored.
func (clt *Client) CreateClient(ctx context.Context, client nt.Client) (created nt.Client, err error) {

	err = clt.do(ctx, http.MethodPost, clientsPath, nil, client, &created)
	return
}

// UpdateClient puts a client under its id.
func (clt *Client) UpdateClient(ctx context.Context, client nt.Client) (updated nt.Client, err error) {

	if client.Id == "" {
		err = errors.New("cannot update client without id")
		return
	}

	err = clt.do(ctx, http.MethodPut, clientsPath+"/"+url.PathEscape(client.Id), nil, client, &updated)
	return
}

// DeleteClient deletes a client by id.
func (clt *Client) DeleteClient(ctx context.Context, id string) (err error) {

	err = clt.do(ctx, http.MethodDelete, clientsPath+"/"+url.PathEscape(id), nil, nil, nil)
	return
}

// ListAccounts gets a page of a client's accounts.
func (clt *Client) ListAccounts(ctx context.Context, qry nt.AccountQuery) (accounts []nt.Record, err error) {

	err = clt.do(ctx, http.MethodGet, accountsPath, qry, nil, &accounts)
	return
}

// ListMovements gets a page of an account's movements within a date range.
func (clt *Client) ListMovements(ctx context.Context, qry nt.MovementQuery) (movements []nt.Record, err error) {

	err = clt.do(ctx, http.MethodGet, movementsPath, qry, nil, &movements)
	return
}

// GenerateReport requests a pdf statement for a client.
func (clt *Client) GenerateReport(ctx context.Context, qry nt.ReportQuery) (report nt.PdfReport, err error) {

	qry.Formato = "pdf"
	err = clt.do(ctx, http.MethodGet, reportsPath, qry, nil, &report)
	return
}

// unexported

func (clt *Client) do(ctx context.Context, method, path string, params, body, out any) (err error) {

	endpoint := clt.baseUrl + path
	if params != nil {
		var vals url.Values
		vals, err = query.Values(params)
		if err != nil {
			err = errors.Wrapf(err, "failed to encode params for %s", path)
			return
		}
		endpoint += "?" + vals.Encode()
	}

	var reader io.Reader
	if body != nil {
		var data []byte
		data, err = json.Marshal(body)
		if err != nil {
			err = errors.Wrapf(err, "failed to marshal body for %s", path)
			return
		}
		reader = bytes.NewReader(data)
	}

	request, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		err = errors.Wrapf(err, "failed to create request")
		return
	}
	request.Header.Set("Accept", "application/json")
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	response, err := clt.http.Do(request)
	if err != nil {
		err = errors.Wrapf(err, "failed to %s %s", method, path)
		return
	}
	defer response.Body.Close()

	clt.logger.Info(ctx, "remote call",
		"method", method, "path", path, "status", response.StatusCode, "elapsed", time.Since(start).String())

	data, err := io.ReadAll(response.Body)
	if err != nil {
		err = errors.Wrapf(err, "failed to read response from %s", path)
		return
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		err = &StatusError{
			Method: method,
			Url:    endpoint,
			Code:   response.StatusCode,
			Body:   strings.TrimSpace(string(data)),
		}
		return
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return
	}

	err = json.Unmarshal(data, out)
	err = errors.Wrapf(err, "failed to decode response from %s", path)
	return
}
