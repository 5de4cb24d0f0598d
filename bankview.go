// Package bankview is a terminal front-end for bank clients, their accounts and movements.
package bankview

import (
	"context"
	"time"

	nt "bankview/entity"
)

// Todo: confirm before delete
// Todo: editable date range on movements

// Service specifies the remote clients/accounts/movements service.
type Service interface {
	ListClients(ctx context.Context, page, size int) ([]nt.Record, error)
	GetClient(ctx context.Context, id string) (nt.Client, error)
	CreateClient(ctx context.Context, client nt.Client) (nt.Client, error)
	UpdateClient(ctx context.Context, client nt.Client) (nt.Client, error)
	DeleteClient(ctx context.Context, id string) error
	ListAccounts(ctx context.Context, qry nt.AccountQuery) ([]nt.Record, error)
	ListMovements(ctx context.Context, qry nt.MovementQuery) ([]nt.Record, error)
	GenerateReport(ctx context.Context, qry nt.ReportQuery) (nt.PdfReport, error)
}

type ReportConfig struct {
	Dir  string `yaml:"dir"`
	From string `yaml:"from"`
}

type Config struct {
	FetchSize  int          `yaml:"fetchSize"`
	PageSize   int          `yaml:"pageSize"`
	LayoutFile string       `yaml:"layoutFile,omitempty"`
	MovesFrom  string       `yaml:"movementsFrom"`
	MovesTo    string       `yaml:"movementsTo"`
	Report     ReportConfig `yaml:"report"`
}

// env is shared by every screen
type env struct {
	ctx    context.Context
	svc    Service
	logger nt.Logger
	cfg    Config
	layout *Layout
	today  func() time.Time
}

// New creates the bubbletea model.
func (cfg *Config) New(ctx context.Context, svc Service, lgr nt.Logger) (model Model, err error) {

	layout, err := LoadLayout(cfg.LayoutFile)
	if err != nil {
		return
	}

	model = newModel(&env{
		ctx:    ctx,
		svc:    svc,
		logger: lgr,
		cfg:    cfg.withDefaults(),
		layout: layout,
		today:  time.Now,
	})
	return
}

// unexported

func (cfg Config) withDefaults() Config {

	if cfg.FetchSize <= 0 {
		cfg.FetchSize = 20
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 20
	}
	if cfg.MovesFrom == "" {
		cfg.MovesFrom = "2025-01-01"
	}
	if cfg.MovesTo == "" {
		cfg.MovesTo = "2025-12-31"
	}
	if cfg.Report.From == "" {
		cfg.Report.From = "2025-01-01"
	}
	if cfg.Report.Dir == "" {
		cfg.Report.Dir = "."
	}
	return cfg
}
