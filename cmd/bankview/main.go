package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/clarktrimble/sabot"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"bankview"
	"bankview/api"
	nt "bankview/entity"
	"bankview/mockapi"
	"bankview/report"
	"bankview/store/duck"
	"bankview/util"
)

type Config struct {
	LogFile string          `yaml:"logFile"`
	Api     api.Config      `yaml:"api"`
	App     bankview.Config `yaml:",inline"`
	Mock    mockapi.Config  `yaml:"mock"`
}

var (
	cfgPath string
	sample  = Config{
		LogFile: "bankview.log",
		Api: api.Config{
			BaseUrl: "http://localhost:8080/api",
			Timeout: 10 * time.Second,
		},
		App: bankview.Config{
			FetchSize: 20,
			PageSize:  20,
			MovesFrom: "2025-01-01",
			MovesTo:   "2025-12-31",
			Report:    bankview.ReportConfig{Dir: ".", From: "2025-01-01"},
		},
		Mock: mockapi.Config{
			Addr:     ":8080",
			Fixtures: "fixtures",
		},
	}
)

func main() {

	rootCmd := &cobra.Command{
		Use:   "bankview",
		Short: "Terminal front-end for bank clients, accounts and movements",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE:         runTui,
	}
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "bankview.yaml", "config file, a sample is written when missing")

	rootCmd.AddCommand(newReportCommand(), newMockCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runTui(cmd *cobra.Command, args []string) (err error) {

	cfg, lgr, closeLog, err := setup()
	if err != nil {
		return
	}
	defer closeLog()

	ctx := lgr.WithFields(cmd.Context(), "run_id", time.Now().Format("150405.000"))
	lgr.Info(ctx, "starting up", "base_url", cfg.Api.BaseUrl)

	model, err := cfg.App.New(ctx, cfg.Api.New(lgr), lgr)
	if err != nil {
		lgr.Error(ctx, "failed to create model", err)
		return
	}

	_, err = tea.NewProgram(model).Run()
	if err != nil {
		lgr.Error(ctx, "failed to run", err)
		return
	}

	lgr.Info(ctx, "shutting down")
	return
}

func newReportCommand() *cobra.Command {

	var clientId, from, to string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export a client's pdf statement without the terminal ui",
		RunE: func(cmd *cobra.Command, args []string) (err error) {

			cfg, lgr, closeLog, err := setup()
			if err != nil {
				return
			}
			defer closeLog()

			if from == "" {
				from = cfg.App.Report.From
			}
			if to == "" {
				to = time.Now().Format(nt.DateFormat)
			}
			qry := nt.ReportQuery{ClienteId: clientId, FechaDesde: from, FechaHasta: to}

			ctx := cmd.Context()
			pdf, err := cfg.Api.New(lgr).GenerateReport(ctx, qry)
			if err != nil {
				lgr.Error(ctx, "failed to generate report", err, "client_id", clientId)
				return
			}

			dir := cfg.App.Report.Dir
			if dir == "" {
				dir = "."
			}
			path, err := report.Export(dir, qry, pdf)
			if err != nil {
				return
			}

			lgr.Info(ctx, "exported report", "client_id", clientId, "path", path)
			fmt.Println(path)
			return
		},
	}

	cmd.Flags().StringVar(&clientId, "client", "", "client id")
	cmd.Flags().StringVar(&from, "from", "", "start date, AAAA-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "end date, AAAA-MM-DD, today when empty")
	_ = cmd.MarkFlagRequired("client")

	return cmd
}

func newMockCommand() *cobra.Command {

	var fixtures, addr string

	cmd := &cobra.Command{
		Use:   "mock",
		Short: "Serve an in-memory stand-in for the remote service",
		RunE: func(cmd *cobra.Command, args []string) (err error) {

			cfg, lgr, closeLog, err := setup()
			if err != nil {
				return
			}
			defer closeLog()

			if fixtures != "" {
				cfg.Mock.Fixtures = fixtures
			}
			if addr != "" {
				cfg.Mock.Addr = addr
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			dk, err := duck.New(lgr)
			if err != nil {
				return
			}
			defer dk.Close()

			err = dk.Load(ctx, cfg.Mock.Fixtures)
			if err != nil {
				return
			}

			srv := &http.Server{
				Addr:    cfg.Mock.Addr,
				Handler: cfg.Mock.New(dk, lgr).Router(),
			}

			go func() {
				<-ctx.Done()
				shutCtx, shutCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer shutCancel()
				srv.Shutdown(shutCtx)
			}()

			lgr.Info(ctx, "mock listening", "addr", srv.Addr, "fixtures", cfg.Mock.Fixtures)
			fmt.Printf("mock listening on %s\n", srv.Addr)

			err = srv.ListenAndServe()
			if errors.Is(err, http.ErrServerClosed) {
				err = nil
			}
			err = errors.Wrapf(err, "failed to serve on %s", srv.Addr)
			return
		},
	}

	cmd.Flags().StringVar(&fixtures, "fixtures", "", "directory of ndjson fixtures")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address")

	return cmd
}

// setup loads config, writing a sample first if needed, and opens the log
func setup() (cfg Config, lgr *sabot.Sabot, closeLog func(), err error) {

	wrote, err := util.SampleConfig(sample, cfgPath, 0644)
	if err != nil {
		return
	}
	if wrote {
		fmt.Printf("wrote sample config to %s\n", cfgPath)
	}

	err = util.LoadConfig(&cfg, cfgPath)
	if err != nil {
		return
	}

	logFile := util.OpenLog(cfg.LogFile, 0644)
	closeLog = func() { util.CloseLog(logFile) }

	lgr = &sabot.Sabot{Writer: logFile, MaxLen: 999}
	return
}
