package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/rsarkis/stockroom/internal/config"
	"github.com/rsarkis/stockroom/internal/eventlog"
	"github.com/rsarkis/stockroom/internal/repository/sqlite"
	"github.com/rsarkis/stockroom/internal/scheduler"
	"github.com/rsarkis/stockroom/internal/service/audit"
	"github.com/rsarkis/stockroom/internal/service/session"
	"github.com/rsarkis/stockroom/internal/store"
	"github.com/rsarkis/stockroom/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	events, err := eventlog.New(cfg.Log.EventLogPath)
	if err != nil {
		baseLogger.Fatal("failed to open event log", zap.Error(err))
	}
	defer func() { _ = events.Sync() }()

	policy := store.Policy{
		LowThreshold:      cfg.Stock.LowThreshold,
		HighThreshold:     cfg.Stock.HighThreshold,
		ReplenishQuantity: cfg.Stock.ReplenishQuantity,
		AllowNegative:     cfg.Stock.AllowNegative,
	}

	accounts := store.NewAccountDirectory(events)
	suppliers := store.NewSupplierDirectory(events)
	memos := store.NewMemoBoard(events)
	ledger := store.NewLedger(policy, events)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var reports session.Reporter
	if cfg.Reporting.DatabasePath != "" {
		repo, err := sqlite.New(cfg.Reporting.DatabasePath, baseLogger.Named("repo.sqlite"))
		if err != nil {
			baseLogger.Fatal("failed to open reporting database", zap.Error(err))
		}
		defer func() {
			if err := repo.Close(); err != nil {
				baseLogger.Error("failed to close reporting database", zap.Error(err))
			}
		}()
		reports = repo

		auditSvc := audit.NewService(repo, policy, events, baseLogger.Named("svc.audit"))
		sched := scheduler.NewScheduler(cfg.Reporting.AuditCronSchedule, auditSvc, baseLogger.Named("scheduler"))
		sched.Start()
		defer sched.Stop()
	}

	ctrl := session.NewController(os.Stdin, os.Stdout, session.Options{
		Accounts:  accounts,
		Suppliers: suppliers,
		Memos:     memos,
		Ledger:    ledger,
		Reports:   reports,
		Events:    events,
		Logger:    baseLogger.Named("session"),
	})

	if err := ctrl.Run(ctx); err != nil && !errors.Is(err, io.EOF) {
		baseLogger.Error("console session failed", zap.Error(err))
	}
}
