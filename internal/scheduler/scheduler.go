package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/rsarkis/stockroom/internal/service/audit"
)

// Scheduler manages the periodic stock audit.
type Scheduler struct {
	cron     *cron.Cron
	auditSvc *audit.Service
	spec     string
	logger   *zap.Logger
}

// NewScheduler creates a new scheduler instance. The spec is a standard
// five-field cron expression (min, hour, dom, month, dow).
func NewScheduler(spec string, auditSvc *audit.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:     cron.New(),
		auditSvc: auditSvc,
		spec:     spec,
		logger:   logger,
	}
}

// Start registers the audit job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.spec))

	if _, err := s.cron.AddFunc(s.spec, s.runAudit); err != nil {
		s.logger.Error("failed to schedule stock audit", zap.Error(err))
		return
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runAudit() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	summary, err := s.auditSvc.Run(ctx)
	if err != nil {
		s.logger.Error("stock audit failed", zap.Error(err))
		return
	}

	s.logger.Info("stock audit finished",
		zap.Int("items", summary.Total),
		zap.Int("low", summary.Low),
		zap.Int("high", summary.High))
}
