package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mbodj/clinivet/internal/config"
	"github.com/mbodj/clinivet/internal/service/alerts"
	"github.com/mbodj/clinivet/internal/service/reporting"
)

// Scheduler runs the recurring end-of-day job: export the sales ledger and
// push a low-stock alert to the owner.
type Scheduler struct {
	cron         *cron.Cron
	reportingSvc *reporting.Service
	notifier     alerts.Notifier
	cfg          config.ReportingConfig
	logger       *zap.Logger
}

// NewScheduler creates a scheduler instance honoring the configured timezone.
func NewScheduler(cfg config.ReportingConfig, reportingSvc *reporting.Service, notifier alerts.Notifier, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn("unknown timezone, falling back to local", zap.String("timezone", cfg.Timezone), zap.Error(err))
		location = time.Local
	}

	return &Scheduler{
		cron:         cron.New(cron.WithLocation(location)),
		reportingSvc: reportingSvc,
		notifier:     notifier,
		cfg:          cfg,
		logger:       logger,
	}
}

// Start registers the daily job and launches the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.runDailyJob); err != nil {
		s.logger.Error("failed to schedule daily job", zap.Error(err))
	}

	s.cron.Start()
}

// Stop halts the cron loop.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runDailyJob() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := s.reportingSvc.ExportDailyLedger(ctx, time.Now()); err != nil {
		s.logger.Error("failed to export daily ledger", zap.Error(err))
	}

	report, err := s.reportingSvc.LowStockReport(ctx)
	if err != nil {
		s.logger.Error("failed to build low stock report", zap.Error(err))
		return
	}
	if report == "" {
		s.logger.Info("stock levels ok, no alert sent")
		return
	}

	if err := s.notifier.Notify(ctx, report); err != nil {
		s.logger.Error("failed to deliver low stock alert", zap.Error(err))
	}
}
