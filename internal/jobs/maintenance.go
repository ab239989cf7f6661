package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"jobprep/interview/internal/repositories"
)

// MaintenanceJob periodically retires never-used questions so stale
// generated content does not accumulate in the bank forever.
type MaintenanceJob struct {
	bank   repositories.QuestionRepository
	config *MaintenanceConfig
	logger *zap.Logger
	cron   *cron.Cron
}

type MaintenanceConfig struct {
	Schedule   string        // cron schedule, e.g. "0 3 * * *"
	StaleAfter time.Duration // questions never used within this window are retired
	Enabled    bool
}

func NewMaintenanceJob(bank repositories.QuestionRepository, config *MaintenanceConfig, logger *zap.Logger) *MaintenanceJob {
	return &MaintenanceJob{
		bank:   bank,
		config: config,
		logger: logger,
		cron:   cron.New(),
	}
}

// Start begins the scheduled maintenance job.
func (j *MaintenanceJob) Start() error {
	if !j.config.Enabled {
		j.logger.Info("bank maintenance is disabled, skipping scheduler")
		return nil
	}

	_, err := j.cron.AddFunc(j.config.Schedule, func() {
		if err := j.RunOnce(context.Background()); err != nil {
			j.logger.Error("bank maintenance run failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule maintenance job: %w", err)
	}

	j.cron.Start()
	j.logger.Info("bank maintenance scheduled", zap.String("schedule", j.config.Schedule))
	return nil
}

// Stop stops the scheduled job.
func (j *MaintenanceJob) Stop() {
	if j.cron != nil {
		j.cron.Stop()
	}
}

// RunOnce performs a single maintenance pass.
func (j *MaintenanceJob) RunOnce(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-j.config.StaleAfter)
	retired, err := j.bank.DeactivateStale(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to retire stale questions: %w", err)
	}

	j.logger.Info("bank maintenance completed",
		zap.Int64("retired", retired),
		zap.Time("cutoff", cutoff))
	return nil
}
