package scanner

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/hotspotmetrics/rewardscan-backend/internal/rewards/model"
	"github.com/hotspotmetrics/rewardscan-backend/pkg/batcher"
)

// FleetOrchestrator runs single-device scans for a list of devices, paced by
// a rate limiter, and persists the results. One failing device does not stop
// the run; audits are batched to keep insert pressure off the store.
type FleetOrchestrator struct {
	logger     *zap.Logger
	scanner    Scanner
	repository Repository
	audits     *batcher.Batcher[model.ScanAudit]
	rl         ratelimit.Limiter
}

// NewFleetOrchestrator constructs a FleetOrchestrator scanning at most
// devicesPerSecond devices per second.
func NewFleetOrchestrator(logger *zap.Logger, scanner Scanner, repository Repository, devicesPerSecond int) (*FleetOrchestrator, error) {
	if scanner == nil {
		return nil, fmt.Errorf("scanner is required")
	}
	if repository == nil {
		return nil, fmt.Errorf("repository is required")
	}
	if devicesPerSecond < 1 {
		devicesPerSecond = DefaultDevicesPerSecond
	}

	return &FleetOrchestrator{
		logger:     logger.Named("fleet_orchestrator"),
		scanner:    scanner,
		repository: repository,
		audits: batcher.New(
			logger,
			"scan_audits",
			repository.InsertScanAudits,
			DefaultAuditFlushSize,
			DefaultAuditFlushInterval,
			DefaultAuditFlushRPS,
		),
		rl: ratelimit.New(devicesPerSecond),
	}, nil
}

// Run scans every device over [start, end] and persists daily aggregates and
// per-object audits. It fails only on context cancellation or when no device
// could be scanned at all.
func (o *FleetOrchestrator) Run(ctx context.Context, deviceKeys []string, start, end time.Time) error {
	o.audits.Start(ctx)
	defer o.audits.Stop()

	failed := 0
	for _, key := range deviceKeys {
		if err := ctx.Err(); err != nil {
			return err
		}
		o.rl.Take()

		result, err := o.scanner.ScanDevice(ctx, key, start, end)
		if err != nil {
			failed++
			o.logger.Error("device scan failed", zap.String("device", key), zap.Error(err))
			continue
		}

		if err := o.repository.InsertDailyAggregates(ctx, key, result.Daily); err != nil {
			failed++
			o.logger.Error("daily aggregates not persisted", zap.String("device", key), zap.Error(err))
			continue
		}

		for _, audit := range result.Audits {
			if err := o.audits.Add(ctx, audit); err != nil {
				return fmt.Errorf("queue scan audit: %w", err)
			}
		}
	}

	if failed > 0 && failed == len(deviceKeys) {
		return fmt.Errorf("all %d device scans failed", failed)
	}
	o.logger.Info("fleet run finished", zap.Int("devices", len(deviceKeys)), zap.Int("failed", failed))
	return nil
}
