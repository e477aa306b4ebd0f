package scanner

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hotspotmetrics/rewardscan-backend/internal/rewards/aggregate"
	"github.com/hotspotmetrics/rewardscan-backend/internal/rewards/extract"
	"github.com/hotspotmetrics/rewardscan-backend/internal/rewards/keys"
	"github.com/hotspotmetrics/rewardscan-backend/internal/rewards/model"
)

// DeviceScanner scans the reward object stream for one device's events and
// aggregates them per UTC day. Objects are processed sequentially in
// timestamp order.
type DeviceScanner struct {
	logger  *zap.Logger
	store   ObjectStore
	metrics Metrics
	prefix  string
}

// NewDeviceScanner constructs a DeviceScanner reading objects under prefix.
func NewDeviceScanner(logger *zap.Logger, store ObjectStore, metrics Metrics, prefix string) (*DeviceScanner, error) {
	if store == nil {
		return nil, fmt.Errorf("object store is required")
	}
	if metrics == nil {
		return nil, fmt.Errorf("metrics are required")
	}
	return &DeviceScanner{
		logger:  logger.Named("device_scanner"),
		store:   store,
		metrics: metrics,
		prefix:  prefix,
	}, nil
}

// ScanDevice enumerates the objects in [start, end], matches frames against
// every known representation of deviceKey and returns day-keyed aggregates.
// A listing failure is fatal; a single object that cannot be fetched is
// counted and skipped so one unavailable object does not void a long scan.
func (s *DeviceScanner) ScanDevice(ctx context.Context, deviceKey string, start, end time.Time) (*model.DeviceScanResult, error) {
	if deviceKey == "" {
		return nil, fmt.Errorf("device key is required")
	}

	formats := keys.DeriveFormats(deviceKey)

	objects, err := s.store.ListObjectsInRange(ctx, s.prefix, start, end)
	if err != nil {
		return nil, fmt.Errorf("list reward objects: %w", err)
	}

	logger := s.logger.With(zap.String("device", deviceKey))
	logger.Info("device scan started",
		zap.Time("start", start),
		zap.Time("end", end),
		zap.Int("objects", len(objects)),
	)

	builder := aggregate.NewDailyBuilder()
	result := &model.DeviceScanResult{DeviceKey: deviceKey, Start: start, End: end}
	result.Meta.FilesScanned = len(objects)

	for _, obj := range objects {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		started := time.Now()
		counts, err := scanFrames(ctx, s.store, obj.Key, func(share *extract.RewardShare) bool {
			if !share.HasReward() {
				return false
			}
			if !formats.MatchesIdentifier(share.Identifier()) && !formats.MatchesLoose(share.LooseText()) {
				return false
			}
			builder.Add(share.Event(obj.Timestamp, deviceKey))
			return true
		})
		s.metrics.ObserveObject(err, started)
		if err != nil {
			result.Meta.FetchFailures++
			logger.Warn("reward object skipped", zap.String("key", obj.Key), zap.Error(err))
			continue
		}

		s.metrics.AddFrames(counts.frames)
		s.metrics.AddDecodeErrors(counts.decodeErrors)
		s.metrics.AddMatches(counts.matches)

		result.Meta.FramesScanned += counts.frames
		result.Meta.DecodeErrors += counts.decodeErrors
		result.Meta.EventsMatched += counts.matches
		result.Audits = append(result.Audits, model.ScanAudit{
			DeviceKey:       deviceKey,
			ObjectKey:       obj.Key,
			ObjectTimestamp: obj.Timestamp,
			Frames:          counts.frames,
			DecodeErrors:    counts.decodeErrors,
			Matches:         counts.matches,
			ScannedAt:       time.Now().UTC(),
		})
	}

	result.Daily, result.Summary = builder.Build()

	logger.Info("device scan finished",
		zap.Int("events", result.Meta.EventsMatched),
		zap.Int("active_days", result.Summary.ActiveDays),
		zap.Uint64("total_dc", result.Summary.TotalDC),
	)
	return result, nil
}
