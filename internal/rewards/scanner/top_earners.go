package scanner

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hotspotmetrics/rewardscan-backend/internal/rewards/aggregate"
	"github.com/hotspotmetrics/rewardscan-backend/internal/rewards/extract"
	"github.com/hotspotmetrics/rewardscan-backend/internal/rewards/model"
	"github.com/hotspotmetrics/rewardscan-backend/pkg/workerpool"
)

// TopEarnersScanner ranks the whole fleet by DC earned over several lookback
// windows. Objects are fetched and decoded in parallel; results are folded in
// object-timestamp order so rankings are deterministic across runs.
type TopEarnersScanner struct {
	logger  *zap.Logger
	store   ObjectStore
	metrics Metrics
	prefix  string
	workers int
}

// NewTopEarnersScanner constructs a TopEarnersScanner reading objects under
// prefix with the given fetch parallelism.
func NewTopEarnersScanner(logger *zap.Logger, store ObjectStore, metrics Metrics, prefix string, workers int) (*TopEarnersScanner, error) {
	if store == nil {
		return nil, fmt.Errorf("object store is required")
	}
	if metrics == nil {
		return nil, fmt.Errorf("metrics are required")
	}
	if workers < 1 {
		workers = DefaultWorkerCount
	}
	return &TopEarnersScanner{
		logger:  logger.Named("top_earners_scanner"),
		store:   store,
		metrics: metrics,
		prefix:  prefix,
		workers: workers,
	}, nil
}

// objectOutcome holds one worker's output until the ordered fold.
type objectOutcome struct {
	counts  objectCounts
	scanErr error
	events  []model.RewardEvent
}

// ScanTopEarners scans the widest window ending at end once and returns the
// top n devices per window. Windows must be strictly ascending day counts;
// every event in a shorter window is by construction also in the wider ones.
func (s *TopEarnersScanner) ScanTopEarners(ctx context.Context, end time.Time, windowsDays []int, topN int) (*model.TopEarnersResult, error) {
	totals, err := aggregate.NewWindowTotals(end, windowsDays)
	if err != nil {
		return nil, err
	}

	start := end.AddDate(0, 0, -totals.WidestDays())
	objects, err := s.store.ListObjectsInRange(ctx, s.prefix, start, end)
	if err != nil {
		return nil, fmt.Errorf("list reward objects: %w", err)
	}

	s.logger.Info("fleet scan started",
		zap.Time("end", end),
		zap.Ints("windows_days", windowsDays),
		zap.Int("objects", len(objects)),
	)

	outcomes := make([]objectOutcome, len(objects))
	indexes := make([]int, len(objects))
	for i := range indexes {
		indexes[i] = i
	}

	err = workerpool.Process(ctx, s.workers, indexes, func(ctx context.Context, i int) error {
		obj := objects[i]
		started := time.Now()
		counts, scanErr := scanFrames(ctx, s.store, obj.Key, func(share *extract.RewardShare) bool {
			if !share.HasReward() {
				return false
			}
			id := share.Identifier()
			if id == "" {
				return false
			}
			outcomes[i].events = append(outcomes[i].events, share.Event(obj.Timestamp, id))
			return true
		})
		s.metrics.ObserveObject(scanErr, started)
		outcomes[i].counts = counts
		outcomes[i].scanErr = scanErr
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &model.TopEarnersResult{
		WindowsDays: append([]int(nil), windowsDays...),
		End:         end,
	}
	result.Meta.FilesScanned = len(objects)

	// objects are listed ascending by timestamp; folding in index order keeps
	// first-seen tie ordering stable regardless of worker scheduling
	for i := range outcomes {
		out := &outcomes[i]
		if out.scanErr != nil {
			result.Meta.FetchFailures++
			s.logger.Warn("reward object skipped", zap.String("key", objects[i].Key), zap.Error(out.scanErr))
			continue
		}

		s.metrics.AddFrames(out.counts.frames)
		s.metrics.AddDecodeErrors(out.counts.decodeErrors)
		s.metrics.AddMatches(out.counts.matches)

		result.Meta.FramesScanned += out.counts.frames
		result.Meta.DecodeErrors += out.counts.decodeErrors
		result.Meta.EventsMatched += out.counts.matches
		for _, ev := range out.events {
			totals.Add(ev)
		}
	}

	result.Top = totals.TopN(topN)

	s.logger.Info("fleet scan finished",
		zap.Int("events", result.Meta.EventsMatched),
		zap.Int("fetch_failures", result.Meta.FetchFailures),
	)
	return result, nil
}
