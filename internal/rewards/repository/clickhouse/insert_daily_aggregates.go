package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hotspotmetrics/rewardscan-backend/internal/rewards/model"
)

// InsertDailyAggregates stores one device's day-keyed aggregates. Rows for
// the same device and date replace older ones on merge.
func (r *Repository) InsertDailyAggregates(ctx context.Context, deviceKey string, rows []model.DailyAggregate) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_daily_aggregates", err, start)
	}()

	if deviceKey == "" {
		err = errors.New("device key is required")
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	const query = `
INSERT INTO reward_daily_aggregates (
	device_key,
	date,
	total_dc,
	total_base_poc,
	total_boosted_poc,
	total_poc,
	event_count
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		err = fmt.Errorf("prepare daily aggregates batch: %w", err)
		return err
	}

	for _, row := range rows {
		if row.Date.IsZero() {
			err = fmt.Errorf("daily aggregate for %s has no date", deviceKey)
			return err
		}
		if err = batch.Append(
			deviceKey,
			row.Date,
			row.TotalDC,
			row.TotalBasePoc,
			row.TotalBoostedPoc,
			row.TotalPoc,
			uint64(row.EventCount),
		); err != nil {
			err = fmt.Errorf("append daily aggregate: %w", err)
			return err
		}
	}

	if err = batch.Send(); err != nil {
		err = fmt.Errorf("insert daily aggregates: %w", err)
		return err
	}
	return nil
}
