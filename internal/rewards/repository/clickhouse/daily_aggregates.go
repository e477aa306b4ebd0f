package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hotspotmetrics/rewardscan-backend/internal/rewards/model"
)

// DailyAggregates returns a device's stored day aggregates for dates in
// [start, end], ordered ascending.
func (r *Repository) DailyAggregates(ctx context.Context, deviceKey string, start, end time.Time) ([]model.DailyAggregate, error) {
	started := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("daily_aggregates", err, started)
	}()

	if deviceKey == "" {
		err = errors.New("device key is required")
		return nil, err
	}

	const query = `
SELECT
	date,
	total_dc,
	total_base_poc,
	total_boosted_poc,
	total_poc,
	event_count
FROM reward_daily_aggregates FINAL
WHERE device_key = ? AND date >= ? AND date <= ?
ORDER BY date`

	rows, err := r.conn.Query(ctx, query, deviceKey, start, end)
	if err != nil {
		err = fmt.Errorf("query daily aggregates: %w", err)
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var out []model.DailyAggregate
	for rows.Next() {
		var (
			row        model.DailyAggregate
			eventCount uint64
		)
		if err = rows.Scan(
			&row.Date,
			&row.TotalDC,
			&row.TotalBasePoc,
			&row.TotalBoostedPoc,
			&row.TotalPoc,
			&eventCount,
		); err != nil {
			err = fmt.Errorf("scan daily aggregate: %w", err)
			return nil, err
		}
		row.EventCount = int(eventCount)
		out = append(out, row)
	}
	if err = rows.Err(); err != nil {
		err = fmt.Errorf("iterate daily aggregates: %w", err)
		return nil, err
	}
	return out, nil
}
