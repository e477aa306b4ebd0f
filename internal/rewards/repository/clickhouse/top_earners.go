package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hotspotmetrics/rewardscan-backend/internal/rewards/model"
)

// TopEarners returns the ranking of the most recent fleet scan for one
// lookback window, ordered by rank and truncated to limit.
func (r *Repository) TopEarners(ctx context.Context, lookback string, limit int) ([]model.TopEarner, error) {
	started := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("top_earners", err, started)
	}()

	if lookback == "" {
		err = errors.New("lookback label is required")
		return nil, err
	}
	if limit < 1 {
		err = errors.New("limit must be positive")
		return nil, err
	}

	const query = `
SELECT
	rank,
	device_key,
	total_dc
FROM reward_top_earners
WHERE lookback = ? AND scan_end = (
	SELECT max(scan_end) FROM reward_top_earners WHERE lookback = ?
)
ORDER BY rank
LIMIT ?`

	rows, err := r.conn.Query(ctx, query, lookback, lookback, uint64(limit))
	if err != nil {
		err = fmt.Errorf("query top earners: %w", err)
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var out []model.TopEarner
	for rows.Next() {
		var (
			row  model.TopEarner
			rank uint32
		)
		if err = rows.Scan(&rank, &row.Device, &row.TotalDC); err != nil {
			err = fmt.Errorf("scan top earner: %w", err)
			return nil, err
		}
		row.Rank = int(rank)
		out = append(out, row)
	}
	if err = rows.Err(); err != nil {
		err = fmt.Errorf("iterate top earners: %w", err)
		return nil, err
	}
	return out, nil
}
