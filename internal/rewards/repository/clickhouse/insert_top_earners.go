package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hotspotmetrics/rewardscan-backend/internal/rewards/model"
)

// InsertTopEarners stores one window's ranking from a fleet scan that ended
// at scanEnd. The lookback label is the window length, e.g. "7d".
func (r *Repository) InsertTopEarners(ctx context.Context, scanEnd time.Time, lookback string, rows []model.TopEarner) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_top_earners", err, start)
	}()

	if lookback == "" {
		err = errors.New("lookback label is required")
		return err
	}
	if scanEnd.IsZero() {
		err = errors.New("scan end is required")
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	const query = `
INSERT INTO reward_top_earners (
	scan_end,
	lookback,
	rank,
	device_key,
	total_dc
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		err = fmt.Errorf("prepare top earners batch: %w", err)
		return err
	}

	for _, row := range rows {
		if err = batch.Append(
			scanEnd,
			lookback,
			uint32(row.Rank),
			row.Device,
			row.TotalDC,
		); err != nil {
			err = fmt.Errorf("append top earner: %w", err)
			return err
		}
	}

	if err = batch.Send(); err != nil {
		err = fmt.Errorf("insert top earners: %w", err)
		return err
	}
	return nil
}
