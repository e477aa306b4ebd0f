package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/hotspotmetrics/rewardscan-backend/internal/rewards/model"
)

// InsertScanAudits stores per-object accounting rows.
func (r *Repository) InsertScanAudits(ctx context.Context, rows []model.ScanAudit) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_scan_audits", err, start)
	}()

	if len(rows) == 0 {
		return nil
	}

	const query = `
INSERT INTO reward_scan_audits (
	device_key,
	object_key,
	object_timestamp,
	frames,
	decode_errors,
	matches,
	scanned_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		err = fmt.Errorf("prepare scan audits batch: %w", err)
		return err
	}

	for _, row := range rows {
		if err = batch.Append(
			row.DeviceKey,
			row.ObjectKey,
			row.ObjectTimestamp,
			uint64(row.Frames),
			uint64(row.DecodeErrors),
			uint64(row.Matches),
			row.ScannedAt,
		); err != nil {
			err = fmt.Errorf("append scan audit: %w", err)
			return err
		}
	}

	if err = batch.Send(); err != nil {
		err = fmt.Errorf("insert scan audits: %w", err)
		return err
	}
	return nil
}
