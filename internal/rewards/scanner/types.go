// Package scanner walks reward objects and turns matched frames into
// aggregated results, for a single device or for the whole fleet.
package scanner

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"io"
	"time"

	"github.com/hotspotmetrics/rewardscan-backend/internal/rewards/model"
	"github.com/hotspotmetrics/rewardscan-backend/internal/rewards/s3store"
)

type (
	// ObjectStore enumerates and streams reward objects.
	ObjectStore interface {
		ListObjectsInRange(ctx context.Context, prefix string, start, end time.Time) ([]s3store.ObjectDescriptor, error)
		Fetch(ctx context.Context, key string) (io.ReadCloser, error)
	}

	// Metrics records metrics for the scan pipeline.
	Metrics interface {
		ObserveObject(err error, started time.Time)
		AddFrames(n int)
		AddDecodeErrors(n int)
		AddMatches(n int)
	}

	// Scanner runs a single-device scan. Implemented by DeviceScanner and
	// consumed by the fleet orchestrator.
	Scanner interface {
		ScanDevice(ctx context.Context, deviceKey string, start, end time.Time) (*model.DeviceScanResult, error)
	}

	// Repository persists scan output.
	Repository interface {
		InsertDailyAggregates(ctx context.Context, deviceKey string, rows []model.DailyAggregate) error
		InsertScanAudits(ctx context.Context, rows []model.ScanAudit) error
	}
)
