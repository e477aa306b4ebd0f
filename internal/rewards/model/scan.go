package model

import (
	"fmt"
	"time"
)

// ScanMeta counts what a scan looked at, so callers can distinguish
// "searched and found nothing" from "could not search".
type ScanMeta struct {
	FilesScanned  int
	FetchFailures int
	FramesScanned int
	DecodeErrors  int
	EventsMatched int
}

// ScanAudit is the per-object accounting row emitted alongside scan results.
type ScanAudit struct {
	DeviceKey       string
	ObjectKey       string
	ObjectTimestamp time.Time
	Frames          int
	DecodeErrors    int
	Matches         int
	ScannedAt       time.Time
}

// DeviceScanResult is the outcome of a single-device scan over a time window.
type DeviceScanResult struct {
	DeviceKey string
	Start     time.Time
	End       time.Time
	Daily     []DailyAggregate
	Summary   ScanSummary
	Meta      ScanMeta
	Audits    []ScanAudit
}

// TopEarnersResult is the outcome of a fleet-wide top-N scan. Top maps a
// window label (see WindowLabel) to its ranked devices.
type TopEarnersResult struct {
	WindowsDays []int
	End         time.Time
	Top         map[string][]TopEarner
	Meta        ScanMeta
}

// WindowLabel renders a lookback window length as a stable map key, e.g. "7d".
func WindowLabel(days int) string {
	return fmt.Sprintf("%dd", days)
}
