package scanner

import "time"

const (
	// DefaultWorkerCount bounds parallel object fetches in a fleet scan.
	DefaultWorkerCount = 8

	// DefaultDevicesPerSecond paces single-device scans in an orchestrated
	// fleet run, keeping listing traffic against the bucket predictable.
	DefaultDevicesPerSecond = 1

	DefaultAuditFlushSize     = 256
	DefaultAuditFlushInterval = 5 * time.Second
	DefaultAuditFlushRPS      = 1
)
