package model

import "time"

// DailyAggregate holds reward totals for one UTC calendar day of a
// single-device scan. Days without events are never materialized.
type DailyAggregate struct {
	Date            time.Time
	TotalDC         uint64
	TotalBasePoc    uint64
	TotalBoostedPoc uint64
	TotalPoc        uint64
	EventCount      int
}

// ScanSummary carries summary statistics over the days that had events.
// Uptime against calendar-day counts is computed by the caller.
type ScanSummary struct {
	TotalDC     uint64
	TotalPoc    uint64
	MeanDailyDC float64
	MaxDailyDC  uint64
	MinDailyDC  uint64
	ActiveDays  int
}

// TopEarner is one ranked row of a fleet top-N scan.
type TopEarner struct {
	Rank    int
	Device  string
	TotalDC uint64
}
