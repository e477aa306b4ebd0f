// Package aggregate folds reward events into day-keyed and window-keyed totals.
package aggregate

import (
	"sort"
	"time"

	"github.com/hotspotmetrics/rewardscan-backend/internal/clock"
	"github.com/hotspotmetrics/rewardscan-backend/internal/rewards/model"
)

// DailyBuilder accumulates single-device reward events into UTC calendar-day
// buckets. Only days with events are materialized.
type DailyBuilder struct {
	days map[time.Time]*model.DailyAggregate
}

// NewDailyBuilder returns an empty builder.
func NewDailyBuilder() *DailyBuilder {
	return &DailyBuilder{days: make(map[time.Time]*model.DailyAggregate)}
}

// Add folds one event into its day bucket. The bucket is derived from the
// object timestamp for file-level granularity.
func (b *DailyBuilder) Add(ev model.RewardEvent) {
	day := clock.DayUTC(ev.ObjectTimestamp)
	agg, ok := b.days[day]
	if !ok {
		agg = &model.DailyAggregate{Date: day}
		b.days[day] = agg
	}
	agg.TotalDC += ev.DCTransfer
	agg.TotalBasePoc += ev.BasePoc
	agg.TotalBoostedPoc += ev.BoostedPoc
	agg.TotalPoc += ev.TotalPoc()
	agg.EventCount++
}

// Build returns the day aggregates sorted ascending by date plus summary
// statistics over the days that had events.
func (b *DailyBuilder) Build() ([]model.DailyAggregate, model.ScanSummary) {
	daily := make([]model.DailyAggregate, 0, len(b.days))
	for _, agg := range b.days {
		daily = append(daily, *agg)
	}
	sort.Slice(daily, func(i, j int) bool {
		return daily[i].Date.Before(daily[j].Date)
	})

	summary := model.ScanSummary{ActiveDays: len(daily)}
	for i, agg := range daily {
		summary.TotalDC += agg.TotalDC
		summary.TotalPoc += agg.TotalPoc
		if i == 0 || agg.TotalDC > summary.MaxDailyDC {
			summary.MaxDailyDC = agg.TotalDC
		}
		if i == 0 || agg.TotalDC < summary.MinDailyDC {
			summary.MinDailyDC = agg.TotalDC
		}
	}
	if summary.ActiveDays > 0 {
		summary.MeanDailyDC = float64(summary.TotalDC) / float64(summary.ActiveDays)
	}
	return daily, summary
}
