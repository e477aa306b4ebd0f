package aggregate

import (
	"fmt"
	"sort"
	"time"

	"github.com/hotspotmetrics/rewardscan-backend/internal/rewards/model"
)

// WindowTotals accumulates per-device DC totals for several lookback windows
// from a single pass over the event stream of the widest window. Shorter
// windows cover a suffix of the widest one, so for any device
// total(w1) <= total(w2) whenever w1 < w2.
type WindowTotals struct {
	end     time.Time
	windows []int
	cutoffs []time.Time
	totals  []map[string]uint64
	// first-seen insertion order per window, for stable ranking ties
	order [][]string
	seen  []map[string]bool
}

// NewWindowTotals builds an accumulator for the given window lengths, which
// must be a non-empty strictly ascending set of day counts.
func NewWindowTotals(end time.Time, windowsDays []int) (*WindowTotals, error) {
	if len(windowsDays) == 0 {
		return nil, fmt.Errorf("no windows configured")
	}
	for i, days := range windowsDays {
		if days <= 0 {
			return nil, fmt.Errorf("window %d days: must be positive", days)
		}
		if i > 0 && days <= windowsDays[i-1] {
			return nil, fmt.Errorf("windows must be strictly ascending, got %v", windowsDays)
		}
	}

	w := &WindowTotals{
		end:     end,
		windows: append([]int(nil), windowsDays...),
		cutoffs: make([]time.Time, len(windowsDays)),
		totals:  make([]map[string]uint64, len(windowsDays)),
		order:   make([][]string, len(windowsDays)),
		seen:    make([]map[string]bool, len(windowsDays)),
	}
	for i, days := range w.windows {
		w.cutoffs[i] = end.AddDate(0, 0, -days)
		w.totals[i] = make(map[string]uint64)
		w.seen[i] = make(map[string]bool)
	}
	return w, nil
}

// WidestDays returns the largest configured window, which bounds the object
// set a fleet scan needs to fetch.
func (w *WindowTotals) WidestDays() int {
	return w.windows[len(w.windows)-1]
}

// Add folds one event into every window whose range contains the event's
// object timestamp.
func (w *WindowTotals) Add(ev model.RewardEvent) {
	if ev.ObjectTimestamp.After(w.end) {
		return
	}
	for i, cutoff := range w.cutoffs {
		if ev.ObjectTimestamp.Before(cutoff) {
			continue
		}
		if !w.seen[i][ev.Device] {
			w.seen[i][ev.Device] = true
			w.order[i] = append(w.order[i], ev.Device)
		}
		w.totals[i][ev.Device] += ev.DCTransfer
	}
}

// TopN ranks devices per window by total DC descending, ties broken by
// first-encountered device, truncated to n.
func (w *WindowTotals) TopN(n int) map[string][]model.TopEarner {
	out := make(map[string][]model.TopEarner, len(w.windows))
	for i, days := range w.windows {
		devices := append([]string(nil), w.order[i]...)
		totals := w.totals[i]
		sort.SliceStable(devices, func(a, b int) bool {
			return totals[devices[a]] > totals[devices[b]]
		})
		if n > 0 && len(devices) > n {
			devices = devices[:n]
		}

		ranked := make([]model.TopEarner, 0, len(devices))
		for rank, device := range devices {
			ranked = append(ranked, model.TopEarner{
				Rank:    rank + 1,
				Device:  device,
				TotalDC: totals[device],
			})
		}
		out[model.WindowLabel(days)] = ranked
	}
	return out
}
