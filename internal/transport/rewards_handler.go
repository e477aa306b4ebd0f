// Package transport exposes the HTTP query API over stored scan results.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/hotspotmetrics/rewardscan-backend/internal/rewards/model"
)

const (
	defaultLookback  = "7d"
	defaultRangeDays = 30
	defaultTopLimit  = 10
	maxTopLimit      = 100
	dateLayout       = "2006-01-02"
)

// RewardsReader is the repository surface the handler reads from.
type RewardsReader interface {
	DailyAggregates(ctx context.Context, deviceKey string, start, end time.Time) ([]model.DailyAggregate, error)
	TopEarners(ctx context.Context, lookback string, limit int) ([]model.TopEarner, error)
}

// RewardsHandler serves device aggregates and fleet rankings as JSON.
type RewardsHandler struct {
	logger *zap.Logger
	reader RewardsReader
}

// NewRewardsHandler returns a RewardsHandler reading from reader.
func NewRewardsHandler(logger *zap.Logger, reader RewardsReader) (*RewardsHandler, error) {
	if reader == nil {
		return nil, errors.New("rewards reader is required")
	}
	return &RewardsHandler{logger: logger.Named("rewards_handler"), reader: reader}, nil
}

// Register mounts the handler's routes on mux.
func (h *RewardsHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/devices/{key}/daily", h.dailyAggregates)
	mux.HandleFunc("GET /v1/top-earners", h.topEarners)
	mux.HandleFunc("GET /healthz", h.health)
}

type dailyAggregateRow struct {
	Date            string `json:"date"`
	TotalDC         uint64 `json:"total_dc"`
	TotalBasePoc    uint64 `json:"total_base_poc"`
	TotalBoostedPoc uint64 `json:"total_boosted_poc"`
	TotalPoc        uint64 `json:"total_poc"`
	EventCount      int    `json:"event_count"`
}

type dailyAggregatesResponse struct {
	DeviceKey string              `json:"device_key"`
	Start     string              `json:"start"`
	End       string              `json:"end"`
	Daily     []dailyAggregateRow `json:"daily"`
}

func (h *RewardsHandler) dailyAggregates(w http.ResponseWriter, r *http.Request) {
	deviceKey := r.PathValue("key")
	if deviceKey == "" {
		writeError(w, http.StatusBadRequest, "device key is required")
		return
	}

	end, err := timeParam(r, "end", time.Now().UTC())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	start, err := timeParam(r, "start", end.AddDate(0, 0, -defaultRangeDays))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if end.Before(start) {
		writeError(w, http.StatusBadRequest, "end must not precede start")
		return
	}

	daily, err := h.reader.DailyAggregates(r.Context(), deviceKey, start, end)
	if err != nil {
		h.logger.Error("daily aggregates read failed", zap.String("device", deviceKey), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "storage read failed")
		return
	}

	resp := dailyAggregatesResponse{
		DeviceKey: deviceKey,
		Start:     start.Format(dateLayout),
		End:       end.Format(dateLayout),
		Daily:     make([]dailyAggregateRow, 0, len(daily)),
	}
	for _, row := range daily {
		resp.Daily = append(resp.Daily, dailyAggregateRow{
			Date:            row.Date.Format(dateLayout),
			TotalDC:         row.TotalDC,
			TotalBasePoc:    row.TotalBasePoc,
			TotalBoostedPoc: row.TotalBoostedPoc,
			TotalPoc:        row.TotalPoc,
			EventCount:      row.EventCount,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

type topEarnerRow struct {
	Rank    int    `json:"rank"`
	Device  string `json:"device_key"`
	TotalDC uint64 `json:"total_dc"`
}

type topEarnersResponse struct {
	Lookback string         `json:"lookback"`
	Top      []topEarnerRow `json:"top"`
}

func (h *RewardsHandler) topEarners(w http.ResponseWriter, r *http.Request) {
	lookback := r.URL.Query().Get("window")
	if lookback == "" {
		lookback = defaultLookback
	}

	limit := defaultTopLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}
	if limit > maxTopLimit {
		limit = maxTopLimit
	}

	top, err := h.reader.TopEarners(r.Context(), lookback, limit)
	if err != nil {
		h.logger.Error("top earners read failed", zap.String("lookback", lookback), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "storage read failed")
		return
	}

	resp := topEarnersResponse{Lookback: lookback, Top: make([]topEarnerRow, 0, len(top))}
	for _, row := range top {
		resp.Top = append(resp.Top, topEarnerRow{Rank: row.Rank, Device: row.Device, TotalDC: row.TotalDC})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *RewardsHandler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// timeParam parses a query parameter as RFC 3339 or as a calendar date,
// falling back to def when absent.
func timeParam(r *http.Request, name string, def time.Time) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts.UTC(), nil
	}
	if ts, err := time.Parse(dateLayout, raw); err == nil {
		return ts.UTC(), nil
	}
	return time.Time{}, errors.New(name + " must be RFC 3339 or YYYY-MM-DD")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
