package scanner

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/hotspotmetrics/rewardscan-backend/internal/rewards/extract"
	"github.com/hotspotmetrics/rewardscan-backend/internal/rewards/framing"
)

// objectCounts is the per-object accounting shared by both scan modes.
type objectCounts struct {
	frames       int
	decodeErrors int
	matches      int
}

// scanFrames streams one object through gunzip and frame splitting, invoking
// visit for every frame that decodes. visit reports whether the frame counted
// as a match. A fetch or gzip-open failure is returned to the caller; frame
// level corruption only increments decodeErrors.
func scanFrames(ctx context.Context, store ObjectStore, key string, visit func(*extract.RewardShare) bool) (objectCounts, error) {
	body, err := store.Fetch(ctx, key)
	if err != nil {
		return objectCounts{}, fmt.Errorf("fetch %s: %w", key, err)
	}
	defer body.Close()

	gz, err := gzip.NewReader(body)
	if err != nil {
		return objectCounts{}, fmt.Errorf("open gzip stream %s: %w", key, err)
	}
	defer gz.Close()

	counts := objectCounts{}
	frames := framing.NewScanner(gz)
	for {
		frame, err := frames.Next()
		if errors.Is(err, io.EOF) {
			return counts, nil
		}
		if err != nil {
			// oversized frame or mid-stream gzip corruption; the rest of
			// the object is unreadable
			counts.decodeErrors++
			return counts, nil
		}

		counts.frames++
		share, err := extract.DecodeRewardShare(frame)
		if err != nil {
			counts.decodeErrors++
			continue
		}
		if visit(share) {
			counts.matches++
		}
	}
}
