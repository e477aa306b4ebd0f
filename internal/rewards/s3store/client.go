// Package s3store lists and fetches reward objects from a requester-pays
// S3 bucket.
package s3store

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/hotspotmetrics/rewardscan-backend/internal/clock"
)

const (
	objectSuffix = ".gz"
	listPageSize = 1000
)

// keyTimestampRe matches the 13-digit epoch-millisecond group immediately
// preceding the .gz suffix. Fixed width on purpose: a generic number parse
// could misread other numeric substrings in the key.
var keyTimestampRe = regexp.MustCompile(`\.(\d{13})\.gz$`)

// Client wraps the S3 API with requester-pays semantics and the key layout
// of the reward object store.
type Client struct {
	api     S3API
	bucket  string
	metrics Metrics
}

// NewClient constructs a Client for one bucket.
func NewClient(api S3API, bucket string, metrics Metrics) (*Client, error) {
	if bucket == "" {
		return nil, fmt.Errorf("bucket is required")
	}
	return &Client{api: api, bucket: bucket, metrics: metrics}, nil
}

// ListObjectsInRange pages through the full listing under prefix and returns
// the objects whose embedded timestamp falls in [start, end] inclusive,
// sorted ascending by timestamp. A listing failure is fatal for the caller's
// scan; retrying is the caller's policy, not this layer's.
func (c *Client) ListObjectsInRange(ctx context.Context, prefix string, start, end time.Time) (descriptors []ObjectDescriptor, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("list_objects", err, started)
	}()

	input := &s3.ListObjectsV2Input{
		Bucket:       aws.String(c.bucket),
		Prefix:       aws.String(prefix),
		MaxKeys:      aws.Int32(listPageSize),
		RequestPayer: types.RequestPayerRequester,
	}

	for {
		page, listErr := c.api.ListObjectsV2(ctx, input)
		if listErr != nil {
			err = fmt.Errorf("list objects under %s/%s: %w", c.bucket, prefix, listErr)
			return nil, err
		}

		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if !strings.HasSuffix(key, objectSuffix) {
				continue
			}
			ts := keyTimestamp(key)
			if ts.Before(start) || ts.After(end) {
				continue
			}
			descriptors = append(descriptors, ObjectDescriptor{Key: key, Timestamp: ts})
		}

		if !aws.ToBool(page.IsTruncated) {
			break
		}
		input.ContinuationToken = page.NextContinuationToken
	}

	sort.Slice(descriptors, func(i, j int) bool {
		return descriptors[i].Timestamp.Before(descriptors[j].Timestamp)
	})
	return descriptors, nil
}

// Fetch opens a requester-pays read of one object. The caller owns the
// returned stream and must close it.
func (c *Client) Fetch(ctx context.Context, key string) (body io.ReadCloser, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_object", err, started)
	}()

	out, err := c.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket:       aws.String(c.bucket),
		Key:          aws.String(key),
		RequestPayer: types.RequestPayerRequester,
	})
	if err != nil {
		return nil, fmt.Errorf("get object %s/%s: %w", c.bucket, key, err)
	}
	return out.Body, nil
}

// keyTimestamp extracts the embedded millisecond timestamp. Keys without a
// parseable timestamp get timestamp 0 and typically fall outside any
// requested window.
func keyTimestamp(key string) time.Time {
	m := keyTimestampRe.FindStringSubmatch(key)
	if m == nil {
		return clock.MsToTime(0)
	}
	ms, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return clock.MsToTime(0)
	}
	return clock.MsToTime(ms)
}
