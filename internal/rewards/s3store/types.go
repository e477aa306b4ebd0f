package s3store

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type (
	// S3API is the slice of the AWS S3 client this package uses.
	S3API interface {
		ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
		GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	}

	// Metrics records metrics for object store calls.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// ObjectDescriptor is one listed object with the timestamp embedded in its
// key. Immutable; lives for the duration of one enumeration call.
type ObjectDescriptor struct {
	Key       string
	Timestamp time.Time
}
