// Package clickhouse persists scan results and serves the query API reads.
package clickhouse

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"
)

type (
	// Conn is the slice of the ClickHouse driver connection this package
	// uses. Narrowed so repository operations can be tested without a
	// live server.
	Conn interface {
		Query(ctx context.Context, query string, args ...any) (Rows, error)
		PrepareBatch(ctx context.Context, query string) (Batch, error)
		Close() error
	}

	// Batch is the insert half of Conn.
	Batch interface {
		Append(v ...any) error
		Send() error
	}

	// Rows is the read half of Conn.
	Rows interface {
		Next() bool
		Scan(dest ...any) error
		Err() error
		Close() error
	}

	// Metrics records metrics for repository operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
