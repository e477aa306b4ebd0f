package workerpool

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestProcess(t *testing.T) {
	tests := []struct {
		name        string
		workerCount int
		items       []int
		process     func(*atomic.Int64) func(context.Context, int) error
		wantErr     bool
		wantSum     int64
	}{
		{
			name:        "processes all items",
			workerCount: 4,
			items:       []int{1, 2, 3, 4, 5},
			process: func(sum *atomic.Int64) func(context.Context, int) error {
				return func(_ context.Context, v int) error {
					sum.Add(int64(v))
					return nil
				}
			},
			wantSum: 15,
		},
		{
			name:        "worker count below one is clamped",
			workerCount: 0,
			items:       []int{10, 20},
			process: func(sum *atomic.Int64) func(context.Context, int) error {
				return func(_ context.Context, v int) error {
					sum.Add(int64(v))
					return nil
				}
			},
			wantSum: 30,
		},
		{
			name:        "error stops the pool",
			workerCount: 2,
			items:       []int{1, 2, 3, 4, 5, 6, 7, 8},
			process: func(sum *atomic.Int64) func(context.Context, int) error {
				return func(_ context.Context, v int) error {
					if v == 3 {
						return errors.New("boom")
					}
					sum.Add(int64(v))
					return nil
				}
			},
			wantErr: true,
		},
		{
			name:        "empty items",
			workerCount: 2,
			items:       nil,
			process: func(sum *atomic.Int64) func(context.Context, int) error {
				return func(context.Context, int) error { return nil }
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sum atomic.Int64
			err := Process(context.Background(), tt.workerCount, tt.items, tt.process(&sum))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Process() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && sum.Load() != tt.wantSum {
				t.Fatalf("Process() sum = %d, want %d", sum.Load(), tt.wantSum)
			}
		})
	}
}

func TestProcess_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var once sync.Once
	items := make([]int, 100)
	err := Process(ctx, 2, items, func(context.Context, int) error {
		once.Do(cancel)
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Process() error = %v, want context.Canceled", err)
	}
}
