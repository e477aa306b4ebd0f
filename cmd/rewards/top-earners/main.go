package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/hotspotmetrics/rewardscan-backend/internal/metrics"
	"github.com/hotspotmetrics/rewardscan-backend/internal/rewards/model"
	chrepo "github.com/hotspotmetrics/rewardscan-backend/internal/rewards/repository/clickhouse"
	"github.com/hotspotmetrics/rewardscan-backend/internal/rewards/s3store"
	"github.com/hotspotmetrics/rewardscan-backend/internal/rewards/scanner"
)

type config struct {
	Bucket        string `long:"bucket" env:"TOP_EARNERS_BUCKET" description:"reward object bucket (requester-pays)" required:"true"`
	Prefix        string `long:"prefix" env:"TOP_EARNERS_PREFIX" description:"object key prefix"`
	Region        string `long:"region" env:"TOP_EARNERS_AWS_REGION" description:"bucket region" default:"us-west-2"`
	Windows       string `long:"windows" env:"TOP_EARNERS_WINDOWS" description:"comma-separated lookback windows in days, ascending" default:"1,7,30"`
	TopN          int    `long:"top-n" env:"TOP_EARNERS_TOP_N" description:"devices to keep per window" default:"10"`
	Workers       int    `long:"workers" env:"TOP_EARNERS_WORKERS" description:"parallel object fetches" default:"8"`
	ClickhouseDSN string `long:"clickhouse-dsn" env:"TOP_EARNERS_CLICKHOUSE_DSN" description:"optional ClickHouse DSN for persisting rankings"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("top earners scan failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	windows, err := parseWindows(cfg.Windows)
	if err != nil {
		return err
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return fmt.Errorf("load aws config: %w", err)
	}

	store, err := s3store.NewClient(s3.NewFromConfig(awsCfg), cfg.Bucket, metrics.NewObjectStore())
	if err != nil {
		return fmt.Errorf("init object store: %w", err)
	}

	fleetScanner, err := scanner.NewTopEarnersScanner(logger, store, metrics.NewScanner("fleet"), cfg.Prefix, cfg.Workers)
	if err != nil {
		return fmt.Errorf("init fleet scanner: %w", err)
	}

	result, err := fleetScanner.ScanTopEarners(ctx, time.Now().UTC(), windows, cfg.TopN)
	if err != nil {
		return err
	}

	if cfg.ClickhouseDSN != "" {
		repo, err := chrepo.NewRepository(cfg.ClickhouseDSN, metrics.NewRepository())
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			_ = repo.Close()
		}()

		for _, days := range result.WindowsDays {
			lookback := model.WindowLabel(days)
			if err := repo.InsertTopEarners(ctx, result.End, lookback, result.Top[lookback]); err != nil {
				return fmt.Errorf("persist %s ranking: %w", lookback, err)
			}
		}
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func parseWindows(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	windows := make([]int, 0, len(parts))
	for _, part := range parts {
		days, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("parse window %q: %w", part, err)
		}
		windows = append(windows, days)
	}
	return windows, nil
}
