package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/hotspotmetrics/rewardscan-backend/internal/metrics"
	chrepo "github.com/hotspotmetrics/rewardscan-backend/internal/rewards/repository/clickhouse"
	"github.com/hotspotmetrics/rewardscan-backend/internal/rewards/s3store"
	"github.com/hotspotmetrics/rewardscan-backend/internal/rewards/scanner"
)

type config struct {
	Bucket        string `long:"bucket" env:"DEVICE_SCANNER_BUCKET" description:"reward object bucket (requester-pays)" required:"true"`
	Prefix        string `long:"prefix" env:"DEVICE_SCANNER_PREFIX" description:"object key prefix"`
	Region        string `long:"region" env:"DEVICE_SCANNER_AWS_REGION" description:"bucket region" default:"us-west-2"`
	DeviceKey     string `long:"device-key" env:"DEVICE_SCANNER_DEVICE_KEY" description:"device key in any supported encoding" required:"true"`
	Days          int    `long:"days" env:"DEVICE_SCANNER_DAYS" description:"lookback window in days" default:"30"`
	ClickhouseDSN string `long:"clickhouse-dsn" env:"DEVICE_SCANNER_CLICKHOUSE_DSN" description:"optional ClickHouse DSN for persisting results"`
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

	if cfg.Days < 1 {
		logger.Fatal("days must be positive", zap.Int("days", cfg.Days))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("device scan failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return fmt.Errorf("load aws config: %w", err)
	}

	store, err := s3store.NewClient(s3.NewFromConfig(awsCfg), cfg.Bucket, metrics.NewObjectStore())
	if err != nil {
		return fmt.Errorf("init object store: %w", err)
	}

	deviceScanner, err := scanner.NewDeviceScanner(logger, store, metrics.NewScanner("device"), cfg.Prefix)
	if err != nil {
		return fmt.Errorf("init device scanner: %w", err)
	}

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -cfg.Days)

	result, err := deviceScanner.ScanDevice(ctx, cfg.DeviceKey, start, end)
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

		if err := repo.InsertDailyAggregates(ctx, cfg.DeviceKey, result.Daily); err != nil {
			return fmt.Errorf("persist daily aggregates: %w", err)
		}
		if err := repo.InsertScanAudits(ctx, result.Audits); err != nil {
			return fmt.Errorf("persist scan audits: %w", err)
		}
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
