package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
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
	Bucket           string `long:"bucket" env:"FLEET_SCANNER_BUCKET" description:"reward object bucket (requester-pays)" required:"true"`
	Prefix           string `long:"prefix" env:"FLEET_SCANNER_PREFIX" description:"object key prefix"`
	Region           string `long:"region" env:"FLEET_SCANNER_AWS_REGION" description:"bucket region" default:"us-west-2"`
	DevicesFile      string `long:"devices-file" env:"FLEET_SCANNER_DEVICES_FILE" description:"file with one device key per line" required:"true"`
	Days             int    `long:"days" env:"FLEET_SCANNER_DAYS" description:"lookback window in days" default:"30"`
	DevicesPerSecond int    `long:"devices-per-second" env:"FLEET_SCANNER_DEVICES_PER_SECOND" description:"device scan pacing" default:"1"`
	ClickhouseDSN    string `long:"clickhouse-dsn" env:"FLEET_SCANNER_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
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
		logger.Fatal("fleet scan failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	deviceKeys, err := readDeviceKeys(cfg.DevicesFile)
	if err != nil {
		return err
	}
	if len(deviceKeys) == 0 {
		return fmt.Errorf("no device keys in %s", cfg.DevicesFile)
	}

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

	repo, err := chrepo.NewRepository(cfg.ClickhouseDSN, metrics.NewRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		_ = repo.Close()
	}()

	orchestrator, err := scanner.NewFleetOrchestrator(logger, deviceScanner, repo, cfg.DevicesPerSecond)
	if err != nil {
		return fmt.Errorf("init orchestrator: %w", err)
	}

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -cfg.Days)
	return orchestrator.Run(ctx, deviceKeys, start, end)
}

func readDeviceKeys(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open devices file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	var keys []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		keys = append(keys, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read devices file: %w", err)
	}
	return keys, nil
}
