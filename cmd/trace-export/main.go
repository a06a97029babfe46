package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/simtrace-backend/internal/metrics"
	"github.com/goodnatureofminers/simtrace-backend/internal/observability"
	"github.com/goodnatureofminers/simtrace-backend/internal/repository/clickhouse"
	"github.com/goodnatureofminers/simtrace-backend/internal/service"
	"github.com/goodnatureofminers/simtrace-backend/internal/trace/loader"
	"github.com/goodnatureofminers/simtrace-backend/internal/trace/model"
)

type config struct {
	ClickhouseDSN string             `long:"clickhouse-dsn" env:"SIMTRACE_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	StaticPath    string             `long:"static" env:"SIMTRACE_STATIC_PATH" description:"static data document (json or yaml)" required:"true"`
	DynamicPath   string             `long:"dynamic" env:"SIMTRACE_DYNAMIC_PATH" description:"simulator event log (json or yaml)" required:"true"`
	Mode          model.ProtocolMode `long:"mode" env:"SIMTRACE_MODE" description:"protocol mode: pow or pos" default:"pow"`
	Seed          uint64             `long:"seed" env:"SIMTRACE_SEED" description:"seed for node placement" default:"1"`
	BatchSize     int                `long:"batch-size" env:"SIMTRACE_EXPORT_BATCH_SIZE" description:"rows per insert" default:"5000"`
	FlushInterval time.Duration      `long:"flush-interval" env:"SIMTRACE_EXPORT_FLUSH_INTERVAL" description:"max time a partial batch waits" default:"1s"`
	RPS           int                `long:"rps" env:"SIMTRACE_EXPORT_RPS" description:"insert batches per second, 0 for unlimited" default:"0"`

	Tracing observability.TracingConfig `group:"Tracing"`
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
		logger.Fatal("trace export failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	shutdownTracing, err := observability.InitTracing(ctx, cfg.Tracing, logger)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer observability.ShutdownWithTimeout(shutdownTracing, logger)

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("close repository", zap.Error(err))
		}
	}()

	exporter, err := service.NewTraceExporter(repo, service.TraceExporterConfig{
		BatchSize:     cfg.BatchSize,
		FlushInterval: cfg.FlushInterval,
		RPS:           cfg.RPS,
	}, logger)
	if err != nil {
		return err
	}

	traceLoader, err := loader.NewLoader(metrics.NewLoader("trace-export"), model.NewSeededSampler(cfg.Seed), logger)
	if err != nil {
		return err
	}

	svc, err := service.NewReplayService(traceLoader, exporter, metrics.NewReplayService(), service.ReplayServiceConfig{
		StaticPath:  cfg.StaticPath,
		DynamicPath: cfg.DynamicPath,
		Mode:        cfg.Mode,
	}, logger)
	if err != nil {
		return err
	}

	loaded, err := svc.Reload(ctx)
	if err != nil {
		return err
	}
	if !loaded.Result.Success {
		logger.Warn("exported a trace with failed records",
			zap.Stringer("load_id", loaded.ID),
			zap.Error(loaded.Result.Err()),
		)
	}
	return nil
}
