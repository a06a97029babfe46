package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/simtrace-backend/internal/metrics"
	"github.com/goodnatureofminers/simtrace-backend/internal/observability"
	"github.com/goodnatureofminers/simtrace-backend/internal/repository/clickhouse"
	"github.com/goodnatureofminers/simtrace-backend/internal/service"
	"github.com/goodnatureofminers/simtrace-backend/internal/trace/loader"
	"github.com/goodnatureofminers/simtrace-backend/internal/trace/model"
	"github.com/goodnatureofminers/simtrace-backend/internal/trace/snapshot"
	"github.com/goodnatureofminers/simtrace-backend/internal/transport"
)

type config struct {
	StaticPath      string             `long:"static" env:"SIMTRACE_STATIC_PATH" description:"static data document (json or yaml)" required:"true"`
	DynamicPath     string             `long:"dynamic" env:"SIMTRACE_DYNAMIC_PATH" description:"simulator event log (json or yaml)" required:"true"`
	Mode            model.ProtocolMode `long:"mode" env:"SIMTRACE_MODE" description:"protocol mode: pow or pos" default:"pow"`
	Seed            uint64             `long:"seed" env:"SIMTRACE_SEED" description:"seed for node placement" default:"1"`
	Addr            string             `long:"addr" env:"SIMTRACE_ADDR" description:"HTTP API address" default:":8080"`
	MetricsAddr     string             `long:"metrics-addr" env:"SIMTRACE_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	WatchInterval   time.Duration      `long:"watch-interval" env:"SIMTRACE_WATCH_INTERVAL" description:"trace file poll interval" default:"2s"`
	NoWatch         bool               `long:"no-watch" env:"SIMTRACE_NO_WATCH" description:"load once and never reload"`
	SnapshotWorkers int                `long:"snapshot-workers" env:"SIMTRACE_SNAPSHOT_WORKERS" description:"snapshot workers, 0 for GOMAXPROCS" default:"0"`

	ClickhouseDSN   string `long:"clickhouse-dsn" env:"SIMTRACE_CLICKHOUSE_DSN" description:"export every published trace to ClickHouse when set"`
	ExportBatchSize int    `long:"export-batch-size" env:"SIMTRACE_EXPORT_BATCH_SIZE" description:"rows per insert" default:"5000"`
	ExportRPS       int    `long:"export-rps" env:"SIMTRACE_EXPORT_RPS" description:"insert batches per second, 0 for unlimited" default:"0"`

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
		logger.Fatal("replay server failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	shutdownTracing, err := observability.InitTracing(ctx, cfg.Tracing, logger)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer observability.ShutdownWithTimeout(shutdownTracing, logger)

	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	traceLoader, err := loader.NewLoader(metrics.NewLoader("replay-server"), model.NewSeededSampler(cfg.Seed), logger)
	if err != nil {
		return err
	}

	var exporter service.Exporter
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Warn("close repository", zap.Error(err))
			}
		}()
		exporter, err = service.NewTraceExporter(repo, service.TraceExporterConfig{
			BatchSize: cfg.ExportBatchSize,
			RPS:       cfg.ExportRPS,
		}, logger)
		if err != nil {
			return err
		}
	}

	svc, err := service.NewReplayService(traceLoader, exporter, metrics.NewReplayService(), service.ReplayServiceConfig{
		StaticPath:    cfg.StaticPath,
		DynamicPath:   cfg.DynamicPath,
		Mode:          cfg.Mode,
		WatchInterval: cfg.WatchInterval,
	}, logger)
	if err != nil {
		return err
	}

	if _, err := svc.Reload(ctx); err != nil {
		if svc.Current() == nil {
			return fmt.Errorf("initial load: %w", err)
		}
		logger.Warn("initial load published with errors", zap.Error(err))
	}

	if !cfg.NoWatch {
		go func() {
			if err := svc.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("watch stopped", zap.Error(err))
			}
		}()
	}

	handler, err := transport.NewTraceHandler(svc, metrics.NewHTTP(), snapshot.NewBuilder(cfg.SnapshotWorkers), logger)
	if err != nil {
		return err
	}

	s := &http.Server{
		Addr:              cfg.Addr,
		Handler:           otelhttp.NewHandler(cors.Default().Handler(handler.Router()), "simtrace-api"),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", cfg.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
