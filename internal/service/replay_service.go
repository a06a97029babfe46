package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/simtrace-backend/internal/clock"
	"github.com/goodnatureofminers/simtrace-backend/internal/trace/event"
	"github.com/goodnatureofminers/simtrace-backend/internal/trace/loader"
	"github.com/goodnatureofminers/simtrace-backend/internal/trace/model"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

const (
	tracerName           = "github.com/goodnatureofminers/simtrace-backend/internal/service"
	defaultWatchInterval = 2 * time.Second
)

// ErrNotLoaded is returned while no trace has been published yet.
var ErrNotLoaded = errors.New("no trace loaded")

var loadNamespace = uuid.MustParse("3b0f4c52-7a1e-5d2b-9c61-0e8d4f2a7b93")

// Loaded is one published trace. It is never mutated after publication.
type Loaded struct {
	ID          uuid.UUID
	Digest      chainhash.Hash
	StaticPath  string
	DynamicPath string
	Mode        model.ProtocolMode
	LoadedAt    time.Time
	Result      *loader.Result
}

type ReplayServiceConfig struct {
	StaticPath    string
	DynamicPath   string
	Mode          model.ProtocolMode
	WatchInterval time.Duration
}

// ReplayService owns the currently published trace. Readers get a consistent
// trace from Current while a reload builds the next one off to the side.
type ReplayService struct {
	loader   TraceLoader
	exporter Exporter
	metrics  ReplayMetrics
	logger   *zap.Logger
	cfg      ReplayServiceConfig

	current atomic.Pointer[Loaded]
	// reloadMu serialises loads so two reloads never race to publish.
	reloadMu sync.Mutex
	modTimes map[string]time.Time
}

// NewReplayService wires the service. exporter may be nil.
func NewReplayService(
	traceLoader TraceLoader,
	exporter Exporter,
	metrics ReplayMetrics,
	cfg ReplayServiceConfig,
	logger *zap.Logger,
) (*ReplayService, error) {
	if traceLoader == nil {
		return nil, errors.New("trace loader is required")
	}
	if metrics == nil {
		return nil, errors.New("replay metrics is required")
	}
	if cfg.StaticPath == "" || cfg.DynamicPath == "" {
		return nil, errors.New("static and dynamic paths are required")
	}
	if cfg.WatchInterval <= 0 {
		cfg.WatchInterval = defaultWatchInterval
	}
	return &ReplayService{
		loader:   traceLoader,
		exporter: exporter,
		metrics:  metrics,
		logger:   logger.Named("replay"),
		cfg:      cfg,
		modTimes: make(map[string]time.Time),
	}, nil
}

// Current returns the published trace or nil.
func (s *ReplayService) Current() *Loaded {
	return s.current.Load()
}

// Reload loads the configured files.
func (s *ReplayService) Reload(ctx context.Context) (*Loaded, error) {
	return s.LoadFiles(ctx, s.cfg.StaticPath, s.cfg.DynamicPath)
}

// LoadFiles reads, ingests and publishes a trace. A load whose records partly failed
// is still published; only a fatal error keeps the previous trace.
func (s *ReplayService) LoadFiles(ctx context.Context, staticPath, dynamicPath string) (*Loaded, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()
	return s.load(ctx, staticPath, dynamicPath, false)
}

func (s *ReplayService) load(ctx context.Context, staticPath, dynamicPath string, skipUnchanged bool) (loaded *Loaded, err error) {
	started := time.Now()
	ctx, span := otel.Tracer(tracerName).Start(ctx, "ReplayService.LoadFiles")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		s.metrics.ObserveReload(err, started)
	}()
	span.SetAttributes(
		attribute.String("trace.static_path", staticPath),
		attribute.String("trace.dynamic_path", dynamicPath),
	)

	static, err := os.ReadFile(staticPath)
	if err != nil {
		return nil, fmt.Errorf("read static data: %w", err)
	}
	dynamic, err := os.ReadFile(dynamicPath)
	if err != nil {
		return nil, fmt.Errorf("read dynamic data: %w", err)
	}

	digest := Digest(static, dynamic)
	span.SetAttributes(attribute.String("trace.digest", digest.String()))
	if cur := s.current.Load(); skipUnchanged && cur != nil && cur.Digest == digest {
		s.logger.Debug("trace unchanged", zap.Stringer("digest", digest))
		return cur, nil
	}

	res, err := s.loader.LoadDocuments(static, event.FormatFromPath(staticPath), dynamic, event.FormatFromPath(dynamicPath))
	if err != nil {
		return nil, fmt.Errorf("load trace: %w", err)
	}

	loaded = &Loaded{
		ID:          LoadID(digest),
		Digest:      digest,
		StaticPath:  staticPath,
		DynamicPath: dynamicPath,
		Mode:        s.cfg.Mode,
		LoadedAt:    time.Now().UTC(),
		Result:      res,
	}
	span.SetAttributes(
		attribute.String("trace.load_id", loaded.ID.String()),
		attribute.Bool("trace.success", res.Success),
		attribute.Int("trace.records", res.Records),
		attribute.Int("trace.diagnostics", len(res.Diagnostics)),
	)

	s.current.Store(loaded)
	s.metrics.SetCurrent(len(res.Timestamps), len(res.Diagnostics))
	s.logger.Info("trace published",
		zap.Stringer("load_id", loaded.ID),
		zap.Stringer("digest", digest),
		zap.Bool("success", res.Success),
		zap.Int("timestamps", len(res.Timestamps)),
	)

	if s.exporter != nil {
		if err := s.exporter.Export(ctx, loaded); err != nil {
			return loaded, fmt.Errorf("export trace %s: %w", loaded.ID, err)
		}
	}
	return loaded, nil
}

// Watch polls the configured files and reloads when either changes. Reload
// failures are logged and the previous trace stays published.
func (s *ReplayService) Watch(ctx context.Context) error {
	s.filesChanged() // baseline
	return clock.Every(ctx, s.cfg.WatchInterval, func(ctx context.Context) error {
		if !s.filesChanged() {
			return nil
		}
		s.reloadMu.Lock()
		defer s.reloadMu.Unlock()
		if _, err := s.load(ctx, s.cfg.StaticPath, s.cfg.DynamicPath, true); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn("reload failed", zap.Error(err))
		}
		return nil
	})
}

// filesChanged records the latest modification times and reports whether any moved.
func (s *ReplayService) filesChanged() bool {
	changed := false
	for _, path := range []string{s.cfg.StaticPath, s.cfg.DynamicPath} {
		info, err := os.Stat(path)
		if err != nil {
			s.logger.Debug("stat trace file", zap.String("path", path), zap.Error(err))
			continue
		}
		if prev, ok := s.modTimes[path]; !ok || !prev.Equal(info.ModTime()) {
			changed = true
			s.modTimes[path] = info.ModTime()
		}
	}
	return changed
}

// LoadID is stable for identical documents, so re-exporting them is a no-op.
func LoadID(digest chainhash.Hash) uuid.UUID {
	return uuid.NewSHA1(loadNamespace, digest[:])
}

// Digest identifies a pair of trace documents.
func Digest(static, dynamic []byte) chainhash.Hash {
	buf := make([]byte, 0, len(static)+len(dynamic)+1)
	buf = append(buf, static...)
	buf = append(buf, 0)
	buf = append(buf, dynamic...)
	return chainhash.HashH(buf)
}
