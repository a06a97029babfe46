package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/simtrace-backend/internal/repository/clickhouse"
	"github.com/goodnatureofminers/simtrace-backend/pkg/batcher"
	"github.com/goodnatureofminers/simtrace-backend/pkg/safe"
	"go.uber.org/zap"
)

const (
	defaultExportBatchSize     = 5000
	defaultExportFlushInterval = time.Second
)

type TraceExporterConfig struct {
	BatchSize     int
	FlushInterval time.Duration
	// RPS limits batch inserts per second; zero means unlimited.
	RPS int
}

// TraceExporter writes a published trace to the repository. Receipts and
// messages stream through batchers. The load row is written last, so
// LoadExported finding it means every other row of the load is stored. Rows
// of a failed attempt are rewritten by the retry and collapse in the
// replacing tables.
type TraceExporter struct {
	repo   TraceRepository
	logger *zap.Logger
	cfg    TraceExporterConfig
}

func NewTraceExporter(repo TraceRepository, cfg TraceExporterConfig, logger *zap.Logger) (*TraceExporter, error) {
	if repo == nil {
		return nil, errors.New("trace repository is required")
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultExportBatchSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = defaultExportFlushInterval
	}
	return &TraceExporter{repo: repo, logger: logger.Named("exporter"), cfg: cfg}, nil
}

func (e *TraceExporter) Export(ctx context.Context, loaded *Loaded) error {
	if loaded == nil || loaded.Result == nil || loaded.Result.Trace == nil {
		return errors.New("nothing to export")
	}
	started := time.Now()
	res := loaded.Result
	tr := res.Trace

	if exists, err := e.repo.LoadExported(ctx, loaded.ID); err != nil {
		return err
	} else if exists {
		e.logger.Info("load already exported", zap.Stringer("load_id", loaded.ID))
		return nil
	}

	nodes := make([]clickhouse.NodeRow, 0, len(tr.AllNodes()))
	for _, n := range tr.AllNodes() {
		nodes = append(nodes, clickhouse.NodeRow{
			LoadID:    loaded.ID,
			NodeID:    int64(n.ID),
			RegionID:  int64(n.Region),
			Latitude:  n.Position.Latitude,
			Longitude: n.Position.Longitude,
			CreatedAt: int64(n.CreatedAt),
		})
	}
	if err := e.repo.InsertNodes(ctx, nodes); err != nil {
		return err
	}

	receipts := batcher.New(e.logger.Named("receiptBatcher"), e.repo.InsertReceipts, e.cfg.BatchSize, e.cfg.FlushInterval, e.cfg.RPS)
	messages := batcher.New(e.logger.Named("messageBatcher"), e.repo.InsertMessages, e.cfg.BatchSize, e.cfg.FlushInterval, e.cfg.RPS)
	receipts.Start(ctx)
	messages.Start(ctx)

	produceErr := e.produce(ctx, loaded, receipts, messages)
	if err := errors.Join(produceErr, receipts.Stop(), messages.Stop()); err != nil {
		return fmt.Errorf("stream rows: %w", err)
	}

	timestamps := make([]int64, 0, len(res.Timestamps))
	for _, ts := range res.Timestamps {
		timestamps = append(timestamps, int64(ts))
	}
	if err := e.repo.InsertTimestamps(ctx, loaded.ID, timestamps); err != nil {
		return err
	}

	row, err := loadRow(loaded)
	if err != nil {
		return err
	}
	if err := e.repo.InsertLoads(ctx, []clickhouse.LoadRow{row}); err != nil {
		return err
	}

	e.logger.Info("trace exported",
		zap.Stringer("load_id", loaded.ID),
		zap.Int("nodes", len(nodes)),
		zap.Int("timestamps", len(timestamps)),
		zap.Duration("took", time.Since(started)),
	)
	return nil
}

func (e *TraceExporter) produce(
	ctx context.Context,
	loaded *Loaded,
	receipts *batcher.Batcher[clickhouse.ReceiptRow],
	messages *batcher.Batcher[clickhouse.MessageRow],
) error {
	tr := loaded.Result.Trace
	for _, n := range tr.AllNodes() {
		for i, r := range n.Blocks() {
			position, err := safe.Uint32(i)
			if err != nil {
				return fmt.Errorf("receipt position of node %d: %w", n.ID, err)
			}
			if err := receipts.Add(ctx, clickhouse.ReceiptRow{
				LoadID:     loaded.ID,
				NodeID:     int64(n.ID),
				Position:   position,
				BlockID:    int64(r.Block),
				FromNodeID: int64(r.From),
				Sent:       int64(r.Sent),
				Received:   int64(r.Received),
			}); err != nil {
				return err
			}
		}
	}
	for _, l := range tr.AllLinks() {
		for _, m := range l.Messages() {
			if err := messages.Add(ctx, clickhouse.MessageRow{
				LoadID:      loaded.ID,
				BeginNodeID: int64(l.Key.Begin),
				EndNodeID:   int64(l.Key.End),
				BlockID:     int64(m.Block),
				Start:       int64(m.Start),
				End:         int64(m.End),
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

func loadRow(loaded *Loaded) (clickhouse.LoadRow, error) {
	res := loaded.Result
	records, err := safe.Uint32(res.Records)
	if err != nil {
		return clickhouse.LoadRow{}, fmt.Errorf("records: %w", err)
	}
	timestamps, err := safe.Uint32(len(res.Timestamps))
	if err != nil {
		return clickhouse.LoadRow{}, fmt.Errorf("timestamps: %w", err)
	}
	diagnostics, err := safe.Uint32(len(res.Diagnostics))
	if err != nil {
		return clickhouse.LoadRow{}, fmt.Errorf("diagnostics: %w", err)
	}
	dropped, err := safe.Uint32(res.DroppedMessages)
	if err != nil {
		return clickhouse.LoadRow{}, fmt.Errorf("dropped messages: %w", err)
	}
	return clickhouse.LoadRow{
		LoadID:          loaded.ID,
		Digest:          loaded.Digest.String(),
		StaticPath:      loaded.StaticPath,
		DynamicPath:     loaded.DynamicPath,
		Success:         res.Success,
		Records:         records,
		Timestamps:      timestamps,
		Diagnostics:     diagnostics,
		DroppedMessages: dropped,
		LoadedAt:        loaded.LoadedAt,
	}, nil
}
