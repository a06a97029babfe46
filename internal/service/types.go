package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/simtrace-backend/internal/repository/clickhouse"
	"github.com/goodnatureofminers/simtrace-backend/internal/trace/event"
	"github.com/goodnatureofminers/simtrace-backend/internal/trace/loader"
	"github.com/google/uuid"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	TraceLoader interface {
		LoadDocuments(static []byte, staticFormat event.Format, dynamic []byte, dynamicFormat event.Format) (*loader.Result, error)
	}
	Exporter interface {
		Export(ctx context.Context, loaded *Loaded) error
	}
	ReplayMetrics interface {
		ObserveReload(err error, started time.Time)
		SetCurrent(timestamps, diagnostics int)
	}
	TraceRepository interface {
		InsertLoads(ctx context.Context, loads []clickhouse.LoadRow) error
		InsertNodes(ctx context.Context, nodes []clickhouse.NodeRow) error
		InsertReceipts(ctx context.Context, receipts []clickhouse.ReceiptRow) error
		InsertMessages(ctx context.Context, messages []clickhouse.MessageRow) error
		InsertTimestamps(ctx context.Context, loadID uuid.UUID, timestamps []int64) error
		LoadExported(ctx context.Context, loadID uuid.UUID) (bool, error)
	}
)
