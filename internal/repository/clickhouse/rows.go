package clickhouse

import (
	"time"

	"github.com/google/uuid"
)

// LoadRow summarises one trace load.
type LoadRow struct {
	LoadID          uuid.UUID
	Digest          string
	StaticPath      string
	DynamicPath     string
	Success         bool
	Records         uint32
	Timestamps      uint32
	Diagnostics     uint32
	DroppedMessages uint32
	LoadedAt        time.Time
}

type NodeRow struct {
	LoadID    uuid.UUID
	NodeID    int64
	RegionID  int64
	Latitude  float64
	Longitude float64
	CreatedAt int64
}

// ReceiptRow is one entry of a node chain.
type ReceiptRow struct {
	LoadID     uuid.UUID
	NodeID     int64
	Position   uint32
	BlockID    int64
	FromNodeID int64
	Sent       int64
	Received   int64
}

type MessageRow struct {
	LoadID      uuid.UUID
	BeginNodeID int64
	EndNodeID   int64
	BlockID     int64
	Start       int64
	End         int64
}
