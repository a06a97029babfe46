// Package snapshot computes point-in-time views of a loaded trace.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/goodnatureofminers/simtrace-backend/internal/trace/model"
	"github.com/goodnatureofminers/simtrace-backend/internal/trace/palette"
	"github.com/goodnatureofminers/simtrace-backend/pkg/workerpool"
)

// NodeState is a node as seen at one timestamp.
type NodeState struct {
	ID       model.NodeID   `json:"id"`
	Region   model.RegionID `json:"region"`
	Position model.Position `json:"position"`
	Head     model.BlockID  `json:"head"`
	Height   int            `json:"height"`
	Round    int64          `json:"round"`
	Role     model.Role     `json:"role,omitempty"`
	Color    palette.RGB    `json:"color"`
}

// InFlight is a message travelling on a link. Progress is in [0, 1].
type InFlight struct {
	Block    model.BlockID   `json:"block"`
	Start    model.Timestamp `json:"start"`
	End      model.Timestamp `json:"end"`
	Progress float64         `json:"progress"`
	Color    palette.RGB     `json:"color"`
}

// LinkState is an active link at one timestamp.
type LinkState struct {
	Begin        model.NodeID `json:"begin"`
	End          model.NodeID `json:"end"`
	Messages     []InFlight   `json:"messages"`
	AvgLatencyMS int64        `json:"avg_latency_ms"`
}

// Snapshot is the whole network at one timestamp.
type Snapshot struct {
	At    model.Timestamp `json:"at"`
	Mode  string          `json:"mode"`
	Nodes []NodeState     `json:"nodes"`
	Links []LinkState     `json:"links"`
}

// Builder fans snapshot reads out over a worker pool. The trace must not be
// mutated while a snapshot is built.
type Builder struct {
	workers int
}

// NewBuilder returns a Builder; workers <= 0 uses GOMAXPROCS.
func NewBuilder(workers int) *Builder {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Builder{workers: workers}
}

// At builds the snapshot of tr at t.
func (b *Builder) At(ctx context.Context, tr *model.Trace, t model.Timestamp, mode model.ProtocolMode) (*Snapshot, error) {
	if tr == nil {
		return nil, errors.New("snapshot of nil trace")
	}
	total := len(tr.AllBlocks())

	nodes, err := workerpool.Map(ctx, b.workers, tr.AllNodes(), func(_ context.Context, n *model.Node) (NodeState, error) {
		return NodeAt(tr, n, t, mode, total), nil
	})
	if err != nil {
		return nil, fmt.Errorf("node states: %w", err)
	}

	links, err := workerpool.Map(ctx, b.workers, tr.AllLinks(), func(_ context.Context, l *model.Link) (*LinkState, error) {
		return LinkAt(l, t, total), nil
	})
	if err != nil {
		return nil, fmt.Errorf("link states: %w", err)
	}

	active := make([]LinkState, 0, len(links))
	for _, ls := range links {
		if ls != nil {
			active = append(active, *ls)
		}
	}
	return &Snapshot{At: t, Mode: mode.String(), Nodes: nodes, Links: active}, nil
}

// NodeAt computes a single node state.
func NodeAt(tr *model.Trace, n *model.Node, t model.Timestamp, mode model.ProtocolMode, totalBlocks int) NodeState {
	head := n.CurrentBlockID(t)
	return NodeState{
		ID:       n.ID,
		Region:   n.Region,
		Position: n.Position,
		Head:     head,
		Height:   n.ChainHeight(t),
		Round:    n.RoundAt(t),
		Role:     n.Role(t, mode, tr.BlockOwner),
		Color:    palette.ColorForID(head, totalBlocks),
	}
}

// LinkAt returns nil when nothing is in flight on l at t.
func LinkAt(l *model.Link, t model.Timestamp, totalBlocks int) *LinkState {
	activity := l.ActivityAt(t)
	if len(activity.Messages) == 0 {
		return nil
	}
	msgs := make([]InFlight, 0, len(activity.Messages))
	for _, m := range activity.Messages {
		msgs = append(msgs, InFlight{
			Block:    m.Block,
			Start:    m.Start,
			End:      m.End,
			Progress: progress(m, t),
			Color:    palette.ColorForID(m.Block, totalBlocks),
		})
	}
	return &LinkState{
		Begin:        l.Key.Begin,
		End:          l.Key.End,
		Messages:     msgs,
		AvgLatencyMS: activity.AvgLatency.Milliseconds(),
	}
}

func progress(m model.Message, t model.Timestamp) float64 {
	if m.End <= m.Start {
		return 1
	}
	return float64(t-m.Start) / float64(m.End-m.Start)
}
