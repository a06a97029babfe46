// Package loader replays a trace document into a queryable model.Trace.
package loader

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/goodnatureofminers/simtrace-backend/internal/trace/event"
	"github.com/goodnatureofminers/simtrace-backend/internal/trace/model"
	"go.uber.org/zap"
)

// Diagnostic describes one record that could not be applied.
type Diagnostic struct {
	Index   int            `json:"index"`
	Kind    event.Kind     `json:"kind"`
	Err     error          `json:"-"`
	Message string         `json:"message"`
	Payload map[string]any `json:"payload,omitempty"`
}

// Result is the outcome of one load. A failed load still carries every entity
// that was built, so Trace is never nil once the static phase passed.
type Result struct {
	Success    bool
	Trace      *model.Trace
	Timestamps []model.Timestamp
	Records    int

	Diagnostics []Diagnostic
	// DroppedMessages counts flow-message records whose link did not exist.
	DroppedMessages int
	// UnorderedMessages counts messages that started before their predecessor on the same link.
	UnorderedMessages int
	// SkippedTimestamps counts timestamp fields left off the axis because they were not integers.
	SkippedTimestamps int
	Statistics        *event.Statistics
}

// Err joins the diagnostic errors, nil for a successful load.
func (r *Result) Err() error {
	if r.Success {
		return nil
	}
	errs := make([]error, 0, len(r.Diagnostics))
	for _, d := range r.Diagnostics {
		errs = append(errs, fmt.Errorf("record %d: %w", d.Index, d.Err))
	}
	return errors.Join(errs...)
}

// Loader ingests static and dynamic trace data.
type Loader struct {
	logger  *zap.Logger
	metrics Metrics
	sampler model.PositionSampler
}

// NewLoader constructs a Loader.
func NewLoader(metrics Metrics, sampler model.PositionSampler, logger *zap.Logger) (*Loader, error) {
	if metrics == nil {
		return nil, errors.New("loader metrics is required")
	}
	if sampler == nil {
		return nil, errors.New("position sampler is required")
	}
	return &Loader{
		logger:  logger.Named("loader"),
		metrics: metrics,
		sampler: sampler,
	}, nil
}

// LoadDocuments parses both documents and loads them. Unparseable static data and a
// dynamic document that is not a sequence abort before any record is applied.
func (l *Loader) LoadDocuments(static []byte, staticFormat event.Format, dynamic []byte, dynamicFormat event.Format) (*Result, error) {
	sd, err := event.ParseStatic(static, staticFormat)
	if err != nil {
		return nil, err
	}
	records, err := event.ParseDynamic(dynamic, dynamicFormat)
	if err != nil {
		return nil, err
	}
	return l.Load(sd, records)
}

// Load runs the static phase and then a single pass over records. A sampler with a
// Reset method is rewound first so reloading the same trace places nodes identically.
// The returned error is reserved for fatal static-phase failures; per-record
// problems are reported through Result.Success and Result.Diagnostics.
func (l *Loader) Load(static event.StaticData, records []event.Record) (*Result, error) {
	started := time.Now()
	if r, ok := l.sampler.(interface{ Reset() }); ok {
		r.Reset()
	}

	tr := model.NewTrace()
	for _, sr := range static.Regions {
		if err := tr.AddRegion(model.NewRegion(sr.ID, sr.Name)); err != nil {
			l.metrics.ObserveLoad(false, 0, started)
			return nil, fmt.Errorf("%w: %w", event.ErrInvalidStaticData, err)
		}
	}

	p := &pass{
		logger:  l.logger,
		metrics: l.metrics,
		sampler: l.sampler,
		trace:   tr,
		result:  &Result{Success: true, Trace: tr, Records: len(records)},
	}

	var timestamps []model.Timestamp
	for i, rec := range records {
		ts, skipped := rec.Timestamps()
		timestamps = append(timestamps, ts...)
		p.result.SkippedTimestamps += skipped
		p.apply(i, rec)
	}
	slices.Sort(timestamps)
	p.result.Timestamps = slices.Compact(timestamps)

	l.metrics.ObserveLoad(p.result.Success, len(records), started)

	regions, nodes, links, blocks := tr.Counts()
	fields := []zap.Field{
		zap.Bool("success", p.result.Success),
		zap.Int("records", len(records)),
		zap.Int("regions", regions),
		zap.Int("nodes", nodes),
		zap.Int("links", links),
		zap.Int("blocks", blocks),
		zap.Int("timestamps", len(p.result.Timestamps)),
		zap.Int("diagnostics", len(p.result.Diagnostics)),
		zap.Int("dropped_messages", p.result.DroppedMessages),
		zap.Int("unordered_messages", p.result.UnorderedMessages),
		zap.Int("skipped_timestamps", p.result.SkippedTimestamps),
		zap.Duration("took", time.Since(started)),
	}
	if p.result.Success {
		l.logger.Info("trace loaded", fields...)
	} else {
		l.logger.Warn("trace loaded with errors", fields...)
	}
	return p.result, nil
}

// pass holds the mutable state of one forward pass.
type pass struct {
	logger  *zap.Logger
	metrics Metrics
	sampler model.PositionSampler
	trace   *model.Trace
	result  *Result
}

func (p *pass) apply(index int, rec event.Record) {
	ev, err := event.Decode(rec)
	if err == nil {
		err = p.dispatch(ev)
	}
	p.metrics.ObserveRecord(rec.Kind, err)
	if err != nil {
		p.fail(index, rec, err)
	}
}

func (p *pass) dispatch(ev event.Event) error {
	switch e := ev.(type) {
	case event.AddNode:
		return p.addNode(e)
	case event.AddLink:
		return p.addLink(e)
	case event.CreateBlock:
		_, err := p.createBlock(e.Block, e.Node, e.Timestamp)
		return err
	case event.AddBlock:
		// The owner must accept its own receipt before the block is registered.
		if owner, err := p.trace.Node(e.Node); err == nil {
			if err := owner.CanReceive(e.Block, e.Timestamp); err != nil {
				return err
			}
		}
		b, err := p.createBlock(e.Block, e.Node, e.Timestamp)
		if err != nil {
			return err
		}
		return p.deliver(b, e.Node, e.Node, e.Timestamp, e.Timestamp)
	case event.FlowMessage:
		return p.flowMessage(e)
	case event.FlowBlock:
		return p.flowBlock(e)
	case event.NodeCommittee:
		n, err := p.trace.Node(e.Node)
		if err != nil {
			return err
		}
		n.AddCommitteeMembership(e.Round)
		return nil
	case event.NodeProposer:
		n, err := p.trace.Node(e.Node)
		if err != nil {
			return err
		}
		n.AddProposerRound(e.Round)
		return nil
	case event.Statistics:
		stats := e
		p.result.Statistics = &stats
		return nil
	case event.SimulationEnd:
		return nil
	default:
		return fmt.Errorf("unhandled event %T", ev)
	}
}

func (p *pass) addNode(e event.AddNode) error {
	region, err := p.trace.Region(e.Region)
	if err != nil {
		return fmt.Errorf("add node %d: %w", e.Node, err)
	}
	return p.trace.AddNode(model.NewNode(e.Node, region.ID, p.sampler.Sample(region), e.Timestamp))
}

func (p *pass) addLink(e event.AddLink) error {
	for _, id := range []model.NodeID{e.Begin, e.End} {
		if _, err := p.trace.Node(id); err != nil {
			return fmt.Errorf("add link %d->%d: %w", e.Begin, e.End, err)
		}
	}
	return p.trace.AddLink(model.NewLink(e.Begin, e.End, e.Timestamp))
}

func (p *pass) createBlock(id model.BlockID, owner model.NodeID, ts model.Timestamp) (*model.Block, error) {
	if _, err := p.trace.Node(owner); err != nil {
		return nil, fmt.Errorf("create block %d: %w", id, err)
	}
	b := model.NewBlock(id, owner, ts)
	if err := p.trace.AddBlock(b); err != nil {
		return nil, err
	}
	return b, nil
}

// deliver appends the hop to the receiver's chain and then to the block history.
// A hop the receiver cannot chain in order is rejected as a whole.
func (p *pass) deliver(b *model.Block, from, to model.NodeID, sent, received model.Timestamp) error {
	if _, err := p.trace.Node(from); err != nil {
		return fmt.Errorf("flow block %d: %w", b.ID, err)
	}
	receiver, err := p.trace.Node(to)
	if err != nil {
		return fmt.Errorf("flow block %d: %w", b.ID, err)
	}
	if err := receiver.Receive(model.Receipt{Block: b.ID, From: from, Sent: sent, Received: received}); err != nil {
		return err
	}
	b.RecordFlow(from, to, sent, received)
	return nil
}

func (p *pass) flowBlock(e event.FlowBlock) error {
	b, err := p.trace.Block(e.Block)
	if err != nil {
		return fmt.Errorf("flow block %d: %w", e.Block, err)
	}
	return p.deliver(b, e.Begin, e.End, e.Transmission, e.Reception)
}

func (p *pass) flowMessage(e event.FlowMessage) error {
	key := model.LinkKey{Begin: e.Begin, End: e.End}
	link, err := p.trace.Link(key)
	if err != nil {
		p.result.DroppedMessages++
		p.metrics.ObserveDroppedMessage()
		p.logger.Debug("drop message on unknown link", zap.Stringer("link", key), zap.Int64("block_id", int64(e.Block)))
		return nil
	}
	inOrder := link.AppendMessage(model.Message{
		Start:   e.Transmission,
		End:     e.Reception,
		Block:   e.Block,
		Content: e.Content,
	})
	if !inOrder {
		p.result.UnorderedMessages++
	}
	return nil
}

func (p *pass) fail(index int, rec event.Record, err error) {
	p.result.Success = false
	p.result.Diagnostics = append(p.result.Diagnostics, Diagnostic{
		Index:   index,
		Kind:    rec.Kind,
		Err:     err,
		Message: err.Error(),
		Payload: rec.Content,
	})
	p.logger.Warn("skip record",
		zap.Int("index", index),
		zap.String("kind", string(rec.Kind)),
		zap.Any("payload", rec.Content),
		zap.Error(err),
	)
}
