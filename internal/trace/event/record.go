package event

import (
	"errors"
	"fmt"
	"slices"

	"github.com/goodnatureofminers/simtrace-backend/internal/trace/model"
	"github.com/goodnatureofminers/simtrace-backend/pkg/safe"
)

const (
	FieldTimestamp             = "timestamp"
	FieldTransmissionTimestamp = "transmission-timestamp"
	FieldReceptionTimestamp    = "reception-timestamp"
	FieldNodeID                = "node-id"
	FieldRegionID              = "region-id"
	FieldBeginNodeID           = "begin-node-id"
	FieldEndNodeID             = "end-node-id"
	FieldBlockID               = "block-id"
	FieldRound                 = "round"
)

// timestampFields are the record fields that contribute to the scrub axis.
var timestampFields = []string{FieldTimestamp, FieldTransmissionTimestamp, FieldReceptionTimestamp}

// ErrMalformedRecord is matched by every MalformedRecordError.
var ErrMalformedRecord = errors.New("malformed dynamic record")

// MalformedRecordError describes an unknown kind or a bad required field.
type MalformedRecordError struct {
	Kind   Kind
	Field  string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: kind %q: %s", ErrMalformedRecord, e.Kind, e.Reason)
	}
	return fmt.Sprintf("%s: kind %q field %q: %s", ErrMalformedRecord, e.Kind, e.Field, e.Reason)
}

func (e *MalformedRecordError) Unwrap() error { return ErrMalformedRecord }

// Record is a raw dynamic record as read from the trace document.
type Record struct {
	Kind    Kind           `json:"kind" yaml:"kind"`
	Content map[string]any `json:"content" yaml:"content"`
}

// Timestamps returns every integral timestamp-bearing field present in the record
// and the number of present fields that are not integers, such as 10.5 or "12".
func (r Record) Timestamps() ([]model.Timestamp, int) {
	var (
		res     []model.Timestamp
		skipped int
	)
	for _, f := range timestampFields {
		v, ok := r.Content[f]
		if !ok {
			continue
		}
		ts, err := safe.Int64(v)
		if err != nil {
			skipped++
			continue
		}
		res = append(res, model.Timestamp(ts))
	}
	return res, skipped
}

// Decode converts a raw record into its typed event.
func Decode(r Record) (Event, error) {
	f := fields{kind: r.Kind, content: r.Content}
	var ev Event
	switch r.Kind {
	case KindAddNode:
		ev = AddNode{
			Timestamp: f.timestamp(FieldTimestamp),
			Node:      model.NodeID(f.integer(FieldNodeID)),
			Region:    model.RegionID(f.integer(FieldRegionID)),
		}
	case KindAddLink:
		ev = AddLink{
			Timestamp: f.timestamp(FieldTimestamp),
			Begin:     model.NodeID(f.integer(FieldBeginNodeID)),
			End:       model.NodeID(f.integer(FieldEndNodeID)),
		}
	case KindCreateBlock:
		ev = CreateBlock{
			Timestamp: f.timestamp(FieldTimestamp),
			Block:     model.BlockID(f.integer(FieldBlockID)),
			Node:      model.NodeID(f.integer(FieldNodeID)),
		}
	case KindAddBlock:
		ev = AddBlock{
			Timestamp: f.timestamp(FieldTimestamp),
			Block:     model.BlockID(f.integer(FieldBlockID)),
			Node:      model.NodeID(f.integer(FieldNodeID)),
		}
	case KindFlowMessage:
		ev = FlowMessage{
			Transmission: f.timestamp(FieldTransmissionTimestamp),
			Reception:    f.timestamp(FieldReceptionTimestamp),
			Begin:        model.NodeID(f.integer(FieldBeginNodeID)),
			End:          model.NodeID(f.integer(FieldEndNodeID)),
			Block:        model.BlockID(f.integer(FieldBlockID)),
			Content: f.rest(FieldTransmissionTimestamp, FieldReceptionTimestamp,
				FieldBeginNodeID, FieldEndNodeID, FieldBlockID),
		}
	case KindFlowBlock:
		ev = FlowBlock{
			Transmission: f.timestamp(FieldTransmissionTimestamp),
			Reception:    f.timestamp(FieldReceptionTimestamp),
			Begin:        model.NodeID(f.integer(FieldBeginNodeID)),
			End:          model.NodeID(f.integer(FieldEndNodeID)),
			Block:        model.BlockID(f.integer(FieldBlockID)),
		}
	case KindSimulationEnd:
		ev = SimulationEnd{Timestamp: f.optionalTimestamp(FieldTimestamp)}
	case KindNodeCommittee:
		ev = NodeCommittee{
			Timestamp: f.timestamp(FieldTimestamp),
			Node:      model.NodeID(f.integer(FieldNodeID)),
			Round:     f.integer(FieldRound),
		}
	case KindNodeProposer:
		ev = NodeProposer{
			Timestamp: f.timestamp(FieldTimestamp),
			Node:      model.NodeID(f.integer(FieldNodeID)),
			Round:     f.integer(FieldRound),
		}
	case KindStatistics:
		ev = Statistics{
			AvgConsensusTime:       f.optionalInt("avgConsensusTime"),
			MaxChainHeight:         f.optionalInt("maxChainHeight"),
			TotalMessagesExchanged: f.optionalInt("totalMessagesExchanged"),
		}
	default:
		return nil, &MalformedRecordError{Kind: r.Kind, Reason: "unknown kind"}
	}
	if f.err != nil {
		return nil, f.err
	}
	return ev, nil
}

// fields reads typed values from a record content and keeps the first failure.
type fields struct {
	kind    Kind
	content map[string]any
	err     error
}

func (f *fields) integer(name string) int64 {
	if f.err != nil {
		return 0
	}
	v, ok := f.content[name]
	if !ok {
		f.err = &MalformedRecordError{Kind: f.kind, Field: name, Reason: "missing required field"}
		return 0
	}
	i, err := safe.Int64(v)
	if err != nil {
		f.err = &MalformedRecordError{Kind: f.kind, Field: name, Reason: err.Error()}
		return 0
	}
	return i
}

func (f *fields) timestamp(name string) model.Timestamp {
	return model.Timestamp(f.integer(name))
}

func (f *fields) optionalInt(name string) int64 {
	if _, ok := f.content[name]; !ok {
		return 0
	}
	return f.integer(name)
}

func (f *fields) optionalTimestamp(name string) model.Timestamp {
	return model.Timestamp(f.optionalInt(name))
}

func (f *fields) rest(required ...string) map[string]any {
	var res map[string]any
	for k, v := range f.content {
		if slices.Contains(required, k) {
			continue
		}
		if res == nil {
			res = make(map[string]any)
		}
		res[k] = v
	}
	return res
}
