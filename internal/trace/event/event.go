// Package event defines the dynamic trace records and their typed variants.
package event

import "github.com/goodnatureofminers/simtrace-backend/internal/trace/model"

// Kind is the record discriminator written by the simulator.
type Kind string

const (
	KindAddNode       Kind = "add-node"
	KindAddLink       Kind = "add-link"
	KindCreateBlock   Kind = "create-block"
	KindAddBlock      Kind = "add-block"
	KindFlowMessage   Kind = "flow-message"
	KindFlowBlock     Kind = "flow-block"
	KindSimulationEnd Kind = "simulation-end"
	KindNodeCommittee Kind = "node-committee"
	KindNodeProposer  Kind = "node-proposer"
	KindStatistics    Kind = "statistics"
)

// Kinds lists every recognised kind.
func Kinds() []Kind {
	return []Kind{
		KindAddNode,
		KindAddLink,
		KindCreateBlock,
		KindAddBlock,
		KindFlowMessage,
		KindFlowBlock,
		KindSimulationEnd,
		KindNodeCommittee,
		KindNodeProposer,
		KindStatistics,
	}
}

// Event is one decoded record. The set of implementations is closed to this package.
type Event interface {
	Kind() Kind
	event()
}

type AddNode struct {
	Timestamp model.Timestamp
	Node      model.NodeID
	Region    model.RegionID
}

type AddLink struct {
	Timestamp model.Timestamp
	Begin     model.NodeID
	End       model.NodeID
}

// CreateBlock records a block that is not appended to any chain.
type CreateBlock struct {
	Timestamp model.Timestamp
	Block     model.BlockID
	Node      model.NodeID
}

// AddBlock records a block that its creator appends to its own chain.
type AddBlock struct {
	Timestamp model.Timestamp
	Block     model.BlockID
	Node      model.NodeID
}

type FlowMessage struct {
	Transmission model.Timestamp
	Reception    model.Timestamp
	Begin        model.NodeID
	End          model.NodeID
	Block        model.BlockID
	// Content holds the optional fields beyond the required ones (message type, payload).
	Content map[string]any
}

type FlowBlock struct {
	Transmission model.Timestamp
	Reception    model.Timestamp
	Begin        model.NodeID
	End          model.NodeID
	Block        model.BlockID
}

type SimulationEnd struct {
	Timestamp model.Timestamp
}

type NodeCommittee struct {
	Timestamp model.Timestamp
	Node      model.NodeID
	Round     int64
}

type NodeProposer struct {
	Timestamp model.Timestamp
	Node      model.NodeID
	Round     int64
}

// Statistics is the summary the simulator appends at the end of a run.
type Statistics struct {
	AvgConsensusTime       int64 `json:"avgConsensusTime"`
	MaxChainHeight         int64 `json:"maxChainHeight"`
	TotalMessagesExchanged int64 `json:"totalMessagesExchanged"`
}

func (AddNode) Kind() Kind       { return KindAddNode }
func (AddLink) Kind() Kind       { return KindAddLink }
func (CreateBlock) Kind() Kind   { return KindCreateBlock }
func (AddBlock) Kind() Kind      { return KindAddBlock }
func (FlowMessage) Kind() Kind   { return KindFlowMessage }
func (FlowBlock) Kind() Kind     { return KindFlowBlock }
func (SimulationEnd) Kind() Kind { return KindSimulationEnd }
func (NodeCommittee) Kind() Kind { return KindNodeCommittee }
func (NodeProposer) Kind() Kind  { return KindNodeProposer }
func (Statistics) Kind() Kind    { return KindStatistics }

func (AddNode) event()       {}
func (AddLink) event()       {}
func (CreateBlock) event()   {}
func (AddBlock) event()      {}
func (FlowMessage) event()   {}
func (FlowBlock) event()     {}
func (SimulationEnd) event() {}
func (NodeCommittee) event() {}
func (NodeProposer) event()  {}
func (Statistics) event()    {}
