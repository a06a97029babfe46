package model

// Flow is one propagation hop of a block.
type Flow struct {
	From     NodeID
	To       NodeID
	Sent     Timestamp
	Received Timestamp
}

// Block is a block created by Owner. A block without flows was never chained.
type Block struct {
	ID        BlockID
	Owner     NodeID
	CreatedAt Timestamp

	flows []Flow
}

// NewBlock constructs a block created by owner at createdAt.
func NewBlock(id BlockID, owner NodeID, createdAt Timestamp) *Block {
	return &Block{ID: id, Owner: owner, CreatedAt: createdAt}
}

// RecordFlow appends a hop to the flow history.
func (b *Block) RecordFlow(from, to NodeID, sent, received Timestamp) Flow {
	f := Flow{From: from, To: to, Sent: sent, Received: received}
	b.flows = append(b.flows, f)
	return f
}

// Flows returns the hops in the order they were recorded.
func (b *Block) Flows() []Flow {
	return append([]Flow(nil), b.flows...)
}
