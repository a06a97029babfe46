package model

import (
	"fmt"
	"slices"
	"sort"
)

// Receipt is one entry of a node's local chain: a block and the hop that delivered it.
type Receipt struct {
	Block    BlockID
	From     NodeID
	Sent     Timestamp
	Received Timestamp
}

// Node is a simulated peer. Its blockList is append-only and ordered by Received.
type Node struct {
	ID        NodeID
	Region    RegionID
	Position  Position
	CreatedAt Timestamp

	blockList   []Receipt
	inCommittee []int64
	proposing   []int64
}

// NewNode constructs a node with an empty chain.
func NewNode(id NodeID, region RegionID, pos Position, createdAt Timestamp) *Node {
	return &Node{ID: id, Region: region, Position: pos, CreatedAt: createdAt}
}

// Receive appends r to the chain. A receipt older than the chain head is rejected
// so that time lookups can binary search the list.
func (n *Node) Receive(r Receipt) error {
	if err := n.CanReceive(r.Block, r.Received); err != nil {
		return err
	}
	n.blockList = append(n.blockList, r)
	return nil
}

// CanReceive reports the error Receive would return for a receipt of block at
// received, without changing the chain.
func (n *Node) CanReceive(block BlockID, received Timestamp) error {
	if last := len(n.blockList) - 1; last >= 0 && received < n.blockList[last].Received {
		return fmt.Errorf("node %d block %d received at %d after %d: %w",
			n.ID, block, received, n.blockList[last].Received, ErrNonMonotonicReceipt)
	}
	return nil
}

// Blocks returns a copy of the chain in receipt order.
func (n *Node) Blocks() []Receipt {
	return slices.Clone(n.blockList)
}

// ChainHeight counts receipts with Received <= t.
func (n *Node) ChainHeight(t Timestamp) int {
	return sort.Search(len(n.blockList), func(i int) bool {
		return n.blockList[i].Received > t
	})
}

// CurrentBlock returns the receipt with the greatest Received <= t.
// Among equal timestamps the last inserted one wins.
func (n *Node) CurrentBlock(t Timestamp) (Receipt, bool) {
	h := n.ChainHeight(t)
	if h == 0 {
		return Receipt{}, false
	}
	return n.blockList[h-1], true
}

// NextBlock returns the first receipt with Received >= t.
func (n *Node) NextBlock(t Timestamp) (Receipt, bool) {
	i := sort.Search(len(n.blockList), func(i int) bool {
		return n.blockList[i].Received >= t
	})
	if i == len(n.blockList) {
		return Receipt{}, false
	}
	return n.blockList[i], true
}

// CurrentBlockID is CurrentBlock reduced to an id, NoBlock when the chain is empty at t.
func (n *Node) CurrentBlockID(t Timestamp) BlockID {
	r, ok := n.CurrentBlock(t)
	if !ok {
		return NoBlock
	}
	return r.Block
}

// AddCommitteeMembership records committee participation for round, once.
func (n *Node) AddCommitteeMembership(round int64) {
	if !slices.Contains(n.inCommittee, round) {
		n.inCommittee = append(n.inCommittee, round)
	}
}

// AddProposerRound records a proposal for round, once.
func (n *Node) AddProposerRound(round int64) {
	if !slices.Contains(n.proposing, round) {
		n.proposing = append(n.proposing, round)
	}
}

func (n *Node) IsInCommittee(round int64) bool { return slices.Contains(n.inCommittee, round) }

func (n *Node) IsProposer(round int64) bool { return slices.Contains(n.proposing, round) }

// CommitteeRounds returns the recorded committee rounds in arrival order.
func (n *Node) CommitteeRounds() []int64 { return slices.Clone(n.inCommittee) }

// ProposerRounds returns the recorded proposer rounds in arrival order.
func (n *Node) ProposerRounds() []int64 { return slices.Clone(n.proposing) }

// RoundAt is the consensus round the node works on at t: one past its chain height.
// Rounds start at 1, so a node with no block is in round 1 and a node whose head is
// the p-th block of its chain is in round p+1.
func (n *Node) RoundAt(t Timestamp) int64 {
	return int64(n.ChainHeight(t)) + 1
}

func (n *Node) CommitteeMemberAt(t Timestamp) bool { return n.IsInCommittee(n.RoundAt(t)) }

func (n *Node) ProposerAt(t Timestamp) bool { return n.IsProposer(n.RoundAt(t)) }

// IsMiner reports whether the node created b.
func (n *Node) IsMiner(b *Block) bool {
	return b != nil && b.Owner == n.ID
}

// Role derives the displayed role at t. owner resolves the creator of a block and
// is only consulted in proof-of-work mode.
func (n *Node) Role(t Timestamp, mode ProtocolMode, owner func(BlockID) (NodeID, bool)) Role {
	switch mode {
	case ProofOfWork:
		r, ok := n.CurrentBlock(t)
		if !ok || owner == nil {
			return RoleNone
		}
		if id, found := owner(r.Block); found && id == n.ID {
			return RoleMiner
		}
	case ProofOfStake:
		if n.ProposerAt(t) {
			return RoleProposer
		}
		if n.CommitteeMemberAt(t) {
			return RoleCommittee
		}
	}
	return RoleNone
}
