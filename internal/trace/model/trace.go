package model

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/goodnatureofminers/simtrace-backend/pkg/registry"
)

// Trace owns every entity of one loaded trace. Entities refer to each other by id only.
// It is mutated during ingestion and must be treated as read-only afterwards.
type Trace struct {
	regions *registry.Registry[RegionID, *Region]
	nodes   *registry.Registry[NodeID, *Node]
	links   *registry.Registry[LinkKey, *Link]
	blocks  *registry.Registry[BlockID, *Block]
}

// NewTrace constructs an empty trace.
func NewTrace() *Trace {
	return &Trace{
		regions: registry.New[RegionID, *Region](),
		nodes:   registry.New[NodeID, *Node](),
		links:   registry.New[LinkKey, *Link](),
		blocks:  registry.New[BlockID, *Block](),
	}
}

func (t *Trace) AddRegion(r *Region) error {
	return wrapRegistry("region", t.regions.Insert(r.ID, r))
}

func (t *Trace) AddNode(n *Node) error {
	return wrapRegistry("node", t.nodes.Insert(n.ID, n))
}

func (t *Trace) AddLink(l *Link) error {
	return wrapRegistry("link", t.links.Insert(l.Key, l))
}

func (t *Trace) AddBlock(b *Block) error {
	return wrapRegistry("block", t.blocks.Insert(b.ID, b))
}

func (t *Trace) Region(id RegionID) (*Region, error) {
	r, err := t.regions.Get(id)
	return r, wrapRegistry("region", err)
}

func (t *Trace) Node(id NodeID) (*Node, error) {
	n, err := t.nodes.Get(id)
	return n, wrapRegistry("node", err)
}

func (t *Trace) Link(key LinkKey) (*Link, error) {
	l, err := t.links.Get(key)
	return l, wrapRegistry("link", err)
}

func (t *Trace) Block(id BlockID) (*Block, error) {
	b, err := t.blocks.Get(id)
	return b, wrapRegistry("block", err)
}

// AllRegions returns regions ordered by id.
func (t *Trace) AllRegions() []*Region {
	res := t.regions.All()
	slices.SortFunc(res, func(a, b *Region) int { return cmp.Compare(a.ID, b.ID) })
	return res
}

// AllNodes returns nodes ordered by id.
func (t *Trace) AllNodes() []*Node {
	res := t.nodes.All()
	slices.SortFunc(res, func(a, b *Node) int { return cmp.Compare(a.ID, b.ID) })
	return res
}

// AllLinks returns links in creation order.
func (t *Trace) AllLinks() []*Link {
	return t.links.All()
}

// AllBlocks returns blocks ordered by id.
func (t *Trace) AllBlocks() []*Block {
	res := t.blocks.All()
	slices.SortFunc(res, func(a, b *Block) int { return cmp.Compare(a.ID, b.ID) })
	return res
}

// BlockOwner resolves the creator of a block.
func (t *Trace) BlockOwner(id BlockID) (NodeID, bool) {
	b, err := t.blocks.Get(id)
	if err != nil {
		return 0, false
	}
	return b.Owner, true
}

// Counts returns the number of regions, nodes, links and blocks.
func (t *Trace) Counts() (regions, nodes, links, blocks int) {
	return t.regions.Len(), t.nodes.Len(), t.links.Len(), t.blocks.Len()
}

func wrapRegistry(entity string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, registry.ErrDuplicateID):
		return fmt.Errorf("%s %w: %w", entity, ErrDuplicateEntityID, err)
	case errors.Is(err, registry.ErrNotFound):
		return fmt.Errorf("%s %w: %w", entity, ErrUnresolvedEntityReference, err)
	default:
		return fmt.Errorf("%s: %w", entity, err)
	}
}
