// Package model defines the replayed trace entities and their point-in-time queries.
package model

import "fmt"

// Timestamp is a simulation time as written by the trace producer (milliseconds).
type Timestamp int64

type (
	RegionID int64
	NodeID   int64
	BlockID  int64
)

// NoBlock is the display id used when a node holds no block yet.
const NoBlock BlockID = -1

// LinkKey identifies a directed link by its endpoints.
type LinkKey struct {
	Begin NodeID
	End   NodeID
}

func (k LinkKey) String() string {
	return fmt.Sprintf("%d->%d", k.Begin, k.End)
}
