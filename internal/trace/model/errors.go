package model

import "errors"

var (
	// ErrDuplicateEntityID is returned when an entity id is created twice.
	ErrDuplicateEntityID = errors.New("duplicate entity id")
	// ErrUnresolvedEntityReference is returned when an id references an entity that does not exist yet.
	ErrUnresolvedEntityReference = errors.New("unresolved entity reference")
	// ErrNonMonotonicReceipt is returned when a node receives a block earlier than its previous one.
	ErrNonMonotonicReceipt = errors.New("receipt timestamp goes backwards")
)
