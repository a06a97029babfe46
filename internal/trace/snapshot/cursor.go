package snapshot

import (
	"sort"

	"github.com/goodnatureofminers/simtrace-backend/internal/trace/model"
)

// Cursor scrubs forward and backward over a sorted timestamp axis.
// It is not safe for concurrent use.
type Cursor struct {
	axis []model.Timestamp
	pos  int
}

// NewCursor positions a cursor on the first timestamp of axis.
func NewCursor(axis []model.Timestamp) *Cursor {
	return &Cursor{axis: axis}
}

// Len is the number of distinct timestamps.
func (c *Cursor) Len() int { return len(c.axis) }

// Current returns the timestamp under the cursor.
func (c *Cursor) Current() (model.Timestamp, bool) {
	if len(c.axis) == 0 {
		return 0, false
	}
	return c.axis[c.pos], true
}

// Seek moves to the greatest timestamp <= t, or to the first one when t precedes the axis.
func (c *Cursor) Seek(t model.Timestamp) (model.Timestamp, bool) {
	if len(c.axis) == 0 {
		return 0, false
	}
	i := sort.Search(len(c.axis), func(i int) bool { return c.axis[i] > t })
	c.pos = max(i-1, 0)
	return c.axis[c.pos], true
}

// Next advances one step; it reports false at the end of the axis.
func (c *Cursor) Next() (model.Timestamp, bool) {
	if c.pos+1 >= len(c.axis) {
		return 0, false
	}
	c.pos++
	return c.axis[c.pos], true
}

// Prev steps back one timestamp; it reports false at the start of the axis.
func (c *Cursor) Prev() (model.Timestamp, bool) {
	if c.pos == 0 || len(c.axis) == 0 {
		return 0, false
	}
	c.pos--
	return c.axis[c.pos], true
}
