package model

import "time"

// Message is one transmission window on a link.
type Message struct {
	Start   Timestamp
	End     Timestamp
	Block   BlockID
	Content map[string]any
}

// Contains reports whether t lies in [Start, End].
func (m Message) Contains(t Timestamp) bool {
	return m.Start <= t && t <= m.End
}

// Latency is End - Start in trace milliseconds.
func (m Message) Latency() time.Duration {
	return time.Duration(m.End-m.Start) * time.Millisecond
}

// Link is a directed edge between two nodes carrying messages.
type Link struct {
	Key       LinkKey
	CreatedAt Timestamp

	messages []Message
	// unordered is set once a message starts before its predecessor; the
	// early-exit scan in MessagesActiveAt is only valid while it is false.
	unordered bool
}

// NewLink constructs a link between begin and end.
func NewLink(begin, end NodeID, createdAt Timestamp) *Link {
	return &Link{Key: LinkKey{Begin: begin, End: end}, CreatedAt: createdAt}
}

// AppendMessage stores m and reports whether it starts no earlier than its predecessor.
func (l *Link) AppendMessage(m Message) bool {
	inOrder := true
	if n := len(l.messages); n > 0 && m.Start < l.messages[n-1].Start {
		inOrder = false
		l.unordered = true
	}
	l.messages = append(l.messages, m)
	return inOrder
}

// Ordered reports whether message starts are non-decreasing.
func (l *Link) Ordered() bool { return !l.unordered }

// Messages returns all messages in arrival order.
func (l *Link) Messages() []Message {
	return append([]Message(nil), l.messages...)
}

// MessagesActiveAt returns messages with Start <= t <= End in stored order.
func (l *Link) MessagesActiveAt(t Timestamp) []Message {
	var res []Message
	for _, m := range l.messages {
		if !l.unordered && m.Start > t {
			break
		}
		if m.Contains(t) {
			res = append(res, m)
		}
	}
	return res
}

// HitTester is the rendering collaborator's geometric test for a link segment.
type HitTester interface {
	NearSegment(begin, end NodeID) bool
}

// HitTesterFunc adapts a function to HitTester.
type HitTesterFunc func(begin, end NodeID) bool

func (f HitTesterFunc) NearSegment(begin, end NodeID) bool { return f(begin, end) }

// IsActiveAt reports a hit when the segment is near and the link carries a message at t.
func (l *Link) IsActiveAt(hit HitTester, t Timestamp) bool {
	if hit == nil || !hit.NearSegment(l.Key.Begin, l.Key.End) {
		return false
	}
	return len(l.MessagesActiveAt(t)) > 0
}

// Activity summarises the messages in flight at a time.
type Activity struct {
	Messages   []Message
	AvgLatency time.Duration
}

// ActivityAt returns the in-flight messages at t and their average latency.
func (l *Link) ActivityAt(t Timestamp) Activity {
	active := l.MessagesActiveAt(t)
	if len(active) == 0 {
		return Activity{}
	}
	var sum time.Duration
	for _, m := range active {
		sum += m.Latency()
	}
	return Activity{Messages: active, AvgLatency: sum / time.Duration(len(active))}
}
