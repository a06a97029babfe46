package clickhouse

import (
	"context"
	"time"
)

// InsertMessages stores link messages.
func (r *Repository) InsertMessages(ctx context.Context, messages []MessageRow) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_messages", len(messages), err, start)
	}()

	if len(messages) == 0 {
		return nil
	}

	const query = `
INSERT INTO simtrace_messages (
	load_id,
	begin_node_id,
	end_node_id,
	block_id,
	start_ts,
	end_ts
) VALUES`

	err = insert(ctx, r.conn, "messages", query, messages, func(m MessageRow) []any {
		return []any{m.LoadID, m.BeginNodeID, m.EndNodeID, m.BlockID, m.Start, m.End}
	})
	return err
}
