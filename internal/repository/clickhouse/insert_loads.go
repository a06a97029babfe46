package clickhouse

import (
	"context"
	"time"
)

// InsertLoads stores load summaries.
func (r *Repository) InsertLoads(ctx context.Context, loads []LoadRow) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_loads", len(loads), err, start)
	}()

	if len(loads) == 0 {
		return nil
	}

	const query = `
INSERT INTO simtrace_loads (
	load_id,
	digest,
	static_path,
	dynamic_path,
	success,
	records,
	timestamps,
	diagnostics,
	dropped_messages,
	loaded_at
) VALUES`

	err = insert(ctx, r.conn, "loads", query, loads, func(l LoadRow) []any {
		return []any{
			l.LoadID,
			l.Digest,
			l.StaticPath,
			l.DynamicPath,
			l.Success,
			l.Records,
			l.Timestamps,
			l.Diagnostics,
			l.DroppedMessages,
			l.LoadedAt,
		}
	})
	return err
}
