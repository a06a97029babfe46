package clickhouse

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// InsertTimestamps stores the scrub axis of a load.
func (r *Repository) InsertTimestamps(ctx context.Context, loadID uuid.UUID, timestamps []int64) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_timestamps", len(timestamps), err, start)
	}()

	if len(timestamps) == 0 {
		return nil
	}

	const query = `
INSERT INTO simtrace_timestamps (
	load_id,
	timestamp
) VALUES`

	err = insert(ctx, r.conn, "timestamps", query, timestamps, func(ts int64) []any {
		return []any{loadID, ts}
	})
	return err
}
