package clickhouse

import (
	"context"
	"time"
)

// InsertReceipts stores node chain entries.
func (r *Repository) InsertReceipts(ctx context.Context, receipts []ReceiptRow) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_receipts", len(receipts), err, start)
	}()

	if len(receipts) == 0 {
		return nil
	}

	const query = `
INSERT INTO simtrace_receipts (
	load_id,
	node_id,
	position,
	block_id,
	from_node_id,
	sent,
	received
) VALUES`

	err = insert(ctx, r.conn, "receipts", query, receipts, func(rc ReceiptRow) []any {
		return []any{rc.LoadID, rc.NodeID, rc.Position, rc.BlockID, rc.FromNodeID, rc.Sent, rc.Received}
	})
	return err
}
