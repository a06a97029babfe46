package clickhouse

import (
	"context"
	"time"
)

// InsertNodes stores node placements.
func (r *Repository) InsertNodes(ctx context.Context, nodes []NodeRow) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_nodes", len(nodes), err, start)
	}()

	if len(nodes) == 0 {
		return nil
	}

	const query = `
INSERT INTO simtrace_nodes (
	load_id,
	node_id,
	region_id,
	latitude,
	longitude,
	created_at
) VALUES`

	err = insert(ctx, r.conn, "nodes", query, nodes, func(n NodeRow) []any {
		return []any{n.LoadID, n.NodeID, n.RegionID, n.Latitude, n.Longitude, n.CreatedAt}
	})
	return err
}
