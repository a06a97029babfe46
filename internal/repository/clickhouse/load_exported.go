package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// LoadExported reports whether the load row exists. The exporter writes it last,
// so its presence means every other table of the load is complete.
func (r *Repository) LoadExported(ctx context.Context, loadID uuid.UUID) (bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("load_exported", 0, err, start)
	}()

	const query = `
SELECT count() AS cnt
FROM simtrace_loads
WHERE load_id = ?`

	rows, err := r.conn.Query(ctx, query, loadID)
	if err != nil {
		return false, fmt.Errorf("query load exported: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		err = fmt.Errorf("load count not found")
		return false, err
	}

	var cnt uint64
	if err = rows.Scan(&cnt); err != nil {
		return false, fmt.Errorf("scan load count: %w", err)
	}
	if err = rows.Err(); err != nil {
		return false, fmt.Errorf("iterate load count: %w", err)
	}

	return cnt > 0, nil
}
