package store

import (
	"context"
	"fmt"
	"os"
)

// Stats holds journal statistics.
type Stats struct {
	DBPath            string           `json:"db_path"`
	DBSizeBytes       int64            `json:"db_size_bytes"`
	TotalConversions  int              `json:"total_conversions"`
	ActiveConversions int              `json:"active_conversions"`
	TotalChunks       int              `json:"total_chunks"`
	Directions        []DirectionStats `json:"directions"`
	VinculumNumerals  int              `json:"vinculum_numerals"`
	LargestValue      int              `json:"largest_value"`
}

// DirectionStats holds per-direction counts.
type DirectionStats struct {
	Direction string `json:"direction"`
	Count     int    `json:"count"`
	Values    int    `json:"values"`
}

// Stats returns journal statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	// DB file size
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM conversions`, &st.TotalConversions},
		{`SELECT COUNT(*) FROM conversions WHERE deleted_at IS NULL`, &st.ActiveConversions},
		{`SELECT COUNT(*) FROM chunks`, &st.TotalChunks},
		{`SELECT COUNT(*) FROM conversions WHERE deleted_at IS NULL AND instr(numeral, '_') > 0`, &st.VinculumNumerals},
		{`SELECT COALESCE(MAX(value), 0) FROM conversions WHERE deleted_at IS NULL`, &st.LargestValue},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("stats: %w", err)
		}
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT direction, COUNT(*) as cnt, COUNT(DISTINCT value) as vals
		FROM conversions WHERE deleted_at IS NULL
		GROUP BY direction ORDER BY cnt DESC`)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var d DirectionStats
		if err := rows.Scan(&d.Direction, &d.Count, &d.Values); err != nil {
			return nil, fmt.Errorf("stats: %w", err)
		}
		st.Directions = append(st.Directions, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	return st, nil
}
