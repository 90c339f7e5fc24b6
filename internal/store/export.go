package store

import (
	"context"
	"strings"
	"time"

	"github.com/rcliao/vinculum/internal/model"
)

// ExportAll returns all non-deleted conversions, oldest first, optionally
// filtered by direction.
func (s *SQLiteStore) ExportAll(ctx context.Context, direction string) ([]model.Conversion, error) {
	where := []string{"c.deleted_at IS NULL"}
	args := []interface{}{}

	if direction != "" {
		where = append(where, "c.direction = ?")
		args = append(args, direction)
	}

	query := `SELECT ` + conversionColumns + `
	          FROM conversions c WHERE ` + strings.Join(where, " AND ") + ` ORDER BY c.created_at, c.id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var conversions []model.Conversion
	for rows.Next() {
		c, err := scanConversion(rows)
		if err != nil {
			return nil, err
		}
		conversions = append(conversions, c)
	}
	return conversions, rows.Err()
}

// Import stores conversions from an export, keeping their IDs and timestamps.
// Conversions whose ID already exists are skipped. Chunks are rebuilt from
// the values.
func (s *SQLiteStore) Import(ctx context.Context, conversions []model.Conversion) (int, error) {
	imported := 0
	for _, c := range conversions {
		if c.ID != "" {
			var n int
			if err := s.db.QueryRowContext(ctx,
				`SELECT COUNT(*) FROM conversions WHERE id = ?`, c.ID).Scan(&n); err != nil {
				return imported, err
			}
			if n > 0 {
				continue
			}
		}

		createdAt := c.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now().UTC()
		}
		id := c.ID
		if id == "" {
			id = s.newID(createdAt)
		}

		_, err := s.insert(ctx, id, createdAt, RecordParams{
			Direction: c.Direction,
			Numeral:   c.Numeral,
			Value:     c.Value,
			Separated: c.Separated,
			Method:    c.Method,
			Valid:     c.Valid,
		})
		if err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}
