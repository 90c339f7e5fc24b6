package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/rcliao/vinculum/internal/model"
)

// SearchParams holds parameters for searching conversions.
type SearchParams struct {
	Query string
	Level int // magnitude to match chunks at; negative matches any
	Limit int
}

// SearchResult wraps a conversion with the chunk that matched, if any.
type SearchResult struct {
	model.Conversion
	MatchChunk *model.Chunk `json:"match_chunk,omitempty"`
}

// likeEscaper escapes LIKE wildcards; the vinculum marker is one of them.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search finds conversions whose numeral or chunks contain the query. Matching
// ignores case. With Level set, only chunks at that magnitude are considered.
func (s *SQLiteStore) Search(ctx context.Context, p SearchParams) ([]SearchResult, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	pattern := "%" + likeEscaper.Replace(p.Query) + "%"

	where := []string{"c.deleted_at IS NULL"}
	var args []interface{}
	if p.Level >= 0 {
		where = append(where, `k.level = ? AND k.text LIKE ? ESCAPE '\'`)
		args = append(args, p.Level, pattern)
	} else {
		where = append(where, `(c.numeral LIKE ? ESCAPE '\' OR k.text LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern)
	}

	query := fmt.Sprintf(`
		SELECT %s, k.id, k.seq, k.level, k.text
		FROM conversions c
		LEFT JOIN chunks k ON k.conversion_id = c.id
		WHERE %s
		ORDER BY c.created_at DESC, c.id DESC, k.seq`, conversionColumns, strings.Join(where, " AND "))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []SearchResult
	seen := map[string]int{}
	for rows.Next() {
		var chunkID, chunkText sql.NullString
		var chunkSeq, chunkLevel sql.NullInt64
		c, err := scanConversion(rows, &chunkID, &chunkSeq, &chunkLevel, &chunkText)
		if err != nil {
			return nil, err
		}

		var match *model.Chunk
		if chunkID.Valid && containsFold(chunkText.String, p.Query) {
			match = &model.Chunk{
				ID:           chunkID.String,
				ConversionID: c.ID,
				Seq:          int(chunkSeq.Int64),
				Level:        int(chunkLevel.Int64),
				Text:         chunkText.String,
			}
		}

		// Rows for one conversion are adjacent; keep the first matching chunk.
		if i, ok := seen[c.ID]; ok {
			if results[i].MatchChunk == nil {
				results[i].MatchChunk = match
			}
			continue
		}
		seen[c.ID] = len(results)
		results = append(results, SearchResult{Conversion: c, MatchChunk: match})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToUpper(s), strings.ToUpper(sub))
}
