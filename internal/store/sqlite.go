package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/vinculum/internal/chunker"
	"github.com/rcliao/vinculum/internal/model"
	"github.com/rcliao/vinculum/internal/numeral"
)

// timeLayout is fixed width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

var _ Store = (*SQLiteStore)(nil)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID(t time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS conversions (
		id          TEXT PRIMARY KEY,
		direction   TEXT NOT NULL,
		numeral     TEXT NOT NULL,
		value       INTEGER NOT NULL,
		separated   INTEGER NOT NULL DEFAULT 0,
		method      TEXT,
		valid       INTEGER,
		created_at  TEXT NOT NULL,
		deleted_at  TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_conversions_direction ON conversions(direction);
	CREATE INDEX IF NOT EXISTS idx_conversions_value ON conversions(value);
	CREATE INDEX IF NOT EXISTS idx_conversions_created ON conversions(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_conversions_deleted ON conversions(deleted_at);

	CREATE TABLE IF NOT EXISTS chunks (
		id             TEXT PRIMARY KEY,
		conversion_id  TEXT NOT NULL REFERENCES conversions(id),
		seq            INTEGER NOT NULL,
		level          INTEGER NOT NULL,
		text           TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_chunks_conversion ON chunks(conversion_id);
	CREATE INDEX IF NOT EXISTS idx_chunks_level ON chunks(level, text);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record stores a conversion. Values inside the writable range also get one
// chunk per non-zero digit, taken from the separated numeral of the value.
func (s *SQLiteStore) Record(ctx context.Context, p RecordParams) (*model.Conversion, error) {
	now := time.Now().UTC()
	return s.insert(ctx, s.newID(now), now, p)
}

func (s *SQLiteStore) insert(ctx context.Context, id string, createdAt time.Time, p RecordParams) (*model.Conversion, error) {
	if !model.ValidDirections[p.Direction] {
		return nil, fmt.Errorf("invalid direction %q (valid: to_roman, to_arabic, check)", p.Direction)
	}
	if p.Method != "" && !model.ValidMethods[p.Method] {
		return nil, fmt.Errorf("invalid method %q (valid: map, basic)", p.Method)
	}

	var chunks []chunker.ChunkResult
	if sep, err := numeral.ToRoman(p.Value, true); err == nil {
		chunks = chunker.NonEmpty(chunker.Chunk(sep, chunker.DefaultOptions()))
	}

	var methodPtr *string
	if p.Method != "" {
		methodPtr = &p.Method
	}

	var validPtr *int
	if p.Valid != nil {
		v := boolToInt(*p.Valid)
		validPtr = &v
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO conversions (id, direction, numeral, value, separated, method, valid, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, p.Direction, p.Numeral, p.Value, boolToInt(p.Separated), methodPtr, validPtr,
		createdAt.UTC().Format(timeLayout))
	if err != nil {
		return nil, fmt.Errorf("insert conversion: %w", err)
	}

	for i, c := range chunks {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO chunks (id, conversion_id, seq, level, text)
			 VALUES (?, ?, ?, ?, ?)`,
			s.newID(createdAt), id, i, c.Level, c.Text)
		if err != nil {
			return nil, fmt.Errorf("insert chunk: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &model.Conversion{
		ID:         id,
		Direction:  p.Direction,
		Numeral:    p.Numeral,
		Value:      p.Value,
		Separated:  p.Separated,
		Method:     p.Method,
		Valid:      p.Valid,
		CreatedAt:  createdAt,
		ChunkCount: len(chunks),
	}, nil
}

const conversionColumns = `c.id, c.direction, c.numeral, c.value, c.separated, c.method, c.valid,
	c.created_at, c.deleted_at,
	(SELECT COUNT(*) FROM chunks k WHERE k.conversion_id = c.id)`

func (s *SQLiteStore) Get(ctx context.Context, id string) (*model.Conversion, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+conversionColumns+`
		 FROM conversions c WHERE c.id = ? AND c.deleted_at IS NULL`, id)
	c, err := scanConversion(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *SQLiteStore) Chunks(ctx context.Context, id string) ([]model.Chunk, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, conversion_id, seq, level, text FROM chunks
		 WHERE conversion_id = ? ORDER BY seq`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chunks []model.Chunk
	for rows.Next() {
		var c model.Chunk
		if err := rows.Scan(&c.ID, &c.ConversionID, &c.Seq, &c.Level, &c.Text); err != nil {
			return nil, err
		}
		chunks = append(chunks, c)
	}
	return chunks, rows.Err()
}

func (s *SQLiteStore) List(ctx context.Context, p ListParams) ([]model.Conversion, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	where := []string{"c.deleted_at IS NULL"}
	var args []interface{}
	if p.Direction != "" {
		where = append(where, "c.direction = ?")
		args = append(args, p.Direction)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM conversions c
		WHERE %s
		ORDER BY c.created_at DESC, c.id DESC
		LIMIT ?`, conversionColumns, strings.Join(where, " AND "))
	args = append(args, limit)

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

func (s *SQLiteStore) Rm(ctx context.Context, p RmParams) error {
	if p.Hard {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()

		if _, err := tx.ExecContext(ctx, `DELETE FROM chunks WHERE conversion_id = ?`, p.ID); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM conversions WHERE id = ?`, p.ID)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("%w: %s", ErrNotFound, p.ID)
		}
		return tx.Commit()
	}

	now := time.Now().UTC().Format(timeLayout)
	res, err := s.db.ExecContext(ctx,
		`UPDATE conversions SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`, now, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, p.ID)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanConversion reads conversionColumns followed by any extra destinations.
func scanConversion(row scanner, extra ...interface{}) (model.Conversion, error) {
	var c model.Conversion
	var separated int
	var method, deletedAt sql.NullString
	var valid sql.NullInt64
	var createdAt string

	dest := []interface{}{
		&c.ID, &c.Direction, &c.Numeral, &c.Value, &separated, &method, &valid,
		&createdAt, &deletedAt, &c.ChunkCount,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return c, err
	}

	c.Separated = separated != 0
	c.CreatedAt, _ = time.Parse(timeLayout, createdAt)
	if method.Valid {
		c.Method = method.String
	}
	if valid.Valid {
		v := valid.Int64 != 0
		c.Valid = &v
	}
	if deletedAt.Valid {
		t, _ := time.Parse(timeLayout, deletedAt.String)
		c.DeletedAt = &t
	}
	return c, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
