// Package store provides the conversion journal interface and SQLite implementation.
package store

import (
	"context"
	"errors"

	"github.com/rcliao/vinculum/internal/model"
)

// ErrNotFound is returned when no live conversion has the requested ID.
var ErrNotFound = errors.New("conversion not found")

// RecordParams holds parameters for recording a conversion.
type RecordParams struct {
	Direction string
	Numeral   string
	Value     int
	Separated bool
	Method    string // to_arabic only
	Valid     *bool  // check only
}

// ListParams holds parameters for listing conversions.
type ListParams struct {
	Direction string
	Limit     int
}

// RmParams holds parameters for deleting a conversion.
type RmParams struct {
	ID   string
	Hard bool
}

// Store defines the conversion journal interface.
type Store interface {
	// Record stores a conversion and the per-magnitude chunks of its value.
	Record(ctx context.Context, p RecordParams) (*model.Conversion, error)

	// Get retrieves a conversion by ID.
	Get(ctx context.Context, id string) (*model.Conversion, error)

	// Chunks returns the chunks of a conversion, most significant first.
	Chunks(ctx context.Context, id string) ([]model.Chunk, error)

	// List lists conversions, newest first.
	List(ctx context.Context, p ListParams) ([]model.Conversion, error)

	// Rm soft-deletes (or hard-deletes) a conversion.
	Rm(ctx context.Context, p RmParams) error

	// Close closes the store.
	Close() error
}
