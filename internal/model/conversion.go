// Package model defines the conversion journal data types.
package model

import "time"

// Directions of a recorded conversion.
const (
	DirectionToRoman  = "to_roman"
	DirectionToArabic = "to_arabic"
	DirectionCheck    = "check"
)

// Methods used to read a numeral.
const (
	MethodMap   = "map"
	MethodBasic = "basic"
)

// Conversion represents one recorded conversion.
type Conversion struct {
	ID         string     `json:"id"`
	Direction  string     `json:"direction"`
	Numeral    string     `json:"numeral"`
	Value      int        `json:"value"`
	Separated  bool       `json:"separated,omitempty"`
	Method     string     `json:"method,omitempty"`
	Valid      *bool      `json:"valid,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
	ChunkCount int        `json:"chunks,omitempty"`
}

// Chunk is the numeral of a conversion's value at one magnitude level.
type Chunk struct {
	ID           string `json:"id"`
	ConversionID string `json:"conversion_id"`
	Seq          int    `json:"seq"`
	Level        int    `json:"level"`
	Text         string `json:"text"`
}

// ValidDirections are the allowed conversion directions.
var ValidDirections = map[string]bool{
	DirectionToRoman:  true,
	DirectionToArabic: true,
	DirectionCheck:    true,
}

// ValidMethods are the allowed read methods.
var ValidMethods = map[string]bool{
	MethodMap:   true,
	MethodBasic: true,
}
