package domain

import "math"

// UnknownCause is the category assigned to records with an empty CAUSE
// column so they still appear in frequency tables and per-cause plots.
const UnknownCause = "Unknown"

// FireRecord is a single NFDB ignition point.
type FireRecord struct {
	Latitude  float64
	Longitude float64
	Year      int
	SizeHA    float64 // NaN when the source column is missing or unparseable
	Cause     string
}

// HasSize reports whether the record carries a usable burned-area value.
func (r FireRecord) HasSize() bool {
	return !math.IsNaN(r.SizeHA)
}

// Table is an ordered collection of ignition records. Duplicates are
// permitted; no identity is enforced.
type Table []FireRecord
