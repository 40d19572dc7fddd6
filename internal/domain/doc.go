// Package domain models Canadian National Fire Database (NFDB) ignition
// point data and the aggregations computed over it.
//
// # Data Source
//
// Ignition points come from the NFDB point dataset published by the
// Canadian Wildland Fire Information System (CWFIS), distributed as a
// comma-delimited text file (e.g. NFDB_point_20240613.txt). Each row is
// one reported fire with its ignition coordinates, year, final burned
// area, and cause. The file carries many agency-specific columns; only
// five are read here: LATITUDE, LONGITUDE, YEAR, SIZE_HA, CAUSE.
//
// # NFDB Conventions
//
// Cause codes:
//
//	"H"    human-caused
//	"H-PB" prescribed burn
//	"L"    lightning
//	"Re"   reburn
//	"U"    undetermined
//
//	The loader does not validate cause values; whatever label appears in
//	the file becomes its own category. Empty causes are mapped to
//	"Unknown" so they remain visible in frequency tables.
//
// Burned area:
//
//	SIZE_HA is the final fire size in hectares. Missing or unparseable
//	values are carried as NaN and excluded from mean/median statistics,
//	matching the skip-missing behavior of common dataframe tooling.
//
// # Immutability
//
// A [Table] is loaded once and never mutated in place. Every aggregation
// and sampling operation in this package is a pure read that returns
// fresh slices, so the five plot generators can consume the same table
// in any order.
package domain
