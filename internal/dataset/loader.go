// Package dataset loads NFDB ignition point files into a domain table.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/nfdb-fire-analysis/internal/domain"
)

// ErrMissingColumn indicates a required column is absent or misnamed in
// the input file header.
var ErrMissingColumn = errors.New("missing required column")

// Required NFDB column names. Only these five are read; every other
// column in the file is ignored.
const (
	colLatitude  = "LATITUDE"
	colLongitude = "LONGITUDE"
	colYear      = "YEAR"
	colSizeHA    = "SIZE_HA"
	colCause     = "CAUSE"
)

// Result is the outcome of loading one ignition point file.
type Result struct {
	Table domain.Table

	// RowsSkipped counts rows dropped because latitude, longitude, or
	// year could not be parsed. Rows with a bad SIZE_HA are kept with a
	// NaN size instead of being dropped.
	RowsSkipped int

	LoadedAt time.Time
}

// Load reads the five required columns from the comma-delimited file at
// path. It fails when the file is unreadable or a required column is
// absent from the header; malformed data rows are skipped and counted.
func Load(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only descriptor

	res, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return res, nil
}

func parse(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // NFDB rows occasionally vary in width

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	res := &Result{LoadedAt: clock.Now()}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			res.RowsSkipped++
			continue
		}

		rec, ok := parseRow(row, cols)
		if !ok {
			res.RowsSkipped++
			continue
		}
		res.Table = append(res.Table, rec)
	}

	return res, nil
}

// columnIndex maps each required column name to its position in the header.
type columnIndex struct {
	latitude  int
	longitude int
	year      int
	sizeHA    int
	cause     int
}

func mapColumns(header []string) (columnIndex, error) {
	byName := make(map[string]int, len(header))
	for i, name := range header {
		byName[strings.TrimSpace(name)] = i
	}

	cols := columnIndex{}
	for _, c := range []struct {
		name string
		dst  *int
	}{
		{colLatitude, &cols.latitude},
		{colLongitude, &cols.longitude},
		{colYear, &cols.year},
		{colSizeHA, &cols.sizeHA},
		{colCause, &cols.cause},
	} {
		i, ok := byName[c.name]
		if !ok {
			return columnIndex{}, fmt.Errorf("%w: %s", ErrMissingColumn, c.name)
		}
		*c.dst = i
	}
	return cols, nil
}

// parseRow converts one CSV row into a FireRecord. Rows with unusable
// coordinates or year are rejected; a bad SIZE_HA degrades to NaN and an
// empty CAUSE becomes the explicit Unknown category.
func parseRow(row []string, cols columnIndex) (domain.FireRecord, bool) {
	lat, ok := fieldFloat(row, cols.latitude)
	if !ok {
		return domain.FireRecord{}, false
	}
	lon, ok := fieldFloat(row, cols.longitude)
	if !ok {
		return domain.FireRecord{}, false
	}
	year, ok := fieldInt(row, cols.year)
	if !ok {
		return domain.FireRecord{}, false
	}

	size := math.NaN()
	if v, ok := fieldFloat(row, cols.sizeHA); ok {
		size = v
	}

	cause := domain.UnknownCause
	if cols.cause < len(row) {
		if c := strings.TrimSpace(row[cols.cause]); c != "" {
			cause = c
		}
	}

	return domain.FireRecord{
		Latitude:  lat,
		Longitude: lon,
		Year:      year,
		SizeHA:    size,
		Cause:     cause,
	}, true
}

func fieldFloat(row []string, i int) (float64, bool) {
	if i >= len(row) {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func fieldInt(row []string, i int) (int, bool) {
	if i >= len(row) {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimSpace(row[i]))
	if err != nil {
		return 0, false
	}
	return v, true
}
