package domain

import (
	"math"
	"sort"
)

// YearCount is the number of fires reported in one year.
type YearCount struct {
	Year  int
	Count int
}

// CauseCount is the number of fires attributed to one cause.
type CauseCount struct {
	Cause string
	Count int
}

// YearCauseMatrix is the dense (year, cause) count pivot: one count per
// cause per year, with missing combinations filled with zero. Counts is
// keyed by cause; each slice is aligned with Years.
type YearCauseMatrix struct {
	Years  []int
	Causes []string
	Counts map[string][]int
}

// CountByYear groups the table by year and counts per group, sorted by
// year ascending.
func CountByYear(t Table) []YearCount {
	byYear := make(map[int]int)
	for _, r := range t {
		byYear[r.Year]++
	}

	counts := make([]YearCount, 0, len(byYear))
	for year, n := range byYear {
		counts = append(counts, YearCount{Year: year, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Year < counts[j].Year })
	return counts
}

// CountByCause groups the table by cause and counts per group, sorted by
// descending count. Ties are broken by first appearance in the table.
func CountByCause(t Table) []CauseCount {
	byCause := make(map[string]int)
	order := make([]string, 0)
	for _, r := range t {
		if _, seen := byCause[r.Cause]; !seen {
			order = append(order, r.Cause)
		}
		byCause[r.Cause]++
	}

	counts := make([]CauseCount, 0, len(order))
	for _, cause := range order {
		counts = append(counts, CauseCount{Cause: cause, Count: byCause[cause]})
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	return counts
}

// Causes returns the distinct cause values present in the table, sorted
// alphabetically.
func Causes(t Table) []string {
	seen := make(map[string]bool)
	var causes []string
	for _, r := range t {
		if !seen[r.Cause] {
			seen[r.Cause] = true
			causes = append(causes, r.Cause)
		}
	}
	sort.Strings(causes)
	return causes
}

// FilterByCause returns the records attributed to the given cause, in
// table order.
func FilterByCause(t Table, cause string) Table {
	var out Table
	for _, r := range t {
		if r.Cause == cause {
			out = append(out, r)
		}
	}
	return out
}

// PivotYearCause groups by (year, cause), counts, and reshapes so each
// cause becomes one series across the distinct years observed in the
// table. Absent (year, cause) combinations yield zero, not absence.
func PivotYearCause(t Table) YearCauseMatrix {
	type key struct {
		year  int
		cause string
	}
	cells := make(map[key]int)
	for _, r := range t {
		cells[key{r.Year, r.Cause}]++
	}

	years := make([]int, 0)
	seenYears := make(map[int]bool)
	for _, r := range t {
		if !seenYears[r.Year] {
			seenYears[r.Year] = true
			years = append(years, r.Year)
		}
	}
	sort.Ints(years)

	causes := Causes(t)
	counts := make(map[string][]int, len(causes))
	for _, cause := range causes {
		row := make([]int, len(years))
		for i, year := range years {
			row[i] = cells[key{year, cause}]
		}
		counts[cause] = row
	}

	return YearCauseMatrix{Years: years, Causes: causes, Counts: counts}
}

// MeanSize returns the arithmetic mean of the burned area across records
// with a usable SIZE_HA. Returns NaN when no such record exists.
func MeanSize(t Table) float64 {
	var sum float64
	var n int
	for _, r := range t {
		if r.HasSize() {
			sum += r.SizeHA
			n++
		}
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// MedianSize returns the median burned area across records with a usable
// SIZE_HA. Returns NaN when no such record exists. Even-length inputs
// average the two middle values.
func MedianSize(t Table) float64 {
	sizes := make([]float64, 0, len(t))
	for _, r := range t {
		if r.HasSize() {
			sizes = append(sizes, r.SizeHA)
		}
	}
	if len(sizes) == 0 {
		return math.NaN()
	}

	sort.Float64s(sizes)
	mid := len(sizes) / 2
	if len(sizes)%2 == 1 {
		return sizes[mid]
	}
	return (sizes[mid-1] + sizes[mid]) / 2
}
