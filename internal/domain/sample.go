package domain

import "math/rand"

// DefaultSeed is the fixed seed used for plot sampling so repeated runs
// over the same input select the same subset.
const DefaultSeed = 42

// Sample draws up to n records without replacement using an explicit
// seeded PRNG. When n meets or exceeds the table size the whole table is
// returned as a copy, preserving order. The same (table, n, seed) always
// yields the same subset.
func Sample(t Table, n int, seed int64) Table {
	if n >= len(t) {
		out := make(Table, len(t))
		copy(out, t)
		return out
	}
	if n <= 0 {
		return Table{}
	}

	// Partial Fisher-Yates over an index slice: only the first n
	// positions need shuffling.
	idx := make([]int, len(t))
	for i := range idx {
		idx[i] = i
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	out := make(Table, n)
	for i := 0; i < n; i++ {
		out[i] = t[idx[i]]
	}
	return out
}
