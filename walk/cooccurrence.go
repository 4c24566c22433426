package walk

import (
	"context"
	"sort"
)

// pair is a (central, context) co-occurrence key.
type pair struct {
	central int32
	context int32
}

// Cooccurrence runs a batch of walks and reduces them to (central, context,
// count) triples under symmetric windowing of radius window. The three
// returned slices have equal length and are sorted by
// central ascending then context ascending, so identical inputs always
// produce byte-identical output regardless of goroutine scheduling.
func (d *Driver) Cooccurrence(ctx context.Context, starts []int32, numWalksPerStart, length, window int, seed int64, workers int) (central, contextIDs, freq []int32, err error) {
	if window <= 0 {
		return nil, nil, nil, ErrInvalidWindow
	}

	res, err := d.Walks(ctx, starts, numWalksPerStart, length, seed, workers)
	if err != nil {
		return nil, nil, nil, err
	}

	counts := make(map[pair]int32)
	for _, row := range res.Rows {
		for i, c := range row {
			lo := i - window
			if lo < 0 {
				lo = 0
			}
			hi := i + window
			if hi >= len(row) {
				hi = len(row) - 1
			}
			for j := lo; j <= hi; j++ {
				if j == i {
					continue
				}
				counts[pair{central: c, context: row[j]}]++
			}
		}
	}

	keys := make([]pair, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].central != keys[j].central {
			return keys[i].central < keys[j].central
		}
		return keys[i].context < keys[j].context
	})

	central = make([]int32, len(keys))
	contextIDs = make([]int32, len(keys))
	freq = make([]int32, len(keys))
	for i, k := range keys {
		central[i] = k.central
		contextIDs[i] = k.context
		freq[i] = counts[k]
	}
	return central, contextIDs, freq, nil
}
