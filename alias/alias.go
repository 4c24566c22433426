package alias

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// massTolerance bounds how far Setup will accept Σprobs from 1.0.
const massTolerance = 1e-6

// Table is a Vose alias table: J holds alias indices, Q holds per-slot
// acceptance probabilities. Both have the same length k, the number of
// outcomes in the source distribution.
type Table struct {
	J []int32
	Q []float64
}

// Len returns the number of outcomes (k) the table was built over.
func (t Table) Len() int { return len(t.Q) }

// Setup builds a Table from an already-normalized distribution: probs must
// be non-negative and sum to 1 within massTolerance.
//
// Complexity: O(k).
func Setup(probs []float64) (Table, error) {
	k := len(probs)
	if k == 0 {
		return Table{}, ErrEmptyDistribution
	}

	sum := floats.Sum(probs)
	if sum < 1-massTolerance || sum > 1+massTolerance {
		return Table{}, fmt.Errorf("alias: probs sum to %g, want 1±%g", sum, massTolerance)
	}

	return buildVose(probs, k)
}

// NewFromWeights normalizes non-negative, possibly unnormalized weights and
// builds a Table in one step — the convenience path package transition uses
// after computing unnormalized transition weights. Returns ErrZeroMass if
// every weight is zero, so callers can mark the node a trap rather than
// propagate a fatal error.
func NewFromWeights(weights []float64) (Table, error) {
	k := len(weights)
	if k == 0 {
		return Table{}, ErrEmptyDistribution
	}

	sum := 0.0
	for _, w := range weights {
		if w < 0 {
			return Table{}, ErrNegativeProbability
		}
		sum += w
	}
	if sum == 0 {
		return Table{}, ErrZeroMass
	}

	probs := make([]float64, k)
	copy(probs, weights)
	floats.Scale(1/sum, probs)

	return buildVose(probs, k)
}

// buildVose runs the classic two-stack construction: indices scaled below 1
// go on "smaller", at-or-above 1 go on "larger"; each merge step transfers
// probability mass from a larger bucket into a smaller one until one stack
// drains. Terminates in at most k-1 merge steps (none when every scaled
// entry is already exactly 1).
func buildVose(probs []float64, k int) (Table, error) {
	q := make([]float64, k)
	j := make([]int32, k)

	smaller := make([]int32, 0, k)
	larger := make([]int32, 0, k)

	for i, p := range probs {
		if p < 0 {
			return Table{}, ErrNegativeProbability
		}
		q[i] = float64(k) * p
		if q[i] < 1.0 {
			smaller = append(smaller, int32(i))
		} else {
			larger = append(larger, int32(i))
		}
	}

	for len(smaller) > 0 && len(larger) > 0 {
		small := smaller[len(smaller)-1]
		smaller = smaller[:len(smaller)-1]
		large := larger[len(larger)-1]
		larger = larger[:len(larger)-1]

		j[small] = large
		q[large] = q[large] + q[small] - 1.0
		if q[large] < 1.0 {
			smaller = append(smaller, large)
		} else {
			larger = append(larger, large)
		}
	}

	// Any indices left on either stack are rounding-error remainders; cap at
	// 1.0 so Draw never reads past the end of its own slot.
	for _, i := range larger {
		q[i] = 1.0
	}
	for _, i := range smaller {
		q[i] = 1.0
	}

	return Table{J: j, Q: q}, nil
}

// Draw samples one outcome in O(1): draws i uniformly in [0,k) and a second
// uniform u2, returning i if u2 < Q[i] else J[i].
func (t Table) Draw(rng *rand.Rand) int {
	k := len(t.Q)
	i := int(float64(k) * rng.Float64())
	if i >= k {
		i = k - 1 // guard the vanishingly rare rng.Float64() == 1.0 edge
	}
	if rng.Float64() < t.Q[i] {
		return i
	}
	return int(t.J[i])
}
