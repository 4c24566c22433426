package alias_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
	"pgregory.net/rapid"

	"github.com/katalvlaran/hn2v/alias"
)

func TestSetup_EmptyDistributionRejected(t *testing.T) {
	_, err := alias.Setup(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, alias.ErrEmptyDistribution))
}

func TestSetup_NegativeProbabilityRejected(t *testing.T) {
	_, err := alias.Setup([]float64{0.5, -0.1, 0.6})
	require.Error(t, err)
	assert.True(t, errors.Is(err, alias.ErrNegativeProbability))
}

func TestSetup_RejectsUnnormalizedMass(t *testing.T) {
	_, err := alias.Setup([]float64{0.5, 0.6})
	require.Error(t, err)
}

func TestNewFromWeights_ZeroMassRejected(t *testing.T) {
	_, err := alias.NewFromWeights([]float64{0, 0, 0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, alias.ErrZeroMass))
}

// TestSetup_AliasSanity covers scenario S3: for probs=[0.1,0.3,0.6], every
// slot's acceptance probability must be at least 0.3-epsilon, since no
// single outcome can require "keeping" probability mass above the minimum
// value any outcome could be assigned in a 3-way split of a 0.6-heavy mass.
func TestSetup_AliasSanity(t *testing.T) {
	tbl, err := alias.Setup([]float64{0.1, 0.3, 0.6})
	require.NoError(t, err)
	require.Equal(t, 3, tbl.Len())

	const eps = 1e-9
	for i, q := range tbl.Q {
		assert.GreaterOrEqual(t, q, 0.3-eps, "slot %d acceptance %g below floor", i, q)
		assert.LessOrEqual(t, q, 1.0+eps, "slot %d acceptance %g above 1", i, q)
	}
}

// TestSetup_EmpiricalConvergence draws a large sample from a known
// distribution and checks the empirical frequencies land within 0.01 of the
// source probabilities.
func TestSetup_EmpiricalConvergence(t *testing.T) {
	probs := []float64{0.1, 0.3, 0.6}
	tbl, err := alias.Setup(probs)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	const draws = 100000
	counts := make([]int, len(probs))
	for i := 0; i < draws; i++ {
		counts[tbl.Draw(rng)]++
	}

	for i, p := range probs {
		empirical := float64(counts[i]) / float64(draws)
		assert.InDelta(t, p, empirical, 0.01, "outcome %d: want ~%g, got %g", i, p, empirical)
	}
}

// TestSetup_ChiSquaredGoodnessOfFit draws a large sample and checks its
// observed-vs-expected counts with Pearson's chi-squared statistic rather
// than a flat per-outcome tolerance, failing only if the fit is implausible
// at a conservative significance level.
func TestSetup_ChiSquaredGoodnessOfFit(t *testing.T) {
	probs := []float64{0.1, 0.3, 0.6}
	tbl, err := alias.Setup(probs)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	const draws = 100000
	obs := make([]float64, len(probs))
	exp := make([]float64, len(probs))
	for i, p := range probs {
		exp[i] = p * draws
	}
	for i := 0; i < draws; i++ {
		obs[tbl.Draw(rng)]++
	}

	chi2 := stat.ChiSquare(obs, exp)
	df := float64(len(probs) - 1)
	pValue := 1 - distuv.ChiSquared{K: df}.CDF(chi2)

	assert.Greater(t, pValue, 0.01, "chi-squared=%g (df=%g) rejects the fit at p=%g", chi2, df, pValue)
}

// TestProperty_TableBoundsHold checks, over random weight vectors, that
// every Q is in [0,1] and every J is a valid slot index.
func TestProperty_TableBoundsHold(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		k := rapid.IntRange(1, 50).Draw(rt, "k")
		weights := make([]float64, k)
		for i := range weights {
			weights[i] = rapid.Float64Range(0, 1000).Draw(rt, "w")
		}

		tbl, err := alias.NewFromWeights(weights)
		if err != nil {
			// Only acceptable failure is all-zero mass.
			if !errors.Is(err, alias.ErrZeroMass) {
				rt.Fatalf("NewFromWeights: %v", err)
			}
			return
		}

		for i, q := range tbl.Q {
			if q < 0 || q > 1 {
				rt.Fatalf("Q[%d]=%g out of [0,1]", i, q)
			}
			if tbl.J[i] < 0 || int(tbl.J[i]) >= k {
				rt.Fatalf("J[%d]=%d out of range [0,%d)", i, tbl.J[i], k)
			}
		}
	})
}
