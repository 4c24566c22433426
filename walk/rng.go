package walk

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand. seed==0 uses
// defaultRNGSeed; any other value is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed via a SplitMix64-style avalanche finalizer (Vigna 2014), giving
// well-distributed, uncorrelated substreams from a single base seed.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// deriveWorkerRNG returns the per-worker RNG stream for (seed, workerID,
// epoch), per the driver's reproducibility contract: identical inputs
// always yield the identical stream, independent of goroutine scheduling.
func deriveWorkerRNG(seed int64, workerID, epoch int) *rand.Rand {
	stream := uint64(uint32(workerID))<<32 | uint64(uint32(epoch))
	return rand.New(rand.NewSource(deriveSeed(seed, stream)))
}

// epochSeed returns the deterministic seed used to shuffle the start-node
// order for a given epoch (independent of the per-worker walk streams).
func epochSeed(seed int64, epoch int) int64 {
	return deriveSeed(seed, uint64(uint32(epoch))|1<<40)
}

// shuffleIntsInPlace performs an in-place Fisher-Yates shuffle of a using rng.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	n := len(a)
	if n <= 1 {
		return
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// permRange returns a deterministic permutation of 0..n-1.
func permRange(n int, rng *rand.Rand) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	shuffleIntsInPlace(p, rng)
	return p
}
