package transition

// typeFactors computes the per-neighbor type-mixing factor π_τ(x) for every
// neighbor x of v, parallel to g.Neighbors(v), per the heterogeneous-mode
// formula. Returns nil for Homogeneous mode, where every factor is
// implicitly 1.
//
// Resolution of the off-type/on-type mass split:
//
//	S := γ · (number of distinct off-types present among v's neighbors)
//
// When S < 1, the specified per-off-type share π_t = γ/c_t is used as
// given, and the on-type share absorbs the remainder: π_own = (1-S)/c_own.
//
// When S ≥ 1, the literal formula would assign negative or inconsistent
// shares, so the total branch mass is instead split equally across every
// distinct type present among the neighbors (on-type included): each such
// type t receives total mass 1/m, m the number of distinct present types,
// i.e. π_t = (1/m)/c_t per neighbor of that type. This is the interpretation
// pinned by the heterogeneous-star scenario: a hub with one on-type and two
// off-types and γ=1 (so S=2≥1) must split probability 1/3-1/3-1/3 across the
// three types, not assign negative mass to the on-type.
//
// γ=0 collapses S to 0, so every off-type factor is 0 and the on-type factor
// is 1/c_own — the homogeneous distribution restricted to same-type
// neighbors, which is the documented heterogeneous degeneracy at γ=0.
func typeFactors(g graphView, mode Mode, gamma float64, v int32) []float64 {
	if mode == Homogeneous {
		return nil
	}

	nbrs := g.Neighbors(v)
	degree := len(nbrs)
	if degree == 0 {
		return nil
	}

	ownType := g.TypeID(v)
	counts := make(map[int16]int, 4)
	for _, x := range nbrs {
		counts[g.TypeID(x)]++
	}

	offTypesPresent := 0
	for t, c := range counts {
		if t != ownType && c > 0 {
			offTypesPresent++
		}
	}
	s := gamma * float64(offTypesPresent)

	piByType := make(map[int16]float64, len(counts))
	if s >= 1 {
		m := len(counts)
		for t, c := range counts {
			piByType[t] = (1.0 / float64(m)) / float64(c)
		}
	} else {
		for t, c := range counts {
			if t == ownType {
				continue
			}
			piByType[t] = gamma / float64(c)
		}
		if cOwn, ok := counts[ownType]; ok && cOwn > 0 {
			piByType[ownType] = (1 - s) / float64(cOwn)
		}
	}

	factors := make([]float64, degree)
	for i, x := range nbrs {
		factors[i] = piByType[g.TypeID(x)]
	}
	return factors
}

// graphView is the slice of *graph.Graph this package depends on, narrowed
// to ease testing with synthetic fixtures.
type graphView interface {
	N() int32
	Neighbors(n int32) []int32
	NeighborWeights(n int32) []float64
	Degree(n int32) int32
	HasEdge(u, v int32) bool
	EdgeID(u, v int32) (int32, bool)
	TypeID(n int32) int16
}
