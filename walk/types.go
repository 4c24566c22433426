package walk

// Result holds the output of a batch of walks. When IsRagged is false every
// row has exactly Length entries and Rows can be treated as a dense
// rectangular (NumWalks, Length) tensor. When IsRagged is true, a walk that
// hit a trap before reaching Length stops early and its row is shorter.
type Result struct {
	Rows     [][]int32
	Length   int
	IsRagged bool
}

// graphView is the slice of *graph.Graph the walk driver depends on.
type graphView interface {
	N() int32
	Neighbors(n int32) []int32
	EdgeID(u, v int32) (int32, bool)
	HasTraps() bool
}
