package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hn2v/alias"
	"github.com/katalvlaran/hn2v/cache"
	"github.com/katalvlaran/hn2v/transition"
)

func sampleTables(t *testing.T) *transition.Tables {
	t.Helper()
	tbl, err := alias.NewFromWeights([]float64{1, 2, 3})
	require.NoError(t, err)
	return &transition.Tables{
		Mode:   transition.Homogeneous,
		Params: transition.Params{P: 1, Q: 1},
		Node:   []alias.Table{tbl},
		Edge:   []alias.Table{tbl},
		Trap:   []bool{false},
	}
}

func TestStore_PutThenGetRoundTrips(t *testing.T) {
	s, err := cache.Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	key := cache.Key("deadbeef", transition.Homogeneous, transition.Params{P: 1, Q: 1})
	want := sampleTables(t)
	require.NoError(t, s.Put(key, want))

	got, err := s.Get(key)
	require.NoError(t, err)
	assert.Equal(t, want.Mode, got.Mode)
	assert.Equal(t, want.Params, got.Params)
	assert.Equal(t, want.Trap, got.Trap)
	assert.Equal(t, want.Node[0].J, got.Node[0].J)
	assert.Equal(t, want.Node[0].Q, got.Node[0].Q)
}

func TestStore_GetMissReturnsErrNotFound(t *testing.T) {
	s, err := cache.Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Get(cache.Key("nope", transition.Homogeneous, transition.Params{P: 1, Q: 1}))
	require.ErrorIs(t, err, cache.ErrNotFound)
}

func TestStore_KeyDiffersByParams(t *testing.T) {
	a := cache.Key("g", transition.Homogeneous, transition.Params{P: 1, Q: 1})
	b := cache.Key("g", transition.Homogeneous, transition.Params{P: 2, Q: 1})
	assert.NotEqual(t, a, b)
}

func TestStore_DisabledStoreIsNoop(t *testing.T) {
	s := cache.OpenDisabled()
	require.NoError(t, s.Put(cache.Key("g", transition.Homogeneous, transition.Params{P: 1, Q: 1}), sampleTables(t)))
	_, err := s.Get(cache.Key("g", transition.Homogeneous, transition.Params{P: 1, Q: 1}))
	require.ErrorIs(t, err, cache.ErrNotFound)
	require.NoError(t, s.Close())
}
