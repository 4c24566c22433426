package walk_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hn2v/transition"
	"github.com/katalvlaran/hn2v/walk"
)

func TestCooccurrence_RejectsNonPositiveWindow(t *testing.T) {
	g := buildTriangle(t)
	tbl, _, err := transition.Build(context.Background(), g, transition.Homogeneous, transition.Params{P: 1, Q: 1})
	require.NoError(t, err)
	d, err := walk.NewDriver(g, tbl)
	require.NoError(t, err)

	_, _, _, err = d.Cooccurrence(context.Background(), nil, 1, 4, 0, 1, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, walk.ErrInvalidWindow)
}

func TestCooccurrence_ProducesSortedParallelSlices(t *testing.T) {
	g := buildTriangle(t)
	tbl, _, err := transition.Build(context.Background(), g, transition.Homogeneous, transition.Params{P: 1, Q: 1})
	require.NoError(t, err)
	d, err := walk.NewDriver(g, tbl)
	require.NoError(t, err)

	central, ctxIDs, freq, err := d.Cooccurrence(context.Background(), nil, 50, 4, 1, 3, 1)
	require.NoError(t, err)
	require.Equal(t, len(central), len(ctxIDs))
	require.Equal(t, len(central), len(freq))

	for i := 1; i < len(central); i++ {
		prevKey := [2]int32{central[i-1], ctxIDs[i-1]}
		curKey := [2]int32{central[i], ctxIDs[i]}
		assert.True(t, prevKey[0] < curKey[0] || (prevKey[0] == curKey[0] && prevKey[1] < curKey[1]))
	}
	for _, f := range freq {
		assert.Greater(t, f, int32(0))
	}
}
