package lca_test

import (
	"testing"

	"github.com/Ebin-Benny/lca/pkg/lca"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CheckGraph(t *testing.T) {
	t.Parallel()

	stats, err := lca.CheckGraph(fixturePath(t, "diamond.yaml"))
	require.NoError(t, err)
	assert.Equal(t, lca.Stats{
		Vertices: 4,
		Edges:    4,
		Roots:    1,
		MaxDepth: 2,
	}, stats)
}

func Test_CheckGraph_Forest(t *testing.T) {
	t.Parallel()

	stats, err := lca.CheckGraph(fixturePath(t, "forest.yaml"))
	require.NoError(t, err)
	assert.Equal(t, lca.Stats{
		Vertices: 8,
		Edges:    6,
		Roots:    2,
		MaxDepth: 2,
	}, stats)
}

func Test_CheckGraph_Cycle(t *testing.T) {
	t.Parallel()

	_, err := lca.CheckGraph(fixturePath(t, "cyclic.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, lca.ErrCycleDetected)
}
