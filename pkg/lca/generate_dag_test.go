package lca_test

import (
	"os"
	"path"
	"testing"

	"github.com/Ebin-Benny/lca/pkg/dag"
	"github.com/Ebin-Benny/lca/pkg/lca"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixturePath(t *testing.T, name string) string {
	t.Helper()

	cwd, err := os.Getwd()
	require.NoError(t, err)

	return path.Join(cwd, "../../test/fixtures/graphs", name)
}

func Test_GenerateDAG_Diamond(t *testing.T) {
	t.Parallel()

	graph, err := lca.GenerateDAG(fixturePath(t, "diamond.yaml"))
	require.NoError(t, err)

	roots := graph.Nodes()
	require.Len(t, roots, 1)
	assert.Equal(t, "1", roots[0].Vertex.ID)
	assert.Equal(t, "grandparent", roots[0].Vertex.Label)
	assert.Equal(t, 0, roots[0].Vertex.Depth)

	node, err := graph.Get("4")
	require.NoError(t, err)
	assert.Len(t, node.Parents(), 2)
	assert.Equal(t, 2, node.Vertex.Depth)
}

func Test_GenerateDAG_Forest(t *testing.T) {
	t.Parallel()

	graph, err := lca.GenerateDAG(fixturePath(t, "forest.yaml"))
	require.NoError(t, err)

	// Two disconnected components, so two root vertices.
	roots := graph.Nodes()
	require.Len(t, roots, 2)

	node, err := graph.Get("8")
	require.NoError(t, err)
	assert.Equal(t, 2, node.Vertex.Depth)
}

func Test_GenerateDAG_CycleDetected(t *testing.T) {
	t.Parallel()

	_, err := lca.GenerateDAG(fixturePath(t, "cyclic.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, lca.ErrCycleDetected)
	// Vertex 4 is downstream of the cycle, so it cannot be ordered either.
	assert.ErrorContains(t, err, "[1, 2, 3, 4]")
}

func Test_GenerateDAG_InvalidFile(t *testing.T) {
	t.Parallel()

	_, err := lca.GenerateDAG(path.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func Test_GenerateDAG_Fingerprints(t *testing.T) {
	t.Parallel()

	graph, err := lca.GenerateDAG(fixturePath(t, "diamond.yaml"))
	require.NoError(t, err)

	fingerprints := make(map[string]string)
	graph.Walk(func(node *dag.Node) {
		fingerprints[node.Vertex.ID] = node.Vertex.Fingerprint
	})

	for id, fingerprint := range fingerprints {
		assert.NotEmpty(t, fingerprint, "vertex %s has no fingerprint", id)
	}

	// Fingerprints are stable across rebuilds of the same graph file.
	rebuilt, err := lca.GenerateDAG(fixturePath(t, "diamond.yaml"))
	require.NoError(t, err)
	rebuilt.Walk(func(node *dag.Node) {
		assert.Equal(t, fingerprints[node.Vertex.ID], node.Vertex.Fingerprint)
	})
}
