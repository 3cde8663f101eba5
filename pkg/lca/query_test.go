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

func Test_RunQuery(t *testing.T) {
	t.Parallel()

	graph, err := lca.GenerateDAG(fixturePath(t, "diamond.yaml"))
	require.NoError(t, err)

	tests := []struct {
		name     string
		vertexA  string
		vertexB  string
		expected lca.QueryResult
	}{
		{
			name:    "siblings",
			vertexA: "2",
			vertexB: "3",
			expected: lca.QueryResult{
				VertexA:               "2",
				VertexB:               "3",
				LowestCommonAncestors: []string{"1"},
				LowestCommonAncestor:  "1",
			},
		},
		{
			name:    "same vertex",
			vertexA: "4",
			vertexB: "4",
			expected: lca.QueryResult{
				VertexA:               "4",
				VertexB:               "4",
				LowestCommonAncestors: []string{"4"},
				LowestCommonAncestor:  "4",
			},
		},
		{
			name:    "ancestor of the other",
			vertexA: "2",
			vertexB: "4",
			expected: lca.QueryResult{
				VertexA:               "2",
				VertexB:               "4",
				LowestCommonAncestors: []string{"2"},
				LowestCommonAncestor:  "2",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			result, err := lca.RunQuery(graph, test.vertexA, test.vertexB)
			require.NoError(t, err)
			assert.Equal(t, test.expected, result)
		})
	}
}

func Test_RunQuery_NoCommonAncestor(t *testing.T) {
	t.Parallel()

	graph, err := lca.GenerateDAG(fixturePath(t, "forest.yaml"))
	require.NoError(t, err)

	result, err := lca.RunQuery(graph, "4", "6")
	require.NoError(t, err)
	assert.Empty(t, result.LowestCommonAncestors)
	assert.Empty(t, result.LowestCommonAncestor)
}

func Test_RunQuery_InvalidVertex(t *testing.T) {
	t.Parallel()

	graph, err := lca.GenerateDAG(fixturePath(t, "diamond.yaml"))
	require.NoError(t, err)

	_, err = lca.RunQuery(graph, "4", "unknown")
	require.Error(t, err)
	assert.ErrorIs(t, err, dag.ErrVertexNotFound)
}

func Test_RunQueries(t *testing.T) {
	t.Parallel()

	graph, err := lca.GenerateDAG(fixturePath(t, "diamond.yaml"))
	require.NoError(t, err)

	pairs := [][2]string{
		{"2", "3"},
		{"4", "4"},
		{"3", "4"},
	}

	results, err := lca.RunQueries(graph, pairs)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Results keep the order of the input pairs, even though queries run concurrently.
	assert.Equal(t, "1", results[0].LowestCommonAncestor)
	assert.Equal(t, "4", results[1].LowestCommonAncestor)
	assert.Equal(t, "3", results[2].LowestCommonAncestor)
}

func Test_RunQueries_FailsOnInvalidVertex(t *testing.T) {
	t.Parallel()

	graph, err := lca.GenerateDAG(fixturePath(t, "diamond.yaml"))
	require.NoError(t, err)

	_, err = lca.RunQueries(graph, [][2]string{
		{"2", "3"},
		{"2", "unknown"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, dag.ErrVertexNotFound)
}

func Test_ParsePairsFile(t *testing.T) {
	t.Parallel()

	pairs, err := lca.ParsePairsFile(fixturePath(t, "pairs.txt"))
	require.NoError(t, err)
	assert.Equal(t, [][2]string{
		{"2", "3"},
		{"4", "4"},
		{"2", "4"},
	}, pairs)
}

func Test_ParsePairsFile_Invalid(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := lca.ParsePairsFile(path.Join(t.TempDir(), "missing.txt"))
		require.Error(t, err)
	})

	t.Run("wrong field count", func(t *testing.T) {
		t.Parallel()

		filename := path.Join(t.TempDir(), "pairs.txt")
		require.NoError(t, os.WriteFile(filename, []byte("1 2 3\n"), 0o600))

		_, err := lca.ParsePairsFile(filename)
		require.Error(t, err)
		assert.ErrorContains(t, err, "expected 2 vertices, got 3")
	})

	t.Run("only comments", func(t *testing.T) {
		t.Parallel()

		filename := path.Join(t.TempDir(), "pairs.txt")
		require.NoError(t, os.WriteFile(filename, []byte("# nothing here\n\n"), 0o600))

		_, err := lca.ParsePairsFile(filename)
		require.Error(t, err)
		assert.ErrorContains(t, err, "no vertex pair found")
	})
}

func Test_RenderQueryResults_InvalidOutput(t *testing.T) {
	t.Parallel()

	err := lca.RenderQueryResults(nil, "xml", false)
	require.Error(t, err)
	assert.ErrorContains(t, err, "not a valid output format")
}
