package graphviz_test

import (
	"context"
	"os"
	"path"
	"testing"

	"github.com/Ebin-Benny/lca/pkg/dag"
	"github.com/Ebin-Benny/lca/pkg/graphviz"
	"github.com/Ebin-Benny/lca/pkg/lca"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GenerateGraph(t *testing.T) {
	t.Parallel()

	cwd, err := os.Getwd()
	require.NoError(t, err)

	graph, err := lca.GenerateDAG(path.Join(cwd, "../../test/fixtures/graphs/diamond.yaml"))
	require.NoError(t, err)

	dir := t.TempDir()
	err = graphviz.GenerateGraph(context.Background(), graph, dir, nil)
	require.NoError(t, err)
	assert.FileExists(t, path.Join(dir, "lca.dot"))
	assert.FileExists(t, path.Join(dir, "lca.png"))
}

func Test_GenerateRawOutput_EmptyDAG(t *testing.T) {
	t.Parallel()

	expectedDAG := "digraph ancestry {\n" +
		"  rankdir = \"LR\";\n" +
		"  node[fontsize=10, shape=ellipse, height=0.4];\n" +
		"  edge[fontsize=10, arrowhead=vee];\n" +
		"\n" +
		"}\n"

	tests := []struct {
		name     string
		input    *dag.DAG
		expected string
	}{
		{
			name:     "nil graph",
			input:    nil,
			expected: expectedDAG,
		},
		{
			name:     "empty graph",
			input:    &dag.DAG{},
			expected: expectedDAG,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			actual := graphviz.GenerateRawOutput(test.input, nil)
			assert.Equal(t, test.expected, actual)
		})
	}
}

func Test_GenerateRawOutput_ValidDAG(t *testing.T) {
	t.Parallel()

	child1 := dag.NewNode(&dag.Vertex{ID: "child1"})
	child2 := dag.NewNode(&dag.Vertex{ID: "child2"})
	root := dag.NewNode(&dag.Vertex{ID: "root"})
	lone := dag.NewNode(&dag.Vertex{ID: "lone"})

	root.AddChild(child1)
	root.AddChild(child2)

	inputGraph := &dag.DAG{}
	inputGraph.AddNode(root)
	inputGraph.AddNode(lone)

	expected := "digraph ancestry {\n" +
		"  rankdir = \"LR\";\n" +
		"  node[fontsize=10, shape=ellipse, height=0.4];\n" +
		"  edge[fontsize=10, arrowhead=vee];\n" +
		"\n" +
		"  \"root\" [fillcolor=white, style=filled];\n" +
		"  \"root\" -> \"child1\" [dir=forward];\n" +
		"  \"root\" -> \"child2\" [dir=forward];\n" +
		"  \"child1\" [fillcolor=yellow, style=filled];\n" +
		"  \"child2\" [fillcolor=white, style=filled];\n" +
		"  \"lone\" [fillcolor=white, style=filled];\n" +
		"}\n"

	actual := graphviz.GenerateRawOutput(inputGraph, map[string]string{"child1": "yellow"})
	assert.Equal(t, expected, actual)
}
