package lca

import (
	"github.com/Ebin-Benny/lca/pkg/dag"
)

type CheckOpts struct {
	// Root options
	GraphFile string `mapstructure:"graph_file"`
}

// Stats aggregates counts about a graph.
type Stats struct {
	Vertices int
	Edges    int
	Roots    int
	MaxDepth int
}

// CheckGraph builds the DAG from the graph definition file to validate it, and
// returns aggregate counts about the resulting graph. Cycles and malformed
// definitions surface as errors from GenerateDAG.
func CheckGraph(graphPath string) (Stats, error) {
	graph, err := GenerateDAG(graphPath)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		Roots: len(graph.Nodes()),
	}

	graph.Walk(func(node *dag.Node) {
		stats.Vertices++
		stats.Edges += len(node.Children())

		if node.Vertex.Depth > stats.MaxDepth {
			stats.MaxDepth = node.Vertex.Depth
		}
	})

	return stats, nil
}
