package main

import (
	"github.com/spf13/cobra"

	"github.com/Ebin-Benny/lca/internal/logger"
	"github.com/Ebin-Benny/lca/pkg/graphviz"
	"github.com/Ebin-Benny/lca/pkg/lca"
)

type graphOpts struct {
	// Root options
	GraphFile string `mapstructure:"graph_file"`

	// Graph specific options
	OutputDir string `mapstructure:"output_dir"`
}

// graphCmd represents the graph command.
var graphCmd = &cobra.Command{
	Use:   "graph [vertex-a] [vertex-b]",
	Short: "Create a visual representation of the graph",
	Long: `Create a visual representation of the graph using graphviz

When a vertex pair is passed as arguments, the queried vertices are colored
in yellow, and their lowest common ancestors in red. A queried vertex that is
itself a lowest common ancestor is colored in red.`,
	Args: cobra.MaximumNArgs(2), //nolint:mnd
	Run: func(cmd *cobra.Command, args []string) {
		bindPFlagsSnakeCase(cmd.Flags())

		opts := graphOpts{}
		hydrateOptsFromViper(&opts)

		if err := doGraph(cmd, opts, args); err != nil {
			logger.Fatalf("Generating graph failed: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().StringP("output-dir", "o", ".",
		"Output directory where .dot and .png files will be generated.")
}

func doGraph(cmd *cobra.Command, opts graphOpts, args []string) error {
	graph, err := buildGraph(opts.GraphFile)
	if err != nil {
		return err
	}

	colors := map[string]string{}
	if len(args) == 2 { //nolint:mnd
		result, err := lca.RunQuery(graph, args[0], args[1])
		if err != nil {
			return err
		}

		colors = queryColors(result)
	}

	return graphviz.GenerateGraph(cmd.Context(), graph, opts.OutputDir, colors)
}

// queryColors assigns highlight colors to the vertices involved in a query.
// The result color is applied last: a queried vertex that is itself a lowest
// common ancestor ends up red, not yellow.
func queryColors(result lca.QueryResult) map[string]string {
	colors := map[string]string{
		result.VertexA: "yellow",
		result.VertexB: "yellow",
	}
	for _, id := range result.LowestCommonAncestors {
		colors[id] = "red"
	}

	return colors
}
