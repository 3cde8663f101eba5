package main

import (
	"github.com/spf13/cobra"

	"github.com/Ebin-Benny/lca/internal/logger"
	"github.com/Ebin-Benny/lca/pkg/lca"
)

// checkCmd represents the check command.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the graph definition file",
	Long: `lca check builds the graph from the definition file and reports any error,
like cycles or malformed declarations, without running any query`,
	Run: func(cmd *cobra.Command, _ []string) {
		bindPFlagsSnakeCase(cmd.Flags())

		opts := lca.CheckOpts{}
		hydrateOptsFromViper(&opts)

		if err := doCheck(opts); err != nil {
			logger.Fatalf("Check failed: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func doCheck(opts lca.CheckOpts) error {
	graphPath, err := resolveGraphFile(opts.GraphFile)
	if err != nil {
		return err
	}

	stats, err := lca.CheckGraph(graphPath)
	if err != nil {
		return err
	}

	logger.Infof("Graph is a valid DAG: %d vertices, %d edges, %d roots, max depth %d",
		stats.Vertices, stats.Edges, stats.Roots, stats.MaxDepth)

	return nil
}
