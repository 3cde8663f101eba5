package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ebin-Benny/lca/internal/logger"
	"github.com/Ebin-Benny/lca/pkg/lca"
)

// queryCmd represents the query command.
var queryCmd = &cobra.Command{
	Use:   "query [vertex-a] [vertex-b]",
	Short: "Run lowest-common-ancestor queries on the graph",
	Long: `lca query computes the lowest common ancestor of two vertices of the graph

A single pair can be passed as arguments, or a batch of pairs can be read from
a file with --pairs-file (one whitespace-separated pair per line). When several
minimal common ancestors exist, the deepest one is returned, the smallest
vertex ID breaking the remaining ties; use --all to also print the full set.`,
	Args: cobra.MaximumNArgs(2), //nolint:mnd
	Run: func(cmd *cobra.Command, args []string) {
		bindPFlagsSnakeCase(cmd.Flags())

		opts := lca.QueryOpts{}
		hydrateOptsFromViper(&opts)

		if err := doQuery(opts, args); err != nil {
			logger.Fatalf("Query failed: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)

	queryCmd.Flags().Bool("all", false,
		"Print every minimal common ancestor in addition to the single tie-broken result.")
	queryCmd.Flags().String("pairs-file", "",
		"Path to a file containing one vertex pair per line, to run queries as a batch.")
	queryCmd.Flags().StringP("output", "o", "",
		"Output format (console|yaml)")
}

func doQuery(opts lca.QueryOpts, args []string) error {
	var (
		pairs [][2]string
		err   error
	)

	switch {
	case opts.PairsFile != "":
		if len(args) > 0 {
			return fmt.Errorf("vertex arguments and --pairs-file are mutually exclusive")
		}
		pairs, err = lca.ParsePairsFile(opts.PairsFile)
		if err != nil {
			return fmt.Errorf("error while parsing pairs file: %w", err)
		}
	case len(args) == 2: //nolint:mnd
		pairs = [][2]string{{args[0], args[1]}}
	default:
		return fmt.Errorf("expected two vertex IDs, or a batch file passed with --pairs-file")
	}

	graph, err := buildGraph(opts.GraphFile)
	if err != nil {
		return err
	}

	results, err := lca.RunQueries(graph, pairs)
	if err != nil {
		return err
	}

	return lca.RenderQueryResults(results, opts.Output, opts.All)
}
