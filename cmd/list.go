package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ebin-Benny/lca/internal/logger"
	"github.com/Ebin-Benny/lca/pkg/lca"
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print list of vertices in the graph",
	Long:  `lca list will print a list of all vertices of the graph, sorted by their ID`,
	Run: func(cmd *cobra.Command, _ []string) {
		bindPFlagsSnakeCase(cmd.Flags())

		opts := lca.ListOpts{}
		hydrateOptsFromViper(&opts)

		if err := doList(opts); err != nil {
			logger.Fatalf("List failed: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("output", "o", "", ""+
		"Output format (console|graphviz|go-template-file)\n"+
		"You can provide a custom format using go-template: like this: \"-o go-template-file=...\".")
}

func doList(opts lca.ListOpts) error {
	formatOpts, err := lca.ParseOutputOptions(opts.Output)
	if err != nil {
		return fmt.Errorf("error while parsing output options: %w", err)
	}

	graph, err := buildGraph(opts.GraphFile)
	if err != nil {
		return err
	}

	return lca.GenerateList(graph, formatOpts)
}
