// Package lca contains the high-level features of the lca tool: building the
// DAG from a graph definition file, running lowest-common-ancestor queries,
// and rendering listings of the graph.
package lca
