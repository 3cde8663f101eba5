// Package dag provides tools for creating and querying directed acyclic graphs (DAGs).
//
// The main functionalities include:
// - Adding nodes to the graph.
// - Walking through the graph with various traversal methods.
// - Computing common ancestors and lowest common ancestors of vertex pairs.
//
// Graphs are built once and queried read-only afterwards.
package dag
