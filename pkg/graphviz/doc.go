// Package graphviz renders the DAG in the graphviz dot language, and generates
// image files out of it.
package graphviz
