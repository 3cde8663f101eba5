package lca

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/wolfeidau/humanhash"

	"github.com/Ebin-Benny/lca/internal/logger"
	"github.com/Ebin-Benny/lca/pkg/dag"
	"github.com/Ebin-Benny/lca/pkg/graphfile"
)

// ErrCycleDetected is returned when the graph definition contains a cycle,
// which would make ancestor searches loop forever.
var ErrCycleDetected = errors.New("cycle detected in graph")

// GenerateDAG parses the graph definition file at the given path, and generates
// the DAG representing the ancestry relationships between vertices.
// Acyclicity is validated here, at construction time, so queries never have to
// guard against cycles.
func GenerateDAG(graphPath string) (*dag.DAG, error) {
	file, err := graphfile.ParseFile(graphPath)
	if err != nil {
		return nil, err
	}

	return buildGraph(file)
}

func buildGraph(file *graphfile.GraphFile) (*dag.DAG, error) {
	if err := detectCycles(file); err != nil {
		return nil, err
	}

	cache := make(map[string]*dag.Node)
	for _, id := range file.VertexIDs() {
		cache[id] = dag.NewNode(&dag.Vertex{ID: id})
	}

	// Attach labels and attributes from explicit vertex declarations.
	for _, vertex := range file.Vertices {
		cache[vertex.ID].Vertex.Label = vertex.Label
		cache[vertex.ID].Vertex.Attributes = vertex.Attributes
	}

	for _, edge := range file.Edges {
		cache[edge.From].AddChild(cache[edge.To])
	}

	graph := &dag.DAG{}
	// If a vertex has no parents in the DAG, we consider it a root vertex.
	for _, id := range file.VertexIDs() {
		if len(cache[id].Parents()) == 0 {
			graph.AddNode(cache[id])
		}
	}

	computeDepths(graph)

	if err := generateFingerprints(graph); err != nil {
		return nil, err
	}

	logger.Debugf("Generated DAG for graph \"%s\": %d vertices, %d roots",
		file.Name, len(cache), len(graph.Nodes()))

	return graph, nil
}

// detectCycles runs a BFS topological ordering (Kahn's algorithm) over the edge
// set. If some vertices cannot be ordered, they are part of a cycle (or are only
// reachable through one), and the graph is rejected.
func detectCycles(file *graphfile.GraphFile) error {
	children := make(map[string][]string)
	inDegree := make(map[string]int)
	for _, id := range file.VertexIDs() {
		inDegree[id] = 0
	}
	for _, edge := range file.Edges {
		children[edge.From] = append(children[edge.From], edge.To)
		inDegree[edge.To]++
	}

	var queue []string
	for _, id := range file.VertexIDs() {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	ordered := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		ordered++

		for _, child := range children[id] {
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	if ordered == len(inDegree) {
		return nil
	}

	// The vertices left with a nonzero in-degree are part of the cycle,
	// or downstream of it.
	var remaining []string
	for id, degree := range inDegree {
		if degree > 0 {
			remaining = append(remaining, id)
		}
	}
	sort.Strings(remaining)

	return fmt.Errorf("%w: vertices [%s] cannot be topologically ordered",
		ErrCycleDetected, strings.Join(remaining, ", "))
}

// computeDepths fills the Depth of every vertex with the length of the longest
// path from a root vertex.
func computeDepths(graph *dag.DAG) {
	memo := make(map[*dag.Node]int)

	var depth func(*dag.Node) int
	depth = func(node *dag.Node) int {
		if d, ok := memo[node]; ok {
			return d
		}

		d := 0
		for _, parent := range node.Parents() {
			if parentDepth := depth(parent) + 1; parentDepth > d {
				d = parentDepth
			}
		}

		memo[node] = d
		node.Vertex.Depth = d

		return d
	}

	graph.Walk(func(node *dag.Node) {
		depth(node)
	})
}

// generateFingerprints hashes the identity of every vertex together with the
// fingerprints of its parents, so a vertex fingerprint changes whenever its
// ancestry does.
func generateFingerprints(graph *dag.DAG) error {
	memo := make(map[*dag.Node]string)

	var fingerprint func(*dag.Node) (string, error)
	fingerprint = func(node *dag.Node) (string, error) {
		if fp, ok := memo[node]; ok {
			return fp, nil
		}

		hash := sha256.New()
		fmt.Fprintf(hash, "%s\n%s\n", node.Vertex.ID, node.Vertex.Label)

		attributes := make([]string, 0, len(node.Vertex.Attributes))
		for key, value := range node.Vertex.Attributes {
			attributes = append(attributes, fmt.Sprintf("%s=%s", key, value))
		}
		sort.Strings(attributes)
		for _, attribute := range attributes {
			fmt.Fprintf(hash, "%s\n", attribute)
		}

		var parentFingerprints []string
		for _, parent := range node.Parents() {
			parentFingerprint, err := fingerprint(parent)
			if err != nil {
				return "", err
			}
			parentFingerprints = append(parentFingerprints, parentFingerprint)
		}
		sort.Strings(parentFingerprints)
		for _, parentFingerprint := range parentFingerprints {
			hash.Write([]byte(parentFingerprint))
		}

		humanReadableHash, err := humanhash.Humanize(hash.Sum(nil), 4)
		if err != nil {
			return "", fmt.Errorf("could not humanize hash of vertex %s: %w", node.Vertex.ID, err)
		}

		memo[node] = humanReadableHash
		node.Vertex.Fingerprint = humanReadableHash

		return humanReadableHash, nil
	}

	return graph.WalkErr(func(node *dag.Node) error {
		_, err := fingerprint(node)
		return err
	})
}
