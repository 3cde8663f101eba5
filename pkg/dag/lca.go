package dag

import (
	"errors"
	"fmt"
	"slices"
)

// ErrVertexNotFound is returned when a query references a vertex that is not part of the graph.
var ErrVertexNotFound = errors.New("vertex not found in graph")

// Get returns the node holding the vertex with the given ID.
// It returns ErrVertexNotFound when no such vertex exists in the graph.
func (d *DAG) Get(id string) (*Node, error) {
	var found *Node

	d.Walk(func(node *Node) {
		if node.Vertex.ID == id {
			found = node
		}
	})

	if found == nil {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return found, nil
}

// AncestorsOf returns every ancestor of the given vertex, the vertex itself included,
// sorted by vertex ID. A vertex is considered an ancestor of itself so that the
// lowest common ancestor of a vertex with itself is the vertex.
func (d *DAG) AncestorsOf(id string) ([]*Node, error) {
	node, err := d.Get(id)
	if err != nil {
		return nil, err
	}

	return sortedNodes(ancestorSet(node)), nil
}

// CommonAncestors returns every vertex that is an ancestor of both given vertices,
// sorted by vertex ID. The result is empty when the vertices live in disconnected
// parts of the graph.
func (d *DAG) CommonAncestors(idA, idB string) ([]*Node, error) {
	common, err := d.commonAncestorSet(idA, idB)
	if err != nil {
		return nil, err
	}

	return sortedNodes(common), nil
}

// LowestCommonAncestors returns every minimal common ancestor of the two given
// vertices, sorted by vertex ID. A common ancestor is minimal when no other common
// ancestor is a descendant of it. In a DAG, unlike in a tree, there can be several
// minimal common ancestors with no order among them, hence the set-returning contract.
//
// The search is a brute-force enumeration of both ancestor sets, in O(V·b^d) where
// b is the branching factor and d the depth of the graph.
func (d *DAG) LowestCommonAncestors(idA, idB string) ([]*Node, error) {
	common, err := d.commonAncestorSet(idA, idB)
	if err != nil {
		return nil, err
	}

	// A common ancestor is dominated when another common ancestor lies below it.
	dominated := make(map[*Node]struct{})
	for node := range common {
		for _, parent := range node.Parents() {
			for ancestor := range ancestorSet(parent) {
				dominated[ancestor] = struct{}{}
			}
		}
	}

	lowest := make(map[*Node]struct{})
	for node := range common {
		if _, ok := dominated[node]; !ok {
			lowest[node] = struct{}{}
		}
	}

	return sortedNodes(lowest), nil
}

// LowestCommonAncestor returns a single lowest common ancestor of the two given
// vertices, or nil when they share no ancestor. When several minimal common
// ancestors exist, the deepest one wins, and the smallest vertex ID breaks the
// remaining ties, so the result is deterministic.
func (d *DAG) LowestCommonAncestor(idA, idB string) (*Node, error) {
	lowest, err := d.LowestCommonAncestors(idA, idB)
	if err != nil {
		return nil, err
	}

	if len(lowest) == 0 {
		return nil, nil
	}

	best := lowest[0]
	for _, node := range lowest[1:] {
		if node.Vertex.Depth > best.Vertex.Depth {
			best = node
		}
	}

	return best, nil
}

func (d *DAG) commonAncestorSet(idA, idB string) (map[*Node]struct{}, error) {
	nodeA, err := d.Get(idA)
	if err != nil {
		return nil, err
	}
	nodeB, err := d.Get(idB)
	if err != nil {
		return nil, err
	}

	ancestorsA := ancestorSet(nodeA)
	ancestorsB := ancestorSet(nodeB)

	common := make(map[*Node]struct{})
	for node := range ancestorsA {
		if _, ok := ancestorsB[node]; ok {
			common[node] = struct{}{}
		}
	}

	return common, nil
}

// ancestorSet climbs the parent edges from the given node and collects every
// reachable node, the starting node included. Nodes with multiple paths to a
// shared ancestor are only collected once.
func ancestorSet(node *Node) map[*Node]struct{} {
	ancestors := map[*Node]struct{}{node: {}}

	var climb func(*Node)
	climb = func(n *Node) {
		for _, parent := range n.Parents() {
			if _, ok := ancestors[parent]; ok {
				continue
			}
			ancestors[parent] = struct{}{}
			climb(parent)
		}
	}
	climb(node)

	return ancestors
}

func sortedNodes(set map[*Node]struct{}) []*Node {
	nodes := make([]*Node, 0, len(set))
	for node := range set {
		nodes = append(nodes, node)
	}

	slices.SortFunc(nodes, sort)

	return nodes
}
