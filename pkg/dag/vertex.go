package dag

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Vertex holds the identity of a vertex of the graph.
type Vertex struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label,omitempty"`
	// Arbitrary key/value metadata attached in the graph definition file.
	Attributes map[string]string `yaml:"attributes,omitempty"`
	// Length of the longest path from a root vertex.
	Depth int `yaml:"depth"`
	// Human-readable hash of the vertex identity and its ancestry.
	Fingerprint string `yaml:"fingerprint,omitempty"`
}

// DisplayName returns the label of the vertex when one was declared,
// the vertex ID otherwise.
func (v Vertex) DisplayName() string {
	if v.Label != "" {
		return v.Label
	}

	return v.ID
}

func (v Vertex) Print() string {
	strVertex, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("Vertex: %s", v.ID)
	}

	return string(strVertex)
}
