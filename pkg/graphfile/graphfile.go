package graphfile

import (
	"fmt"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Ebin-Benny/lca/internal/logger"
)

// GraphFile holds the information from a graph definition file.
type GraphFile struct {
	Path string `yaml:"-"`

	// Name of the graph, used as the title of rendered outputs.
	Name string `yaml:"name,omitempty"`
	// Explicitly declared vertices. Vertices only referenced by edges
	// are created implicitly, declarations attach labels and attributes.
	Vertices []Vertex `yaml:"vertices,omitempty"`
	// Directed parent/child pairs.
	Edges []Edge `yaml:"edges"`
}

// Vertex is a vertex declaration in a graph definition file.
type Vertex struct {
	ID         string            `yaml:"id"`
	Label      string            `yaml:"label,omitempty"`
	Attributes map[string]string `yaml:"attributes,omitempty"`
}

// Edge is a directed edge from a parent vertex to a child vertex.
type Edge struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// IsGraphFile checks whether a file looks like a graph definition file.
func IsGraphFile(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

// ParseFile parses a graph definition file and validates its contents.
func ParseFile(filename string) (*GraphFile, error) {
	logger.Debugf("Parsing graph file \"%s\"", filename)

	content, err := os.ReadFile(filename) //nolint:gosec
	if err != nil {
		return nil, err
	}

	var file GraphFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("invalid graph file \"%s\": %w", filename, err)
	}

	file.Path = filename
	if file.Name == "" {
		file.Name = strings.TrimSuffix(path.Base(filename), path.Ext(filename))
	}

	if err := file.validate(); err != nil {
		return nil, fmt.Errorf("invalid graph file \"%s\": %w", filename, err)
	}

	logger.Debugf("Successfully parsed graph file. Name=%s, Vertices=%d, Edges=%d",
		file.Name, len(file.Vertices), len(file.Edges))

	return &file, nil
}

func (f GraphFile) validate() error {
	if len(f.Vertices) == 0 && len(f.Edges) == 0 {
		return fmt.Errorf("the graph declares no vertex and no edge")
	}

	declared := make(map[string]struct{})
	for _, vertex := range f.Vertices {
		if vertex.ID == "" {
			return fmt.Errorf("vertex declared with an empty ID")
		}
		if _, ok := declared[vertex.ID]; ok {
			return fmt.Errorf("vertex \"%s\" is declared more than once", vertex.ID)
		}
		declared[vertex.ID] = struct{}{}
	}

	seen := make(map[Edge]struct{})
	for _, edge := range f.Edges {
		if edge.From == "" || edge.To == "" {
			return fmt.Errorf("edge (\"%s\", \"%s\") has an empty endpoint", edge.From, edge.To)
		}
		if edge.From == edge.To {
			return fmt.Errorf("vertex \"%s\" has an edge to itself", edge.From)
		}
		if _, ok := seen[edge]; ok {
			return fmt.Errorf("edge (\"%s\", \"%s\") is declared more than once", edge.From, edge.To)
		}
		seen[edge] = struct{}{}
	}

	return nil
}

// VertexIDs returns the IDs of every vertex of the graph, declared or
// only referenced by an edge, in declaration order.
func (f GraphFile) VertexIDs() []string {
	var ids []string
	known := make(map[string]struct{})

	add := func(id string) {
		if _, ok := known[id]; ok {
			return
		}
		known[id] = struct{}{}
		ids = append(ids, id)
	}

	for _, vertex := range f.Vertices {
		add(vertex.ID)
	}
	for _, edge := range f.Edges {
		add(edge.From)
		add(edge.To)
	}

	return ids
}
