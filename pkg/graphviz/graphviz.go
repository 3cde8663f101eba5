package graphviz

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/Ebin-Benny/lca/pkg/dag"
)

const (
	// graphDot is the name of the file containing the raw graphviz dot language representation of the graph.
	graphDot = "lca.dot"

	// graphPng is the final file inside we put the rendered graph.
	graphPng = "lca.png"
)

// GenerateGraph generates a graphviz representation (png) of the dag.DAG in the given outputDir.
// The colors map assigns a fill color to vertex IDs, to highlight query vertices and results.
func GenerateGraph(ctx context.Context, graph *dag.DAG, outputDir string, colors map[string]string) error {
	rawGraphvizOutput := GenerateRawOutput(graph, colors)

	graphvizFile := path.Join(outputDir, graphDot)
	pngFile := path.Join(outputDir, graphPng)

	err := os.WriteFile(graphvizFile, []byte(rawGraphvizOutput), 0o644) //nolint:gosec
	if err != nil {
		return err
	}

	g, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("failed to create graphviz: %w", err)
	}

	defer func() {
		_ = g.Close()
	}()

	parsed, err := graphviz.ParseBytes([]byte(rawGraphvizOutput))
	if err != nil {
		return fmt.Errorf("failed to parse graphviz: %w", err)
	}

	defer func() {
		_ = parsed.Close()
	}()

	err = g.RenderFilename(ctx, parsed, graphviz.PNG, pngFile)
	if err != nil {
		return fmt.Errorf("failed to render graph: %w", err)
	}

	return nil
}

// GenerateRawOutput generates the raw graphviz dot language from the given dag.DAG.
// Vertices present in the colors map are filled with the given color, every
// other vertex stays white.
func GenerateRawOutput(graph *dag.DAG, colors map[string]string) string {
	rawGraphvizDotLang := []string{
		"digraph ancestry {\n",
		"  rankdir = \"LR\";\n",
		"  node[fontsize=10, shape=ellipse, height=0.4];\n",
		"  edge[fontsize=10, arrowhead=vee];\n",
		"\n",
	}

	if graph != nil {
		graph.Walk(func(node *dag.Node) {
			vertex := node.Vertex

			color, highlighted := colors[vertex.ID]
			if !highlighted {
				color = "white"
			}

			rawGraphvizDotLang = append(rawGraphvizDotLang, fmt.Sprintf(
				"  \"%s\" [fillcolor=%s, style=filled];\n",
				vertex.ID,
				color,
			))

			for _, child := range node.Children() {
				rawGraphvizDotLang = append(rawGraphvizDotLang, fmt.Sprintf(
					"  \"%s\" -> \"%s\" [dir=forward];\n",
					vertex.ID,
					child.Vertex.ID,
				))
			}
		})
	}

	rawGraphvizDotLang = append(rawGraphvizDotLang, "}\n")

	return strings.Join(rawGraphvizDotLang, "")
}
