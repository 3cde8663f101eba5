package lca

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/template"

	"github.com/olekukonko/tablewriter"

	"github.com/Ebin-Benny/lca/pkg/dag"
	"github.com/Ebin-Benny/lca/pkg/graphviz"
)

const (
	ConsoleFormat        = "console"
	GraphvizFormat       = "graphviz"
	GoTemplateFileFormat = "go-template-file"
)

type ListOpts struct {
	// Root options
	GraphFile string `mapstructure:"graph_file"`

	// List specific options
	Output string `mapstructure:"output,omitempty"`
}

type FormatOpts struct {
	Type         string
	TemplatePath string
}

func GenerateList(graph *dag.DAG, opts FormatOpts) error {
	verticesList := GetVerticesList(graph)

	switch opts.Type {
	case ConsoleFormat:
		renderConsoleOutput(verticesList)
	case GraphvizFormat:
		output := graphviz.GenerateRawOutput(graph, nil)
		fmt.Println(output) //nolint:forbidigo
	case GoTemplateFileFormat:
		outputTemplate, err := template.ParseFiles(opts.TemplatePath)
		if err != nil {
			return fmt.Errorf("failed to parse go-template file : %w", err)
		}

		err = outputTemplate.Execute(os.Stdout, verticesList)
		if err != nil {
			return fmt.Errorf("failed to render go-template file : %w", err)
		}
	}

	return nil
}

// GetVerticesList iterate over DAG nodes and return a slice of Vertex sorted by their ID.
func GetVerticesList(graph *dag.DAG) []dag.Vertex {
	verticesList := make(map[string]dag.Vertex)

	graph.Walk(func(node *dag.Node) {
		verticesList[node.Vertex.ID] = *node.Vertex
	})

	// Sort vertices by ID
	var sortedVerticesList []dag.Vertex
	for _, vertex := range verticesList {
		sortedVerticesList = append(sortedVerticesList, vertex)
	}

	sort.SliceStable(sortedVerticesList, func(i, j int) bool {
		return sortedVerticesList[i].ID < sortedVerticesList[j].ID
	})

	return sortedVerticesList
}

// ParseOutputOptions parse value of the "--output" flag and ensure they are valid.
// Currently, we only support the "console", "graphviz" and "go-template-file" outputs.
func ParseOutputOptions(output string) (FormatOpts, error) {
	formatOpts := FormatOpts{}
	if output == "" || output == ConsoleFormat {
		formatOpts.Type = ConsoleFormat
		return formatOpts, nil
	}

	if output == GraphvizFormat {
		formatOpts.Type = GraphvizFormat
		return formatOpts, nil
	}

	parsed := strings.Split(output, "=")
	switch parsed[0] {
	case GoTemplateFileFormat:
		if len(parsed) == 1 {
			return formatOpts, fmt.Errorf("you need to provide a path to template file when using \"go-template-file\" options")
		}

		formatOpts.Type = GoTemplateFileFormat
		formatOpts.TemplatePath = parsed[1]
	default:
		return formatOpts, fmt.Errorf("\"%s\" is not a valid output format", output)
	}

	return formatOpts, nil
}

// renderConsoleOutput displays the list of vertices in stdout as a nice table.
func renderConsoleOutput(verticesList []dag.Vertex) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	var data [][]string
	for _, vertex := range verticesList {
		data = append(data, []string{
			vertex.ID,
			vertex.Label,
			fmt.Sprintf("%d", vertex.Depth),
			vertex.Fingerprint,
		})
	}

	table.AppendBulk(data)

	table.SetHeader([]string{"ID", "Label", "Depth", "Fingerprint"})
	table.Render()
}
