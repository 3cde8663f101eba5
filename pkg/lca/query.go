package lca

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/Ebin-Benny/lca/internal/logger"
	"github.com/Ebin-Benny/lca/pkg/dag"
)

const (
	// QueryConsoleFormat renders query results as a console table.
	QueryConsoleFormat = "console"
	// QueryYamlFormat renders query results as a YAML document.
	QueryYamlFormat = "yaml"
)

type QueryOpts struct {
	// Root options
	GraphFile string `mapstructure:"graph_file"`

	// Query specific options
	All       bool   `mapstructure:"all,omitempty"`
	PairsFile string `mapstructure:"pairs_file,omitempty"`
	Output    string `mapstructure:"output,omitempty"`
}

// QueryResult holds the outcome of a single lowest-common-ancestor query.
type QueryResult struct {
	VertexA string `yaml:"vertex_a"`
	VertexB string `yaml:"vertex_b"`
	// Every minimal common ancestor, sorted by vertex ID. Empty when the two
	// vertices share no ancestor.
	LowestCommonAncestors []string `yaml:"lowest_common_ancestors,flow"`
	// The deepest minimal common ancestor, ties broken on the smallest vertex
	// ID. Empty when no common ancestor exists.
	LowestCommonAncestor string `yaml:"lowest_common_ancestor,omitempty"`
}

// RunQuery computes the lowest common ancestor of a single vertex pair.
func RunQuery(graph *dag.DAG, vertexA, vertexB string) (QueryResult, error) {
	result := QueryResult{
		VertexA: vertexA,
		VertexB: vertexB,
	}

	all, err := graph.LowestCommonAncestors(vertexA, vertexB)
	if err != nil {
		return QueryResult{}, err
	}
	for _, node := range all {
		result.LowestCommonAncestors = append(result.LowestCommonAncestors, node.Vertex.ID)
	}

	lowest, err := graph.LowestCommonAncestor(vertexA, vertexB)
	if err != nil {
		return QueryResult{}, err
	}
	if lowest != nil {
		result.LowestCommonAncestor = lowest.Vertex.ID
	}

	return result, nil
}

// RunQueries computes the lowest common ancestors of a batch of vertex pairs,
// concurrently. Results are returned in the same order as the pairs. The first
// failing query aborts the whole run.
func RunQueries(graph *dag.DAG, pairs [][2]string) ([]QueryResult, error) {
	runID := uuid.NewString()
	logger.Infof("Starting query run %s (%d pairs)", runID, len(pairs))

	results := make([]QueryResult, len(pairs))

	errG := new(errgroup.Group)
	for index, pair := range pairs {
		errG.Go(func() error {
			result, err := RunQuery(graph, pair[0], pair[1])
			if err != nil {
				return fmt.Errorf("query run %s: pair (%s, %s): %w", runID, pair[0], pair[1], err)
			}

			results[index] = result
			return nil
		})
	}

	if err := errG.Wait(); err != nil {
		return nil, err
	}

	logger.Debugf("Query run %s completed", runID)

	return results, nil
}

// ParsePairsFile reads a batch file containing one whitespace-separated vertex
// pair per line. Empty lines and lines starting with "#" are skipped.
func ParsePairsFile(path string) ([][2]string, error) {
	file, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = file.Close()
	}()

	var pairs [][2]string

	lineNumber := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNumber++
		txt := strings.TrimSpace(scanner.Text())
		if txt == "" || strings.HasPrefix(txt, "#") {
			continue
		}

		fields := strings.Fields(txt)
		if len(fields) != 2 {
			return nil, fmt.Errorf("invalid pair at line %d of \"%s\": expected 2 vertices, got %d",
				lineNumber, path, len(fields))
		}

		pairs = append(pairs, [2]string{fields[0], fields[1]})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(pairs) == 0 {
		return nil, fmt.Errorf("no vertex pair found in \"%s\"", path)
	}

	return pairs, nil
}

// RenderQueryResults displays query results in the requested output format.
// In console format, showAll adds a column listing every minimal common
// ancestor next to the single tie-broken result.
func RenderQueryResults(results []QueryResult, output string, showAll bool) error {
	switch output {
	case "", QueryConsoleFormat:
		renderQueryConsoleOutput(results, showAll)
	case QueryYamlFormat:
		strResults, err := yaml.Marshal(results)
		if err != nil {
			return fmt.Errorf("failed to render query results: %w", err)
		}
		fmt.Print(string(strResults)) //nolint:forbidigo
	default:
		return fmt.Errorf("\"%s\" is not a valid output format", output)
	}

	return nil
}

// renderQueryConsoleOutput displays the query results in stdout as a nice table.
func renderQueryConsoleOutput(results []QueryResult, showAll bool) {
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
	for _, result := range results {
		lowest := result.LowestCommonAncestor
		if lowest == "" {
			lowest = "<none>"
		}

		row := []string{result.VertexA, result.VertexB, lowest}
		if showAll {
			row = append(row, strings.Join(result.LowestCommonAncestors, ", "))
		}
		data = append(data, row)
	}

	table.AppendBulk(data)

	header := []string{"Vertex A", "Vertex B", "LCA"}
	if showAll {
		header = append(header, "All minimal ancestors")
	}
	table.SetHeader(header)
	table.Render()
}
