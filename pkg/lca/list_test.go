package lca_test

import (
	"testing"

	"github.com/Ebin-Benny/lca/pkg/lca"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GetVerticesList(t *testing.T) {
	t.Parallel()

	graph, err := lca.GenerateDAG(fixturePath(t, "diamond.yaml"))
	require.NoError(t, err)

	vertices := lca.GetVerticesList(graph)
	require.Len(t, vertices, 4)

	assert.Equal(t, "1", vertices[0].ID)
	assert.Equal(t, "grandparent", vertices[0].Label)
	assert.Equal(t, "2", vertices[1].ID)
	assert.Equal(t, "3", vertices[2].ID)
	assert.Equal(t, "4", vertices[3].ID)
	assert.Equal(t, 2, vertices[3].Depth)
}

func Test_ParseOutputOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		expected    lca.FormatOpts
		expectedErr string
	}{
		{
			name:     "empty value",
			input:    "",
			expected: lca.FormatOpts{Type: lca.ConsoleFormat},
		},
		{
			name:     "console",
			input:    "console",
			expected: lca.FormatOpts{Type: lca.ConsoleFormat},
		},
		{
			name:     "graphviz",
			input:    "graphviz",
			expected: lca.FormatOpts{Type: lca.GraphvizFormat},
		},
		{
			name:  "go-template-file",
			input: "go-template-file=some/template.tmpl",
			expected: lca.FormatOpts{
				Type:         lca.GoTemplateFileFormat,
				TemplatePath: "some/template.tmpl",
			},
		},
		{
			name:        "go-template-file without path",
			input:       "go-template-file",
			expectedErr: "you need to provide a path to template file",
		},
		{
			name:        "unknown format",
			input:       "xml",
			expectedErr: "\"xml\" is not a valid output format",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			actual, err := lca.ParseOutputOptions(test.input)
			if test.expectedErr != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, test.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expected, actual)
		})
	}
}
