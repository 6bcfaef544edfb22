package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVPadsShortRows(t *testing.T) {
	out, err := CSV(Table{
		Headers: []string{"A", "B", "C"},
		Rows:    [][]string{{"1", "2"}},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "A,B,C", lines[0])
	assert.Equal(t, "1,2,", lines[1])
}

func TestCSVRequiresHeaders(t *testing.T) {
	_, err := CSV(Table{})
	assert.Error(t, err)
}

func TestPDFOutput(t *testing.T) {
	out, err := PDF(Table{
		Title:   "Teaching Reports",
		Headers: []string{"Class", "Topic"},
		Rows:    [][]string{{"Algo101", "Sorting"}},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))
}
