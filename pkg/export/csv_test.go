package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVRender(t *testing.T) {
	table := Table{
		Columns: []string{"Student ID", "Name"},
		Rows: [][]string{
			{"UENR2023001", "Kwame Addo"},
			{"UENR2023002", "Ama Mensah"},
		},
	}
	out, err := NewCSVExporter().Render(table)
	require.NoError(t, err)
	assert.Equal(t, "Student ID,Name\nUENR2023001,Kwame Addo\nUENR2023002,Ama Mensah\n", string(out))
}

func TestCSVRenderQuotesCommas(t *testing.T) {
	table := Table{
		Columns: []string{"Name"},
		Rows:    [][]string{{"Addo, Kwame"}},
	}
	out, err := NewCSVExporter().Render(table)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"Addo, Kwame"`)
}

func TestCSVRenderPadsShortRows(t *testing.T) {
	table := Table{
		Columns: []string{"A", "B", "C"},
		Rows:    [][]string{{"1"}},
	}
	out, err := NewCSVExporter().Render(table)
	require.NoError(t, err)
	assert.Equal(t, "A,B,C\n1,,\n", string(out))
}

func TestCSVRenderNoColumns(t *testing.T) {
	_, err := NewCSVExporter().Render(Table{})
	assert.Error(t, err)
}
