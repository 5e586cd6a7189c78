package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() Table {
	return Table{
		Title:   "Students",
		Columns: []string{"student_id", "name", "roll_no"},
		Rows: []map[string]string{
			{"student_id": "S_001", "name": "Aarav Shah", "roll_no": "42"},
			{"student_id": "S_002", "name": "Meera Nair", "roll_no": "7"},
		},
	}
}

func TestForFormat(t *testing.T) {
	csvExp, err := ForFormat("csv")
	require.NoError(t, err)
	assert.Equal(t, "csv", csvExp.Extension())

	pdfExp, err := ForFormat("pdf")
	require.NoError(t, err)
	assert.Equal(t, "pdf", pdfExp.Extension())

	_, err = ForFormat("xlsx")
	require.Error(t, err)
}

func TestCSVRender(t *testing.T) {
	payload, err := CSVExporter{}.Render(sampleTable())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(payload)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "student_id,name,roll_no", lines[0])
	assert.Equal(t, "S_001,Aarav Shah,42", lines[1])
}

func TestCSVRenderMissingFieldsStayEmpty(t *testing.T) {
	table := Table{
		Columns: []string{"a", "b"},
		Rows:    []map[string]string{{"a": "1"}},
	}
	payload, err := CSVExporter{}.Render(table)
	require.NoError(t, err)
	assert.Contains(t, string(payload), "1,\n")
}

func TestCSVRenderNoColumns(t *testing.T) {
	_, err := CSVExporter{}.Render(Table{})
	require.Error(t, err)
}

func TestPDFRender(t *testing.T) {
	payload, err := PDFExporter{}.Render(sampleTable())
	require.NoError(t, err)
	require.NotEmpty(t, payload)
	assert.Equal(t, "%PDF", string(payload[:4]))
}

func TestPDFRenderNoColumns(t *testing.T) {
	_, err := PDFExporter{}.Render(Table{})
	require.Error(t, err)
}
