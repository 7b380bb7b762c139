package report

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
)

func TestSaveWorkbookRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "screening.xlsx")
	require.NoError(t, SaveWorkbook(sampleRecords(), path))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)

	require.Len(t, f.Sheets, 1)
	sheet := f.Sheets[0]
	require.Len(t, sheet.Rows, 3)

	assert.Equal(t, "Name", sheet.Rows[0].Cells[1].Value)
	assert.Equal(t, "Acme", sheet.Rows[1].Cells[1].Value)

	rev, err := sheet.Rows[1].Cells[4].Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(25_000_000), rev)

	// Estimated-flag cells are "yes" or empty.
	assert.Equal(t, "yes", sheet.Rows[2].Cells[7].Value)
	assert.Equal(t, "", sheet.Rows[1].Cells[7].Value)
}
