package solver

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTraceCSV(t *testing.T) {
	p := DefaultParams()
	p.RecordTrace = true
	res, err := SolveYTM(950, semiAnnual10y(), p)
	require.NoError(t, err)
	require.NotEmpty(t, res.Trace)

	path := filepath.Join(t.TempDir(), "trace.csv")
	require.NoError(t, WriteTraceCSV(path, res.Trace))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(res.Trace)+1)
	assert.Equal(t, []string{"iter", "yield", "price", "diff", "derivative", "step"}, rows[0])
	assert.Equal(t, "CONVERGED", rows[len(rows)-1][5])
}
