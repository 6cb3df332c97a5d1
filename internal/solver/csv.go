package solver

import (
	"encoding/csv"
	"os"
	"strconv"
)

func WriteTraceCSV(path string, trace []TraceRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"iter",
		"yield",
		"price",
		"diff",
		"derivative",
		"step",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range trace {
		row := []string{
			strconv.Itoa(r.Iter),
			fmtFloat(r.Yield),
			fmtFloat(r.Price),
			fmtFloat(r.Diff),
			fmtFloat(r.Derivative),
			string(r.Step),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 8, 64)
}
