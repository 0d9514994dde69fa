package dataset

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
)

// WriteCSV writes the table to path, creating the parent directory.
// Rows shorter than the header are padded with empty cells.
func WriteCSV(tbl *Table, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return eris.Wrapf(err, "dataset: create dir for %s", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "dataset: create %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(tbl.Columns); err != nil {
		return eris.Wrapf(err, "dataset: write header to %s", path)
	}
	for _, row := range tbl.Rows {
		rec := row
		if len(rec) < len(tbl.Columns) {
			rec = make([]string, len(tbl.Columns))
			copy(rec, row)
		}
		if err := w.Write(rec); err != nil {
			return eris.Wrapf(err, "dataset: write row to %s", path)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return eris.Wrapf(err, "dataset: flush %s", path)
	}
	if err := f.Close(); err != nil {
		return eris.Wrapf(err, "dataset: close %s", path)
	}
	return nil
}
