package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/addis-insights/inclusion-cli/internal/model"
)

// Options controls CSV loading.
type Options struct {
	// Encoding is an IANA charset label for the input file, e.g.
	// "latin-1". Empty means UTF-8.
	Encoding string
}

// Load reads a CSV file into a Table. The first row is the header and
// every cell is whitespace-trimmed. A header-only file yields a valid
// empty table.
func Load(path string, opts Options) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: open %s", path)
	}
	defer f.Close()

	var r io.Reader = f
	if opts.Encoding != "" {
		enc, err := htmlindex.Get(opts.Encoding)
		if err != nil {
			return nil, eris.Wrapf(err, "dataset: unknown encoding %q", opts.Encoding)
		}
		r = enc.NewDecoder().Reader(f)
	}

	cr := csv.NewReader(r)
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: parse %s", path)
	}
	if len(records) == 0 {
		return nil, eris.Errorf("dataset: %s has no header row", path)
	}

	header := make([]string, len(records[0]))
	for i, c := range records[0] {
		header[i] = strings.TrimSpace(c)
	}

	tbl := NewTable(header)
	for _, rec := range records[1:] {
		row := make([]string, len(rec))
		for i, c := range rec {
			row[i] = strings.TrimSpace(c)
		}
		tbl.Rows = append(tbl.Rows, row)
	}
	return tbl, nil
}

// LoadUnified loads the unified records CSV. The record_type column is
// required; everything else is tolerated.
func LoadUnified(path string, opts Options) (*Table, error) {
	tbl, err := Load(path, opts)
	if err != nil {
		return nil, err
	}
	if !tbl.HasColumn(ColRecordType) {
		return nil, eris.Errorf("dataset: %s missing required column %q", path, ColRecordType)
	}
	return tbl, nil
}

// LoadReferenceCodes loads the code to label reference table. Rows with
// an empty code are skipped.
func LoadReferenceCodes(path string, opts Options) (model.ReferenceTable, error) {
	tbl, err := Load(path, opts)
	if err != nil {
		return nil, err
	}
	for _, col := range []string{"code", "label"} {
		if !tbl.HasColumn(col) {
			return nil, eris.Errorf("dataset: %s missing required column %q", path, col)
		}
	}

	ref := make(model.ReferenceTable, tbl.Len())
	for i := 0; i < tbl.Len(); i++ {
		code, _ := tbl.Value(i, "code")
		if code == "" {
			continue
		}
		label, _ := tbl.Value(i, "label")
		ref[code] = label
	}
	return ref, nil
}
