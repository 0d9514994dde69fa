package forecast

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// exportColumns is the sheet header, matching the CSV column order.
var exportColumns = []string{
	ColYear,
	ColBase,
	ColLower80,
	ColUpper80,
	ColOptimistic,
	ColPessimistic,
}

// ExportWorkbook writes one sheet per forecast table into a single XLSX
// workbook at path, creating the parent directory. Cells for absent
// optional values stay empty.
func ExportWorkbook(tables []*Table, path string) error {
	if len(tables) == 0 {
		return eris.New("forecast: no tables to export")
	}

	file := xlsx.NewFile()
	for _, t := range tables {
		sheet, err := file.AddSheet(t.Indicator)
		if err != nil {
			return eris.Wrapf(err, "forecast: add sheet %s", t.Indicator)
		}

		header := sheet.AddRow()
		for _, col := range exportColumns {
			header.AddCell().SetString(col)
		}

		for _, p := range t.Points {
			row := sheet.AddRow()
			row.AddCell().SetInt(p.Year)
			row.AddCell().SetFloat(p.Base)
			for _, v := range []*float64{p.Lower80, p.Upper80, p.Optimistic, p.Pessimistic} {
				c := row.AddCell()
				if v != nil {
					c.SetFloat(*v)
				}
			}
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return eris.Wrapf(err, "forecast: create dir for %s", path)
	}
	if err := file.Save(path); err != nil {
		return eris.Wrapf(err, "forecast: save workbook %s", path)
	}
	return nil
}
