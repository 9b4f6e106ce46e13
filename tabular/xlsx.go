package tabular

import (
	"fmt"
	"io"

	"github.com/katalvlaran/pairwise/generate"
	"github.com/katalvlaran/pairwise/universe"
	"github.com/xuri/excelize/v2"
)

const (
	casesSheet    = "Cases"
	coverageSheet = "Coverage"
	defaultSheet  = "Sheet1"
)

// ParseParametersXLSX reads a parameter template from the first sheet of a
// workbook. Cells follow the text template: one parameter per column, each
// data cell a comma-separated value list.
func ParseParametersXLSX(r io.Reader) ([]universe.Parameter, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImportFormat, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrImportFormat)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImportFormat, err)
	}
	return parseRecords(rows)
}

// WriteCasesXLSX writes res as an xlsx workbook to w.
func WriteCasesXLSX(w io.Writer, res generate.Result) error {
	f, err := casesWorkbook(res)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

// SaveCasesXLSX writes res as an xlsx workbook at path.
func SaveCasesXLSX(path string, res generate.Result) error {
	f, err := casesWorkbook(res)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

func casesWorkbook(res generate.Result) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(defaultSheet, casesSheet); err != nil {
		f.Close()
		return nil, err
	}

	if err := writeSheetRow(f, casesSheet, 1, res.Header()); err != nil {
		f.Close()
		return nil, err
	}
	for r, row := range res.Rows() {
		if err := writeSheetRow(f, casesSheet, r+2, row); err != nil {
			f.Close()
			return nil, err
		}
	}

	if _, err := f.NewSheet(coverageSheet); err != nil {
		f.Close()
		return nil, err
	}
	d := res.Diagnostics
	summary := [][]interface{}{
		{"Covered pairs", res.Coverage.CoveredPairs},
		{"Total pairs", res.Coverage.TotalPairs},
		{"Ratio", res.Coverage.Ratio},
		{"Fully covered", res.Coverage.FullyCovered},
		{"Strategy", d.Strategy.String()},
		{"Stop reason", string(d.StopReason)},
		{"Test cases", len(res.Cases)},
		{"Minimum required", d.MinimumRequired},
		{"Rounds", d.TotalRounds},
		{"Restarts", d.Restarts},
	}
	for r, kv := range summary {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			f.Close()
			return nil, err
		}
		row := kv
		if err := f.SetSheetRow(coverageSheet, cell, &row); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

func writeSheetRow(f *excelize.File, sheet string, rowIdx int, values []string) error {
	for c, v := range values {
		cell, err := excelize.CoordinatesToCellName(c+1, rowIdx)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
