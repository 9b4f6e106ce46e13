package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/pairwise/universe"
)

const (
	cellSeparator  = ';'
	valueSeparator = ","
)

// ParseParameters reads a parameter template.
//
// Errors (wrapping ErrImportFormat): fewer than one header and one data
// row, no non-empty parameter name, or unreadable quoting.
func ParseParameters(r io.Reader) ([]universe.Parameter, error) {
	cr := csv.NewReader(r)
	cr.Comma = cellSeparator
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImportFormat, err)
	}
	return parseRecords(records)
}

// ParseParametersString is ParseParameters over a string.
func ParseParametersString(s string) ([]universe.Parameter, error) {
	return ParseParameters(strings.NewReader(s))
}

// orderedSet keeps first-occurrence order of distinct strings.
type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func (s *orderedSet) add(v string) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}

func parseRecords(records [][]string) ([]universe.Parameter, error) {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		if !blankRecord(rec) {
			rows = append(rows, rec)
		}
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: a header row and at least one data row are required", ErrImportFormat)
	}

	header := make([]string, len(rows[0]))
	named := 0
	for i, name := range rows[0] {
		header[i] = strings.TrimSpace(name)
		if header[i] != "" {
			named++
		}
	}
	if named == 0 {
		return nil, fmt.Errorf("%w: no valid parameter names in header", ErrImportFormat)
	}

	values := make([]orderedSet, len(header))
	for _, row := range rows[1:] {
		for col, cell := range row {
			if col >= len(header) || header[col] == "" {
				continue
			}
			for _, v := range strings.Split(cell, valueSeparator) {
				if v = strings.TrimSpace(v); v != "" {
					values[col].add(v)
				}
			}
		}
	}

	params := make([]universe.Parameter, 0, named)
	for col, name := range header {
		if name == "" || len(values[col].items) == 0 {
			continue
		}
		params = append(params, universe.Parameter{Name: name, Values: values[col].items})
	}
	return params, nil
}

func blankRecord(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// ReadCases reads a comma-separated test-case table written by WriteCases.
// Every row must have one cell per header column.
func ReadCases(r io.Reader) ([]universe.TestCase, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImportFormat, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: missing header row", ErrImportFormat)
	}

	header := records[0]
	cases := make([]universe.TestCase, 0, len(records)-1)
	for n, rec := range records[1:] {
		if blankRecord(rec) {
			continue
		}
		if len(rec) != len(header) {
			return nil, fmt.Errorf("%w: row %d has %d cells, header has %d", ErrImportFormat, n+2, len(rec), len(header))
		}
		tc := make(universe.TestCase, len(header))
		for i, name := range header {
			if v := strings.TrimSpace(rec[i]); v != "" {
				tc[strings.TrimSpace(name)] = v
			}
		}
		cases = append(cases, tc)
	}
	return cases, nil
}
