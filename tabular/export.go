package tabular

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strings"

	"github.com/katalvlaran/pairwise/generate"
	"github.com/katalvlaran/pairwise/universe"
)

// WriteParameters writes params in the template format accepted by
// ParseParameters: a header row and a single row of comma-joined values.
func WriteParameters(w io.Writer, params []universe.Parameter) error {
	header := make([]string, len(params))
	row := make([]string, len(params))
	for i, p := range params {
		header[i] = p.Name
		row[i] = strings.Join(p.Values, valueSeparator)
	}

	cw := csv.NewWriter(w)
	cw.Comma = cellSeparator
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.Write(row); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// WriteCases writes the test cases of res as a comma-separated table.
func WriteCases(w io.Writer, res generate.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(res.Header()); err != nil {
		return err
	}
	for _, row := range res.Rows() {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// jsonDocument is the JSON export layout: the result plus its gain summary.
type jsonDocument struct {
	generate.Result
	Summary generate.GainSummary `json:"summary"`
}

// WriteJSON writes res and its gain summary as indented JSON.
func WriteJSON(w io.Writer, res generate.Result) error {
	sum, err := res.Summary()
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonDocument{Result: res, Summary: sum})
}
