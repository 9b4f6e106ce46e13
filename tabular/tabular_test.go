package tabular_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/pairwise/generate"
	"github.com/katalvlaran/pairwise/tabular"
	"github.com/katalvlaran/pairwise/universe"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// TestParseParameters_Basic is the canonical two-column import.
func TestParseParameters_Basic(t *testing.T) {
	params, err := tabular.ParseParametersString("A;B\n1,2;x,y")
	require.NoError(t, err)
	require.Equal(t, []universe.Parameter{
		{Name: "A", Values: []string{"1", "2"}},
		{Name: "B", Values: []string{"x", "y"}},
	}, params)
}

// TestParseParameters_MultiRowDedup merges rows, trims and deduplicates.
func TestParseParameters_MultiRowDedup(t *testing.T) {
	in := strings.Join([]string{
		"  OS ; Browser ;Locale",
		"",
		"linux, mac ; chrome;en",
		"linux;firefox, chrome ;",
		"   ",
		"windows;;de,en",
	}, "\r\n")

	params, err := tabular.ParseParametersString(in)
	require.NoError(t, err)
	require.Equal(t, []universe.Parameter{
		{Name: "OS", Values: []string{"linux", "mac", "windows"}},
		{Name: "Browser", Values: []string{"chrome", "firefox"}},
		{Name: "Locale", Values: []string{"en", "de"}},
	}, params)
}

// TestParseParameters_PositionalColumns keeps columns aligned when a header
// cell is empty, and drops parameters without values.
func TestParseParameters_PositionalColumns(t *testing.T) {
	params, err := tabular.ParseParametersString("A;;B;C\n1;ignored;2;\n3;;;;extra")
	require.NoError(t, err)
	require.Equal(t, []universe.Parameter{
		{Name: "A", Values: []string{"1", "3"}},
		{Name: "B", Values: []string{"2"}},
	}, params)
}

// TestParseParameters_Errors covers every ErrImportFormat class.
func TestParseParameters_Errors(t *testing.T) {
	for name, in := range map[string]string{
		"empty":         "",
		"header only":   "A;B\n",
		"blank lines":   "\n  \n",
		"no valid name": " ; \n1;2",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := tabular.ParseParametersString(in)
			require.True(t, errors.Is(err, tabular.ErrImportFormat), "got %v", err)
		})
	}
}

// TestWriteParameters_RoundTrip exports a template and imports it back.
func TestWriteParameters_RoundTrip(t *testing.T) {
	params := []universe.Parameter{
		{Name: "OS", Values: []string{"linux", "mac"}},
		{Name: "Shell; login", Values: []string{"bash", "zsh"}},
	}
	var buf bytes.Buffer
	require.NoError(t, tabular.WriteParameters(&buf, params))
	require.Equal(t, "OS;\"Shell; login\"\nlinux,mac;bash,zsh\n", buf.String())

	back, err := tabular.ParseParameters(&buf)
	require.NoError(t, err)
	require.Equal(t, params, back)
}

func threeBinaryResult(t *testing.T) generate.Result {
	t.Helper()
	res, err := generate.Generate(context.Background(), []universe.Parameter{
		{Name: "P1", Values: []string{"a", "b"}},
		{Name: "P2", Values: []string{"x", "y"}},
		{Name: "P3", Values: []string{"m", "n"}},
	})
	require.NoError(t, err)
	return res
}

// TestWriteCases_ReadCases round-trips the case table and verifies it.
func TestWriteCases_ReadCases(t *testing.T) {
	res := threeBinaryResult(t)

	var buf bytes.Buffer
	require.NoError(t, tabular.WriteCases(&buf, res))
	require.Equal(t, "P1,P2,P3\na,x,m\na,y,n\nb,x,n\nb,y,m\n", buf.String())

	cases, err := tabular.ReadCases(&buf)
	require.NoError(t, err)
	require.Equal(t, res.Cases, cases)

	cov, err := generate.Verify(res.Parameters, cases)
	require.NoError(t, err)
	require.True(t, cov.FullyCovered)
}

// TestReadCases_Errors rejects ragged rows and empty input.
func TestReadCases_Errors(t *testing.T) {
	_, err := tabular.ReadCases(strings.NewReader(""))
	require.ErrorIs(t, err, tabular.ErrImportFormat)

	_, err = tabular.ReadCases(strings.NewReader("A,B\n1\n"))
	require.ErrorIs(t, err, tabular.ErrImportFormat)
}

// TestWriteJSON includes coverage, diagnostics and the gain summary.
func TestWriteJSON(t *testing.T) {
	res := threeBinaryResult(t)

	var buf bytes.Buffer
	require.NoError(t, tabular.WriteJSON(&buf, res))

	var doc struct {
		Cases       []map[string]string `json:"cases"`
		Coverage    generate.Coverage   `json:"coverage"`
		Diagnostics struct {
			Strategy   string `json:"strategy"`
			StopReason string `json:"stopReason"`
		} `json:"diagnostics"`
		Summary generate.GainSummary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Cases, 4)
	require.True(t, doc.Coverage.FullyCovered)
	require.Equal(t, "greedy", doc.Diagnostics.Strategy)
	require.Equal(t, "converged", doc.Diagnostics.StopReason)
	require.Equal(t, 3.0, doc.Summary.Mean)
}

// TestXLSX_CasesWorkbook writes a workbook and reads the sheets back.
func TestXLSX_CasesWorkbook(t *testing.T) {
	res := threeBinaryResult(t)
	path := filepath.Join(t.TempDir(), "cases.xlsx")
	require.NoError(t, tabular.SaveCasesXLSX(path, res))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Cases")
	require.NoError(t, err)
	require.Equal(t, append([][]string{res.Header()}, res.Rows()...), rows)

	v, err := f.GetCellValue("Coverage", "B2")
	require.NoError(t, err)
	require.Equal(t, "12", v)

	var buf bytes.Buffer
	require.NoError(t, tabular.WriteCasesXLSX(&buf, res))
	require.NotZero(t, buf.Len())
}

// TestParseParametersXLSX reads the template layout from the first sheet.
func TestParseParametersXLSX(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"A", "B"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"1, 2", "x"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{"2", "y"}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	params, err := tabular.ParseParametersXLSX(&buf)
	require.NoError(t, err)
	require.Equal(t, []universe.Parameter{
		{Name: "A", Values: []string{"1", "2"}},
		{Name: "B", Values: []string{"x", "y"}},
	}, params)

	_, err = tabular.ParseParametersXLSX(strings.NewReader("not a workbook"))
	require.ErrorIs(t, err, tabular.ErrImportFormat)
}
