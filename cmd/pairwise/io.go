package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/pairwise/generate"
	"github.com/katalvlaran/pairwise/tabular"
	"github.com/katalvlaran/pairwise/universe"
)

const stdio = "-"

// Output formats.
const (
	formatCSV  = "csv"
	formatJSON = "json"
	formatXLSX = "xlsx"
)

// outputFormat resolves an explicit --format, else the -o extension, else csv.
func outputFormat(explicit, output string) (string, error) {
	f := strings.ToLower(explicit)
	if f == "" {
		f = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
	}
	switch f {
	case formatCSV, formatJSON, formatXLSX:
		return f, nil
	case "", "txt":
		return formatCSV, nil
	default:
		return "", fmt.Errorf("unknown output format %q", f)
	}
}

func (a *app) open(path string) (io.ReadCloser, error) {
	if path == stdio {
		return io.NopCloser(a.stdin), nil
	}
	return os.Open(path)
}

// readParameters reads a template from path; .xlsx selects the workbook
// reader.
func (a *app) readParameters(path string) ([]universe.Parameter, error) {
	rc, err := a.open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return tabular.ParseParametersXLSX(rc)
	}
	return tabular.ParseParameters(bufio.NewReader(rc))
}

func (a *app) readCases(path string) ([]universe.TestCase, error) {
	rc, err := a.open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return tabular.ReadCases(rc)
}

// create opens path for writing; the returned close function reports the
// file's close error.
func (a *app) create(path string) (io.Writer, func() error, error) {
	if path == stdio {
		return a.stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func (a *app) writeResult(path, format string, res generate.Result) (err error) {
	if format == formatXLSX && path != stdio {
		return tabular.SaveCasesXLSX(path, res)
	}

	w, closeFn, err := a.create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeFn(); err == nil {
			err = cerr
		}
	}()

	switch format {
	case formatJSON:
		return tabular.WriteJSON(w, res)
	case formatXLSX:
		return tabular.WriteCasesXLSX(w, res)
	default:
		return tabular.WriteCases(w, res)
	}
}
