package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const template = "P1;P2;P3\na,b;x,y;m,n\n"

type runResult struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, stdin string, args ...string) runResult {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &out, &errOut)
	return runResult{code: code, stdout: out.String(), stderr: errOut.String()}
}

func TestGenerate_StdinToStdout(t *testing.T) {
	r := runCLI(t, template, "generate")
	require.Equal(t, 0, r.code, r.stderr)
	require.Equal(t, "P1,P2,P3\na,x,m\na,y,n\nb,x,n\nb,y,m\n", r.stdout)
}

func TestGenerate_JSONFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "params.csv")
	out := filepath.Join(dir, "cases.json")
	require.NoError(t, os.WriteFile(in, []byte(template), 0o644))

	r := runCLI(t, "", "generate", "-i", in, "-o", out, "--strategy", "weighted", "--seed", "3")
	require.Equal(t, 0, r.code, r.stderr)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var doc struct {
		Coverage struct {
			FullyCovered bool `json:"fullyCovered"`
		} `json:"coverage"`
		Diagnostics struct {
			Strategy string `json:"strategy"`
		} `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	require.True(t, doc.Coverage.FullyCovered)
	require.Equal(t, "weighted", doc.Diagnostics.Strategy)
}

func TestGenerate_XLSXFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "cases.xlsx")
	r := runCLI(t, template, "generate", "-o", out)
	require.Equal(t, 0, r.code, r.stderr)

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Cases")
	require.NoError(t, err)
	require.Len(t, rows, 5)
}

// TestGenerate_Degraded warns when nine single-candidate rounds cannot cover
// all 54 pairs of four ternary parameters, and fails only under --strict.
func TestGenerate_Degraded(t *testing.T) {
	args := []string{"generate", "--strategy", "weighted", "--batch", "1", "--budget-multiplier", "1", "--checkpoint", "0"}
	in := "A;B;C;D\n1,2,3;1,2,3;1,2,3;1,2,3\n"

	r := runCLI(t, in, args...)
	require.Equal(t, 0, r.code, r.stderr)
	require.Contains(t, r.stderr, "uncovered")

	r = runCLI(t, in, append(args, "--strict")...)
	require.Equal(t, 1, r.code)
	require.Contains(t, r.stderr, "coverage incomplete")
}

func TestGenerate_Errors(t *testing.T) {
	for name, tc := range map[string]struct {
		stdin string
		args  []string
	}{
		"single parameter": {"A\n1,2\n", []string{"generate"}},
		"bad template":     {"A;B\n", []string{"generate"}},
		"bad format":       {template, []string{"generate", "--format", "yaml"}},
		"bad strategy":     {template, []string{"generate", "--strategy", "annealing"}},
		"bad log level":    {template, []string{"generate", "--log-level", "trace"}},
		"missing input":    {"", []string{"generate", "-i", "/nonexistent/params.csv"}},
	} {
		t.Run(name, func(t *testing.T) {
			r := runCLI(t, tc.stdin, tc.args...)
			require.Equal(t, 1, r.code)
			require.True(t, strings.HasPrefix(r.stderr, "pairwise: "), r.stderr)
		})
	}
}

func TestVerify(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "params.csv")
	require.NoError(t, os.WriteFile(in, []byte(template), 0o644))

	r := runCLI(t, "P1,P2,P3\na,x,m\na,y,n\nb,x,n\nb,y,m\n", "verify", "-i", in, "-c", "-")
	require.Equal(t, 0, r.code, r.stderr)
	require.Contains(t, r.stdout, "covered pairs: 12/12 (100.00%)")

	r = runCLI(t, "P1,P2,P3\na,x,m\n", "verify", "-i", in, "-c", "-", "--strict")
	require.Equal(t, 1, r.code)
	require.Contains(t, r.stdout, "covered pairs: 3/12")
	require.Contains(t, r.stdout, "missing pairs: 9")
}

func TestTemplate(t *testing.T) {
	r := runCLI(t, " B ; A\nx, y ,x;1\n;2\n", "template")
	require.Equal(t, 0, r.code, r.stderr)
	require.Equal(t, "B;A\nx,y;1,2\n", r.stdout)
}

func TestConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "pairwise.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("generation:\n  strategy: weighted\n  seed: 11\n"), 0o644))

	r := runCLI(t, template, "--config", cfgPath, "generate", "--format", "json")
	require.Equal(t, 0, r.code, r.stderr)
	require.Contains(t, r.stdout, `"strategy": "weighted"`)
}
