package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/pairwise/config"
	"github.com/katalvlaran/pairwise/generate"
	"github.com/katalvlaran/pairwise/server"
	"github.com/katalvlaran/pairwise/universe"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const threeBinaryBody = `{"parameters":[
	{"name":"P1","values":["a","b"]},
	{"name":"P2","values":["x","y"]},
	{"name":"P3","values":["m","n"]}]}`

func do(t *testing.T, h http.Handler, method, path, contentType string, body []byte, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

type generateBody struct {
	RunID       string               `json:"runId"`
	Cases       []universe.TestCase  `json:"cases"`
	Coverage    generate.Coverage    `json:"coverage"`
	Diagnostics generate.Diagnostics `json:"diagnostics"`
	Summary     generate.GainSummary `json:"summary"`
	Error       string               `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) generateBody {
	t.Helper()
	var b generateBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
	return b
}

// TestGenerate_OK returns a fully covering suite with a run id.
func TestGenerate_OK(t *testing.T) {
	h := server.New(config.Default(), nil).Handler()

	rec := do(t, h, http.MethodPost, "/v1/generate", "application/json", []byte(threeBinaryBody))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	b := decode(t, rec)
	_, err := uuid.Parse(b.RunID)
	require.NoError(t, err)
	require.Len(t, b.Cases, 4)
	require.True(t, b.Coverage.FullyCovered)
	require.Equal(t, generate.StopConverged, b.Diagnostics.StopReason)
	require.Equal(t, 4, b.Summary.Count)
}

// TestGenerate_WeightedOptions applies per-request overrides.
func TestGenerate_WeightedOptions(t *testing.T) {
	h := server.New(config.Default(), nil).Handler()
	body := strings.Replace(threeBinaryBody, `]}]}`, `]}],
		"options":{"strategy":"weighted","seed":7,"batchSize":10}}`, 1)

	rec := do(t, h, http.MethodPost, "/v1/generate", "application/json", []byte(body))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	b := decode(t, rec)
	require.Equal(t, "weighted", b.Diagnostics.Strategy.String())
	require.True(t, b.Coverage.FullyCovered)
}

// TestGenerate_BadRequests maps input errors to 400.
func TestGenerate_BadRequests(t *testing.T) {
	h := server.New(config.Default(), nil).Handler()
	for name, body := range map[string]string{
		"malformed json":   `{"parameters":`,
		"unknown field":    `{"params":[]}`,
		"single parameter": `{"parameters":[{"name":"A","values":["1"]}]}`,
		"unknown strategy": `{"parameters":[],"options":{"strategy":"annealing"}}`,
		"bad batch":        `{"parameters":[],"options":{"batchSize":0}}`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/v1/generate", "application/json", []byte(body))
			require.Equal(t, http.StatusBadRequest, rec.Code)
			b := decode(t, rec)
			require.NotEmpty(t, b.Error)
			require.NotEmpty(t, b.RunID)
		})
	}
}

// TestGenerate_Deadline maps an expired request deadline to 504.
func TestGenerate_Deadline(t *testing.T) {
	cfg := config.Default()
	cfg.Server.RequestTimeout = time.Nanosecond
	h := server.New(cfg, nil).Handler()

	rec := do(t, h, http.MethodPost, "/v1/generate", "application/json", []byte(threeBinaryBody))
	require.Equal(t, http.StatusGatewayTimeout, rec.Code)
}

// TestGenerate_CSV honors Accept: text/csv.
func TestGenerate_CSV(t *testing.T) {
	h := server.New(config.Default(), nil).Handler()
	rec := do(t, h, http.MethodPost, "/v1/generate", "application/json", []byte(threeBinaryBody), "Accept", "text/csv")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "P1,P2,P3\na,x,m\na,y,n\nb,x,n\nb,y,m\n", rec.Body.String())
	require.NotEmpty(t, rec.Header().Get("X-Run-Id"))
}

// TestImport parses delimited text and xlsx bodies.
func TestImport(t *testing.T) {
	h := server.New(config.Default(), nil).Handler()

	rec := do(t, h, http.MethodPost, "/v1/import", "text/plain", []byte("A;B\n1,2;x,y"))
	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		Parameters []universe.Parameter `json:"parameters"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, []universe.Parameter{
		{Name: "A", Values: []string{"1", "2"}},
		{Name: "B", Values: []string{"x", "y"}},
	}, got.Parameters)

	rec = do(t, h, http.MethodPost, "/v1/import", "text/plain", []byte("A;B\n"))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"A", "B"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"1,2", "x,y"}))
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	rec = do(t, h, http.MethodPost, "/v1/import",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

// TestHealthAndMetrics serves liveness and the run counters.
func TestHealthAndMetrics(t *testing.T) {
	s := server.New(config.Default(), nil)
	h := s.Handler()

	rec := do(t, h, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/v1/generate", "application/json", []byte(threeBinaryBody))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `pairwise_runs_total{stop_reason="converged",strategy="greedy"} 1`)
}

// TestBodyLimit rejects oversized request bodies.
func TestBodyLimit(t *testing.T) {
	cfg := config.Default()
	cfg.Server.MaxBodyBytes = 16
	h := server.New(cfg, nil).Handler()

	rec := do(t, h, http.MethodPost, "/v1/generate", "application/json", []byte(threeBinaryBody))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestListenAndServe stops cleanly when the context ends.
func TestListenAndServe(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Addr = "127.0.0.1:0"
	s := server.New(cfg, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
