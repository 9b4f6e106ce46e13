package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/katalvlaran/pairwise/candidate"
	"github.com/katalvlaran/pairwise/generate"
	"github.com/katalvlaran/pairwise/tabular"
	"github.com/katalvlaran/pairwise/universe"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// optionsRequest overrides the configured generation defaults field by field.
type optionsRequest struct {
	Strategy              *string  `json:"strategy"`
	BatchSize             *int     `json:"batchSize"`
	RoundBudgetMultiplier *int     `json:"roundBudgetMultiplier"`
	StagnationThreshold   *float64 `json:"stagnationThreshold"`
	CheckpointInterval    *int     `json:"checkpointInterval"`
	MaxRestarts           *int     `json:"maxRestarts"`
	Seed                  *int64   `json:"seed"`
}

type generateRequest struct {
	Parameters []universe.Parameter `json:"parameters"`
	Options    optionsRequest       `json:"options"`
}

type generateResponse struct {
	RunID string `json:"runId"`
	generate.Result
	Summary generate.GainSummary `json:"summary"`
}

type errorResponse struct {
	RunID string `json:"runId,omitempty"`
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	runID := uuid.NewString()
	logger := s.logger.With(slog.String("runId", runID))

	var req generateRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{RunID: runID, Error: "decode request: " + err.Error()})
		return
	}

	opts, err := s.options(req.Options)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{RunID: runID, Error: err.Error()})
		return
	}
	opts.Logger = logger
	opts.Observer = s.recorder

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.Server.RequestTimeout)
	defer cancel()

	res, err := generate.Run(ctx, req.Parameters, opts)
	switch {
	case errors.Is(err, universe.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorResponse{RunID: runID, Error: err.Error()})
		return
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("pairwise: generation deadline exceeded", slog.Int("cases", len(res.Cases)))
		writeJSON(w, http.StatusGatewayTimeout, errorResponse{RunID: runID, Error: err.Error()})
		return
	case err != nil:
		logger.Warn("pairwise: generation aborted", slog.Any("error", err))
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{RunID: runID, Error: err.Error()})
		return
	}

	if strings.Contains(r.Header.Get("Accept"), "text/csv") {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("X-Run-Id", runID)
		if err := tabular.WriteCases(w, res); err != nil {
			logger.Error("pairwise: write csv", slog.Any("error", err))
		}
		return
	}

	sum, err := res.Summary()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{RunID: runID, Error: err.Error()})
		return
	}
	logger.Info("pairwise: generated",
		slog.String("strategy", res.Diagnostics.Strategy.String()),
		slog.String("stop", string(res.Diagnostics.StopReason)),
		slog.Int("cases", len(res.Cases)),
		slog.Float64("ratio", res.Coverage.Ratio),
	)
	writeJSON(w, http.StatusOK, generateResponse{RunID: runID, Result: res, Summary: sum})
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	var (
		params []universe.Parameter
		err    error
	)
	if strings.HasPrefix(r.Header.Get("Content-Type"), xlsxContentType) {
		params, err = tabular.ParseParametersXLSX(r.Body)
	} else {
		params, err = tabular.ParseParameters(r.Body)
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"parameters": params})
}

// options layers a request's overrides on the configured defaults.
func (s *Server) options(req optionsRequest) (generate.Options, error) {
	g := s.cfg.Generation
	if req.Strategy != nil {
		g.Strategy = *req.Strategy
	}
	if req.BatchSize != nil {
		g.BatchSize = *req.BatchSize
	}
	if req.RoundBudgetMultiplier != nil {
		g.RoundBudgetMultiplier = *req.RoundBudgetMultiplier
	}
	if req.StagnationThreshold != nil {
		g.StagnationThreshold = *req.StagnationThreshold
	}
	if req.CheckpointInterval != nil {
		g.CheckpointInterval = *req.CheckpointInterval
	}
	if req.MaxRestarts != nil {
		g.MaxRestarts = *req.MaxRestarts
	}
	if req.Seed != nil {
		g.Seed = *req.Seed
	}

	strategy, err := candidate.ParseStrategy(g.Strategy)
	if err != nil {
		return generate.Options{}, err
	}
	o := generate.Options{
		Strategy:              strategy,
		BatchSize:             g.BatchSize,
		RoundBudgetMultiplier: g.RoundBudgetMultiplier,
		StagnationThreshold:   g.StagnationThreshold,
		CheckpointInterval:    g.CheckpointInterval,
		MaxRestarts:           g.MaxRestarts,
		Seed:                  g.Seed,
	}
	if err := o.Validate(); err != nil {
		return generate.Options{}, fmt.Errorf("options: %w", err)
	}
	return o, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
