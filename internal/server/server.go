// Package server exposes the catenary fit over an HTTP JSON API for
// interactive callers such as slider-driven UIs. Each request constructs its
// own fitter, so the handler is safe for concurrent use without locks.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/catenalab/catenary/internal/catenary"
	"github.com/catenalab/catenary/pkg/constants"
	"github.com/catenalab/catenary/pkg/mathutil"
	"github.com/catenalab/catenary/pkg/sampling"
	"github.com/catenalab/catenary/pkg/validation"
	"go.uber.org/zap"
)

type handler struct {
	logger     *zap.Logger
	maxSamples int
	version    string
}

// NewHandler constructs the HTTP handler that serves the fit API.
func NewHandler(logger *zap.Logger, maxSamples int, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxSamples <= 0 {
		maxSamples = constants.DefaultMaxSampleCount
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxSamples: maxSamples, version: trimmedVersion}

	mux := http.NewServeMux()

	// Fit API endpoint (query parameters or JSON body)
	mux.HandleFunc("/api/fit", h.handleFit)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type fitRequest struct {
	Diameter  float64 `json:"diameter"`
	Span      float64 `json:"span"`
	Precision float64 `json:"precision,omitempty"`
	Samples   int     `json:"samples,omitempty"`
}

type fitResponse struct {
	Diameter       float64           `json:"diameter"`
	Span           float64           `json:"span"`
	A              float64           `json:"a"`
	B              float64           `json:"b"`
	Error          float64           `json:"error"`
	Iterations     int               `json:"iterations"`
	Converged      bool              `json:"converged"`
	Area           float64           `json:"area"`
	MidpointRadius float64           `json:"midpointRadius"`
	MidpointDip    float64           `json:"midpointDip"`
	MidpointGap    float64           `json:"midpointGap"`
	Warnings       []string          `json:"warnings,omitempty"`
	Samples        []sampling.Point  `json:"samples"`
	Endpoints      [2]sampling.Point `json:"endpoints"`
	Duration       string            `json:"duration"`
}

func (h *handler) handleFit(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req, err := parseFitRequest(r)
	if err != nil {
		if errors.Is(err, errMethodNotAllowed) {
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	spec := catenary.Spec{Diameter: req.Diameter, Span: req.Span}
	fitter, err := catenary.NewFitter(spec, h.logger)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	precision := req.Precision
	if precision <= 0 {
		precision = constants.DefaultPrecision
	}
	samples := req.Samples
	if samples <= 0 {
		samples = constants.DefaultSampleCount
	}
	samples = mathutil.ClampInt(samples, constants.MinSampleCount, h.maxSamples)

	result := fitter.Fit(precision)

	resp := fitResponse{
		Diameter:       spec.Diameter,
		Span:           spec.Span,
		A:              result.A,
		B:              result.B,
		Error:          result.Err,
		Iterations:     result.Iterations,
		Converged:      result.Converged,
		Area:           catenary.AreaUnderCurve(spec, result.Params),
		MidpointRadius: catenary.MidpointRadius(spec, result.Params),
		MidpointDip:    catenary.MidpointDip(spec, result.Params),
		MidpointGap:    catenary.MidpointGap(spec, result.Params),
		Warnings:       validation.SpecWarnings(spec),
		Samples:        sampling.Curve(spec, result.Params, samples),
		Endpoints:      sampling.Endpoints(spec),
		Duration:       time.Since(start).String(),
	}

	h.logger.Debug("fit request served",
		zap.String("op", "server.handleFit"),
		zap.Float64("diameter", spec.Diameter),
		zap.Float64("span", spec.Span),
		zap.Bool("converged", result.Converged),
		zap.Duration("duration", time.Since(start)),
	)

	h.writeJSON(w, resp)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	h.writeJSON(w, map[string]string{"version": h.version})
}

// writeJSON encodes the payload to a buffer before touching the response so
// an encoding failure can still produce a 500 instead of a committed 200
// with an empty body.
func (h *handler) writeJSON(w http.ResponseWriter, payload interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		h.logger.Error("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(buf.Bytes())
}

var errMethodNotAllowed = errors.New("method not allowed")

func parseFitRequest(r *http.Request) (fitRequest, error) {
	switch r.Method {
	case http.MethodGet:
		return parseFitQuery(r.URL.Query())
	case http.MethodPost:
		var req fitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req, fmt.Errorf("invalid JSON body: %w", err)
		}
		return req, nil
	default:
		return fitRequest{}, errMethodNotAllowed
	}
}

func parseFitQuery(values url.Values) (fitRequest, error) {
	var req fitRequest

	diameter, err := requiredFloat(values, "diameter")
	if err != nil {
		return req, err
	}
	span, err := requiredFloat(values, "span")
	if err != nil {
		return req, err
	}
	req.Diameter = diameter
	req.Span = span

	if raw := values.Get("precision"); raw != "" {
		precision, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return req, fmt.Errorf("invalid precision %q: %w", raw, err)
		}
		req.Precision = precision
	}

	if raw := values.Get("samples"); raw != "" {
		samples, err := strconv.Atoi(raw)
		if err != nil {
			return req, fmt.Errorf("invalid samples %q: %w", raw, err)
		}
		req.Samples = samples
	}

	return req, nil
}

func requiredFloat(values url.Values, key string) (float64, error) {
	raw := values.Get(key)
	if raw == "" {
		return 0, fmt.Errorf("missing required parameter %q", key)
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return parsed, nil
}
