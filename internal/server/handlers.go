package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-analysis/internal/version"
	"github.com/rxtech-lab/argo-analysis/pkg/errors"
)

// healthResponse is the body of GET /health.
type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Service: "argo-analysis",
		Version: version.GetVersion(),
	})
}

func (s *Server) handleIndicators(w http.ResponseWriter, r *http.Request) {
	var req IndicatorRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	result := s.analyzer.ComputeIndicators(req.Prices, req.High, req.Low, req.Close)
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handlePatterns(w http.ResponseWriter, r *http.Request) {
	var req CandleRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	result := s.analyzer.DetectPatterns(req.OHLC)
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleStructure(w http.ResponseWriter, r *http.Request) {
	var req CandleRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	result := s.analyzer.AnalyzeStructure(req.OHLC)
	s.writeJSON(w, http.StatusOK, result)
}

// validatable is implemented by every request body type.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON body into req and runs its shape
// validation, replying 400 and returning false on any failure.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, req validatable) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeRequestDecode, "failed to decode request body", err))

		return false
	}

	if err := req.Validate(); err != nil {
		s.writeError(w, err)

		return false
	}

	return true
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error("failed to encode response", zap.Error(err))
	}
}
