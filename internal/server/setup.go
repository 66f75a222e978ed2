package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Aleph-Alpha/embedding-proxy/internal/metrics"
	"github.com/Aleph-Alpha/embedding-proxy/internal/tracer"
)

// Server is the public HTTP surface of the proxy. It accepts one text per
// request, hands it to the batching core, and renders the reply.
type Server struct {
	// HTTP is the underlying server; exposed for lifecycle management.
	HTTP *http.Server

	submitter Submitter
	log       Logger
	metrics   *metrics.Metrics
	trc       *tracer.Tracer
}

// NewServer constructs the HTTP server with its routes:
//
//	POST /embed   {"inputs": "text"} -> {"embedding": [floats...]}
//	GET  /healthz liveness probe
func NewServer(cfg Config, submitter Submitter, log Logger, m *metrics.Metrics, trc *tracer.Tracer) *Server {
	s := &Server{
		submitter: submitter,
		log:       log,
		metrics:   m,
		trc:       trc,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/embed", s.handleEmbed)
	mux.HandleFunc("/healthz", s.handleHealthz)

	s.HTTP = &http.Server{
		Addr:    cfg.Address,
		Handler: mux,
	}

	return s
}

// handleEmbed parses and validates the request, submits the text to the
// batching core, awaits the reply and renders it. Validation failures never
// reach the core; a Job only exists for well-formed input.
func (s *Server) handleEmbed(w http.ResponseWriter, r *http.Request) {
	defer s.metrics.RecordRequestDuration(time.Now(), "/embed")

	ctx, span := s.trc.StartSpan(r.Context(), "embed-request")
	defer span.End()

	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "only POST is supported"})
		return
	}

	var req EmbedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
		return
	}
	if req.Inputs == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "inputs must not be empty"})
		return
	}

	embedding, err := s.submitter.Submit(ctx, req.Inputs)
	if err != nil {
		s.trc.RecordErrorOnSpan(span, err)
		s.log.Warn("Embed request failed", err, nil)
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, EmbedResponse{Embedding: embedding})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
