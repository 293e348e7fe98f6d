package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/plainsight-dev/plainsight/internal/classical"
	"github.com/plainsight-dev/plainsight/internal/detect"
	"github.com/plainsight-dev/plainsight/internal/logging"
	"github.com/plainsight-dev/plainsight/internal/metrics"
)

// DetectRequest is the body of POST /api/v1/detect.
type DetectRequest struct {
	Ciphertext string `json:"ciphertext"`
	Cipher     string `json:"cipher,omitempty"`
	TopN       int    `json:"top_n,omitempty"`
}

// DetectResponse carries the ranked candidates.
type DetectResponse struct {
	Results []classical.Record `json:"results"`
}

// DetectFlatResponse is the simplified shape used when the caller asked a
// specific cipher for a single result.
type DetectFlatResponse struct {
	CipherUsed    string  `json:"cipher_used"`
	DecryptedText string  `json:"decrypted_text"`
	Score         float64 `json:"score"`
}

// handleDetect runs one detection request.
func (s *Server) handleDetect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	requestID := uuid.NewString()
	w.Header().Set("X-Request-ID", requestID)

	var req DetectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	hint := req.Cipher
	if strings.TrimSpace(hint) == "" {
		hint = "Auto Detect"
	}
	kind, err := detect.ParseKind(hint)
	if err != nil {
		s.reject(requestID, hint, err)
		metrics.RecordRequest(hint, "unsupported_cipher")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	topN := req.TopN
	if topN <= 0 {
		topN = s.cfg.DefaultTopN
	}

	s.audit(logging.AuditEvent{
		RequestID: requestID,
		EventType: logging.EventDetectRequest,
		Decision:  logging.DecisionAllow,
		Metadata: map[string]any{
			"cipher": string(kind),
			"top_n":  topN,
			"length": len(req.Ciphertext),
		},
	})

	done := metrics.RequestStarted()
	defer done()

	ctx := r.Context()
	if s.cfg.SolverTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.SolverTimeout)
		defer cancel()
	}

	records, err := s.cfg.Engine.Detect(ctx, req.Ciphertext, kind, topN)
	if err != nil {
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			metrics.RecordRequest(string(kind), "timeout")
			http.Error(w, "request timeout", http.StatusGatewayTimeout)
		case errors.Is(err, context.Canceled):
			metrics.RecordRequest(string(kind), "canceled")
			http.Error(w, "request canceled", http.StatusRequestTimeout)
		case errors.Is(err, classical.ErrEmptyInput):
			s.reject(requestID, hint, err)
			metrics.RecordRequest(string(kind), "empty_input")
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			metrics.RecordRequest(string(kind), "error")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	metrics.RecordRequest(string(kind), "ok")
	s.audit(logging.AuditEvent{
		RequestID: requestID,
		EventType: logging.EventDetectComplete,
		Decision:  logging.DecisionInfo,
		Metadata: map[string]any{
			"cipher":  string(kind),
			"results": len(records),
		},
	})

	// A single-result request for a specific cipher flattens to the simple
	// shape; everything else gets the full ranked list.
	if topN == 1 && kind != classical.KindAuto && len(records) == 1 {
		s.writeJSON(w, http.StatusOK, DetectFlatResponse{
			CipherUsed:    records[0].Cipher,
			DecryptedText: records[0].Text,
			Score:         records[0].Score,
		})
		return
	}
	s.writeJSON(w, http.StatusOK, DetectResponse{Results: records})
}

func (s *Server) audit(event logging.AuditEvent) {
	if s.logger == nil {
		return
	}
	_ = s.logger.Emit(event)
}

func (s *Server) reject(requestID, hint string, err error) {
	s.audit(logging.AuditEvent{
		RequestID: requestID,
		EventType: logging.EventDetectRejected,
		Decision:  logging.DecisionDeny,
		Reason:    err.Error(),
		Metadata:  map[string]any{"cipher": hint},
	})
}
