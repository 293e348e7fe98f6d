package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/plainsight-dev/plainsight/internal/detect"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	srv, err := NewServer(Config{
		Addr:          "127.0.0.1:0",
		Engine:        detect.New(detect.Options{}),
		DefaultTopN:   3,
		SolverTimeout: 30 * time.Second,
	})
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return srv
}

func postDetect(t *testing.T, srv *Server, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/detect", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)
	return rec
}

func TestDetectEndpointAutoMode(t *testing.T) {
	srv := newTestServer(t)
	rec := postDetect(t, srv, `{"ciphertext":"Lipps, Asvph!"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}

	var resp DetectResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Results) == 0 || len(resp.Results) > 3 {
		t.Fatalf("got %d results, want 1..3", len(resp.Results))
	}
	for i := 1; i < len(resp.Results); i++ {
		if resp.Results[i].Score > resp.Results[i-1].Score {
			t.Fatalf("results not sorted at %d", i)
		}
	}
}

func TestDetectEndpointFlattensSingleHintedResult(t *testing.T) {
	srv := newTestServer(t)
	rec := postDetect(t, srv, `{"ciphertext":"KHOOR ZRUOG","cipher":"Caesar Cipher","top_n":1}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var flat DetectFlatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &flat); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if flat.CipherUsed != "caesar" {
		t.Errorf("cipher_used = %q, want caesar", flat.CipherUsed)
	}
	if flat.DecryptedText != "HELLO WORLD" {
		t.Errorf("decrypted_text = %q, want \"HELLO WORLD\"", flat.DecryptedText)
	}
	if flat.Score <= 0 {
		t.Errorf("score = %v, want > 0", flat.Score)
	}
	if strings.Contains(rec.Body.String(), "results") {
		t.Error("flat response carries a results field")
	}
}

func TestDetectEndpointRespectsTopN(t *testing.T) {
	srv := newTestServer(t)
	rec := postDetect(t, srv, `{"ciphertext":"KHOOR ZRUOG","cipher":"Caesar Cipher","top_n":2}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp DetectResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(resp.Results))
	}
}

func TestDetectEndpointUnsupportedCipher(t *testing.T) {
	srv := newTestServer(t)
	rec := postDetect(t, srv, `{"ciphertext":"KHOOR","cipher":"ROT13"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "unsupported cipher") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestDetectEndpointInvalidJSON(t *testing.T) {
	srv := newTestServer(t)
	rec := postDetect(t, srv, `{"ciphertext":`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestDetectEndpointEmptyInput(t *testing.T) {
	srv := newTestServer(t)
	for _, body := range []string{`{"ciphertext":""}`, `{"ciphertext":"123 !!!"}`} {
		rec := postDetect(t, srv, body)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("body %s: status = %d, want 422", body, rec.Code)
		}
	}
}

func TestDetectEndpointMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/detect", nil)
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("body = %q, want ok", rec.Body.String())
	}
}

func TestNewServerValidation(t *testing.T) {
	if _, err := NewServer(Config{Engine: detect.New(detect.Options{})}); err == nil {
		t.Error("missing address accepted")
	}
	if _, err := NewServer(Config{Addr: "127.0.0.1:0"}); err == nil {
		t.Error("missing engine accepted")
	}
}
