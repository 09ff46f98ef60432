package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/quizforge/quizforge/internal/storage"
)

func newCertRouter(t *testing.T) http.Handler {
	t.Helper()
	bs, err := storage.NewFSStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFSStore: %v", err)
	}
	r := chi.NewRouter()
	r.Post("/api/certificates/preview", PreviewCertificateHandler(bs))
	r.Get("/certificates/{filename}", DownloadCertificateHandler(bs))
	return r
}

func TestCertificatePreviewAndDownload(t *testing.T) {
	router := newCertRouter(t)

	body := `{"name":"Ada Lovelace","score":4,"total":5,"instructor":"Dr. Babbage"}`
	req := httptest.NewRequest(http.MethodPost, "/api/certificates/preview", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("preview status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode preview response: %v", err)
	}
	if !strings.HasPrefix(resp["filename"], "cert_") {
		t.Fatalf("unexpected filename %q", resp["filename"])
	}
	if resp["key"] != "certs/"+resp["filename"] {
		t.Fatalf("key %q does not match filename %q", resp["key"], resp["filename"])
	}

	req = httptest.NewRequest(http.MethodGet, "/certificates/"+resp["filename"], nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("download status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content-type = %q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")) {
		t.Fatalf("downloaded artifact is not a PDF")
	}
}

func TestCertificatePreviewValidation(t *testing.T) {
	router := newCertRouter(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"zero total", `{"name":"A","score":0,"total":0}`, http.StatusBadRequest},
		{"negative score", `{"name":"A","score":-1,"total":5}`, http.StatusBadRequest},
		{"score above total", `{"name":"A","score":6,"total":5}`, http.StatusBadRequest},
		{"blank name defaults", `{"name":"  ","score":5,"total":5,"instructor":"I"}`, http.StatusOK},
		{"bad json", `{`, http.StatusBadRequest},
	}
	for _, tc := range tests {
		req := httptest.NewRequest(http.MethodPost, "/api/certificates/preview", strings.NewReader(tc.body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != tc.want {
			t.Fatalf("%s: status = %d, want %d", tc.name, rec.Code, tc.want)
		}
	}
}

func TestCertificateDownloadUnknownFile(t *testing.T) {
	router := newCertRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/certificates/cert_missing.pdf", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
