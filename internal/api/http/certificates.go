package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/quizforge/quizforge/internal/certificate"
	"github.com/quizforge/quizforge/internal/storage"
)

// POST /api/certificates/preview
// Renders a certificate with the same fixed layout the generated script
// uses, stores it, and returns where to fetch it.
func PreviewCertificateHandler(bs storage.BlobStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req certificate.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		if req.Total <= 0 {
			http.Error(w, "total must be positive", http.StatusBadRequest)
			return
		}
		if req.Score < 0 || req.Score > req.Total {
			http.Error(w, "score out of range", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			req.Name = "Anonymous"
		}

		art, err := certificate.Render(req)
		if err != nil {
			http.Error(w, "render: "+err.Error(), http.StatusInternalServerError)
			return
		}
		key := storage.CertKey(art.Filename)
		if _, err := bs.Put(key, bytes.NewReader(art.Content)); err != nil {
			http.Error(w, "store error: "+err.Error(), http.StatusInternalServerError)
			return
		}
		u, err := bs.SignedURL(key)
		if err != nil {
			http.Error(w, "signed url: "+err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"filename": art.Filename,
			"key":      key,
			"url":      u,
		})
	}
}

// GET /certificates/{filename} -> streams the stored PDF.
func DownloadCertificateHandler(bs storage.BlobStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename := chi.URLParam(r, "filename")
		if filename == "" {
			http.Error(w, "filename required", http.StatusBadRequest)
			return
		}
		rc, err := bs.Get(storage.CertKey(filename))
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer rc.Close()
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		_, _ = io.Copy(w, rc)
	}
}
