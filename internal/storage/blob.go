package storage

import "io"

// BlobStore is the seam between certificate rendering and persistence. The
// service renders certificates as in-memory buffers; whether an artifact
// lands on local disk or somewhere else is the boundary layer's decision.
type BlobStore interface {
	Put(key string, r io.Reader) (string, error) // returns canonical key
	Get(key string) (io.ReadCloser, error)
	SignedURL(key string) (string, error) // fs returns "file://..." for dev
}

// CertKey namespaces a certificate filename within the store.
func CertKey(filename string) string { return "certs/" + filename }
