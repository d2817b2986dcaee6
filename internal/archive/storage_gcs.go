package archive

import (
	"context"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
)

// GCSStorage implements StorageClient using Google Cloud Storage.
type GCSStorage struct {
	client *gcs.Client
	bucket string
}

// NewGCSStorage creates a GCS-backed StorageClient.
// It uses Application Default Credentials (works with Workload Identity, SA keys, gcloud auth).
func NewGCSStorage(ctx context.Context, bucket string) (*GCSStorage, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}
	return &GCSStorage{client: client, bucket: bucket}, nil
}

func (s *GCSStorage) key(caseID, kind, id, ext string) string {
	return caseID + "/" + kind + "/" + id + ext
}

func (s *GCSStorage) put(ctx context.Context, key, contentType string, data []byte) error {
	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		w.Close()
		return fmt.Errorf("gcs write %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("gcs close %s: %w", key, err)
	}
	return nil
}

func (s *GCSStorage) get(ctx context.Context, key string) ([]byte, error) {
	r, err := s.client.Bucket(s.bucket).Object(key).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("gcs read %s: %w", key, err)
	}
	defer r.Close()
	return io.ReadAll(r)
}

func (s *GCSStorage) PutAnalysis(ctx context.Context, caseID, analysisID string, data []byte) error {
	return s.put(ctx, s.key(caseID, "analyses", analysisID, ".json"), "application/json", data)
}

func (s *GCSStorage) GetAnalysis(ctx context.Context, caseID, analysisID string) ([]byte, error) {
	return s.get(ctx, s.key(caseID, "analyses", analysisID, ".json"))
}

func (s *GCSStorage) PutLetter(ctx context.Context, caseID, letterID string, data []byte) error {
	return s.put(ctx, s.key(caseID, "letters", letterID, ".md"), "text/markdown", data)
}

func (s *GCSStorage) GetLetter(ctx context.Context, caseID, letterID string) ([]byte, error) {
	return s.get(ctx, s.key(caseID, "letters", letterID, ".md"))
}
