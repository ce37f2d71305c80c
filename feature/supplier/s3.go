package supplier

import (
	"context"
	"fmt"
	"io"

	"market-sync/core/reconcile"
	"market-sync/core/storage"

	"github.com/minio/minio-go/v7"
)

// S3Source fetches the feed archive from an object-storage bucket.
type S3Source struct {
	cfg    Config
	client storage.Client
	bucket string
}

// NewS3Source creates a storage-backed feed source.
func NewS3Source(cfg Config, client storage.Client, bucket string) *S3Source {
	return &S3Source{cfg: cfg, client: client, bucket: bucket}
}

// Fetch downloads the archive object, unpacks it, and parses the workbook.
func (s *S3Source) Fetch(ctx context.Context) ([]reconcile.FeedRecord, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check feed bucket %s: %w", s.bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("feed bucket %s does not exist", s.bucket)
	}

	// Minio reads lazily; stat first so a missing object fails before
	// the download starts.
	if _, err := s.client.StatObject(ctx, s.bucket, s.cfg.Object, minio.StatObjectOptions{}); err != nil {
		return nil, fmt.Errorf("feed object %s/%s is not available: %w", s.bucket, s.cfg.Object, err)
	}

	obj, err := s.client.GetObject(ctx, s.bucket, s.cfg.Object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed object %s/%s: %w", s.bucket, s.cfg.Object, err)
	}
	defer obj.Close()

	archive, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed object %s/%s: %w", s.bucket, s.cfg.Object, err)
	}

	workbook, err := extractWorkbook(archive, s.cfg.Workbook)
	if err != nil {
		return nil, err
	}
	return ParseWorkbook(workbook, s.cfg)
}
