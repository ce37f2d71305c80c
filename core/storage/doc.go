// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified read-side interface
// used by the S3 supplier-feed source. The abstraction supports both AWS S3
// and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easier to mock storage interactions for unit testing (see
// core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the feed bucket.
//   - GetObject: Retrieves a feed archive as a stream.
//   - StatObject: Checks a feed archive without downloading it.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "supplier-feeds")
package storage
