// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so locale catalogs can be read from AWS S3 or a
// self-hosted MinIO instance. Only the operations the catalog backend needs
// are exposed, which keeps the interface easy to mock (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the catalog bucket.
//   - GetObject: Retrieves a catalog as a stream.
//
// IsNotFound maps S3 `NoSuchKey` and `NoSuchBucket` responses to a boolean.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "locales")
package storage
