// Package storage provides read access to the release object store.
//
// It wraps the MinIO Go client behind a small interface so the archive
// reader can fetch a published product archive from S3 or a self-hosted
// MinIO without knowing which. Uploads and deletes are intentionally
// absent; versync treats the release bucket as a source of truth it must
// never modify.
//
// # Client Interface
//
// The Client interface keeps storage mockable for unit tests (see
// core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the release bucket.
//   - StatObject: Confirms an archive key exists before streaming it.
//   - GetObject: Retrieves an archive as a stream.
//   - ListObjects: Lists archive keys (supports prefix/recursive).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "releases")
package storage
