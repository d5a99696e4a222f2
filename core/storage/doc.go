// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so the media layer can serve an admin media
// path of the form s3://bucket/prefix from AWS S3 or a self-hosted MinIO.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easy to mock storage interactions in unit tests (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - StatObject: Retrieves object metadata (size, content type).
//   - GetObject: Retrieves content as a stream.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	loc, err := storage.ParseLocation("s3://assets/admin", config.Bucket)
//	obj, err := client.GetObject(ctx, loc.Bucket, loc.Key("css/base.css"), minio.GetObjectOptions{})
package storage
