package locale

import (
	"context"
	"fmt"
	"io"
	"path"

	"i18next-typesafe/core/catalog"
	"i18next-typesafe/core/storage"

	"github.com/minio/minio-go/v7"
)

// BucketSource reads `<prefix>/<lang><ext>` objects from S3 or MinIO.
type BucketSource struct {
	client storage.Client
	bucket string
	prefix string
	ext    string
}

// NewBucketSource creates an object storage source.
func NewBucketSource(client storage.Client, bucket, prefix, ext string) *BucketSource {
	return &BucketSource{client: client, bucket: bucket, prefix: prefix, ext: ext}
}

// CheckBucket verifies the bucket is reachable.
func (s *BucketSource) CheckBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", s.bucket)
	}
	return nil
}

func (s *BucketSource) objectName(lang string) string {
	if s.prefix == "" {
		return lang + s.ext
	}
	return path.Join(s.prefix, lang+s.ext)
}

// Location returns the s3 URL of lang's object.
func (s *BucketSource) Location(lang string) string {
	return "s3://" + s.bucket + "/" + s.objectName(lang)
}

// Load downloads and decodes the object for lang.
func (s *BucketSource) Load(ctx context.Context, lang string) (*catalog.Document, error) {
	name := s.objectName(lang)
	obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, notFound(s.Location(lang))
		}
		return nil, fmt.Errorf("failed to get %s: %w", s.Location(lang), err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, notFound(s.Location(lang))
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.Location(lang), err)
	}

	doc, err := catalog.Decode(name, data)
	if err != nil {
		return nil, &ParseError{Path: s.Location(lang), Err: err}
	}
	return doc, nil
}
