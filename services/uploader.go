package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
)

// ImageUploader accepts one binary image and returns a publicly resolvable
// URL for it.
type ImageUploader interface {
	Upload(ctx context.Context, objectName string, data []byte, contentType string) (string, error)
}

type MinioUploader struct {
	client   *minio.Client
	bucket   string
	endpoint string
	secure   bool
}

func NewMinioUploader(client *minio.Client, bucket, endpoint string, secure bool) *MinioUploader {
	return &MinioUploader{client: client, bucket: bucket, endpoint: endpoint, secure: secure}
}

func (u *MinioUploader) Upload(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	info, err := u.client.PutObject(ctx, u.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return u.ObjectURL(info.Key), nil
}

// ObjectURL builds the public URL for an object key in the bucket.
func (u *MinioUploader) ObjectURL(key string) string {
	scheme := "http"
	if u.secure {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, u.endpoint, u.bucket, key)
}

// ListObjectKeys returns every object key in the bucket. Used by the orphan
// scan, not by the submit path.
func (u *MinioUploader) ListObjectKeys(ctx context.Context) ([]string, error) {
	var keys []string
	objectCh := u.client.ListObjects(ctx, u.bucket, minio.ListObjectsOptions{
		Recursive: true,
	})
	for object := range objectCh {
		if object.Err != nil {
			return nil, object.Err
		}
		keys = append(keys, object.Key)
	}
	return keys, nil
}
