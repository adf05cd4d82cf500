package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
)

// Uploader streams objects into a Cloud Storage bucket.
type Uploader struct {
	client *storage.Client
	bucket string
}

func NewUploader(client *storage.Client, bucket string) *Uploader {
	return &Uploader{client: client, bucket: bucket}
}

// Upload writes r to the bucket under the given object path and returns the
// durable gs:// URI for it.
func (u *Uploader) Upload(ctx context.Context, r io.Reader, object, contentType string) (string, error) {
	if u.bucket == "" {
		return "", errors.New("storage bucket not configured")
	}

	w := u.client.Bucket(u.bucket).Object(object).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	return fmt.Sprintf("gs://%s/%s", u.bucket, object), nil
}
