package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	gcs "cloud.google.com/go/storage"
)

const defaultMaxObjectSize int64 = 4 << 20

var (
	errObjectNotFound = errors.New("storage: object not found")
	errObjectTooLarge = errors.New("storage: object exceeds size limit")
)

// ErrObjectNotFound is returned when the requested object does not exist.
var ErrObjectNotFound = errObjectNotFound

// ErrObjectTooLarge is returned when an object is larger than the reader accepts.
var ErrObjectTooLarge = errObjectTooLarge

// ObjectReader reads whole objects from a single Cloud Storage bucket.
type ObjectReader struct {
	client  *gcs.Client
	bucket  string
	maxSize int64
}

// ReaderOption customises ObjectReader behaviour.
type ReaderOption func(*ObjectReader)

// WithMaxObjectSize caps the number of bytes read per object.
func WithMaxObjectSize(size int64) ReaderOption {
	return func(r *ObjectReader) {
		if size > 0 {
			r.maxSize = size
		}
	}
}

// NewObjectReader constructs an ObjectReader backed by the provided Cloud Storage client.
func NewObjectReader(client *gcs.Client, bucket string, opts ...ReaderOption) (*ObjectReader, error) {
	if client == nil {
		return nil, errors.New("storage reader: client is required")
	}
	bucket = strings.TrimSpace(bucket)
	if bucket == "" {
		return nil, errors.New("storage reader: bucket is required")
	}
	reader := &ObjectReader{client: client, bucket: bucket, maxSize: defaultMaxObjectSize}
	for _, opt := range opts {
		if opt != nil {
			opt(reader)
		}
	}
	return reader, nil
}

// Bucket returns the bucket the reader is bound to.
func (r *ObjectReader) Bucket() string { return r.bucket }

// ReadObject returns the full content of object.
func (r *ObjectReader) ReadObject(ctx context.Context, object string) ([]byte, error) {
	if r == nil || r.client == nil {
		return nil, errors.New("storage reader: client is not initialised")
	}
	object = strings.TrimSpace(object)
	if object == "" {
		return nil, errors.New("storage reader: object name is required")
	}

	rc, err := r.client.Bucket(r.bucket).Object(object).NewReader(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return nil, fmt.Errorf("%w: gs://%s/%s", errObjectNotFound, r.bucket, object)
	}
	if err != nil {
		return nil, fmt.Errorf("storage reader: open gs://%s/%s: %w", r.bucket, object, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, r.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("storage reader: read gs://%s/%s: %w", r.bucket, object, err)
	}
	if int64(len(data)) > r.maxSize {
		return nil, fmt.Errorf("%w: gs://%s/%s", errObjectTooLarge, r.bucket, object)
	}
	return data, nil
}

// Ping checks that the bucket is reachable.
func (r *ObjectReader) Ping(ctx context.Context) error {
	if r == nil || r.client == nil {
		return errors.New("storage reader: client is not initialised")
	}
	if _, err := r.client.Bucket(r.bucket).Attrs(ctx); err != nil {
		return fmt.Errorf("storage reader: bucket %s: %w", r.bucket, err)
	}
	return nil
}
