// Package storage uploads condominium photos to S3. Upload failure never
// blocks a record write; the caller falls back to the no-image placeholder.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/google/uuid"

	"github.com/evcraddock/condo-registry/internal/metrics"
)

// DefaultTimeout bounds each upload.
const DefaultTimeout = 30 * time.Second

// s3API is the slice of s3manager.Uploader the uploader depends on,
// narrowed so tests can substitute a fake.
type s3API interface {
	UploadWithContext(ctx aws.Context, input *s3manager.UploadInput, opts ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error)
}

// Uploader stores photo bytes in an S3 bucket under uuid-derived keys and
// returns the object URL.
type Uploader struct {
	s3      s3API
	bucket  string
	timeout time.Duration
}

// New creates an uploader for the given bucket. Static credentials are
// optional; when absent the SDK's default chain applies.
func New(region, bucket, accessKeyID, secretAccessKey string) (*Uploader, error) {
	if region == "" {
		return nil, fmt.Errorf("aws region is required")
	}
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}

	cfg := &aws.Config{Region: aws.String(region)}
	if accessKeyID != "" {
		cfg.Credentials = credentials.NewStaticCredentials(accessKeyID, secretAccessKey, "")
	}

	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating aws session: %w", err)
	}

	return &Uploader{
		s3:      s3manager.NewUploader(sess),
		bucket:  bucket,
		timeout: DefaultTimeout,
	}, nil
}

// Upload stores the photo and returns its URL. The original filename only
// contributes its extension; the key is a fresh uuid so uploads never
// collide.
func (u *Uploader) Upload(ctx context.Context, body io.Reader, filename, contentType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	key := uuid.New().String() + strings.ToLower(filepath.Ext(filename))

	out, err := u.s3.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		metrics.PhotoUploads.WithLabelValues("error").Inc()
		return "", fmt.Errorf("uploading %s: %w", key, err)
	}

	metrics.PhotoUploads.WithLabelValues("ok").Inc()
	return out.Location, nil
}
