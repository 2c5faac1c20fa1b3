package snapshot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// UploadTimeout bounds a single PutObject call.
const UploadTimeout = 30 * time.Second

// S3Config selects the bucket and credentials. Empty keys fall back to the
// SDK's default credential chain.
type S3Config struct {
	AccessKey string
	SecretKey string
	Endpoint  string
	Region    string
	Bucket    string
	Prefix    string
}

// Uploader puts encoded frames into a bucket.
type Uploader struct {
	client s3iface.S3API
	bucket string
	prefix string
}

// NewS3Uploader opens an S3 session for cfg.
func NewS3Uploader(cfg S3Config) (*Uploader, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("snapshot: s3 bucket is required")
	}
	awsCfg := &aws.Config{S3ForcePathStyle: aws.Bool(true)}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
	}
	if cfg.Region != "" {
		awsCfg.Region = aws.String(cfg.Region)
	}
	if cfg.AccessKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}
	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("snapshot: s3 session: %w", err)
	}
	return NewUploader(s3.New(sess), cfg.Bucket, cfg.Prefix), nil
}

// NewUploader wraps an existing client.
func NewUploader(client s3iface.S3API, bucket, prefix string) *Uploader {
	return &Uploader{client: client, bucket: bucket, prefix: prefix}
}

// Key is the object key for name under the configured prefix.
func (u *Uploader) Key(name string) string {
	if u.prefix == "" {
		return name
	}
	return path.Join(u.prefix, name)
}

// Upload stores data as name and returns the object key.
func (u *Uploader) Upload(ctx context.Context, name string, data []byte, f Format) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	key := u.Key(name)
	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(f.ContentType()),
	})
	if err != nil {
		return "", fmt.Errorf("snapshot: upload %s: %w", key, err)
	}
	return key, nil
}
