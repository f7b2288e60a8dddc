package aws

import (
	"bytes"
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/pkg/errors"
	"github.com/taxdesk/tax-service/internal/constants"
	"github.com/taxdesk/tax-service/internal/interfaces"
)

type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Store keeps W-2 images in a single bucket.
type S3Store struct {
	api    s3API
	bucket string
}

var _ interfaces.ObjectStore = (*S3Store)(nil)

// NewS3Store creates a store for bucket. A non-empty endpoint points the
// client at an S3 compatible server using path style addressing.
func NewS3Store(cfg aws.Config, bucket, endpoint string) *S3Store {
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3Store{api: client, bucket: bucket}
}

// PutObject uploads body under key.
func (s *S3Store) PutObject(ctx context.Context, key, contentType string, body []byte) error {
	_, err := s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return errors.Wrapf(err, "failed to put object %s", key)
	}
	return nil
}

// GetObject downloads the object stored under key.
func (s *S3Store) GetObject(ctx context.Context, key string) (*interfaces.StoredObject, error) {
	out, err := s.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, interfaces.ErrObjectNotFound
		}
		return nil, errors.Wrapf(err, "failed to get object %s", key)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(io.LimitReader(out.Body, constants.MaxImageSize+1))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read object %s", key)
	}
	return &interfaces.StoredObject{
		Key:         key,
		ContentType: aws.ToString(out.ContentType),
		Body:        body,
	}, nil
}

// DeleteObject removes key. Deleting a missing key succeeds.
func (s *S3Store) DeleteObject(ctx context.Context, key string) error {
	_, err := s.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return errors.Wrapf(err, "failed to delete object %s", key)
	}
	return nil
}
