// Package storage provides object storage clients for S3-compatible services.
package storage

import (
	"context"
	"log"

	apperrors "s3m/internal/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// defaultRegion is used for signing when no region is configured.
const defaultRegion = "us-east-1"

// S3Client bundles the S3 client and its presign client for one bucket.
// Both are immutable after construction and safe for concurrent use.
type S3Client struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
}

// Options configures NewS3Client.
type Options struct {
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	Endpoint        string
	Region          string
}

// NewS3Client creates S3 and presign clients using static credentials and
// a custom endpoint, then verifies the configured bucket is reachable.
// Construction fails with a BucketAccessError when the bucket cannot be
// accessed, so the caller never serves traffic against a misconfigured
// backend.
func NewS3Client(ctx context.Context, opts Options) (*S3Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(resolveRegion(opts.Region)),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, "")),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(opts.Endpoint)
		o.UsePathStyle = true // Required for MinIO and most S3-compatible endpoints
	})

	if err := verifyBucket(ctx, client, opts.Bucket); err != nil {
		return nil, err
	}

	log.Printf("Connected to S3 at %s (bucket %s)", opts.Endpoint, opts.Bucket)

	return &S3Client{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  opts.Bucket,
	}, nil
}

// Presign returns the presign client.
func (s *S3Client) Presign() *s3.PresignClient {
	return s.presign
}

// Bucket returns the configured bucket name.
func (s *S3Client) Bucket() string {
	return s.bucket
}

// resolveRegion falls back to us-east-1 when no region is configured.
func resolveRegion(region string) string {
	if region == "" {
		return defaultRegion
	}
	return region
}

// verifyBucket performs a HeadBucket call to fail fast on bad credentials,
// wrong region, or a nonexistent bucket.
func verifyBucket(ctx context.Context, api HeadBucketAPI, bucket string) error {
	_, err := api.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return &apperrors.BucketAccessError{Bucket: bucket, Err: err}
	}
	return nil
}
