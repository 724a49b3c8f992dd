package storage

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// HeadBucketAPI defines the subset of the S3 client used to check bucket
// reachability at startup.
type HeadBucketAPI interface {
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

// Ensure the real client satisfies the interface
var _ HeadBucketAPI = (*s3.Client)(nil)
