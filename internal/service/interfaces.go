// Package service contains business logic for the application.
package service

import (
	"context"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Presigner defines the subset of the S3 presign client used by PresignService.
type Presigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// Ensure the real presign client satisfies the interface
var _ Presigner = (*s3.PresignClient)(nil)

// URLSigner defines the interface for pre-signed URL operations.
type URLSigner interface {
	GenerateUploadURL(ctx context.Context, key string, expireMinutes int, forcePrefix bool) (string, error)
	GenerateDownloadURL(ctx context.Context, key string, expireMinutes int, forcePrefix bool) (string, error)
}

// Ensure PresignService implements URLSigner
var _ URLSigner = (*PresignService)(nil)
