package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// slashRun matches one or more consecutive slashes.
var slashRun = regexp.MustCompile(`/+`)

// PresignService generates pre-signed S3 URLs for uploads and downloads.
// It is stateless after construction and safe for concurrent use: presigning
// is a local signature computation with no backend side effects.
type PresignService struct {
	presigner Presigner
	bucket    string
	keyPrefix string
}

// NewPresignService creates a new PresignService for the given bucket.
// keyPrefix is optional; when non-empty it is normalized once here and
// applied only to calls that request prefix forcing.
func NewPresignService(presigner Presigner, bucket, keyPrefix string) *PresignService {
	return &PresignService{
		presigner: presigner,
		bucket:    bucket,
		keyPrefix: normalizePrefix(keyPrefix),
	}
}

// GenerateUploadURL generates a pre-signed URL for uploading an object
// with HTTP PUT. Expiry values below 1 minute are raised to 1 minute.
func (s *PresignService) GenerateUploadURL(ctx context.Context, key string, expireMinutes int, forcePrefix bool) (string, error) {
	request, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.resolveKey(key, forcePrefix)),
	}, s3.WithPresignExpires(clampExpiry(expireMinutes)))
	if err != nil {
		return "", err
	}

	return request.URL, nil
}

// GenerateDownloadURL generates a pre-signed URL for downloading an object
// with HTTP GET. Expiry values below 1 minute are raised to 1 minute.
func (s *PresignService) GenerateDownloadURL(ctx context.Context, key string, expireMinutes int, forcePrefix bool) (string, error) {
	request, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.resolveKey(key, forcePrefix)),
	}, s3.WithPresignExpires(clampExpiry(expireMinutes)))
	if err != nil {
		return "", err
	}

	return request.URL, nil
}

// clampExpiry converts minutes to a duration with a 1 minute floor.
// No upper bound is enforced here; the provider rejects durations beyond
// its own ceiling and that surfaces as a presign error.
func clampExpiry(minutes int) time.Duration {
	if minutes < 1 {
		minutes = 1
	}
	return time.Duration(minutes) * time.Minute
}

// resolveKey applies the configured prefix when requested. The key is used
// unmodified when forcing is off or no prefix is configured.
func (s *PresignService) resolveKey(key string, forcePrefix bool) string {
	if !forcePrefix || s.keyPrefix == "" {
		return key
	}
	return slashRun.ReplaceAllString(s.keyPrefix+strings.TrimPrefix(key, "/"), "/")
}

// normalizePrefix ensures a non-empty prefix has exactly one leading and
// one trailing slash. Normalization is idempotent.
func normalizePrefix(prefix string) string {
	trimmed := strings.Trim(prefix, "/")
	if trimmed == "" {
		return ""
	}
	return slashRun.ReplaceAllString("/"+trimmed+"/", "/")
}
