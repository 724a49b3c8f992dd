// Package errors provides custom error types for the application.
package errors

import (
	"fmt"
	"strings"
)

// ConfigValidationError reports required configuration fields that were
// blank or missing. Surfaced at load time, before any network access.
type ConfigValidationError struct {
	Fields []string
}

func (e *ConfigValidationError) Error() string {
	return fmt.Sprintf("invalid configuration, missing required fields: %s", strings.Join(e.Fields, ", "))
}

// BucketAccessError reports a failed bucket reachability check at startup.
// The process must not serve traffic against an unverified bucket.
type BucketAccessError struct {
	Bucket string
	Err    error
}

func (e *BucketAccessError) Error() string {
	return fmt.Sprintf("unable to access s3 bucket %q: %v", e.Bucket, e.Err)
}

func (e *BucketAccessError) Unwrap() error {
	return e.Err
}
