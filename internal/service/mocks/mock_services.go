// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import "context"

// MockURLSigner is a mock implementation of URLSigner.
type MockURLSigner struct {
	GenerateUploadURLFunc   func(ctx context.Context, key string, expireMinutes int, forcePrefix bool) (string, error)
	GenerateDownloadURLFunc func(ctx context.Context, key string, expireMinutes int, forcePrefix bool) (string, error)

	UploadCalls   int
	DownloadCalls int
}

func (m *MockURLSigner) GenerateUploadURL(ctx context.Context, key string, expireMinutes int, forcePrefix bool) (string, error) {
	m.UploadCalls++
	if m.GenerateUploadURLFunc != nil {
		return m.GenerateUploadURLFunc(ctx, key, expireMinutes, forcePrefix)
	}
	return "", nil
}

func (m *MockURLSigner) GenerateDownloadURL(ctx context.Context, key string, expireMinutes int, forcePrefix bool) (string, error) {
	m.DownloadCalls++
	if m.GenerateDownloadURLFunc != nil {
		return m.GenerateDownloadURLFunc(ctx, key, expireMinutes, forcePrefix)
	}
	return "", nil
}
