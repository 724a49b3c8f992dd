//go:build api

package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"s3m/internal/handler"
	"s3m/internal/router"
	"s3m/internal/service"
	"s3m/internal/storage"
	"s3m/test/api/testdb"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresignAPI(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	mc, err := testdb.SetupMinIO(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mc.Cleanup(context.Background()) })

	opts := storage.Options{
		AccessKeyID:     mc.AccessKey,
		SecretAccessKey: mc.SecretKey,
		Bucket:          mc.Bucket,
		Endpoint:        mc.Endpoint,
	}

	t.Run("construction fails for an unreachable bucket", func(t *testing.T) {
		badOpts := opts
		badOpts.Bucket = "does-not-exist"

		_, err := storage.NewS3Client(ctx, badOpts)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "does-not-exist")
	})

	s3Client, err := storage.NewS3Client(ctx, opts)
	require.NoError(t, err)

	presignService := service.NewPresignService(s3Client.Presign(), s3Client.Bucket(), "")
	r := router.Setup(&router.Config{
		PresignHandler:  handler.NewPresignHandler(presignService),
		EnableEndpoints: true,
	})

	getSignedURL := func(t *testing.T, path string) handler.SignedURLResponse {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var resp handler.SignedURLResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.URL)
		return resp
	}

	const content = "hello from the api test"

	t.Run("upload through a presigned URL", func(t *testing.T) {
		resp := getSignedURL(t, "/api/s3m/upload?key=hello.txt&expireMinutes=5")
		assert.Equal(t, "hello.txt", resp.Key)

		req, err := http.NewRequest(http.MethodPut, resp.URL, strings.NewReader(content))
		require.NoError(t, err)

		putResp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer putResp.Body.Close()
		assert.Equal(t, http.StatusOK, putResp.StatusCode)
	})

	t.Run("download through a presigned URL", func(t *testing.T) {
		resp := getSignedURL(t, "/api/s3m/download?key=hello.txt")
		assert.Equal(t, "hello.txt", resp.Key)

		getResp, err := http.Get(resp.URL)
		require.NoError(t, err)
		defer getResp.Body.Close()
		require.Equal(t, http.StatusOK, getResp.StatusCode)

		body, err := io.ReadAll(getResp.Body)
		require.NoError(t, err)
		assert.Equal(t, content, string(body))
	})
}
