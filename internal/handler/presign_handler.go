package handler

import (
	"net/http"

	"s3m/internal/service"
	"s3m/pkg/response"

	"github.com/gin-gonic/gin"
)

// PresignHandler handles HTTP requests for pre-signed URL operations.
type PresignHandler struct {
	service service.URLSigner
}

// NewPresignHandler creates a new PresignHandler.
func NewPresignHandler(service service.URLSigner) *PresignHandler {
	return &PresignHandler{service: service}
}

// presignQuery holds the query parameters shared by both endpoints.
type presignQuery struct {
	Key           string `form:"key" binding:"required"`
	ExpireMinutes int    `form:"expireMinutes,default=1"`
}

// SignedURLResponse is the payload returned by both endpoints.
type SignedURLResponse struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// Upload godoc
// @Summary      Generate a pre-signed upload URL
// @Description  Returns a time-limited URL that allows uploading the object with HTTP PUT
// @Tags         s3m
// @Produce      json
// @Param        key            query     string  true   "Object key to upload"
// @Param        expireMinutes  query     int     false  "Link validity in minutes (default: 1, minimum: 1)"
// @Success      200  {object}  handler.SignedURLResponse
// @Failure      400  {object}  response.ErrorResponse
// @Failure      500  {object}  response.ErrorResponse
// @Router       /upload [get]
func (h *PresignHandler) Upload(c *gin.Context) {
	var q presignQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	url, err := h.service.GenerateUploadURL(c.Request.Context(), q.Key, q.ExpireMinutes, false)
	if err != nil {
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, SignedURLResponse{URL: url, Key: q.Key})
}

// Download godoc
// @Summary      Generate a pre-signed download URL
// @Description  Returns a time-limited URL that allows downloading the object with HTTP GET
// @Tags         s3m
// @Produce      json
// @Param        key            query     string  true   "Object key to download"
// @Param        expireMinutes  query     int     false  "Link validity in minutes (default: 1, minimum: 1)"
// @Success      200  {object}  handler.SignedURLResponse
// @Failure      400  {object}  response.ErrorResponse
// @Failure      500  {object}  response.ErrorResponse
// @Router       /download [get]
func (h *PresignHandler) Download(c *gin.Context) {
	var q presignQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	url, err := h.service.GenerateDownloadURL(c.Request.Context(), q.Key, q.ExpireMinutes, false)
	if err != nil {
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, SignedURLResponse{URL: url, Key: q.Key})
}
