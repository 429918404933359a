package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/contenthub/contenthub-server/internal/storage"
	"github.com/contenthub/contenthub-server/pkg/logger"
)

// MaxImageBytes bounds an uploaded cover image.
const MaxImageBytes = 5 << 20

// ImageURLTTL is how long the returned presigned URL stays valid.
const ImageURLTTL = 7 * 24 * time.Hour

// RegisterUploadRoutes mounts POST /api/uploadImage. The multipart field is "image".
func RegisterUploadRoutes(r gin.IRouter, store storage.ObjectStore, requireAuth gin.HandlerFunc) {
	r.POST("/api/uploadImage", requireAuth, func(c *gin.Context) {
		fh, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Image file is required"})
			return
		}
		if fh.Size > MaxImageBytes {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Image is too large"})
			return
		}
		key, err := storage.ImageKey(c.GetString("email"), fh.Header.Get("Content-Type"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Unsupported image type"})
			return
		}
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Image file is required"})
			return
		}
		defer f.Close()

		ctx := c.Request.Context()
		if err := store.UploadFile(ctx, key, f, fh.Size, fh.Header.Get("Content-Type")); err != nil {
			logger.Errorf("upload image %s: %v", key, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store image"})
			return
		}
		u, err := store.GetPresignedURL(ctx, key, ImageURLTTL)
		if err != nil {
			logger.Errorf("presign image %s: %v", key, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store image"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"key": key, "imageUrl": u})
	})
}
