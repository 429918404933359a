package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contenthub/contenthub-server/internal/apierror"
	"github.com/contenthub/contenthub-server/internal/comment/service"
	"github.com/contenthub/contenthub-server/internal/models"
)

// RegisterCommentRoutes mounts the comment endpoints. requireAuth guards posting.
// Listing lives on the same path as posting.
func RegisterCommentRoutes(r gin.IRouter, svc service.Service, requireAuth gin.HandlerFunc) {
	r.POST("/api/addcomment", requireAuth, func(c *gin.Context) {
		var cm models.Comment
		if err := c.ShouldBindJSON(&cm); err != nil {
			apierror.BadRequest(c, "Invalid comment payload")
			return
		}
		id, err := svc.Add(c.Request.Context(), &cm)
		if err != nil {
			apierror.Internal(c, err, "Failed to add comment")
			return
		}
		c.JSON(http.StatusOK, models.InsertResult{Acknowledged: true, InsertedID: id})
	})

	r.GET("/api/addcomment", func(c *gin.Context) {
		list, err := svc.List(c.Request.Context(), c.Query("blogId"))
		if err != nil {
			apierror.Internal(c, err, "Failed to fetch comments")
			return
		}
		c.JSON(http.StatusOK, list)
	})

	r.DELETE("/api/comments/:id", func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			apierror.Respond(c, err, "Comment not found", "Failed to delete comment")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
	})
}
